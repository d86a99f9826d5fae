package app

import (
	"bytes"
	"fmt"

	"github.com/andaru/splmodel/codec"
	"github.com/antchfx/xmlquery"
	"github.com/spf13/cobra"
)

type Query struct {
	cmd *cobra.Command

	mainopts   *Options
	namespaces map[string]string
}

func NewQuery(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <file> <xpath>",
		Short: "evaluate an XPath expression against a document",
		Long: `
Prints each node of a node-set result on its own line (elements as XML,
other nodes as their text) or the value of a scalar result.

Prefixes declared on the document element can be used in the expression
and --namespace binds more. Unprefixed names match only elements written
without a prefix.
`,
		Args: cobra.ExactArgs(2),
	}
	TweakCommand(cmd)

	c := &Query{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	cmd.Flags().StringToStringVarP(&c.namespaces, "namespace", "N", nil, "bind prefix=namespace in the expression")
	return cmd
}

func (c *Query) Run(args []string) error {
	data, err := c.mainopts.read(args[0])
	if err != nil {
		return err
	}
	var opts []codec.QueryOption
	for prefix, ns := range c.namespaces {
		opts = append(opts, codec.WithNamespace(prefix, ns))
	}
	v, err := codec.Query(bytes.NewReader(data), args[1], opts...)
	if err != nil {
		return err
	}
	w := c.cmd.OutOrStdout()
	nodes, ok := v.([]*xmlquery.Node)
	if !ok {
		_, err = fmt.Fprintln(w, v)
		return err
	}
	for _, n := range nodes {
		s := n.InnerText()
		if n.Type == xmlquery.ElementNode {
			s = n.OutputXML(true)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
