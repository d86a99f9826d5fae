package app

import (
	"path"
	"strings"

	"github.com/andaru/splmodel/spldoc"
	"github.com/spf13/cobra"
)

type Doc struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	name     string
}

func NewDoc(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc <file> <options>",
		Short: "generate reference documentation for an operator",
		Long: `
Writes a markdown page describing the operator's parameters, ports,
metrics and libraries. The operator name defaults to the file name
without its extension.
`,
		Args: cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Doc{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output format (markdown when empty)")
	flags.StringVarP(&c.name, "name", "n", "", "operator name")
	return cmd
}

func (c *Doc) Run(args []string) error {
	if err := checkOutput(c.output, true); err != nil {
		return err
	}
	om, _, err := c.mainopts.operatorModel(c.cmd.Context(), args[0])
	if err != nil {
		return err
	}
	name := c.name
	if name == "" {
		base := path.Base(args[0])
		name = strings.TrimSuffix(base, path.Ext(base))
	}
	s, err := spldoc.Summarize(name, om)
	if err != nil {
		return err
	}
	if c.output != OutputText {
		return write(c.cmd.OutOrStdout(), c.output, s)
	}
	return spldoc.Render(c.cmd.OutOrStdout(), s)
}
