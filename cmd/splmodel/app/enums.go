package app

import (
	"fmt"
	"strings"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/operator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Enums struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewEnums(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enums {<enumeration>} <options>",
		Short: "list the enumerations of the operator model",
	}
	TweakCommand(cmd)

	c := &Enums{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", opts.config.output(), "output format")
	return cmd
}

type enumOutput struct {
	Name     string          `json:"name"`
	Literals []model.Literal `json:"literals"`
}

func (c *Enums) Run(args []string) error {
	if err := checkOutput(c.output, true); err != nil {
		return err
	}
	reg := operator.Registry()
	enums := reg.Enums()
	if len(args) > 0 {
		enums = nil
		for _, name := range args {
			e, ok := reg.Enum(name)
			if !ok {
				return errors.Errorf("unknown enumeration %q", name)
			}
			enums = append(enums, e)
		}
	}

	w := c.cmd.OutOrStdout()
	if c.output != OutputText {
		var list []enumOutput
		for _, e := range enums {
			list = append(list, enumOutput{Name: e.Name(), Literals: e.Literals()})
		}
		return write(w, c.output, list)
	}
	for _, e := range enums {
		var values []string
		for _, l := range e.Literals() {
			values = append(values, l.Value)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Name(), strings.Join(values, " ")); err != nil {
			return err
		}
	}
	return nil
}
