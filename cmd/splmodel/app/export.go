package app

import (
	"github.com/andaru/splmodel/model"
	"github.com/spf13/cobra"
)

type Export struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewExport(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> <options>",
		Short: "convert an operator model document to YAML or JSON",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Export{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", opts.config.output(), "output format (yaml, json or jcs)")
	return cmd
}

func (c *Export) Run(args []string) error {
	format := c.output
	if format == OutputText {
		format = OutputYAML
	}
	if err := checkOutput(format, false); err != nil {
		return err
	}
	om, _, err := c.mainopts.operatorModel(c.cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return write(c.cmd.OutOrStdout(), format, model.Export(om.Node()))
}
