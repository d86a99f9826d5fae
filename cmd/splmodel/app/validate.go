package app

import (
	"fmt"

	"github.com/andaru/splmodel/modelerr"
	"github.com/andaru/splmodel/schema"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// operatorRules are the document checks beyond element occurrence.
var operatorRules = []schema.Rule{
	schema.Unique("parameter", "name"),
	schema.Unique("metric", "name"),
	schema.Unique("enumeration", "name"),
	schema.Unique("codeTemplate", "name"),
	schema.Unique("customOutputFunction", "name"),
}

type Validate struct {
	cmd *cobra.Command

	mainopts  *Options
	output    string
	maxErrors int
}

func NewValidate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file> {<file>} <options>",
		Short: "validate operator model documents",
		Args:  cobra.MinimumNArgs(1),
	}
	TweakCommand(cmd)

	c := &Validate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", opts.config.output(), "output format")
	flags.IntVarP(&c.maxErrors, "max-errors", "m", 0, "stop after this many problems per file (0 for no limit)")
	return cmd
}

// Result is the outcome of validating one file.
type Result struct {
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Problems []*modelerr.Error `json:"problems,omitempty"`
	// Failure is set when the file could not be read or parsed
	Failure string `json:"failure,omitempty"`
}

func (c *Validate) Run(args []string) error {
	if err := checkOutput(c.output, true); err != nil {
		return err
	}
	ctx := c.cmd.Context()
	v := schema.New(schema.WithRules(operatorRules...), schema.MaxErrors(c.maxErrors))

	var results []Result
	invalid := 0
	for _, path := range args {
		r := Result{File: path}
		doc, err := c.mainopts.load(ctx, path)
		var problems modelerr.List
		if doc != nil {
			problems = append(problems, doc.Warnings...)
		}
		if err != nil {
			var list modelerr.List
			e, isModelErr := modelerr.As(err)
			switch {
			case errors.As(err, &list):
				problems = append(problems, list...)
			case isModelErr:
				problems = append(problems, e)
			case ctx.Err() != nil:
				return err
			default:
				r.Failure = err.Error()
				results = append(results, r)
				invalid++
				continue
			}
		}
		// a document with decode errors is still checked as far as it was read
		if doc != nil {
			found, err := v.Validate(ctx, doc.Root)
			if err != nil {
				return err
			}
			problems = append(problems, found...)
		}
		for _, p := range problems {
			if e, ok := modelerr.As(p); ok {
				r.Problems = append(r.Problems, e)
			}
		}
		r.Valid = len(problems.Errors()) == 0
		if !r.Valid {
			invalid++
		}
		glog.V(1).Infof("%s: %d problems", path, len(problems))
		results = append(results, r)
	}

	w := c.cmd.OutOrStdout()
	if c.output != OutputText {
		if err := write(w, c.output, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			switch {
			case r.Failure != "":
				fmt.Fprintf(w, "%s: %s\n", r.File, r.Failure)
			case len(r.Problems) == 0:
				fmt.Fprintf(w, "%s: ok\n", r.File)
			}
			for _, p := range r.Problems {
				fmt.Fprintf(w, "%s: %s\n", r.File, p)
			}
		}
	}
	if invalid > 0 {
		return errors.Errorf("%d of %d documents invalid", invalid, len(args))
	}
	return nil
}
