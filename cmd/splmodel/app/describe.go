package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/andaru/splmodel/model"
	"github.com/andaru/splmodel/operator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Describe struct {
	cmd *cobra.Command

	mainopts    *Options
	output      string
	fingerprint bool
}

func NewDescribe(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe {<type>} <options>",
		Short: "describe the element types of the operator model",
	}
	TweakCommand(cmd)

	c := &Describe{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", opts.config.output(), "output format")
	flags.BoolVarP(&c.fingerprint, "fingerprint", "f", false, "print the registry fingerprint")
	return cmd
}

func (c *Describe) Run(args []string) error {
	reg := operator.Registry()
	w := c.cmd.OutOrStdout()
	if c.fingerprint {
		fp, err := reg.Fingerprint()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, fp)
		return err
	}
	if err := checkOutput(c.output, true); err != nil {
		return err
	}

	var types []*model.TypeDescriptor
	for _, name := range args {
		t, ok := reg.Lookup(name)
		if !ok {
			return errors.Errorf("unknown type %q", name)
		}
		types = append(types, t)
	}
	if len(args) == 0 {
		types = reg.Types()
	}

	if c.output != OutputText {
		return write(w, c.output, selectTypes(reg, args))
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range types {
		describeType(tw, reg, t)
	}
	return tw.Flush()
}

// selectTypes returns the registry table restricted to the named types.
func selectTypes(reg *model.Registry, names []string) any {
	data, err := json.Marshal(reg)
	if err != nil || len(names) == 0 {
		return reg
	}
	var table struct {
		Name  string           `json:"name"`
		Types []map[string]any `json:"types"`
	}
	if json.Unmarshal(data, &table) != nil {
		return reg
	}
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	var types []map[string]any
	for _, t := range table.Types {
		if name, _ := t["name"].(string); want[name] {
			types = append(types, t)
		}
	}
	table.Types = types
	return table
}

func describeType(w io.Writer, reg *model.Registry, t *model.TypeDescriptor) {
	head := t.Name
	if t.Super != nil {
		head += " extends " + t.Super.Name
	}
	if rn, ok := reg.RootName(t.Kind); ok {
		head += " (document element " + rn.Local + ")"
	}
	fmt.Fprintf(w, "%s\t%s\t\t\n", head, t.Namespace)
	for i := range t.Fields {
		f := &t.Fields[i]
		var typ string
		switch f.Kind {
		case model.Scalar:
			typ = f.Data.String()
		case model.Enum:
			typ = f.Enum.Name()
		default:
			typ = reg.Describe(f.Elem).Name
		}
		var notes []string
		if f.Form != model.Element {
			notes = append(notes, f.Form.String())
		}
		if f.Unsettable {
			notes = append(notes, fmt.Sprintf("default %v", defaultValue(f)))
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Name, typ, occurs(f), strings.Join(notes, ", "))
	}
	for _, group := range t.Choices {
		var names []string
		for _, id := range group {
			names = append(names, t.Fields[id].Name)
		}
		fmt.Fprintf(w, "  choice\t%s\t1..1\t\n", strings.Join(names, "|"))
	}
}

func occurs(f *model.FieldDescriptor) string {
	upper := "*"
	if f.Upper != model.Unbounded {
		upper = fmt.Sprint(f.Upper)
	}
	return fmt.Sprintf("%d..%s", f.Lower, upper)
}

func defaultValue(f *model.FieldDescriptor) any {
	if f.Kind == model.Enum {
		if lit, ok := f.Enum.GetByOrdinal(f.Default.(int)); ok {
			return lit.Value
		}
	}
	return f.Default
}
