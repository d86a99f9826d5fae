package app

import (
	"bytes"
	"context"

	"github.com/andaru/splmodel/codec"
	"github.com/andaru/splmodel/operator"
	"github.com/golang/glog"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Options struct {
	fs             vfs.FileSystem
	config         *Config
	strict         bool
	schemaLocation string
}

func optionalDefaulted[T any](def T, list ...T) T {
	if len(list) > 0 {
		return list[0]
	}
	return def
}

// New returns the splmodel command. Files are accessed through the
// first of fss, or the OS file system.
func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: optionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}
	cfg, cfgErr := GetConfig(opts.fs)
	opts.config = cfg
	opts.strict = cfg.strict()
	opts.schemaLocation = cfg.schemaLocation()

	maincmd := &cobra.Command{
		Use:   "splmodel <options> <cmd> <args>",
		Short: "inspect and process SPL operator models",
		Long: `
This command reads, validates, formats and documents SPL operator
model documents (operator.xml files).
`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return cfgErr },
		TraverseChildren:  true,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := maincmd.Flags()
	flags.BoolVar(&opts.strict, "strict", opts.strict, "reject unknown elements, attributes and namespaces")
	flags.StringVar(&opts.schemaLocation, "schema-location", opts.schemaLocation, "xsi:schemaLocation written on encode")

	maincmd.AddCommand(NewDescribe(opts))
	maincmd.AddCommand(NewEnums(opts))
	maincmd.AddCommand(NewValidate(opts))
	maincmd.AddCommand(NewFmt(opts))
	maincmd.AddCommand(NewExport(opts))
	maincmd.AddCommand(NewQuery(opts))
	maincmd.AddCommand(NewDoc(opts))
	return maincmd
}

// TweakCommand applies the settings shared by all subcommands.
func TweakCommand(cmd *cobra.Command) {
	cmd.DisableFlagsInUseLine = true
}

func (o *Options) read(path string) ([]byte, error) {
	data, err := vfs.ReadFile(o.fs, path)
	return data, errors.Wrapf(err, "read %s", path)
}

// load decodes the operator model in path. Warnings of a lenient
// decode are logged.
func (o *Options) load(ctx context.Context, path string) (*codec.Document, error) {
	data, err := o.read(path)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("decoding %s (strict=%t)", path, o.strict)
	doc, err := codec.NewDecoder(operator.Registry(), codec.Strict(o.strict)).Decode(ctx, bytes.NewReader(data))
	if doc != nil {
		for _, w := range doc.Warnings {
			glog.Warningf("%s: %s", path, w)
		}
	}
	return doc, err
}

func (o *Options) operatorModel(ctx context.Context, path string) (*operator.OperatorModel, *codec.Document, error) {
	doc, err := o.load(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	om, ok := operator.AsOperatorModel(doc.Root)
	if !ok {
		return nil, nil, errors.Errorf("%s: not an operator model", path)
	}
	return om, doc, nil
}
