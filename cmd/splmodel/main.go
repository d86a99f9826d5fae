package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andaru/splmodel/cmd/splmodel/app"
	"github.com/spf13/pflag"
)

func main() {
	// glog flags are set through pflag; mark the go flag set parsed
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	_ = flag.CommandLine.Parse(nil)
	cmd := app.New()
	cmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
