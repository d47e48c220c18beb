package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errUnknownFormat = errors.New("unknown output format")

// options holds the flags shared by every subcommand.
type options struct {
	tolerance float64
	workers   int
	averaged  bool
	format    string
	verbose   bool
}

func (o *options) validate() error {
	switch o.format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("%w %q (want text, json or yaml)", errUnknownFormat, o.format)
	}
}

// logger returns a development logger with --verbose, a production one otherwise.
func (o *options) logger() (*zap.Logger, error) {
	if o.verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "mcs",
		Short: "Approximate maximum common subgraph of two labeled graphs",
		Long: `Compare two graphs defined in YAML and report their approximate maximum
common subgraph: the matched nodes and edges and a similarity in [0,1].

Nodes and edges match when their types are equal; weights scale how much
each element counts. See the graphfile package for the file format.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&opts.tolerance, "tolerance", 1, "least element similarity in (0,1] for a pair to match")
	pf.IntVar(&opts.workers, "workers", 1, "seed walks evaluated concurrently")
	pf.BoolVar(&opts.averaged, "averaged", true, "normalize by the mean of both graphs instead of the smaller one")
	pf.StringVarP(&opts.format, "format", "o", "text", "output format: text, json or yaml")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every comparison at debug level")

	root.AddCommand(newCompareCmd(opts), newWatchCmd(opts))

	return root
}
