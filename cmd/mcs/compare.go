package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcsgraph/convert"
	"github.com/katalvlaran/mcsgraph/display"
	"github.com/katalvlaran/mcsgraph/graphfile"
	"github.com/katalvlaran/mcsgraph/mcs"
)

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A.yaml B.yaml",
		Short: "Compare two graph files once",
		Example: `  mcs compare serotonin.yaml dopamine.yaml
  mcs compare a.yaml b.yaml --tolerance 0.5 --workers 4 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return compare(cmd.Context(), opts, log, mcs.NopObserver{}, args[0], args[1], cmd.OutOrStdout())
		},
	}
}

// compare loads both files, runs the engine and renders the result to out.
func compare(ctx context.Context, opts *options, log *zap.Logger, obs mcs.Observer, pathA, pathB string, out io.Writer) error {
	a, err := graphfile.LoadGraph(pathA)
	if err != nil {
		return err
	}
	b, err := graphfile.LoadGraph(pathB)
	if err != nil {
		return err
	}

	cs, err := mcs.ConstructMCS(a, b,
		mcs.WithContext(ctx),
		mcs.WithTolerance(opts.tolerance),
		mcs.WithWorkers(opts.workers),
		mcs.WithLogger(log),
		mcs.WithObserver(obs),
	)
	if err != nil {
		return err
	}
	log.Info("compared",
		zap.String("graph_a", pathA),
		zap.String("graph_b", pathB),
		zap.Int("nodes", cs.NodeCount()),
		zap.Int("edges", cs.EdgeCount()),
	)

	return render(out, cs, opts)
}

func render(out io.Writer, cs *mcs.CommonSubgraph[graphfile.Label, graphfile.Label], opts *options) error {
	if opts.format == "text" {
		return renderText(out, cs, opts.averaged)
	}

	data, err := display.Project(cs, display.WithAveraged(opts.averaged))
	if err != nil && !errors.Is(err, display.ErrEmptyResult) {
		return err
	}
	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", errUnknownFormat, opts.format)
	}
}

func renderText(out io.Writer, cs *mcs.CommonSubgraph[graphfile.Label, graphfile.Label], averaged bool) error {
	components, err := convert.Components(cs, convert.SideA)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "graphs\t%d %q\t%d %q\n", cs.GraphA().ID(), cs.GraphA().Name(), cs.GraphB().ID(), cs.GraphB().Name())
	fmt.Fprintf(tw, "similarity\t%v\n", cs.Similarity(averaged))
	fmt.Fprintf(tw, "points\t%v\n", cs.PointsSum())
	fmt.Fprintf(tw, "components\t%d\n", components)
	for _, cn := range cs.Nodes() {
		fmt.Fprintf(tw, "node\t%s\t%s\t%s\n", cn.Node1.ID(), cn.Node2.ID(), cn.Node1.Label())
	}
	for _, ce := range cs.Edges() {
		fmt.Fprintf(tw, "edge\t%s\t%s\t%s\n", ce.Edge1.ID(), ce.Edge2.ID(), ce.Edge1.Label())
	}

	return tw.Flush()
}
