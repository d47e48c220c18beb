package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcsgraph/metrics"
)

// watchOptions holds the flags of the watch command.
type watchOptions struct {
	metricsAddr string
	debounce    time.Duration
}

func newWatchCmd(opts *options) *cobra.Command {
	wo := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch A.yaml B.yaml",
		Short: "Re-compare two graph files whenever either changes",
		Long: `Run compare once, then again every time A or B is written, created or
renamed into place. Invalid intermediate files are logged and skipped.

With --metrics-addr the engine metrics (mcs_walks_total,
mcs_comparisons_total, mcs_walk_size) are served on /metrics.`,
		Example: `  mcs watch a.yaml b.yaml --metrics-addr :9090`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return watch(cmd.Context(), opts, wo, log, args[0], args[1], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&wo.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	cmd.Flags().DurationVar(&wo.debounce, "debounce", 200*time.Millisecond, "quiet period after a change before comparing")

	return cmd
}

// watch compares pathA and pathB now and after every change until ctx is done.
func watch(ctx context.Context, opts *options, wo *watchOptions, log *zap.Logger, pathA, pathB string, out io.Writer) error {
	reg := prometheus.NewRegistry()
	collector, err := metrics.New(reg)
	if err != nil {
		return err
	}
	if wo.metricsAddr != "" {
		stop, err := serveMetrics(reg, wo.metricsAddr, log, out)
		if err != nil {
			return err
		}
		defer stop()
	}

	targets := make(map[string]bool, 2)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	for _, p := range []string{pathA, pathB} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		targets[abs] = true
		// Editors often replace files, so watch the directory and filter by name.
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	run := func() {
		if err := compare(ctx, opts, log, collector, pathA, pathB, out); err != nil && ctx.Err() == nil {
			log.Error("compare failed", zap.Error(err))
		}
	}
	run()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				log.Debug("change", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
				fire = time.After(wo.debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			run()
		}
	}
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(reg *prometheus.Registry, addr string, log *zap.Logger, out io.Writer) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	fmt.Fprintf(out, "metrics: http://%s/metrics\n", ln.Addr())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
