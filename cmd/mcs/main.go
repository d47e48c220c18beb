// Command mcs compares labeled graphs stored as YAML files.
//
//	mcs compare a.yaml b.yaml --tolerance 0.8 --format json
//	mcs watch a.yaml b.yaml --metrics-addr :9090
//
// compare prints one result and exits; watch re-runs the comparison whenever
// either file changes and can expose engine metrics for Prometheus.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
