package commands

import (
	"context"
	"os/signal"
	"syscall"
)

// RunCmd implements the default 'run' command.
type RunCmd struct {
	TargetFlags

	DryRun      bool   `short:"n" help:"Show what would change without writing files"`
	MetricsFile string `type:"path" help:"Write run metrics in Prometheus textfile format to this path"`
}

// Run executes a single injection pass.
func (r *RunCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	in, printer, err := newInjector(g, cfg, r.TargetFlags, r.DryRun)
	if err != nil {
		return err
	}
	rec, flush := metricsSink(r.MetricsFile)
	in.WithRecorder(rec)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, runErr := in.Run(ctx)
	if err := flush(); err != nil {
		g.logger().Warn("Failed to write metrics file", "path", r.MetricsFile, "error", err)
	}
	if runErr != nil {
		return runErr
	}
	if err := printer.Err(); err != nil {
		g.logger().Debug("Failed to write progress output", "error", err)
	}
	return resultError(result, r.Strict)
}
