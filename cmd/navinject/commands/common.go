package commands

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navinject/internal/config"
	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/gitguard"
	"git.home.luguber.info/inful/navinject/internal/inject"
	"git.home.luguber.info/inful/navinject/internal/logfields"
	"git.home.luguber.info/inful/navinject/internal/metrics"
	"git.home.luguber.info/inful/navinject/internal/report"
)

// Global carries state shared by all subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"navinject.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Add the navigation bar to all layout files (default)"`
	Check CheckCmd `cmd:"" help:"Report layout files that still need the navigation bar; exit 1 if any"`
	Watch WatchCmd `cmd:"" help:"Run once, then re-apply edits whenever layout files change"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

var logLevel = new(slog.LevelVar)

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logLevel.Set(slog.LevelInfo)
	if c.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return nil
}

// TargetFlags select the layout tree and the safety checks of a run.
type TargetFlags struct {
	Root         string `short:"r" env:"NAVINJECT_ROOT" help:"Layout directory to process (default from config: src/main/resources/FXML)"`
	RequireClean bool   `help:"Leave files with uncommitted git changes untouched"`
	Strict       bool   `help:"Exit with status 2 when any layout file could not be processed"`
}

// loadConfig reads the configuration file and applies its log level unless
// --verbose already raised it.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if !root.Verbose {
		logLevel.Set(cfg.LogLevel.SlogLevel())
	}
	return cfg, nil
}

func (g *Global) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

func (g *Global) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

// newInjector wires an injector for cfg and the target flags. The printer is
// returned so callers can surface its write errors.
func newInjector(g *Global, cfg *config.Config, target TargetFlags, dryRun bool) (*inject.Injector, *report.Printer, error) {
	root := cfg.Root
	if target.Root != "" {
		root = target.Root
	}

	printer := report.NewPrinter(g.stdout())
	in := inject.NewInjector(inject.Config{
		Root:       root,
		Extension:  cfg.Extension,
		SkipFiles:  cfg.SkipFiles,
		Stylesheet: cfg.Stylesheet,
		DryRun:     dryRun,
	}).WithReporter(printer).WithLogger(g.logger())

	if !target.RequireClean {
		return in, printer, nil
	}

	guard, err := gitguard.Open(root)
	switch {
	case stderrors.Is(err, gitguard.ErrNotRepository):
		g.logger().Warn("Layout directory is not inside a git repository; --require-clean has no effect", logfields.Root(root))
	case err != nil:
		return nil, nil, err
	default:
		g.logger().Debug("Refusing edits to files with uncommitted changes", "worktree", guard.Root())
		in.WithGuard(guard)
	}
	return in, printer, nil
}

// metricsSink returns the recorder for a run and a function that flushes it.
func metricsSink(path string) (metrics.Recorder, func() error) {
	if path == "" {
		return metrics.NoopRecorder{}, func() error { return nil }
	}
	rec := metrics.NewPrometheusRecorder(nil)
	return rec, func() error { return rec.WriteTextfile(path) }
}

// resultError turns per-file failures into exit status 2 when strict is set.
// Otherwise failures are only reported and the run succeeds.
func resultError(result *inject.RunResult, strict bool) error {
	if strict && result != nil && result.HasErrors() {
		return errors.ExitCode(2)
	}
	return nil
}
