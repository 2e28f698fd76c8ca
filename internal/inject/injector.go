package inject

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/logfields"
	"git.home.luguber.info/inful/navinject/internal/metrics"
	"git.home.luguber.info/inful/navinject/internal/navbar"
)

// Config holds the parameters of an injection run.
type Config struct {
	// Root is the directory searched recursively for layout files.
	Root string
	// Extension selects layout files (default ".fxml").
	Extension string
	// SkipFiles lists file names that are never touched.
	SkipFiles []string
	// Stylesheet is the stylesheet reference added to each layout.
	Stylesheet string
	// DryRun reports edits without writing them.
	DryRun bool
}

// Reporter receives progress events for user-facing output.
type Reporter interface {
	RunStarted(root string, dryRun bool)
	RootMissing(root string)
	FileSkipped(report FileReport)
	FileStarted(path string)
	FileFinished(report FileReport)
	RunFinished(result *RunResult)
}

// Guard decides whether a file may be rewritten. Refresh reloads whatever
// state IsClean answers from.
type Guard interface {
	IsClean(path string) (bool, error)
	Refresh() error
}

// Injector applies the navigation edits to layout files.
type Injector struct {
	cfg      Config
	skip     map[string]struct{}
	opts     navbar.Options
	reporter Reporter
	recorder metrics.Recorder
	guard    Guard
	logger   *slog.Logger
}

// NewInjector creates an injector for the given configuration.
func NewInjector(cfg Config) *Injector {
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}

	skip := make(map[string]struct{}, len(cfg.SkipFiles))
	for _, name := range cfg.SkipFiles {
		skip[name] = struct{}{}
	}

	opts := navbar.DefaultOptions()
	if cfg.Stylesheet != "" {
		opts.Stylesheet = cfg.Stylesheet
	}

	return &Injector{
		cfg:      cfg,
		skip:     skip,
		opts:     opts,
		reporter: NopReporter{},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithReporter sets the progress reporter.
func (in *Injector) WithReporter(r Reporter) *Injector {
	if r != nil {
		in.reporter = r
	}
	return in
}

// WithRecorder sets the metrics recorder.
func (in *Injector) WithRecorder(r metrics.Recorder) *Injector {
	if r != nil {
		in.recorder = r
	}
	return in
}

// WithGuard refuses writes to files the guard reports as not clean.
func (in *Injector) WithGuard(g Guard) *Injector {
	in.guard = g
	return in
}

// WithLogger sets the structured logger.
func (in *Injector) WithLogger(l *slog.Logger) *Injector {
	if l != nil {
		in.logger = l
	}
	return in
}

// Config returns the injector configuration.
func (in *Injector) Config() Config {
	return in.cfg
}

// Skipped reports whether a file name is on the skip list.
func (in *Injector) Skipped(name string) bool {
	_, ok := in.skip[name]
	return ok
}

// Run processes every layout file below the configured root. A missing root
// is reported and yields an empty result, not an error. Cancelling ctx stops
// the run between files.
func (in *Injector) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{
		RunID:  uuid.NewString(),
		Root:   in.cfg.Root,
		DryRun: in.cfg.DryRun,
	}
	logger := in.logger.With(logfields.RunID(result.RunID))

	info, err := os.Stat(in.cfg.Root)
	switch {
	case os.IsNotExist(err):
		result.RootMissing = true
		logger.Warn("Layout directory not found", logfields.Root(in.cfg.Root))
		in.reporter.RootMissing(in.cfg.Root)
		in.recorder.IncRun(metrics.RunNoRoot)
		return result, nil
	case err != nil:
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to access layout directory").
			WithContext("path", in.cfg.Root).
			Build()
	case !info.IsDir():
		return nil, errors.ValidationError("layout root is not a directory").
			WithContext("path", in.cfg.Root).
			Build()
	}

	in.refreshGuard(logger)

	logger.Info("Starting navigation bar injection", logfields.Root(in.cfg.Root), slog.Bool("dry_run", in.cfg.DryRun))
	in.reporter.RunStarted(in.cfg.Root, in.cfg.DryRun)

	for path, walkErr := range NewWalker(in.cfg.Root, in.cfg.Extension).Files() {
		if ctx.Err() != nil {
			break
		}
		if walkErr != nil {
			report := FileReport{
				Path:    path,
				Name:    filepath.Base(path),
				Outcome: OutcomeFailed,
				Err: errors.WrapError(walkErr, errors.CategoryFileSystem, "failed to read directory entry").
					WithContext("path", path).
					Build(),
			}
			logger.Error("Walk error", logfields.Path(path), logfields.Error(walkErr))
			in.finish(report)
			result.Files = append(result.Files, report)
			continue
		}
		result.Files = append(result.Files, in.processFile(path, logger))
	}

	result.Duration = time.Since(start)
	in.recorder.ObserveRunDuration(result.Duration)
	in.recorder.IncRun(runStatus(result))

	logger.Info("Navigation bar injection complete",
		slog.Int("files", len(result.Files)),
		slog.Int("updated", result.Count(OutcomeUpdated)),
		slog.Int("failed", result.Count(OutcomeFailed)),
		logfields.DurationMS(float64(result.Duration.Microseconds())/1000))
	in.reporter.RunFinished(result)

	if err := ctx.Err(); err != nil {
		return result, errors.WrapError(err, errors.CategoryRuntime, "run cancelled").Warning().Build()
	}
	return result, nil
}

// ProcessFile runs the read, transform and write pipeline on one file. The
// guard state is refreshed first since the file may have changed since the
// last run.
func (in *Injector) ProcessFile(path string) FileReport {
	in.refreshGuard(in.logger)
	return in.processFile(path, in.logger)
}

func (in *Injector) refreshGuard(logger *slog.Logger) {
	if in.guard == nil {
		return
	}
	if err := in.guard.Refresh(); err != nil {
		logger.Warn("Could not read git status, continuing", logfields.Error(err))
	}
}

func (in *Injector) processFile(path string, logger *slog.Logger) FileReport {
	report := FileReport{
		Path:   path,
		Name:   filepath.Base(path),
		DryRun: in.cfg.DryRun,
	}
	logger = logger.With(logfields.File(report.Name))

	if in.Skipped(report.Name) {
		report.Outcome = OutcomeSkipped
		logger.Debug("Skipping file on skip list")
		in.recorder.IncFileOutcome(report.Outcome.String())
		in.reporter.FileSkipped(report)
		return report
	}

	in.reporter.FileStarted(path)

	if in.guard != nil {
		clean, err := in.guard.IsClean(path)
		if err != nil {
			logger.Warn("Could not determine git status, continuing", logfields.Error(err))
		} else if !clean {
			report.Outcome = OutcomeDirty
			logger.Info("Leaving file with uncommitted changes untouched")
			in.finish(report)
			return report
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		report.Outcome = OutcomeFailed
		report.Err = errors.WrapError(err, errors.CategoryFileSystem, "failed to read layout file").
			Rerunnable().
			WithContext("path", path).
			Build()
		logger.Error("Failed to read layout file", logfields.Error(err))
		in.finish(report)
		return report
	}

	doc, err := decodeLayout(raw)
	if err != nil {
		report.Outcome = OutcomeFailed
		report.Err = err
		logger.Error("Failed to decode layout file", logfields.Error(err))
		in.finish(report)
		return report
	}

	updated, res := navbar.Transform(doc.text, in.opts)
	report.Result = res
	in.recorder.IncNavigation(res.Container.String(), res.Navigation.String())

	logger.Debug("Transformed layout",
		logfields.Container(res.Container.String()),
		logfields.Navigation(res.Navigation.String()),
		logfields.ImportsAdded(len(res.ImportsAdded)),
		slog.Bool("stylesheet_added", res.StylesheetAdded))

	if !res.Changed {
		report.Outcome = OutcomeUnchanged
		in.finish(report)
		return report
	}

	if in.cfg.DryRun {
		report.Outcome = OutcomeUpdated
		in.finish(report)
		return report
	}

	out, err := doc.encode(updated)
	if err == nil {
		_, err = WriteIfChanged(path, raw, out)
	}
	if err != nil {
		report.Outcome = OutcomeFailed
		report.Err = err
		logger.Error("Failed to write layout file", logfields.Error(err))
		in.finish(report)
		return report
	}

	report.Outcome = OutcomeUpdated
	logger.Info("Updated layout file", logfields.Path(path))
	in.finish(report)
	return report
}

func (in *Injector) finish(report FileReport) {
	in.recorder.IncFileOutcome(report.Outcome.String())
	in.reporter.FileFinished(report)
}

func runStatus(result *RunResult) metrics.RunStatus {
	switch {
	case result.HasErrors():
		return metrics.RunFailed
	case result.HasChanges():
		return metrics.RunChanged
	default:
		return metrics.RunSuccess
	}
}

// NopReporter discards all progress events.
type NopReporter struct{}

func (NopReporter) RunStarted(string, bool) {}
func (NopReporter) RootMissing(string)      {}
func (NopReporter) FileSkipped(FileReport)  {}
func (NopReporter) FileStarted(string)      {}
func (NopReporter) FileFinished(FileReport) {}
func (NopReporter) RunFinished(*RunResult)  {}
