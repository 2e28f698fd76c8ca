package inject

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/navinject/internal/navbar"
)

// FileOutcome is the final state of one layout file in a run.
type FileOutcome int

const (
	// OutcomeSkipped marks files on the skip list.
	OutcomeSkipped FileOutcome = iota
	// OutcomeUpdated marks files that were (or, in dry-run mode, would be) rewritten.
	OutcomeUpdated
	// OutcomeUnchanged marks files that needed no edit.
	OutcomeUnchanged
	// OutcomeDirty marks files left alone because they have uncommitted changes.
	OutcomeDirty
	// OutcomeFailed marks files that could not be read, decoded or written.
	OutcomeFailed
)

// String returns the outcome label used in logs and metrics.
func (o FileOutcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeDirty:
		return "dirty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcomes lists every FileOutcome in display order.
var Outcomes = []FileOutcome{OutcomeUpdated, OutcomeUnchanged, OutcomeSkipped, OutcomeDirty, OutcomeFailed}

// FileReport describes what happened to a single layout file.
type FileReport struct {
	Path    string
	Name    string
	Outcome FileOutcome
	Result  navbar.Result
	DryRun  bool
	Err     error
}

// RunResult contains the reports of one pass over the layout tree.
type RunResult struct {
	RunID       string
	Root        string
	RootMissing bool
	DryRun      bool
	Files       []FileReport
	Duration    time.Duration
}

// Count returns the number of files with the given outcome.
func (r *RunResult) Count(outcome FileOutcome) int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == outcome {
			n++
		}
	}
	return n
}

// Unsupported returns the number of processed files whose container got no
// navigation bar because its kind is not supported.
func (r *RunResult) Unsupported() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome != OutcomeSkipped && f.Outcome != OutcomeFailed && f.Outcome != OutcomeDirty &&
			f.Result.Navigation == navbar.NotAttempted {
			n++
		}
	}
	return n
}

// HasErrors returns true if any file failed.
func (r *RunResult) HasErrors() bool {
	return r.Count(OutcomeFailed) > 0
}

// HasChanges returns true if any file was, or would be, rewritten.
func (r *RunResult) HasChanges() bool {
	return r.Count(OutcomeUpdated) > 0
}

// Errors returns the errors of all failed files.
func (r *RunResult) Errors() []error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Summary returns a human-readable summary of the run.
func (r *RunResult) Summary() string {
	var b strings.Builder

	if r.RootMissing {
		b.WriteString(fmt.Sprintf("Directory not found: %s\n", r.Root))
		return b.String()
	}

	updatedLabel := "Files updated"
	if r.DryRun {
		updatedLabel = "Files to update"
	}

	b.WriteString(fmt.Sprintf("Files processed: %d\n", len(r.Files)))
	b.WriteString(fmt.Sprintf("%s: %d\n", updatedLabel, r.Count(OutcomeUpdated)))
	b.WriteString(fmt.Sprintf("Files unchanged: %d\n", r.Count(OutcomeUnchanged)))
	b.WriteString(fmt.Sprintf("Files skipped: %d\n", r.Count(OutcomeSkipped)))
	b.WriteString(fmt.Sprintf("Unsupported layouts: %d\n", r.Unsupported()))
	if n := r.Count(OutcomeDirty); n > 0 {
		b.WriteString(fmt.Sprintf("Files with uncommitted changes: %d\n", n))
	}

	if errs := r.Errors(); len(errs) > 0 {
		b.WriteString(fmt.Sprintf("\nErrors encountered: %d\n", len(errs)))
		for _, f := range r.Files {
			if f.Err != nil {
				b.WriteString(fmt.Sprintf("  • %s: %v\n", f.Name, f.Err))
			}
		}
	}

	return b.String()
}
