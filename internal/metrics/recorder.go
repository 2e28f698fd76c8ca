package metrics

import "time"

// RunStatus labels the overall result of a run.
type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunChanged RunStatus = "changed"
	RunFailed  RunStatus = "failed"
	RunNoRoot  RunStatus = "no_root"
)

// Recorder defines observability hooks for injection runs.
type Recorder interface {
	IncFileOutcome(outcome string)
	IncNavigation(container, state string)
	ObserveRunDuration(d time.Duration)
	IncRun(status RunStatus)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFileOutcome(string)            {}
func (NoopRecorder) IncNavigation(string, string)     {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRun(RunStatus)                 {}
