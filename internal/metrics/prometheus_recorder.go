package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	fileOutcomes *prom.CounterVec
	navigation   *prom.CounterVec
	runDuration  prom.Histogram
	runs         *prom.CounterVec
	lastRun      prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg, or on
// a fresh registry when reg is nil. Registering twice on the same registry
// panics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.fileOutcomes = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "navinject",
		Name:      "files_total",
		Help:      "Layout files by processing outcome",
	}, []string{"outcome"})
	pr.navigation = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "navinject",
		Name:      "navigation_total",
		Help:      "Navigation bar results by container kind and state",
	}, []string{"container", "state"})
	pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "navinject",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full pass over the layout tree",
		Buckets:   prom.DefBuckets,
	})
	pr.runs = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "navinject",
		Name:      "runs_total",
		Help:      "Runs by final status",
	}, []string{"status"})
	pr.lastRun = prom.NewGauge(prom.GaugeOpts{
		Namespace: "navinject",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished",
	})
	reg.MustRegister(pr.fileOutcomes, pr.navigation, pr.runDuration, pr.runs, pr.lastRun)
	return pr
}

func (p *PrometheusRecorder) IncFileOutcome(outcome string) {
	if p == nil || p.fileOutcomes == nil {
		return
	}
	p.fileOutcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncNavigation(container, state string) {
	if p == nil || p.navigation == nil {
		return
	}
	p.navigation.WithLabelValues(container, state).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRun(status RunStatus) {
	if p == nil || p.runs == nil {
		return
	}
	p.runs.WithLabelValues(string(status)).Inc()
	p.lastRun.SetToCurrentTime()
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format. The file is replaced atomically by the client library.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || p.reg == nil {
		return nil
	}
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics file").
			WithContext("path", path).
			Build()
	}
	return nil
}
