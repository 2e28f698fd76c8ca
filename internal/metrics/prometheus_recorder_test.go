package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncFileOutcome("updated")
	pr.IncFileOutcome("updated")
	pr.IncFileOutcome("skipped")
	pr.IncNavigation("BorderPane", "inserted")
	pr.ObserveRunDuration(120 * time.Millisecond)
	pr.IncRun(RunChanged)

	assert.Equal(t, 2.0, testutil.ToFloat64(pr.fileOutcomes.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.fileOutcomes.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.navigation.WithLabelValues("BorderPane", "inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.runs.WithLabelValues("changed")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncFileOutcome("unchanged")
	pr.IncRun(RunSuccess)

	path := filepath.Join(t.TempDir(), "navinject.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `navinject_files_total{outcome="unchanged"} 1`), text)
	assert.True(t, strings.Contains(text, `navinject_runs_total{status="success"} 1`), text)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncFileOutcome("updated")
		pr.IncNavigation("VBox", "inserted")
		pr.ObserveRunDuration(time.Second)
		pr.IncRun(RunFailed)
		assert.NoError(t, pr.WriteTextfile("unused"))
	})
}

func TestNewPrometheusRecorder_Registration(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg)

	assert.Panics(t, func() { NewPrometheusRecorder(reg) }, "second registration on one registry")
	assert.NotPanics(t, func() { NewPrometheusRecorder(prom.NewRegistry()) })
	assert.NotPanics(t, func() { NewPrometheusRecorder(nil) })
}
