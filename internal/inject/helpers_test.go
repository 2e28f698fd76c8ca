package inject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const borderPaneLayout = `<?xml version="1.0" encoding="UTF-8"?>

<?import javafx.scene.control.Label?>
<?import javafx.scene.layout.BorderPane?>

<BorderPane xmlns="http://javafx.com/javafx/21" xmlns:fx="http://javafx.com/fxml/1" stylesheets="@../../css/base.css">
    <center>
        <Label text="Dashboard" />
    </center>
</BorderPane>
`

const unsupportedLayout = `<?xml version="1.0" encoding="UTF-8"?>

<?import javafx.geometry.Insets?>
<?import javafx.scene.layout.AnchorPane?>
<?import javafx.scene.layout.Region?>

<AnchorPane xmlns="http://javafx.com/javafx/21" stylesheets="@../../css/navigation.css" />
`

// writeLayout creates dir/name with content and returns its path.
func writeLayout(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLayout(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// recordingReporter collects the events it receives.
type recordingReporter struct {
	started  []string
	skipped  []string
	finished []FileReport
	missing  string
	result   *RunResult
}

func (r *recordingReporter) RunStarted(string, bool)       {}
func (r *recordingReporter) RootMissing(root string)       { r.missing = root }
func (r *recordingReporter) FileSkipped(rep FileReport)    { r.skipped = append(r.skipped, rep.Name) }
func (r *recordingReporter) FileStarted(path string)       { r.started = append(r.started, path) }
func (r *recordingReporter) FileFinished(rep FileReport)   { r.finished = append(r.finished, rep) }
func (r *recordingReporter) RunFinished(result *RunResult) { r.result = result }

type staticGuard struct {
	dirty     map[string]bool
	err       error
	refreshes *int
}

func (g staticGuard) Refresh() error {
	if g.refreshes != nil {
		*g.refreshes++
	}
	return g.err
}

func (g staticGuard) IsClean(path string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return !g.dirty[filepath.Base(path)], nil
}
