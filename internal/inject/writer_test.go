package inject

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

func TestWriteIfChanged_IdenticalContentLeavesFileUntouched(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "Same.fxml", borderPaneLayout)
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	written, err := WriteIfChanged(path, []byte(borderPaneLayout), []byte(borderPaneLayout))
	require.NoError(t, err)
	assert.False(t, written)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "mtime must not change")
}

func TestWriteIfChanged_WritesAndKeepsMode(t *testing.T) {
	path := writeLayout(t, t.TempDir(), "Edit.fxml", "old")
	require.NoError(t, os.Chmod(path, 0o600))

	written, err := WriteIfChanged(path, []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "new", readLayout(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteIfChanged_ErrorIsClassified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "x.fxml")

	_, err := WriteIfChanged(path, []byte("a"), []byte("b"))
	require.Error(t, err)

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryFileSystem, ce.Category())
	got, _ := ce.Context().GetString("path")
	assert.Equal(t, path, got)
}
