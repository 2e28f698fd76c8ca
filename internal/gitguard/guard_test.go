package gitguard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitLayouts(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	w, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		_, err = w.Add(filepath.ToSlash(name))
		require.NoError(t, err)
	}

	_, err = w.Commit("Add layouts", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com"},
	})
	require.NoError(t, err)
}

func TestGuard_IsClean(t *testing.T) {
	dir := t.TempDir()
	commitLayouts(t, dir, map[string]string{
		"FXML/Dashboard.fxml": "<BorderPane/>",
		"FXML/Reports.fxml":   "<VBox/>",
	})

	// Open from a subdirectory to exercise the .git search.
	g, err := Open(filepath.Join(dir, "FXML"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "FXML", "Reports.fxml"), []byte("<VBox>edited</VBox>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "FXML", "New.fxml"), []byte("<VBox/>"), 0o600))
	require.NoError(t, g.Refresh())

	tests := []struct {
		file  string
		clean bool
	}{
		{file: "Dashboard.fxml", clean: true},
		{file: "Reports.fxml", clean: false},
		{file: "New.fxml", clean: false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			clean, err := g.IsClean(filepath.Join(dir, "FXML", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.clean, clean)
		})
	}
}

func TestOpen_NotRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestGuard_PathOutsideWorktree(t *testing.T) {
	dir := t.TempDir()
	commitLayouts(t, dir, map[string]string{"A.fxml": "<VBox/>"})
	g, err := Open(dir)
	require.NoError(t, err)

	_, err = g.IsClean(filepath.Join(t.TempDir(), "Other.fxml"))
	assert.Error(t, err)
}

func TestGuard_StatusCachedUntilRefresh(t *testing.T) {
	dir := t.TempDir()
	commitLayouts(t, dir, map[string]string{"Main.fxml": "<VBox/>"})
	path := filepath.Join(dir, "Main.fxml")

	g, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, resolve(dir), g.Root(), "worktree root is the repository directory")

	clean, err := g.IsClean(path)
	require.NoError(t, err)
	require.True(t, clean)

	require.NoError(t, os.WriteFile(path, []byte("<VBox>edited</VBox>"), 0o600))

	clean, err = g.IsClean(path)
	require.NoError(t, err)
	assert.True(t, clean, "cached status is reused until refreshed")

	require.NoError(t, g.Refresh())
	clean, err = g.IsClean(path)
	require.NoError(t, err)
	assert.False(t, clean)
}
