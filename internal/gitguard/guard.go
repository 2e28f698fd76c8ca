// Package gitguard refuses edits to layout files that have uncommitted
// changes, so the enclosing git repository stays a usable undo path.
package gitguard

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

// ErrNotRepository is returned by Open when no repository encloses the path.
var ErrNotRepository = stderrors.New("not inside a git repository")

// Guard reports whether files in a git worktree are clean. The worktree
// status is read once and cached until Refresh.
type Guard struct {
	worktree *git.Worktree
	root     string
	status   git.Status
}

// Open finds the repository enclosing path, searching parent directories.
func Open(path string) (*Guard, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve path").
			WithContext("path", path).
			Build()
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if stderrors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNotRepository
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "failed to open git repository").
			WithContext("path", abs).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryGit, "repository has no worktree").
			WithContext("path", abs).
			Build()
	}

	return &Guard{worktree: wt, root: resolve(wt.Filesystem.Root())}, nil
}

// Root returns the worktree root directory.
func (g *Guard) Root() string {
	return g.root
}

// Refresh re-reads the worktree status.
func (g *Guard) Refresh() error {
	status, err := g.worktree.Status()
	if err != nil {
		return errors.WrapError(err, errors.CategoryGit, "failed to read worktree status").
			WithContext("path", g.root).
			Build()
	}
	g.status = status
	return nil
}

// IsClean reports whether path is tracked and has neither staged nor
// unstaged changes as of the last Refresh. Untracked files are not clean: git
// could not restore them.
func (g *Guard) IsClean(path string) (bool, error) {
	rel, err := g.relative(path)
	if err != nil {
		return false, err
	}

	if g.status == nil {
		if err := g.Refresh(); err != nil {
			return false, err
		}
	}

	// Status only lists changed entries; Status.File would invent an
	// untracked entry for clean files.
	fs, ok := g.status[rel]
	if !ok {
		return true, nil
	}
	return fs.Staging == git.Unmodified && fs.Worktree == git.Unmodified, nil
}

func (g *Guard) relative(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve path").
			WithContext("path", path).
			Build()
	}

	rel, err := filepath.Rel(g.root, resolve(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.GitError("file is outside the git worktree").
			WithContext("path", path).
			Build()
	}
	return filepath.ToSlash(rel), nil
}

// resolve follows symlinks so temp directories compare equal on all platforms.
func resolve(path string) string {
	if r, err := filepath.EvalSymlinks(path); err == nil {
		return r
	}
	return path
}
