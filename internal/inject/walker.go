package inject

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// DefaultExtension is the layout file extension.
const DefaultExtension = ".fxml"

// Walker enumerates layout files below a root directory.
type Walker struct {
	root string
	ext  string
}

// NewWalker creates a walker for files ending in ext below root.
func NewWalker(root, ext string) *Walker {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Walker{root: root, ext: ext}
}

// Files lazily yields layout file paths in filesystem walk order. Entries that
// cannot be read are yielded with their error; the walk continues past them.
// Hidden directories below the root are not descended.
func (w *Walker) Files() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(path, err) {
					return fs.SkipAll
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != w.root && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}

			if filepath.Ext(d.Name()) != w.ext {
				return nil
			}
			if !yield(path, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
