package inject

import (
	"bytes"
	"os"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
)

// WriteIfChanged overwrites path with updated when it differs byte-for-byte
// from original, and reports whether a write happened. Identical content
// leaves the file, including its modification time, untouched.
//
// The write happens in place with no backup or atomic rename, so a crash
// mid-write can leave a truncated file.
func WriteIfChanged(path string, original, updated []byte) (bool, error) {
	if bytes.Equal(original, updated) {
		return false, nil
	}

	// The permission argument only applies to new files; an existing file
	// keeps its mode.
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return false, errors.WrapError(err, errors.CategoryFileSystem, "failed to write layout file").
			Rerunnable().
			WithContext("path", path).
			Build()
	}
	return true, nil
}
