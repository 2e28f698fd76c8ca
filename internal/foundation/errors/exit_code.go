package errors

import (
	stderrors "errors"
	"fmt"
)

// ExitCode is returned by commands whose output already explains the outcome
// and only need a non-zero process status (for example `check` with pending edits).
type ExitCode int

func (c ExitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

// AsExitCode extracts an ExitCode from the error chain.
func AsExitCode(err error) (int, bool) {
	var code ExitCode
	if stderrors.As(err, &code) {
		return int(code), true
	}
	return 0, false
}
