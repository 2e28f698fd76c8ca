package errors

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("bad flag").Build(), expected: 2},
		{name: "not found error", err: NotFoundError("missing").Build(), expected: 3},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "git error", err: GitError("status failed").Build(), expected: 8},
		{name: "filesystem error", err: NewError(CategoryFileSystem, "write failed").Build(), expected: 11},
		{name: "watch error", err: WatchError("watch failed").Build(), expected: 12},
		{name: "internal error", err: NewError(CategoryInternal, "boom").Build(), expected: 10},
		{name: "explicit exit code", err: ExitCode(1), expected: 1},
		{name: "wrapped exit code", err: fmt.Errorf("check: %w", ExitCode(2)), expected: 2},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	t.Run("non-verbose classified error includes path", func(t *testing.T) {
		adapter := NewCLIErrorAdapter(false, slog.Default())
		err := ConfigError("failed to parse config").WithContext("path", "navinject.yaml").Build()

		got := adapter.FormatError(err)
		if got != "Error: failed to parse config (navinject.yaml)" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("non-verbose internal error is masked", func(t *testing.T) {
		adapter := NewCLIErrorAdapter(false, slog.Default())
		got := adapter.FormatError(NewError(CategoryInternal, "nil pointer").Build())
		if !strings.Contains(got, "use -v for details") {
			t.Errorf("expected masked internal error, got %q", got)
		}
	})

	t.Run("verbose shows full chain", func(t *testing.T) {
		adapter := NewCLIErrorAdapter(true, slog.Default())
		err := WrapError(errors.New("disk full"), CategoryFileSystem, "write failed").Build()
		got := adapter.FormatError(err)
		if !strings.Contains(got, "disk full") {
			t.Errorf("expected cause in verbose output, got %q", got)
		}
	})

	t.Run("unclassified error", func(t *testing.T) {
		adapter := NewCLIErrorAdapter(false, slog.Default())
		if got := adapter.FormatError(errors.New("x")); got != "Error: x" {
			t.Errorf("unexpected message %q", got)
		}
	})
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var stderr, logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.stderr = &stderr

	var code int
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ConfigError("bad config").Build())
	if code != 7 {
		t.Errorf("expected exit 7, got %d", code)
	}
	if !strings.Contains(stderr.String(), "bad config") {
		t.Errorf("expected message on stderr, got %q", stderr.String())
	}
	if !strings.Contains(logs.String(), "category=config") {
		t.Errorf("expected fatal error to be logged, got %q", logs.String())
	}

	stderr.Reset()
	adapter.HandleError(ExitCode(1))
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no output for bare exit code, got %q", stderr.String())
	}
}
