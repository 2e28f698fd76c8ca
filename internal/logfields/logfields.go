package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyRoot       = "root"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyOutcome    = "outcome"
	KeyContainer  = "container"
	KeyNavigation = "navigation"
	KeyImports    = "imports_added"
	KeyDurationMS = "duration_ms"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Root(p string) slog.Attr           { return slog.String(KeyRoot, p) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func File(name string) slog.Attr        { return slog.String(KeyFile, name) }
func Outcome(o string) slog.Attr        { return slog.String(KeyOutcome, o) }
func Container(kind string) slog.Attr   { return slog.String(KeyContainer, kind) }
func Navigation(state string) slog.Attr { return slog.String(KeyNavigation, state) }
func ImportsAdded(n int) slog.Attr      { return slog.Int(KeyImports, n) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Event(op string) slog.Attr         { return slog.String(KeyEvent, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
