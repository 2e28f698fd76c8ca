// Package report prints the human-readable progress of an injection run.
//
// Lines follow a fixed glyph vocabulary (📄 processing, ⊘ skipped, ✓ done,
// ✗ anchor missing, ⚠ unsupported, ✅ updated, → unchanged, ❌ error) and are
// styled with lipgloss when the output is a terminal. Structured logs go to
// slog on stderr; this package only writes to the given writer.
package report
