// Package navbar splices the standard navigation header bar (Back, Forward and
// Reload buttons) into FXML layout text.
//
// Every edit is plain pattern matching over the raw markup; the document is
// never parsed. Each edit checks whether its target state already holds before
// touching the text, so Transform is idempotent:
//
//	out, _ := navbar.Transform(in, opts)
//	again, _ := navbar.Transform(out, opts) // again == out
package navbar
