// Package inject walks a tree of FXML layouts and applies the navigation bar
// edits from package navbar to each file, writing back only files whose text
// actually changed.
//
// Files are processed one at a time. A failure in one file is recorded in the
// RunResult and the batch moves on to the next file.
package inject
