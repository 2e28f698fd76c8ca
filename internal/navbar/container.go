package navbar

import (
	"regexp"
	"strings"
)

// ContainerKind identifies the root layout container of an FXML file.
type ContainerKind int

const (
	// Unsupported layouts receive no navigation bar.
	Unsupported ContainerKind = iota
	// BorderPane layouts get the bar wrapped in a <top> region.
	BorderPane
	// TopLevelList is a root VBox carrying the FXML namespace declaration.
	TopLevelList
)

// String returns the container name used in logs and reports.
func (k ContainerKind) String() string {
	switch k {
	case BorderPane:
		return "BorderPane"
	case TopLevelList:
		return "VBox"
	default:
		return "unsupported"
	}
}

var (
	borderPaneOpen = regexp.MustCompile(`<BorderPane\b[^>]*>`)
	listOpen       = regexp.MustCompile(`<VBox\b[^>]*xmlns[^>]*>`)
	lineRest       = regexp.MustCompile(`^[ \t]*\r?\n`)
	childrenNext   = regexp.MustCompile(`^\s*<children>[ \t]*(?:\r?\n)?`)
)

// Classify returns the container kind. BorderPane wins whenever the tag
// appears anywhere in the text; otherwise a VBox opening tag that declares a
// namespace marks a top-level list container.
func Classify(content string) ContainerKind {
	if strings.Contains(content, "<BorderPane") {
		return BorderPane
	}
	if listOpen.MatchString(content) {
		return TopLevelList
	}
	return Unsupported
}

// insertIntoBorderPane places the <top> navigation region on the line after
// the BorderPane opening tag.
func insertIntoBorderPane(content string) (string, bool) {
	loc := openingTag(borderPaneOpen, content)
	if loc == nil {
		return content, false
	}
	nl := lineEnding(content)
	return spliceAfterTag(content, loc[1], withLineEnding(Block(BorderPane), nl), nl), true
}

// insertIntoList places the simplified navigation bar into the VBox children
// list, adding a <children> wrapper when the container has none right after
// its opening tag.
func insertIntoList(content string) (string, bool) {
	loc := openingTag(listOpen, content)
	if loc == nil {
		return content, false
	}
	nl := lineEnding(content)
	block := withLineEnding(Block(TopLevelList), nl)

	if m := childrenNext.FindStringIndex(content[loc[1]:]); m != nil {
		return spliceAfterTag(content, loc[1]+m[1]-trailingNewline(content[loc[1]:loc[1]+m[1]]), block, nl), true
	}

	wrapped := withLineEnding(childrenOpen, nl) + block + withLineEnding(childrenClose, nl)
	return spliceAfterTag(content, loc[1], wrapped, nl), true
}

// openingTag returns the location of the first match of re that opens an
// element. Self-closed tags have no content to insert into and are passed over.
func openingTag(re *regexp.Regexp, content string) []int {
	for _, loc := range re.FindAllStringIndex(content, -1) {
		if !strings.HasSuffix(content[loc[0]:loc[1]], "/>") {
			return loc
		}
	}
	return nil
}

// spliceAfterTag inserts block after the line holding the tag that ends at
// tagEnd, surrounded by blank lines. A tag followed by more markup on the same
// line gets the block on a fresh line.
func spliceAfterTag(content string, tagEnd int, block, nl string) string {
	rest := content[tagEnd:]
	if m := lineRest.FindStringIndex(rest); m != nil {
		pos := tagEnd + m[1]
		return content[:pos] + nl + block + nl + content[pos:]
	}
	return content[:tagEnd] + nl + nl + block + nl + content[tagEnd:]
}

// trailingNewline returns the length of the line terminator s ends with.
func trailingNewline(s string) int {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return 2
	case strings.HasSuffix(s, "\n"):
		return 1
	default:
		return 0
	}
}
