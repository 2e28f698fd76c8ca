package navbar

// NavOutcome describes what happened to the navigation block.
type NavOutcome int

const (
	// NotAttempted means the container is unsupported.
	NotAttempted NavOutcome = iota
	// Inserted means the block was added.
	Inserted
	// AlreadyPresent means a navigation marker was found and nothing was added.
	AlreadyPresent
	// AnchorNotFound means the container was recognised but its opening tag
	// could not be located (for example an unterminated tag).
	AnchorNotFound
)

func (o NavOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already-present"
	case AnchorNotFound:
		return "anchor-not-found"
	default:
		return "not-attempted"
	}
}

// Options parameterises Transform.
type Options struct {
	// Stylesheet is the reference appended to the stylesheets attribute.
	Stylesheet string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Stylesheet: DefaultStylesheet}
}

// Result records the edits Transform made.
type Result struct {
	StylesheetAdded bool
	ImportsAdded    []string
	Container       ContainerKind
	Navigation      NavOutcome
	Changed         bool
}

// Transform applies the stylesheet, import and navigation edits in order and
// returns the edited text. It never fails: a missing pattern only shows up in
// the Result.
func Transform(content string, opts Options) (string, Result) {
	if opts.Stylesheet == "" {
		opts.Stylesheet = DefaultStylesheet
	}

	var res Result
	out := content

	out, res.StylesheetAdded = AddStylesheet(out, opts.Stylesheet)
	out, res.ImportsAdded = AddImports(out)
	out, res.Container, res.Navigation = InsertNavigation(out)

	res.Changed = out != content
	return out, res
}

// InsertNavigation adds the navigation block for the text's container kind
// unless a navigation bar is already present.
func InsertNavigation(content string) (string, ContainerKind, NavOutcome) {
	kind := Classify(content)
	if kind == Unsupported {
		return content, kind, NotAttempted
	}
	if HasNavigationBar(content) {
		return content, kind, AlreadyPresent
	}

	var (
		out string
		ok  bool
	)
	switch kind {
	case BorderPane:
		out, ok = insertIntoBorderPane(content)
	case TopLevelList:
		out, ok = insertIntoList(content)
	}
	if !ok {
		return content, kind, AnchorNotFound
	}
	return out, kind, Inserted
}
