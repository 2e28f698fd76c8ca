package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/navinject/internal/inject"
	"git.home.luguber.info/inful/navinject/internal/navbar"
)

// Printer implements inject.Reporter by writing status lines to w.
type Printer struct {
	mu  sync.Mutex
	w   io.Writer
	err error

	header lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	faint  lipgloss.Style
}

var _ inject.Reporter = (*Printer)(nil)

// NewPrinter creates a printer writing to w. Colors are only emitted when w
// is a terminal.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true),
		ok:     r.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#D29922")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#F85149")),
		faint:  r.NewStyle().Foreground(lipgloss.Color("#8B949E")),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// RunStarted prints the banner and the layout directory.
func (p *Printer) RunStarted(root string, dryRun bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("%s\n", p.header.Render("🚀 Starting navigation bar injection..."))
	p.printf("📁 Base directory: %s\n", root)
	if dryRun {
		p.printf("%s\n", p.warn.Render("Dry run: no files will be written"))
	}
}

// RootMissing reports that the layout directory does not exist.
func (p *Printer) RootMissing(root string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("%s\n", p.fail.Render("❌ Directory not found: "+root))
}

// FileSkipped reports a file on the skip list.
func (p *Printer) FileSkipped(r inject.FileReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("%s\n", p.faint.Render("⊘ Skipping "+r.Name))
}

// FileStarted prints the header line for a file.
func (p *Printer) FileStarted(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("\n📄 Processing %s...\n", filepath.Base(path))
}

// FileFinished prints what happened to the navigation bar and whether the
// file was written.
func (p *Printer) FileFinished(r inject.FileReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch r.Outcome {
	case inject.OutcomeFailed:
		p.printf("  %s\n", p.fail.Render(fmt.Sprintf("❌ Error processing %s: %v", r.Name, r.Err)))
		return
	case inject.OutcomeDirty:
		p.printf("  %s\n", p.warn.Render("⊘ Uncommitted changes, leaving "+r.Name+" untouched"))
		return
	}

	p.navigationLine(r.Result)

	switch r.Outcome {
	case inject.OutcomeUpdated:
		if r.DryRun {
			p.printf("  %s\n", p.ok.Render("✅ Would update "+r.Name))
		} else {
			p.printf("  %s\n", p.ok.Render("✅ Updated "+r.Name))
		}
	default:
		p.printf("  %s\n", p.faint.Render("→ No changes needed for "+r.Name))
	}
}

func (p *Printer) navigationLine(res navbar.Result) {
	switch res.Navigation {
	case navbar.AlreadyPresent:
		p.printf("  %s\n", p.ok.Render("✓ Navigation bar already exists, skipping..."))
	case navbar.Inserted:
		p.printf("  %s\n", p.ok.Render("✓ Added navigation bar to "+res.Container.String()))
	case navbar.AnchorNotFound:
		p.printf("  %s\n", p.fail.Render("✗ "+res.Container.String()+" not found"))
	case navbar.NotAttempted:
		p.printf("  %s\n", p.warn.Render("⚠ Unsupported layout type, skipping..."))
	}
}

// RunFinished prints the completion line followed by the run summary.
func (p *Printer) RunFinished(result *inject.RunResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("\n\n%s\n", p.header.Render("✅ Navigation bar injection complete!"))
	p.printf("📝 Processed %d files\n\n", len(result.Files))
	for _, line := range strings.Split(strings.TrimRight(result.Summary(), "\n"), "\n") {
		p.printf("%s\n", p.faint.Render(line))
	}
}
