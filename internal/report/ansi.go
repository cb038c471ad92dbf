package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybertec-postgresql/tokscan/internal/results"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
	"github.com/muesli/termenv"
	"github.com/xyproto/env/v2"
)

// ANSIReporter prints the scanned source highlighted for a terminal
type ANSIReporter struct {
	color  bool
	styles map[string]lipgloss.Style
	header lipgloss.Style
	failed lipgloss.Style
}

// NewANSIReporter creates a reporter. Without color it prints plain source.
func NewANSIReporter(color bool) *ANSIReporter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	// tabs are source text and must come out unchanged
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	fg := func(c string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c))
	}

	return &ANSIReporter{
		color: color,
		// unlisted categories print unstyled
		styles: map[string]lipgloss.Style{
			"keyword":               fg("5"),
			"keyword literal":       fg("3"),
			"directive":             fg("5"),
			lexer.CategoryComment:   fg("8").Italic(true),
			lexer.CategoryString:    fg("2"),
			lexer.CategoryNumber:    fg("3"),
			lexer.CategoryFunction:  fg("4"),
			lexer.CategoryClassName: fg("11"),
			lexer.CategoryConstant:  fg("3"),
			lexer.CategorySymbol:    fg("6"),
			lexer.CategoryUnknown:   fg("15").Background(lipgloss.Color("1")),
		},
		header: base.Bold(true),
		failed: fg("1"),
	}
}

func (r *ANSIReporter) Format(res *results.Result, writer io.Writer) error {
	files := res.GetFiles()
	for i, path := range files {
		f := res.Files[path]
		if len(files) > 1 {
			if i > 0 {
				if _, err := io.WriteString(writer, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(writer, "%s\n", r.paint(r.header, "==> "+path+" <==")); err != nil {
				return err
			}
		}
		if f.Failed() {
			if _, err := fmt.Fprintf(writer, "%s\n", r.paint(r.failed, "error: "+f.Error)); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(writer, r.highlight(f.Tokens)); err != nil {
			return err
		}
	}
	return nil
}

func (r *ANSIReporter) highlight(tokens []lexer.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		style, ok := r.styles[tok.Category]
		if !ok {
			b.WriteString(tok.Value)
			continue
		}
		b.WriteString(r.paint(style, tok.Value))
	}
	return b.String()
}

func (r *ANSIReporter) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func (r *ANSIReporter) FormatString(res *results.Result) (string, error) {
	var b strings.Builder
	if err := r.Format(res, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *ANSIReporter) Name() string {
	return "ansi"
}

// ColorEnabled resolves a color mode ("auto", "always", "never") for w.
// In auto mode color is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if env.Has("NO_COLOR") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}
