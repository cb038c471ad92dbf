package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cybertec-postgresql/tokscan/internal/results"
)

// TextReporter writes a plain-text summary, or a token listing
type TextReporter struct {
	showTokens bool
}

// NewTextReporter creates a text reporter. With showTokens every token is
// listed as "line:column category value".
func NewTextReporter(showTokens bool) *TextReporter {
	return &TextReporter{showTokens: showTokens}
}

func (r *TextReporter) Format(res *results.Result, writer io.Writer) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if r.showTokens {
		r.writeTokens(res, tw)
	} else {
		r.writeSummary(res, tw)
	}

	return tw.Flush()
}

func (r *TextReporter) writeTokens(res *results.Result, w io.Writer) {
	multi := len(res.Files) > 1
	for _, path := range res.GetFiles() {
		f := res.Files[path]
		if multi {
			fmt.Fprintf(w, "# %s (%s)\n", path, f.Language)
		}
		if f.Failed() {
			fmt.Fprintf(w, "error:\t%s\n", f.Error)
			continue
		}
		for _, tok := range f.Tokens {
			fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Category, tok.Value)
		}
	}
}

func (r *TextReporter) writeSummary(res *results.Result, w io.Writer) {
	fmt.Fprintln(w, "FILE\tLANGUAGE\tTOKENS\tTOP CATEGORIES")
	for _, path := range res.GetFiles() {
		f := res.Files[path]
		if f.Failed() {
			fmt.Fprintf(w, "%s\t%s\t-\tERROR: %s\n", path, f.Language, f.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", path, f.Language, len(f.Tokens), topCategories(f.Counts, 3))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files:\t%d (%d failed)\n", len(res.Files), len(res.FailedFiles()))
	fmt.Fprintf(w, "Tokens:\t%d\n", res.TotalTokens())
	for _, row := range results.SortedCounts(res.CategoryTotals()) {
		fmt.Fprintf(w, "  %s\t%d\n", row.Category, row.Count)
	}
}

func topCategories(counts map[string]int, n int) string {
	rows := results.SortedCounts(counts)
	if len(rows) > n {
		rows = rows[:n]
	}
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = fmt.Sprintf("%s=%d", row.Category, row.Count)
	}
	return strings.Join(parts, " ")
}

func (r *TextReporter) FormatString(res *results.Result) (string, error) {
	var b strings.Builder
	if err := r.Format(res, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *TextReporter) Name() string {
	return "text"
}
