package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/results"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// HTMLReporter renders each scanned file as highlighted source
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format writes a standalone HTML document
func (r *HTMLReporter) Format(res *results.Result, writer io.Writer) error {
	files := res.GetFiles()

	if err := r.writeHeader(res, writer); err != nil {
		return err
	}
	if err := r.writeSummary(res, files, writer); err != nil {
		return err
	}
	for _, file := range files {
		if err := r.writeFileDetail(res.Files[file], writer); err != nil {
			return err
		}
	}
	return r.writeFooter(writer)
}

// cssClass turns a category into a class name, e.g. "keyword literal" -> "tok-keyword-literal"
func cssClass(category string) string {
	return "tok-" + strings.Join(strings.Fields(strings.ToLower(category)), "-")
}

func (r *HTMLReporter) writeHeader(res *results.Result, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !res.Timestamp.IsZero() {
		timestamp = res.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>tokscan Token Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.2em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        .summary, .file-detail { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .summary h2 { margin-bottom: 20px; color: #2c3e50; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        table.categories { border-collapse: collapse; font-size: 0.9em; }
        table.categories td { padding: 3px 12px; border-bottom: 1px solid #ecf0f1; }
        .file-detail h3 { margin-bottom: 15px; color: #2c3e50; font-family: 'Courier New', monospace; }
        .file-meta { font-size: 0.8em; color: #7f8c8d; font-weight: normal; }
        .scan-error { background: #f8d7da; color: #721c24; padding: 10px; border-radius: 4px; font-family: 'Courier New', monospace; }
        .source-code { background: #282c34; color: #abb2bf; font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6; border-radius: 6px; overflow-x: auto; }
        .source-line { display: flex; }
        .source-line:hover { background: rgba(255,255,255,0.05); }
        .line-number { padding: 0 15px; text-align: right; user-select: none; color: #5c6370; min-width: 60px; }
        .line-content { padding: 0 15px; flex: 1; white-space: pre; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
        .tok-keyword, .tok-directive { color: #c678dd; }
        .tok-keyword-literal, .tok-constant { color: #d19a66; }
        .tok-string { color: #98c379; }
        .tok-comment { color: #5c6370; font-style: italic; }
        .tok-number { color: #d19a66; }
        .tok-function { color: #61afef; }
        .tok-class-name { color: #e5c07b; }
        .tok-symbol { color: #56b6c2; }
        .tok-unknown { background: #e06c75; color: #282c34; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>tokscan Token Report</h1>
            <div class="meta">Generated: %s | Version: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, html.EscapeString(res.Version))
	return err
}

func (r *HTMLReporter) writeSummary(res *results.Result, files []string, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Summary</h2>
            <div class="summary-stats">
                <div class="stat-card">
                    <div class="label">Files</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Failed</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Tokens</div>
                    <div class="value">%d</div>
                </div>
            </div>
            <table class="categories">
`, len(files), len(res.FailedFiles()), res.TotalTokens())
	if err != nil {
		return err
	}

	for _, row := range results.SortedCounts(res.CategoryTotals()) {
		_, err := fmt.Fprintf(writer, "                <tr><td class=\"%s\">%s</td><td>%d</td></tr>\n",
			cssClass(row.Category), html.EscapeString(row.Category), row.Count)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(writer, "            </table>\n        </section>\n\n")
	return err
}

func (r *HTMLReporter) writeFileDetail(f *results.FileResult, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <section class="file-detail">
            <h3>%s <span class="file-meta">%s, %d tokens</span></h3>
`, html.EscapeString(f.Path), html.EscapeString(f.Language), len(f.Tokens))
	if err != nil {
		return err
	}

	if f.Failed() {
		_, err = fmt.Fprintf(writer, "            <div class=\"scan-error\">%s</div>\n        </section>\n\n", html.EscapeString(f.Error))
		return err
	}

	if _, err := io.WriteString(writer, "            <div class=\"source-code\">\n"); err != nil {
		return err
	}
	for i, line := range highlightLines(f.Tokens) {
		_, err := fmt.Fprintf(writer, "                <div class=\"source-line\"><div class=\"line-number\">%d</div><div class=\"line-content\">%s</div></div>\n", i+1, line)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(writer, "            </div>\n        </section>\n\n")
	return err
}

// highlightLines splits the token stream into source lines of escaped,
// class-annotated HTML. Whitespace and newlines are written bare.
func highlightLines(tokens []lexer.Token) []string {
	var lines []string
	var cur strings.Builder

	for _, tok := range tokens {
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			if part == "" {
				continue
			}
			switch tok.Category {
			case lexer.CategoryWhitespace, lexer.CategoryNewline:
				cur.WriteString(html.EscapeString(part))
			default:
				fmt.Fprintf(&cur, `<span class="%s">%s</span>`, cssClass(tok.Category), html.EscapeString(part))
			}
		}
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `        <footer>
            Generated by <strong>tokscan</strong>
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns the report as an HTML string
func (r *HTMLReporter) FormatString(res *results.Result) (string, error) {
	var buf strings.Builder
	if err := r.Format(res, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}
