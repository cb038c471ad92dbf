package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/tokscan/internal/results"
)

// JSONReporter writes the result as JSON, either in full or as per-file
// token counts
type JSONReporter struct {
	showTokens bool
}

// NewJSONReporter creates a new JSON reporter. Without showTokens it writes
// the FormatSummary form.
func NewJSONReporter(showTokens bool) *JSONReporter {
	return &JSONReporter{showTokens: showTokens}
}

// Format writes the result as indented JSON followed by a newline
func (r *JSONReporter) Format(res *results.Result, writer io.Writer) error {
	var (
		data string
		err  error
	)
	if r.showTokens {
		data, err = r.full(res)
	} else {
		data, err = r.FormatSummary(res)
	}
	if err != nil {
		return err
	}

	if _, err := io.WriteString(writer, data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns the result as a JSON string
func (r *JSONReporter) FormatString(res *results.Result) (string, error) {
	if !r.showTokens {
		return r.FormatSummary(res)
	}
	return r.full(res)
}

func (r *JSONReporter) full(res *results.Result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}
	return string(data), nil
}

// fileSummary is the per-file entry of FormatSummary
type fileSummary struct {
	Language string                  `json:"language"`
	Tokens   int                     `json:"tokens"`
	Counts   []results.CategoryCount `json:"counts,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

// FormatSummary returns token counts without the tokens themselves
func (r *JSONReporter) FormatSummary(res *results.Result) (string, error) {
	files := make(map[string]fileSummary, len(res.Files))
	for path, f := range res.Files {
		files[path] = fileSummary{
			Language: f.Language,
			Tokens:   len(f.Tokens),
			Counts:   results.SortedCounts(f.Counts),
			Error:    f.Error,
		}
	}

	summary := map[string]interface{}{
		"version":      res.Version,
		"timestamp":    res.Timestamp,
		"total_tokens": res.TotalTokens(),
		"categories":   results.SortedCounts(res.CategoryTotals()),
		"files":        files,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
