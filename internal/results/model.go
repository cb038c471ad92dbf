package results

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// SchemaVersion is written into every saved result
const SchemaVersion = "1.0"

// Result holds the tokens of every file in one scan batch
type Result struct {
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Files     map[string]*FileResult `json:"files"` // Key: relative file path
}

// FileResult is the scan outcome for a single file
type FileResult struct {
	Path     string         `json:"path"`
	Language string         `json:"language"`
	Tokens   []lexer.Token  `json:"tokens,omitempty"`
	Counts   map[string]int `json:"counts,omitempty"` // Tokens per category
	Error    string         `json:"error,omitempty"`
}

// NewResult creates an empty Result
func NewResult() *Result {
	return &Result{
		Version:   SchemaVersion,
		Timestamp: time.Now(),
		Files:     make(map[string]*FileResult),
	}
}

// NewFileResult builds a FileResult and its category counts from tokens
func NewFileResult(path, language string, tokens []lexer.Token) *FileResult {
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Category]++
	}
	return &FileResult{
		Path:     path,
		Language: language,
		Tokens:   tokens,
		Counts:   counts,
	}
}

// Failed reports whether the file could not be scanned
func (f *FileResult) Failed() bool {
	return f.Error != ""
}

// Source reassembles the scanned text. Every consumed byte belongs to
// exactly one token, so this equals the input with carriage returns removed.
func (f *FileResult) Source() string {
	var b strings.Builder
	for _, tok := range f.Tokens {
		b.WriteString(tok.Value)
	}
	return b.String()
}

// CheckText returns an error for the first token whose value or match would not
// survive storage as text
func (f *FileResult) CheckText() error {
	for _, tok := range f.Tokens {
		for _, s := range []string{tok.Value, tok.Match} {
			if err := errors.CheckText(s); err != nil {
				return fmt.Errorf("%s: %s token at line %d: %w", f.Path, tok.Category, tok.Line, err)
			}
		}
	}
	return nil
}

// CheckText runs FileResult.CheckText over every file in path order
func (r *Result) CheckText() error {
	for _, path := range r.GetFiles() {
		if err := r.Files[path].CheckText(); err != nil {
			return err
		}
	}
	return nil
}

// GetFiles returns the file paths in sorted order
func (r *Result) GetFiles() []string {
	files := make([]string, 0, len(r.Files))
	for file := range r.Files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// TotalTokens counts tokens across all files
func (r *Result) TotalTokens() int {
	total := 0
	for _, f := range r.Files {
		total += len(f.Tokens)
	}
	return total
}

// FailedFiles returns the sorted paths of files that failed to scan
func (r *Result) FailedFiles() []string {
	var failed []string
	for _, path := range r.GetFiles() {
		if r.Files[path].Failed() {
			failed = append(failed, path)
		}
	}
	return failed
}

// CategoryTotals sums the per-file category counts
func (r *Result) CategoryTotals() map[string]int {
	totals := make(map[string]int)
	for _, f := range r.Files {
		for cat, n := range f.Counts {
			totals[cat] += n
		}
	}
	return totals
}

// CategoryCount is one row of a category histogram
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SortedCounts orders counts by descending count, then by category name
func SortedCounts(counts map[string]int) []CategoryCount {
	rows := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		rows = append(rows, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
