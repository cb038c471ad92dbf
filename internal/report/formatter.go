package report

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/tokscan/internal/results"
)

// Formatter renders a scan result
type Formatter interface {
	// Format renders the result and writes it to writer
	Format(res *results.Result, writer io.Writer) error

	// FormatString returns the rendered result as a string
	FormatString(res *results.Result) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatText FormatType = "text"
	FormatHTML FormatType = "html"
	FormatANSI FormatType = "ansi"
)

// Options tune formatters that support them
type Options struct {
	Color      bool // ansi: emit escape sequences
	ShowTokens bool // json, text: include every token instead of a summary
}

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType, opts Options) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(opts.ShowTokens), nil
	case FormatText:
		return NewTextReporter(opts.ShowTokens), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	case FormatANSI:
		return NewANSIReporter(opts.Color), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, text, html, ansi)", format)
	}
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatText, FormatHTML, FormatANSI:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatText), string(FormatHTML), string(FormatANSI)}
}
