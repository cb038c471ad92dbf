package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/results"
)

// Tokenize scans one input with the configured language and writes the
// tokens to out. path "" or "-" reads from in.
func Tokenize(config *Config, path string, in io.Reader, out io.Writer) error {
	reg, err := NewRegistry(config.ProfileDir)
	if err != nil {
		return err
	}

	name := path
	var src []byte
	if path == "" || path == "-" {
		name = "<stdin>"
		src, err = io.ReadAll(in)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	p, ok := reg.Get(config.Language)
	if config.Language == "" {
		p, ok = reg.ForFile(path)
	}
	if !ok {
		if config.Language == "" {
			return &ConfigError{
				Field:      "language",
				Message:    fmt.Sprintf("cannot infer a language for %s", name),
				Suggestion: "Pass --language, e.g. --language python.",
			}
		}
		return unknownLanguage(config.Language, reg)
	}

	tokens, err := p.TokenizeWith(string(src), scanOptions(config))
	if err != nil {
		return errors.NewScanError(name, err)
	}

	c := results.NewCollector()
	c.Add(results.NewFileResult(name, p.Name(), tokens))
	return render(c.Result(), config.Format, config.Color, true, out)
}
