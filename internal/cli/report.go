package cli

import (
	"fmt"
	"os"

	"github.com/cybertec-postgresql/tokscan/internal/report"
	"github.com/cybertec-postgresql/tokscan/internal/results"
)

// Report renders a saved result file. outputPath "-" or "" means stdout.
func Report(resultFile, format, outputPath, color string, tokens bool) error {
	store := results.NewStore(resultFile)
	if !store.Exists() {
		return fmt.Errorf("result file not found: %s (run 'tokscan scan' first)", resultFile)
	}

	res, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load scan result: %w", err)
	}

	if !report.ValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, report.SupportedFormats())
	}

	writer := os.Stdout
	if outputPath != "-" && outputPath != "" {
		writer, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer writer.Close()
	}

	if err := render(res, format, color, tokens, writer); err != nil {
		return err
	}

	// stderr, so it does not mix with report output on stdout
	if outputPath != "-" && outputPath != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}

	return nil
}
