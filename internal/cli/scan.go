package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/database"
	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
	"github.com/cybertec-postgresql/tokscan/internal/report"
	"github.com/cybertec-postgresql/tokscan/internal/results"
	"github.com/cybertec-postgresql/tokscan/internal/runner"
	"github.com/cybertec-postgresql/tokscan/pkg/languages"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// Scan discovers files under searchPath, tokenizes them and saves the
// result. With print set the result is also rendered to out in the
// configured format. It returns the process exit code.
func Scan(ctx context.Context, config *Config, searchPath string, print bool, out io.Writer) (int, error) {
	startTime := time.Now()

	reg, err := NewRegistry(config.ProfileDir)
	if err != nil {
		return 1, err
	}

	classifier, err := classifierFor(config, reg)
	if err != nil {
		return 1, err
	}

	logger.Debug("discovering files in %s", searchPath)
	files, err := discovery.Discover(searchPath, classifier)
	if err != nil {
		return 1, fmt.Errorf("failed to discover files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No files with a known language found")
		return 0, nil
	}
	logger.Debug("found %d file(s)", len(files))
	if logger.IsVerbose() {
		for lang, group := range discovery.ByLanguage(files) {
			logger.Debug("  %s: %d file(s)", lang, len(group))
		}
	}

	executor := runner.NewExecutor(scanOptions(config))
	var runs []*runner.ScanRun
	if config.Parallelism > 1 {
		logger.Debug("scanning in parallel (workers: %d)", config.Parallelism)
		runs = runner.NewWorkerPool(executor, config.Parallelism).ExecuteParallel(ctx, files)
	} else {
		runs = executor.ExecuteBatch(ctx, files)
	}

	for _, run := range runs {
		if run.Status == runner.ScanFailed {
			logger.Warn("%v", run.Error)
		}
	}

	collector := results.NewCollector()
	collector.CollectFromRuns(runs)
	res := collector.Result()

	store := results.NewStore(config.ResultFile)
	if err := store.Save(res); err != nil {
		return 1, fmt.Errorf("failed to save result: %w", err)
	}

	if config.DatabaseURL != "" {
		if err := saveToDatabase(ctx, config, res); err != nil {
			return 1, err
		}
	}

	if print {
		if err := render(res, config.Format, config.Color, true, out); err != nil {
			return 1, err
		}
	}

	summary := runner.SummarizeRuns(runs)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Files:  %d scanned, %d failed, %d total\n",
		summary.ScannedFiles, summary.FailedFiles+summary.CancelledFiles, summary.TotalFiles)
	fmt.Fprintf(out, "Tokens: %d\n", summary.TotalTokens)
	fmt.Fprintf(out, "Time:   %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Result written to %s\n", config.ResultFile)

	return summary.ExitCode(), nil
}

func classifierFor(config *Config, reg *languages.Registry) (discovery.Classifier, error) {
	if config.Language == "" {
		return reg, nil
	}
	p, ok := reg.Get(config.Language)
	if !ok {
		return nil, unknownLanguage(config.Language, reg)
	}
	return discovery.Fixed(p), nil
}

func unknownLanguage(name string, reg *languages.Registry) error {
	return &ConfigError{
		Field:      "language",
		Value:      name,
		Message:    fmt.Sprintf("unknown language %q", name),
		Suggestion: fmt.Sprintf("Run 'tokscan languages' to list profiles: %v", reg.Names()),
	}
}

func saveToDatabase(ctx context.Context, config *Config, res *results.Result) error {
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		return err
	}
	ids, err := pool.SaveResult(ctx, res)
	if err != nil {
		return err
	}
	logger.Info("stored %d scan(s) in PostgreSQL", len(ids))
	return nil
}

func scanOptions(config *Config) lexer.ScanOptions {
	return lexer.ScanOptions{Tolerant: config.Tolerant}
}

// render writes res to out using the named format
func render(res *results.Result, format, color string, tokens bool, out io.Writer) error {
	formatter, err := report.GetFormatter(report.FormatType(format), report.Options{
		Color:      report.ColorEnabled(color, out),
		ShowTokens: tokens,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(res, out); err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	return nil
}
