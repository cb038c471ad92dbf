package runner

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	"github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// ctxCheckInterval is how many tokens are scanned between cancellation checks
const ctxCheckInterval = 1024

// Executor reads and tokenizes files
type Executor struct {
	opts lexer.ScanOptions
}

// NewExecutor creates a new scan executor
func NewExecutor(opts lexer.ScanOptions) *Executor {
	return &Executor{opts: opts}
}

// Execute scans a single file. Scan failures are recorded on the returned
// run rather than returned as an error.
func (e *Executor) Execute(ctx context.Context, file *discovery.DiscoveredFile) *ScanRun {
	run := &ScanRun{
		File:      file,
		StartTime: time.Now(),
		Status:    ScanRunning,
	}

	tokens, err := e.scan(ctx, file)
	run.EndTime = time.Now()

	switch {
	case err == nil:
		run.Status = ScanOK
		run.Tokens = tokens
		logger.Debug("scanned %s: %d token(s) in %v", file.RelativePath, len(tokens), run.Duration())
	case ctx.Err() != nil:
		run.Status = ScanCancelled
		run.Error = ctx.Err()
	default:
		run.Status = ScanFailed
		run.Error = errors.NewScanError(file.RelativePath, err)
		logger.Debug("scan failed: %v", run.Error)
	}

	return run
}

func (e *Executor) scan(ctx context.Context, file *discovery.DiscoveredFile) ([]lexer.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, err
	}
	// tokens must survive the JSON and PostgreSQL sinks byte for byte
	if err := errors.CheckText(string(src)); err != nil {
		return nil, err
	}

	s := lexer.NewScannerWith(file.Profile, string(src), e.opts)
	var tokens []lexer.Token
	for {
		if len(tokens)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// ExecuteBatch scans files sequentially, stopping early if ctx is cancelled
func (e *Executor) ExecuteBatch(ctx context.Context, files []discovery.DiscoveredFile) []*ScanRun {
	runs := make([]*ScanRun, 0, len(files))

	for i := range files {
		logger.Debug("scanning %s", files[i].RelativePath)
		runs = append(runs, e.Execute(ctx, &files[i]))

		if ctx.Err() != nil {
			break
		}
	}

	return runs
}

// SummarizeRuns creates a summary of scan results
func SummarizeRuns(runs []*ScanRun) *ScanSummary {
	summary := &ScanSummary{
		TotalFiles: len(runs),
	}

	for _, run := range runs {
		summary.TotalDuration += run.Duration()
		summary.TotalTokens += len(run.Tokens)

		switch run.Status {
		case ScanOK:
			summary.ScannedFiles++
		case ScanFailed:
			summary.FailedFiles++
		case ScanCancelled:
			summary.CancelledFiles++
		}
	}

	return summary
}
