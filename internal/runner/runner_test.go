package runner_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	tserrors "github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/runner"
	"github.com/cybertec-postgresql/tokscan/pkg/languages"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

// fixture writes the given files under a temp dir and discovers them
func fixture(t *testing.T, files map[string]string) []discovery.DiscoveredFile {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	found, err := discovery.Discover(root, languages.Builtin())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	return found
}

func TestExecutor_Execute(t *testing.T) {
	files := fixture(t, map[string]string{"a.py": "x = 1\n"})

	run := runner.NewExecutor(lexer.ScanOptions{}).Execute(context.Background(), &files[0])

	if run.Status != runner.ScanOK {
		t.Fatalf("Status = %s, error = %v", run.Status, run.Error)
	}
	// x, space, =, space, 1, newline
	if len(run.Tokens) != 6 {
		t.Errorf("got %d tokens, want 6: %v", len(run.Tokens), run.Tokens)
	}
	if run.EndTime.Before(run.StartTime) {
		t.Error("EndTime before StartTime")
	}
}

func TestExecutor_ExecuteFailure(t *testing.T) {
	files := fixture(t, map[string]string{"bad.py": "x = 1\n\x01\n"})

	run := runner.NewExecutor(lexer.ScanOptions{}).Execute(context.Background(), &files[0])

	if run.Status != runner.ScanFailed {
		t.Fatalf("Status = %s, want failed", run.Status)
	}
	if run.Tokens != nil {
		t.Error("failed run should carry no tokens")
	}

	var scanErr *tserrors.ScanError
	if !errors.As(run.Error, &scanErr) {
		t.Fatalf("expected *ScanError, got %T", run.Error)
	}
	if scanErr.File != "bad.py" {
		t.Errorf("File = %s, want bad.py", scanErr.File)
	}
	if !errors.Is(run.Error, lexer.ErrUnrecognizedInput) {
		t.Error("error should match ErrUnrecognizedInput")
	}
}

func TestExecutor_Tolerant(t *testing.T) {
	files := fixture(t, map[string]string{"bad.py": "x\x01"})

	run := runner.NewExecutor(lexer.ScanOptions{Tolerant: true}).Execute(context.Background(), &files[0])

	if run.Status != runner.ScanOK {
		t.Fatalf("Status = %s, error = %v", run.Status, run.Error)
	}
	last := run.Tokens[len(run.Tokens)-1]
	if last.Category != lexer.CategoryUnknown {
		t.Errorf("last category = %s, want unknown", last.Category)
	}
}

func TestExecutor_RejectsUnstorableText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		tolerant bool
		reason   string
		line     int
		column   int
	}{
		{"latin-1 comment", "x // caf\xe9\n", false, "invalid UTF-8 byte 0xe9", 1, 8},
		{"second line", "x = 1\ny = \xff\n", false, "invalid UTF-8 byte 0xff", 2, 4},
		{"nul in tolerant mode", "x\x00", true, "NUL byte", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := fixture(t, map[string]string{"bad.py": tt.content})

			run := runner.NewExecutor(lexer.ScanOptions{Tolerant: tt.tolerant}).Execute(context.Background(), &files[0])

			if run.Status != runner.ScanFailed {
				t.Fatalf("Status = %s, want failed", run.Status)
			}
			var encErr *tserrors.EncodingError
			if !errors.As(run.Error, &encErr) {
				t.Fatalf("expected *EncodingError, got %T (%v)", run.Error, run.Error)
			}
			if encErr.Reason != tt.reason || encErr.Line != tt.line || encErr.Column != tt.column {
				t.Errorf("got %q at %d:%d, want %q at %d:%d",
					encErr.Reason, encErr.Line, encErr.Column, tt.reason, tt.line, tt.column)
			}
			want := fmt.Sprintf("bad.py:%d:%d: %s", tt.line, tt.column, tt.reason)
			if run.Error.Error() != want {
				t.Errorf("Error() = %q, want %q", run.Error.Error(), want)
			}
		})
	}
}

func TestExecutor_Cancelled(t *testing.T) {
	files := fixture(t, map[string]string{"a.go": "package a\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := runner.NewExecutor(lexer.ScanOptions{}).Execute(ctx, &files[0])
	if run.Status != runner.ScanCancelled {
		t.Errorf("Status = %s, want cancelled", run.Status)
	}
}

func TestExecutor_ExecuteBatch(t *testing.T) {
	files := fixture(t, map[string]string{
		"a.go":  "package a\n",
		"b.py":  "\x01",
		"c.sql": "SELECT 1;\n",
	})

	runs := runner.NewExecutor(lexer.ScanOptions{}).ExecuteBatch(context.Background(), files)
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	summary := runner.SummarizeRuns(runs)
	if summary.TotalFiles != 3 || summary.ScannedFiles != 2 || summary.FailedFiles != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", summary.ExitCode())
	}
}

func TestWorkerPool_PreservesOrder(t *testing.T) {
	content := make(map[string]string)
	for i := 0; i < 20; i++ {
		content[fmt.Sprintf("f%02d.py", i)] = fmt.Sprintf("x%d = %d\n", i, i)
	}
	files := fixture(t, content)

	exec := runner.NewExecutor(lexer.ScanOptions{})
	parallel := runner.NewWorkerPool(exec, 4).ExecuteParallel(context.Background(), files)
	sequential := exec.ExecuteBatch(context.Background(), files)

	if len(parallel) != len(files) {
		t.Fatalf("got %d runs, want %d", len(parallel), len(files))
	}
	for i, run := range parallel {
		if run.File.RelativePath != files[i].RelativePath {
			t.Errorf("runs[%d] is %s, want %s", i, run.File.RelativePath, files[i].RelativePath)
		}
		if len(run.Tokens) != len(sequential[i].Tokens) {
			t.Errorf("%s: parallel %d tokens, sequential %d", run.File.RelativePath, len(run.Tokens), len(sequential[i].Tokens))
		}
	}

	if code := runner.SummarizeRuns(parallel).ExitCode(); code != 0 {
		t.Errorf("ExitCode() = %d, want 0", code)
	}
}

func TestWorkerPool_Cancelled(t *testing.T) {
	files := fixture(t, map[string]string{"a.go": "package a\n", "b.go": "package b\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := runner.NewWorkerPool(runner.NewExecutor(lexer.ScanOptions{}), 2).ExecuteParallel(ctx, files)
	for _, run := range runs {
		if run.Status != runner.ScanCancelled {
			t.Errorf("%s: Status = %s, want cancelled", run.File.RelativePath, run.Status)
		}
	}
	summary := runner.SummarizeRuns(runs)
	if summary.CancelledFiles != 2 || summary.ExitCode() != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestWorkerPool_Empty(t *testing.T) {
	if runs := runner.NewWorkerPool(runner.NewExecutor(lexer.ScanOptions{}), 0).ExecuteParallel(context.Background(), nil); runs != nil {
		t.Errorf("expected nil, got %v", runs)
	}
}

func TestScanStatus_String(t *testing.T) {
	tests := []struct {
		status runner.ScanStatus
		want   string
	}{
		{runner.ScanPending, "pending"},
		{runner.ScanRunning, "running"},
		{runner.ScanOK, "ok"},
		{runner.ScanFailed, "failed"},
		{runner.ScanCancelled, "cancelled"},
		{runner.ScanStatus(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %s, want %s", tt.status, got, tt.want)
		}
	}
}
