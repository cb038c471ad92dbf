package results

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cybertec-postgresql/tokscan/internal/discovery"
	tserrors "github.com/cybertec-postgresql/tokscan/internal/errors"
	"github.com/cybertec-postgresql/tokscan/internal/runner"
	"github.com/cybertec-postgresql/tokscan/pkg/lexer"
)

func sampleTokens(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.NewProfile("default", nil).Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	return tokens
}

func okRun(t *testing.T, path, src string) *runner.ScanRun {
	return &runner.ScanRun{
		File:      &discovery.DiscoveredFile{RelativePath: path, Language: "default"},
		StartTime: time.Now(),
		EndTime:   time.Now(),
		Status:    runner.ScanOK,
		Tokens:    sampleTokens(t, src),
	}
}

func TestNewFileResult_Counts(t *testing.T) {
	fr := NewFileResult("a.c", "c", sampleTokens(t, "x = y;"))

	want := map[string]int{
		lexer.CategoryIdentifier: 2,
		lexer.CategoryWhitespace: 2,
		lexer.CategorySymbol:     1,
		lexer.CategorySemicolon:  1,
	}
	if len(fr.Counts) != len(want) {
		t.Errorf("Counts = %v, want %v", fr.Counts, want)
	}
	for cat, n := range want {
		if fr.Counts[cat] != n {
			t.Errorf("Counts[%s] = %d, want %d", cat, fr.Counts[cat], n)
		}
	}
}

func TestFileResult_Source(t *testing.T) {
	src := "foo(1, bar)\nx = 2;\n"
	fr := NewFileResult("a", "default", sampleTokens(t, src))
	if got := fr.Source(); got != src {
		t.Errorf("Source() = %q, want %q", got, src)
	}
}

func TestCollector_CollectFromRuns(t *testing.T) {
	c := NewCollector()
	failed := &runner.ScanRun{
		File:   &discovery.DiscoveredFile{RelativePath: "bad.c", Language: "c"},
		Status: runner.ScanFailed,
		Error:  errors.New("bad.c:1:0: unrecognized input"),
	}
	c.CollectFromRuns([]*runner.ScanRun{okRun(t, "b.c", "x;"), failed, okRun(t, "a.c", "y = 1;")})

	res := c.Result()
	files := res.GetFiles()
	if fmt.Sprint(files) != "[a.c b.c bad.c]" {
		t.Errorf("GetFiles() = %v", files)
	}
	if fmt.Sprint(res.FailedFiles()) != "[bad.c]" {
		t.Errorf("FailedFiles() = %v", res.FailedFiles())
	}
	if res.Files["bad.c"].Error == "" {
		t.Error("failed file should keep its error")
	}
	// two tokens in b.c, six in a.c
	if res.TotalTokens() != 8 {
		t.Errorf("TotalTokens() = %d, want 8", res.TotalTokens())
	}
	if res.CategoryTotals()[lexer.CategorySemicolon] != 2 {
		t.Errorf("CategoryTotals() = %v", res.CategoryTotals())
	}
}

func TestCollector_ThreadSafety(t *testing.T) {
	c := NewCollector()
	tokens := sampleTokens(t, "a = b;")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add(NewFileResult(fmt.Sprintf("f%d", i), "default", tokens))
		}(i)
	}
	wg.Wait()

	if got := len(c.Result().Files); got != 50 {
		t.Errorf("got %d files, want 50", got)
	}
}

func TestSortedCounts(t *testing.T) {
	rows := SortedCounts(map[string]int{"b": 2, "a": 2, "c": 5})
	got := fmt.Sprint(rows)
	if got != "[{c 5} {a 2} {b 2}]" {
		t.Errorf("SortedCounts() = %s", got)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "result.json")
	store := NewStore(path)

	if store.Exists() {
		t.Fatal("store should not exist yet")
	}

	c := NewCollector()
	c.CollectFromRun(okRun(t, "main.c", "foo(x);"))
	if err := store.Save(c.Result()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.Exists() {
		t.Fatal("store should exist after Save")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	fr := loaded.Files["main.c"]
	if fr == nil {
		t.Fatal("main.c missing after load")
	}
	if fr.Source() != "foo(x);" {
		t.Errorf("Source() after load = %q", fr.Source())
	}
	if fr.Tokens[0].Category != lexer.CategoryFunction || fr.Tokens[0].Match != "foo(" {
		t.Errorf("first token after load = %+v", fr.Tokens[0])
	}
}

func TestStore_SaveKeepsText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"utf-8 comment", "// café ✓", false},
		{"latin-1 comment", "// caf\xe9", true},
		{"nul byte", "\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), "result.json"))
			res := NewResult()
			res.Files["a.c"] = NewFileResult("a.c", "c", []lexer.Token{
				{Category: lexer.CategoryComment, Value: tt.value, Match: tt.value, Line: 1},
			})

			err := store.Save(res)
			if tt.wantErr {
				var encErr *tserrors.EncodingError
				if !errors.As(err, &encErr) {
					t.Fatalf("expected *EncodingError, got %T (%v)", err, err)
				}
				if store.Exists() {
					t.Error("refused result should not be written")
				}
				return
			}
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := loaded.Files["a.c"].Source(); got != tt.value {
				t.Errorf("Source() after load = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewStore(filepath.Join(dir, "missing.json")).Load(); err == nil {
		t.Error("expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(garbage, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(garbage).Load(); err == nil {
		t.Error("expected error for invalid JSON")
	}

	old := filepath.Join(dir, "old.json")
	if err := os.WriteFile(old, []byte(`{"version":"0.1","files":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(old).Load(); err == nil {
		t.Error("expected error for unknown version")
	}
}
