package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cybertec-postgresql/tokscan/pkg/languages"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "lib", "util.py"), "x = 1\n")
	writeFile(t, filepath.Join(root, "lib", "query.SQL"), "SELECT 1;\n")
	writeFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeFile(t, filepath.Join(root, ".git", "hook.py"), "ignored\n")
	writeFile(t, filepath.Join(root, "vendor", "dep.go"), "ignored\n")
	writeFile(t, filepath.Join(root, ".hidden.go"), "ignored\n")

	files, err := Discover(root, languages.Builtin())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []struct {
		rel  string
		lang string
	}{
		{"lib/query.SQL", "sql"},
		{"lib/util.py", "python"},
		{"main.go", "go"},
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %+v", len(files), len(want), files)
	}
	for i, w := range want {
		if files[i].RelativePath != w.rel {
			t.Errorf("files[%d].RelativePath = %s, want %s", i, files[i].RelativePath, w.rel)
		}
		if files[i].Language != w.lang {
			t.Errorf("files[%d].Language = %s, want %s", i, files[i].Language, w.lang)
		}
		if files[i].Profile == nil {
			t.Errorf("files[%d].Profile is nil", i)
		}
		if !filepath.IsAbs(files[i].Path) {
			t.Errorf("files[%d].Path is not absolute: %s", i, files[i].Path)
		}
	}
	if files[2].Size != int64(len("package main\n")) {
		t.Errorf("Size = %d", files[2].Size)
	}
}

func TestDiscover_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "one.rs")
	writeFile(t, path, "fn main() {}\n")

	files, err := Discover(path, languages.Builtin())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 || files[0].Language != "rust" || files[0].RelativePath != "one.rs" {
		t.Errorf("unexpected result: %+v", files)
	}
}

func TestDiscover_SingleFileUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	writeFile(t, path, "hello\n")

	if _, err := Discover(path, languages.Builtin()); err == nil {
		t.Error("expected error for file without a profile")
	}
}

func TestDiscover_Fixed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.txt"), "hello\n")
	writeFile(t, filepath.Join(root, "a.go"), "x\n")

	files, err := Discover(root, Fixed(languages.Python))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	for _, f := range files {
		if f.Language != "python" {
			t.Errorf("%s classified as %s, want python", f.RelativePath, f.Language)
		}
	}
}

func TestDiscover_Missing(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), languages.Builtin()); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestByLanguage(t *testing.T) {
	files := []DiscoveredFile{
		{RelativePath: "a.go", Language: "go"},
		{RelativePath: "b.py", Language: "python"},
		{RelativePath: "c.go", Language: "go"},
	}
	groups := ByLanguage(files)
	if len(groups["go"]) != 2 || len(groups["python"]) != 1 {
		t.Errorf("unexpected groups: %+v", groups)
	}
}
