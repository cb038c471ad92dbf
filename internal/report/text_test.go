package report

import (
	"strings"
	"testing"
)

func TestTextReporter_Summary(t *testing.T) {
	out, err := NewTextReporter(false).FormatString(sampleResult(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{"FILE", "main.sample", "ERROR:", "Files:", "(1 failed)", "keyword"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// failed files sort before main.sample
	if strings.Index(out, "broken.sample") > strings.Index(out, "main.sample") {
		t.Error("files should be listed in sorted order")
	}
}

func TestTextReporter_Tokens(t *testing.T) {
	out, err := NewTextReporter(true).FormatString(sampleResult(t))
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{"# main.sample (sample)", `"if"`, "keyword", `"\n"`, "2:2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTopCategories(t *testing.T) {
	got := topCategories(map[string]int{"a": 1, "b": 3, "c": 2, "d": 0}, 2)
	if got != "b=3 c=2" {
		t.Errorf("topCategories() = %q", got)
	}
}
