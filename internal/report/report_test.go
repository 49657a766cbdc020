package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickcrawford/tokenwc/internal/stats"
)

// fakeTokenizer encodes one token per whitespace-separated field.
type fakeTokenizer struct{}

func (fakeTokenizer) Encode(text string) []int {
	fields := strings.Fields(text)
	ids := make([]int, len(fields))
	for i := range fields {
		ids[i] = i
	}
	return ids
}

func (fakeTokenizer) Name() string { return "fake" }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveInputs(t *testing.T) {
	t.Run("no args means stdin", func(t *testing.T) {
		inputs := ResolveInputs(nil)
		if len(inputs) != 1 {
			t.Fatalf("got %d inputs, want 1", len(inputs))
		}
		if inputs[0].Kind != KindStdin || inputs[0].Label != "" {
			t.Errorf("got %+v, want unlabeled stdin", inputs[0])
		}
	})

	t.Run("files keep argument order", func(t *testing.T) {
		inputs := ResolveInputs([]string{"b.txt", "a.txt"})
		if len(inputs) != 2 {
			t.Fatalf("got %d inputs, want 2", len(inputs))
		}
		if inputs[0].Label != "b.txt" || inputs[1].Label != "a.txt" {
			t.Errorf("order not preserved: %+v", inputs)
		}
	})

	t.Run("dash selects stdin", func(t *testing.T) {
		inputs := ResolveInputs([]string{"a.txt", "-"})
		if inputs[1].Kind != KindStdin || inputs[1].Label != "-" {
			t.Errorf("got %+v, want stdin labeled -", inputs[1])
		}
	})
}

func TestBuildSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "one two\n")

	rep := Build(ResolveInputs([]string{path}), fakeTokenizer{}, nil)

	if len(rep.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rep.Rows))
	}
	want := stats.TokenStats{Tokens: 2, Lines: 1, Bytes: 8}
	if rep.Rows[0].Err != nil || rep.Rows[0].Stats != want {
		t.Errorf("row = %+v, want stats %+v", rep.Rows[0], want)
	}
	if rep.Total != nil {
		t.Error("single input must not produce a total row")
	}
	if rep.Failed() {
		t.Error("Failed() = true for a successful run")
	}
}

func TestBuildMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one two\n")
	b := writeFile(t, dir, "b.txt", "three four five\n\n")

	rep := Build(ResolveInputs([]string{a, b}), fakeTokenizer{}, nil)

	if len(rep.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rep.Rows))
	}
	if rep.Total == nil {
		t.Fatal("expected a total row for two successful inputs")
	}
	want := stats.TokenStats{Tokens: 5, Lines: 3, Bytes: 25}
	if *rep.Total != want {
		t.Errorf("total = %+v, want %+v", *rep.Total, want)
	}
}

func TestBuildPartialFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one two\n")
	missing := filepath.Join(dir, "missing.txt")

	rep := Build(ResolveInputs([]string{a, missing}), fakeTokenizer{}, nil)

	if len(rep.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rep.Rows))
	}
	if rep.Rows[0].Err != nil {
		t.Errorf("first input should succeed, got %v", rep.Rows[0].Err)
	}
	if rep.Rows[1].Err == nil {
		t.Error("missing file should produce an error row")
	}
	if !rep.Failed() {
		t.Error("Failed() = false with a failed input")
	}
	// Only one success, so no total row.
	if rep.Total != nil {
		t.Errorf("total = %+v, want nil", *rep.Total)
	}
}

func TestBuildErrorIsolation(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	b := writeFile(t, dir, "b.txt", "after the failure\n")

	rep := Build(ResolveInputs([]string{missing, b}), fakeTokenizer{}, nil)

	if rep.Rows[0].Err == nil {
		t.Error("expected error for missing file")
	}
	if rep.Rows[1].Err != nil {
		t.Errorf("failure must not stop later inputs, got %v", rep.Rows[1].Err)
	}
}

func TestBuildStdin(t *testing.T) {
	rep := Build(ResolveInputs(nil), fakeTokenizer{}, strings.NewReader("from stdin\n"))

	if len(rep.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rep.Rows))
	}
	want := stats.TokenStats{Tokens: 2, Lines: 1, Bytes: 11}
	if rep.Rows[0].Stats != want {
		t.Errorf("stats = %+v, want %+v", rep.Rows[0].Stats, want)
	}
	if rep.Rows[0].Label != "" {
		t.Errorf("stdin row label = %q, want empty", rep.Rows[0].Label)
	}
}

func TestBuildEmptyStdin(t *testing.T) {
	rep := Build(ResolveInputs(nil), fakeTokenizer{}, strings.NewReader(""))

	if rep.Failed() {
		t.Fatal("empty stdin is not a failure")
	}
	if rep.Rows[0].Stats != (stats.TokenStats{}) {
		t.Errorf("stats = %+v, want zero", rep.Rows[0].Stats)
	}
}
