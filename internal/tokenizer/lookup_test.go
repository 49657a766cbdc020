package tokenizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveShipped(t *testing.T) {
	tk, err := Resolve("gpt2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Name() != "gpt2" {
		t.Errorf("Name() = %q, want gpt2", tk.Name())
	}
}

func TestResolveUnknown(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve("no-such-tokenizer", []string{dir})
	if err == nil {
		t.Fatal("expected error for unknown tokenizer")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	// The error lists every searched path so the user can install one.
	want := filepath.Join(dir, "no-such-tokenizer.json")
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention searched path %q", err, want)
	}
}

func TestResolveSearchDirOrder(t *testing.T) {
	// A file in an earlier search dir wins; malformed content still
	// surfaces as a load error rather than falling through to later dirs.
	first := t.TempDir()
	second := t.TempDir()

	path := filepath.Join(first, "custom.json")
	if err := os.WriteFile(path, []byte("not a tokenizer"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve("custom", []string{first, second})
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError for malformed definition, got %v", err)
	}
}

func TestDefaultSearchDirs(t *testing.T) {
	dirs := DefaultSearchDirs()
	if len(dirs) == 0 {
		t.Fatal("expected at least one search dir")
	}
	for _, dir := range dirs {
		if !strings.Contains(dir, "tokenizers") {
			t.Errorf("search dir %q does not end in a tokenizers directory", dir)
		}
	}
}
