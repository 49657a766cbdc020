//go:build cgo

package tokenizer

import (
	"os"

	"github.com/daulet/tokenizers"
)

// hfTokenizer wraps a HuggingFace tokenizer loaded from a tokenizer.json
// definition via the native tokenizers binding.
type hfTokenizer struct {
	name string
	tk   *tokenizers.Tokenizer
}

// FromFile loads a HuggingFace tokenizer.json definition from disk.
func FromFile(path string) (Tokenizer, error) {
	// Read ourselves so a missing or unreadable path surfaces as a
	// plain filesystem error instead of a parser message.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return fromBytes(path, data)
}

// FromBytes constructs a tokenizer from an in-memory tokenizer.json
// definition, e.g. one embedded into the caller's binary.
func FromBytes(data []byte) (Tokenizer, error) {
	return fromBytes("embedded", data)
}

func fromBytes(source string, data []byte) (Tokenizer, error) {
	tk, err := tokenizers.FromBytes(data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return &hfTokenizer{name: source, tk: tk}, nil
}

func (t *hfTokenizer) Encode(text string) []int {
	ids, _ := t.tk.Encode(text, false)
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func (t *hfTokenizer) Name() string {
	return t.name
}

// Close releases the native tokenizer resources.
func (t *hfTokenizer) Close() error {
	t.tk.Close()
	return nil
}
