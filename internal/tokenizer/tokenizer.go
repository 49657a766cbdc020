// Package tokenizer provides the tokenizer boundary for tokenwc: a small
// Encode capability backed either by a shipped TikToken encoding or by a
// user-supplied HuggingFace tokenizer.json file.
package tokenizer

import (
	"fmt"
	"sort"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

func init() {
	// BPE tables ship inside the binary; no network or disk access.
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// Tokenizer converts text into a sequence of token identifiers.
// Implementations are read-only after construction and safe to share
// across every input processed in one run.
type Tokenizer interface {
	Encode(text string) []int
	Name() string
}

// DefaultName is the tokenizer used when none is selected.
const DefaultName = "gpt2"

// shipped maps short tokenizer names to their tiktoken encodings.
var shipped = map[string]string{
	"gpt2":  "r50k_base",
	"gpt3":  "p50k_base",
	"codex": "p50k_base",
	"gpt4":  "cl100k_base",
	"gpt4o": "o200k_base",
}

// ShippedNames returns the sorted short names of the tokenizers bundled
// into the binary.
func ShippedNames() []string {
	names := make([]string, 0, len(shipped))
	for name := range shipped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShippedEncoding returns the tiktoken encoding behind a shipped short
// name, or "" if the name is not shipped.
func ShippedEncoding(name string) string {
	return shipped[name]
}

// tiktokenTokenizer wraps a TikToken encoding.
type tiktokenTokenizer struct {
	name string
	enc  *tiktoken.Tiktoken
}

// FromEncoding creates a tokenizer for a shipped short name (e.g. "gpt2",
// "gpt4") or a raw tiktoken encoding name (e.g. "cl100k_base").
func FromEncoding(name string) (Tokenizer, error) {
	encoding := name
	if e, ok := shipped[name]; ok {
		encoding = e
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return &tiktokenTokenizer{name: name, enc: enc}, nil
}

// Default returns the embedded default tokenizer.
func Default() (Tokenizer, error) {
	return FromEncoding(DefaultName)
}

func (t *tiktokenTokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

func (t *tiktokenTokenizer) Name() string {
	return t.name
}

// LoadError reports a tokenizer definition that is missing, unreadable,
// or malformed. It is fatal to the whole invocation: without a tokenizer
// no input can be counted.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading tokenizer %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
