//go:build !cgo

package tokenizer

import "errors"

var errNoCgo = errors.New("built without cgo: HuggingFace tokenizer.json support unavailable, use a shipped tokenizer")

// FromFile loads a HuggingFace tokenizer.json definition from disk.
// This build was compiled without cgo, so it always fails.
func FromFile(path string) (Tokenizer, error) {
	return nil, &LoadError{Source: path, Err: errNoCgo}
}

// FromBytes constructs a tokenizer from an in-memory tokenizer.json
// definition. This build was compiled without cgo, so it always fails.
func FromBytes(data []byte) (Tokenizer, error) {
	return nil, &LoadError{Source: "embedded", Err: errNoCgo}
}
