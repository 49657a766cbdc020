// Package stats computes token, line, and byte counts for text inputs.
package stats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

// ErrInvalidUTF8 marks input whose bytes are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// TokenStats holds the counts for one input.
type TokenStats struct {
	Tokens int
	Lines  int
	Bytes  int
}

// Add accumulates another input's counts into s.
func (s *TokenStats) Add(other TokenStats) {
	s.Tokens += other.Tokens
	s.Lines += other.Lines
	s.Bytes += other.Bytes
}

// CountTokens returns the number of tokens the tokenizer produces for
// text. Empty text yields 0.
func CountTokens(text string, tk tokenizer.Tokenizer) int {
	return len(tk.Encode(text))
}

// CountText computes full statistics for text that is already known to
// be valid UTF-8. Lines counts line terminators, so "a\nb" is 1 line.
func CountText(text string, tk tokenizer.Tokenizer) TokenStats {
	return TokenStats{
		Tokens: CountTokens(text, tk),
		Lines:  strings.Count(text, "\n"),
		Bytes:  len(text),
	}
}

// CountBytes computes statistics for a raw byte buffer. It fails with
// ErrInvalidUTF8 when the buffer is not valid UTF-8 text; no partial
// stats are reported for such an input.
func CountBytes(data []byte, tk tokenizer.Tokenizer) (TokenStats, error) {
	if len(data) == 0 {
		return TokenStats{}, nil
	}
	if !utf8.Valid(data) {
		return TokenStats{}, ErrInvalidUTF8
	}
	return CountText(string(data), tk), nil
}

// CountFile fully reads the file at path and computes its statistics.
func CountFile(path string, tk tokenizer.Tokenizer) (TokenStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TokenStats{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return CountBytes(data, tk)
}

// CountReader drains r (e.g. stdin) and computes statistics for the
// bytes read.
func CountReader(r io.Reader, tk tokenizer.Tokenizer) (TokenStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return TokenStats{}, fmt.Errorf("reading input: %w", err)
	}
	return CountBytes(data, tk)
}
