// Package report resolves the inputs for one invocation, aggregates
// their statistics with per-input error isolation, and renders the
// wc-style result table.
package report

import (
	"io"

	"github.com/rickcrawford/tokenwc/internal/stats"
	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

// Kind identifies where an input's bytes come from.
type Kind int

const (
	KindFile Kind = iota
	KindStdin
)

// Input is one source of bytes to count: a named file or stdin.
type Input struct {
	Kind  Kind
	Path  string
	Label string
}

// ResolveInputs maps command-line arguments to inputs. No arguments
// means stdin (with an empty label); a literal "-" also selects stdin
// and is labelled "-". Files keep argument order.
func ResolveInputs(args []string) []Input {
	if len(args) == 0 {
		return []Input{{Kind: KindStdin}}
	}
	inputs := make([]Input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, Input{Kind: KindStdin, Label: "-"})
			continue
		}
		inputs = append(inputs, Input{Kind: KindFile, Path: arg, Label: arg})
	}
	return inputs
}

// Row is the outcome for one input: either stats or an error.
type Row struct {
	Label string
	Stats stats.TokenStats
	Err   error
}

// Report is the ordered outcome of one invocation. Total is set only
// when more than one input succeeded.
type Report struct {
	Rows  []Row
	Total *stats.TokenStats
}

// Failed reports whether any input could not be counted.
func (r *Report) Failed() bool {
	for _, row := range r.Rows {
		if row.Err != nil {
			return true
		}
	}
	return false
}

// Build processes each input in order. A failure on one input is
// recorded on its row and does not stop the remaining inputs. stdin is
// drained at most once; inputs of kind stdin read from the given
// reader.
func Build(inputs []Input, tk tokenizer.Tokenizer, stdin io.Reader) Report {
	rep := Report{Rows: make([]Row, 0, len(inputs))}

	var total stats.TokenStats
	succeeded := 0

	for _, in := range inputs {
		var st stats.TokenStats
		var err error
		switch in.Kind {
		case KindStdin:
			st, err = stats.CountReader(stdin, tk)
		default:
			st, err = stats.CountFile(in.Path, tk)
		}

		if err != nil {
			rep.Rows = append(rep.Rows, Row{Label: in.Label, Err: err})
			continue
		}
		rep.Rows = append(rep.Rows, Row{Label: in.Label, Stats: st})
		total.Add(st)
		succeeded++
	}

	if succeeded > 1 {
		rep.Total = &total
	}
	return rep
}
