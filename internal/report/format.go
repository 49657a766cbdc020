package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rickcrawford/tokenwc/internal/stats"
)

// Columns selects which counts are printed.
type Columns struct {
	Tokens bool
	Lines  bool
	Bytes  bool
}

// SelectColumns applies the flag semantics: when nothing is requested
// every column is shown, otherwise only the requested ones.
func SelectColumns(tokensOnly, lines, bytes bool) Columns {
	nothing := !tokensOnly && !lines && !bytes
	return Columns{
		Tokens: tokensOnly || nothing,
		Lines:  lines || nothing,
		Bytes:  bytes || nothing,
	}
}

// FormatStats renders one row: right-aligned fixed-width counts followed
// by the label, if any.
func (c Columns) FormatStats(st stats.TokenStats, label string) string {
	var parts []string
	if c.Tokens {
		parts = append(parts, fmt.Sprintf("%8d", st.Tokens))
	}
	if c.Lines {
		parts = append(parts, fmt.Sprintf("%8d", st.Lines))
	}
	if c.Bytes {
		parts = append(parts, fmt.Sprintf("%8d", st.Bytes))
	}

	counts := strings.Join(parts, " ")
	if label == "" {
		return counts
	}
	return counts + " " + label
}

// Render writes successful rows and the optional total row to out, and
// one line per failed input to errOut.
func Render(out, errOut io.Writer, rep Report, cols Columns) {
	for _, row := range rep.Rows {
		if row.Err != nil {
			label := row.Label
			if label == "" {
				label = "stdin"
			}
			fmt.Fprintf(errOut, "tokenwc: %s: %v\n", label, row.Err)
			continue
		}
		fmt.Fprintln(out, cols.FormatStats(row.Stats, row.Label))
	}
	if rep.Total != nil {
		fmt.Fprintln(out, cols.FormatStats(*rep.Total, "total"))
	}
}
