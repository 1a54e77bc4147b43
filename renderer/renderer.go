// Package renderer turns derived statements into markdown. It consumes only
// the row sequences produced by the statements package and never recomputes
// a value.
package renderer

import (
	"fmt"
	"io"
	"strings"
)

// table writes a markdown table row by row.
type table struct {
	w io.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{w: w}
	t.row(headers...)
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	t.row(separators...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintf(t.w, "| %s |\n", strings.Join(cells, " | "))
}

// bold wraps a label in markdown emphasis, used for subtotal and total rows.
func bold(label string) string { return "**" + label + "**" }
