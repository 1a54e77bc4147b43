package renderer

import (
	"fmt"
	"strings"

	"github.com/finlab/statements"
)

// IncomeStatementMarkdown renders an income statement as a markdown table.
func IncomeStatementMarkdown(s *statements.IncomeStatement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Income Statement — %s\n\n", s.Period)

	t := newTable(&b, "Line Item", "Amount")
	for _, row := range s.Rows {
		label := row.Label
		if row.Kind != statements.RowDetail {
			label = bold(label)
		}
		t.row(label, row.Value.String())
	}
	return b.String()
}
