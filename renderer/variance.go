package renderer

import (
	"fmt"
	"strings"

	"github.com/finlab/statements"
)

// VarianceMarkdown renders a variance analysis as a markdown table. Rows
// whose variance exceeds the threshold are marked in the last column; an
// undefined percent (zero prior) renders as "n/a".
func VarianceMarkdown(va *statements.VarianceAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Variance Analysis — %s vs %s\n\n", va.Prior, va.Current)

	t := newTable(&b, "Line Item", "Prior", "Current", "Variance $", "Variance %", "")
	for _, row := range va.Rows {
		label := row.Label
		if row.Kind != statements.RowDetail {
			label = bold(label)
		}
		flag := ""
		if row.Flagged {
			flag = "⚠"
		}
		t.row(label, row.Prior.String(), row.Current.String(), row.Delta.SignedString(), row.Pct.SignedString(), flag)
	}
	fmt.Fprintf(&b, "\nSignificance threshold: %.0f%%.\n", va.Threshold*100)
	return b.String()
}
