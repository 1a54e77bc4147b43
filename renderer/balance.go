package renderer

import (
	"fmt"
	"strings"

	"github.com/finlab/statements"
)

// BalanceSheetMarkdown renders a balance sheet as a markdown table, one
// section per bucket with per-account lines and section totals. An
// unbalanced sheet gets an explicit mismatch line rather than an error.
func BalanceSheetMarkdown(b *statements.BalanceSheet) string {
	var sb strings.Builder
	if b.AsOf.IsZero() {
		fmt.Fprintf(&sb, "# Balance Sheet\n\n")
	} else {
		fmt.Fprintf(&sb, "# Balance Sheet — as of %s\n\n", b.AsOf)
	}

	t := newTable(&sb, "Line Item", "Amount")
	writeSection(t, b.Assets)
	t.row(bold("Total Assets"), b.TotalAssets().String())
	writeSection(t, b.Liabilities)
	writeSection(t, b.Equity)
	t.row(bold("Total Liabilities & Equity"), b.TotalLiabilitiesAndEquity().String())

	if !b.Balanced() {
		fmt.Fprintf(&sb, "\nAssets differ from Liabilities + Equity by %s.\n", b.Difference())
	}
	return sb.String()
}

func writeSection(t *table, section statements.BalanceSection) {
	for _, line := range section.Accounts {
		t.row(line.Account, line.Value.String())
	}
	t.row(bold("Total "+section.Label), section.Total.String())
}
