package statements

// VarianceRow compares one income statement line across two periods.
type VarianceRow struct {
	Label   string
	Current Money
	Prior   Money
	Delta   Money   // Current - Prior
	Pct     Percent // Delta / Prior, undefined when Prior is zero
	Flagged bool    // significant variance, see Config.Threshold
	Kind    RowKind
}

// VarianceAnalysis is the line-by-line comparison of the income statements
// of two periods. Rows are aligned by label; both statements are produced by
// the same builder so the alignment is total.
type VarianceAnalysis struct {
	Current   Period
	Prior     Period
	Threshold float64
	Rows      []VarianceRow
}

// NewVarianceAnalysis builds the income statement for each period and
// computes the dollar and percent variance for every line. When the prior
// value is zero the percent variance is undefined rather than a division by
// zero; such a row is still flagged when the dollar delta is not zero.
func NewVarianceAnalysis(ledger *Ledger, taxonomy Taxonomy, cfg Config, current, prior Period) *VarianceAnalysis {
	cur := NewIncomeStatement(ledger, taxonomy, cfg, current)
	old := NewIncomeStatement(ledger, taxonomy, cfg, prior)

	threshold := cfg.threshold()
	va := &VarianceAnalysis{Current: current, Prior: prior, Threshold: threshold}

	for i, row := range cur.Rows {
		priorValue := old.Rows[i].Value
		delta := row.Value.Sub(priorValue)
		pct := PercentOf(delta, priorValue)

		flagged := pct.Exceeds(threshold)
		if !pct.Defined() && !delta.IsZero() {
			// A line appearing out of nowhere is always significant.
			flagged = true
		}

		va.Rows = append(va.Rows, VarianceRow{
			Label:   row.Label,
			Current: row.Value,
			Prior:   priorValue,
			Delta:   delta,
			Pct:     pct,
			Flagged: flagged,
			Kind:    row.Kind,
		})
	}
	return va
}

// Row returns the variance row with the given label.
func (va *VarianceAnalysis) Row(label string) (VarianceRow, bool) {
	for _, row := range va.Rows {
		if row.Label == label {
			return row, true
		}
	}
	return VarianceRow{}, false
}

// Flagged returns the rows whose variance exceeds the threshold.
func (va *VarianceAnalysis) Flagged() []VarianceRow {
	var rows []VarianceRow
	for _, row := range va.Rows {
		if row.Flagged {
			rows = append(rows, row)
		}
	}
	return rows
}
