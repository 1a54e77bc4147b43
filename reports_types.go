package statements

import "github.com/shopspring/decimal"

// RowKind distinguishes detail lines from derived lines, so renderers can
// style subtotals without re-deriving anything.
type RowKind int

const (
	// RowDetail is a line summed directly from transactions.
	RowDetail RowKind = iota
	// RowSubtotal is a line derived from other lines (Gross Profit, EBITDA...).
	RowSubtotal
	// RowTotal is the bottom line of a statement.
	RowTotal
)

// Row is one labeled line of a derived statement. Rows are pure output,
// recomputed on every call.
type Row struct {
	Label string
	Value Money
	Kind  RowKind
}

// Config carries the tunable knobs of the statement builders.
type Config struct {
	// TaxRate, when positive, inserts Pre-tax Income and Tax Expense lines
	// between EBITDA adjustments and Net Income (e.g. 0.25 for 25%).
	TaxRate decimal.Decimal
	// Threshold is the absolute percent-variance ratio above which a
	// variance row is flagged as significant (0.10 for 10%).
	Threshold float64
}

// DefaultThreshold is the significance threshold used when none is configured.
const DefaultThreshold = 0.10

// DefaultConfig returns the default builder configuration: no tax line,
// 10% significance threshold.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// threshold returns the configured threshold, defaulted when unset.
func (c Config) threshold() float64 {
	if c.Threshold == 0 {
		return DefaultThreshold
	}
	return c.Threshold
}
