// Package statements derives standard accounting statements from a ledger
// of dated transactions.
//
// A [Ledger] is loaded once (usually from CSV via [DecodeTransactions]) and
// is read-only afterwards. Three views are derived from it on demand:
//
//   - [NewIncomeStatement] sums a single period's activity into the usual
//     profit-and-loss lines, from Revenue down to Net Income.
//   - [NewBalanceSheet] nets all activity up to a cutoff date into asset,
//     liability and equity sections.
//   - [NewVarianceAnalysis] compares the income statements of two periods
//     line by line, in dollars and percent.
//
// Every builder is a pure function of the ledger and its filter: calling it
// twice yields identical output, and no builder ever mutates the ledger.
// The category taxonomy is a closed set ([ParseCategory] rejects anything
// else) injected into the builders as a [Taxonomy].
//
// Rendering lives elsewhere: package renderer produces markdown tables and
// package xlsx writes a styled spreadsheet from the already-derived rows.
package statements
