package statements

// Labels of the derived income statement lines. Variance analysis aligns
// rows across periods by these labels.
const (
	LineRevenue         = "Revenue"
	LineCOGS            = "Cost of Goods Sold"
	LineGrossProfit     = "Gross Profit"
	LineTotalOpEx       = "Total Operating Expenses"
	LineEBITDA          = "EBITDA"
	LineOtherIncome     = "Other Income"
	LineInterestExpense = "Interest Expense"
	LinePretaxIncome    = "Pre-tax Income"
	LineTaxExpense      = "Tax Expense"
	LineNetIncome       = "Net Income"
)

// IncomeStatement is the derived profit-and-loss view of a ledger for a
// single period. It is a pure function of (ledger, taxonomy, config, period):
// building it twice on an unmodified ledger yields identical rows.
type IncomeStatement struct {
	Period Period
	Rows   []Row
}

// NewIncomeStatement aggregates the ledger's transactions for the given
// period into an ordered income statement. A period with no transactions
// yields zero-valued lines, not an error.
func NewIncomeStatement(ledger *Ledger, taxonomy Taxonomy, cfg Config, period Period) *IncomeStatement {
	in := InPeriod(period)
	sum := func(c Category) Money { return ledger.Sum(in, ByCategory(c)) }

	s := &IncomeStatement{Period: period}

	var revenue, cogs Money
	for _, c := range taxonomy.Categories(BucketRevenue) {
		revenue = revenue.Add(sum(c))
	}
	for _, c := range taxonomy.Categories(BucketCOGS) {
		cogs = cogs.Add(sum(c))
	}
	grossProfit := revenue.Sub(cogs)
	s.append(LineRevenue, revenue, RowDetail)
	s.append(LineCOGS, cogs, RowDetail)
	s.append(LineGrossProfit, grossProfit, RowSubtotal)

	var totalOpEx Money
	for _, c := range taxonomy.Categories(BucketOperating) {
		line := sum(c)
		totalOpEx = totalOpEx.Add(line)
		s.append(string(c), line, RowDetail)
	}
	ebitda := grossProfit.Sub(totalOpEx)
	s.append(LineTotalOpEx, totalOpEx, RowSubtotal)
	s.append(LineEBITDA, ebitda, RowSubtotal)

	var otherIncome, interest Money
	for _, c := range taxonomy.Categories(BucketOtherIncome) {
		otherIncome = otherIncome.Add(sum(c))
	}
	for _, c := range taxonomy.Categories(BucketInterestExpense) {
		interest = interest.Add(sum(c))
	}
	s.append(LineOtherIncome, otherIncome, RowDetail)
	s.append(LineInterestExpense, interest, RowDetail)

	netIncome := ebitda.Add(otherIncome).Sub(interest)
	if cfg.TaxRate.IsPositive() {
		pretax := netIncome
		tax := pretax.Mul(cfg.TaxRate)
		netIncome = pretax.Sub(tax)
		s.append(LinePretaxIncome, pretax, RowSubtotal)
		s.append(LineTaxExpense, tax, RowDetail)
	}
	s.append(LineNetIncome, netIncome, RowTotal)

	return s
}

func (s *IncomeStatement) append(label string, value Money, kind RowKind) {
	s.Rows = append(s.Rows, Row{Label: label, Value: value, Kind: kind})
}

// Value returns the value of the line with the given label.
func (s *IncomeStatement) Value(label string) (Money, bool) {
	for _, row := range s.Rows {
		if row.Label == label {
			return row.Value, true
		}
	}
	return Money{}, false
}

// NetIncome returns the statement's bottom line.
func (s *IncomeStatement) NetIncome() Money {
	for _, row := range s.Rows {
		if row.Kind == RowTotal {
			return row.Value
		}
	}
	return Money{}
}
