package statements

// AccountLine is the cumulative value of one account within a balance sheet
// section.
type AccountLine struct {
	Account string
	Value   Money
}

// BalanceSection groups the accounts of one balance sheet bucket.
type BalanceSection struct {
	Label    string
	Category Category
	Accounts []AccountLine
	Total    Money
}

// BalanceSheet is the cumulative point-in-time view of a ledger.
//
// Sign convention (normal balance): a debit increases an Asset account and
// decreases a Liability or Equity account; a credit does the opposite. The
// accounting identity Assets = Liabilities + Equity is reported through
// Balanced and Difference but never enforced: lopsided input still produces
// a statement.
type BalanceSheet struct {
	AsOf        Date // zero means the whole ledger
	Assets      BalanceSection
	Liabilities BalanceSection
	Equity      BalanceSection
}

// NewBalanceSheet aggregates all transactions dated on or before asOf into
// asset, liability and equity sections. A zero asOf includes the whole ledger.
func NewBalanceSheet(ledger *Ledger, taxonomy Taxonomy, asOf Date) *BalanceSheet {
	return &BalanceSheet{
		AsOf:        asOf,
		Assets:      balanceSection(ledger, taxonomy, "Assets", BucketAsset, Debit, asOf),
		Liabilities: balanceSection(ledger, taxonomy, "Liabilities", BucketLiability, Credit, asOf),
		Equity:      balanceSection(ledger, taxonomy, "Equity", BucketEquity, Credit, asOf),
	}
}

// balanceSection sums one bucket, netting each transaction against the
// bucket's normal side: same side adds, opposite side subtracts.
func balanceSection(ledger *Ledger, taxonomy Taxonomy, label string, bucket Bucket, normal Side, asOf Date) BalanceSection {
	section := BalanceSection{Label: label}
	cutoff := OnOrBefore(asOf)

	for _, c := range taxonomy.Categories(bucket) {
		section.Category = c
		for _, account := range ledger.Accounts(c) {
			var value Money
			for _, tx := range ledger.Transactions(cutoff, ByCategory(c), byAccount(account)) {
				if tx.Side == normal {
					value = value.Add(tx.Amount)
				} else {
					value = value.Sub(tx.Amount)
				}
			}
			section.Accounts = append(section.Accounts, AccountLine{Account: account, Value: value})
			section.Total = section.Total.Add(value)
		}
	}
	return section
}

func byAccount(account string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Account == account }
}

// TotalAssets returns the asset section total.
func (b *BalanceSheet) TotalAssets() Money { return b.Assets.Total }

// TotalLiabilitiesAndEquity returns the combined liability and equity totals.
func (b *BalanceSheet) TotalLiabilitiesAndEquity() Money {
	return b.Liabilities.Total.Add(b.Equity.Total)
}

// Difference returns Assets - (Liabilities + Equity). Zero when the sheet
// balances.
func (b *BalanceSheet) Difference() Money {
	return b.TotalAssets().Sub(b.TotalLiabilitiesAndEquity())
}

// Balanced reports whether the accounting identity holds for this sheet.
func (b *BalanceSheet) Balanced() bool { return b.Difference().IsZero() }
