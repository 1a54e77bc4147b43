package statements

import (
	"math/rand"
	"time"
)

// SampleLedger generates a year of demonstration data: weekly revenue and
// cost-of-goods postings, monthly operating expenses, and a set of opening
// balance sheet positions. The generator is deterministic for a given seed.
func SampleLedger(seed int64, currency string) *Ledger {
	rng := rand.New(rand.NewSource(seed))
	between := func(lo, hi float64) Money {
		return M(lo+rng.Float64()*(hi-lo), currency)
	}

	ledger := NewLedger()
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.December, 31)

	for on := start; !on.After(end); on = on.Add(7) {
		ledger.Append(
			NewTransaction(on, "Cash", CatRevenue, between(50_000, 100_000), Credit),
			NewTransaction(on, "Inventory", CatCOGS, between(20_000, 40_000), Debit),
		)
	}

	for on := start; !on.After(end); on = on.Add(30) {
		ledger.Append(
			NewTransaction(on, "Cash", CatSalesMarketing, between(15_000, 25_000), Debit),
			NewTransaction(on, "Cash", CatGeneralAdmin, between(10_000, 20_000), Debit),
			NewTransaction(on, "Cash", CatResearchDev, between(8_000, 15_000), Debit),
		)
	}

	// Opening balance sheet positions.
	ledger.Append(
		NewTransaction(start, "Cash", CatAsset, M(500_000, currency), Debit),
		NewTransaction(start, "Accounts Receivable", CatAsset, M(150_000, currency), Debit),
		NewTransaction(start, "Inventory", CatAsset, M(100_000, currency), Debit),
		NewTransaction(start, "PP&E", CatAsset, M(300_000, currency), Debit),
		NewTransaction(start, "Accounts Payable", CatLiability, M(80_000, currency), Credit),
		NewTransaction(start, "Long-term Debt", CatLiability, M(200_000, currency), Credit),
		NewTransaction(start, "Common Stock", CatEquity, M(500_000, currency), Credit),
		NewTransaction(start, "Retained Earnings", CatEquity, M(270_000, currency), Credit),
	)

	return ledger
}
