package statements

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order. Once loaded it
// is read-only: every statement is a pure function of its content.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in chronological
// order. When filters are given, a transaction must satisfy all of them.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Sum adds up the amounts of all transactions satisfying the filters.
func (l *Ledger) Sum(filters ...func(Transaction) bool) Money {
	var total Money
	for _, tx := range l.Transactions(filters...) {
		total = total.Add(tx.Amount)
	}
	return total
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(c Category) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == c }
}

// InPeriod returns a predicate that keeps transactions dated within the period.
func InPeriod(p Period) func(Transaction) bool {
	return func(tx Transaction) bool { return p.Contains(tx.Date) }
}

// OnOrBefore returns a predicate that keeps transactions dated up to and
// including the cutoff. A zero cutoff keeps everything.
func OnOrBefore(cutoff Date) func(Transaction) bool {
	return func(tx Transaction) bool { return cutoff.IsZero() || !tx.Date.After(cutoff) }
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Periods returns the distinct year-months present in the ledger, in
// chronological order.
func (l *Ledger) Periods() []Period {
	visited := make(map[Period]struct{})
	for _, tx := range l.transactions {
		visited[PeriodOf(tx.Date)] = struct{}{}
	}
	periods := slices.Collect(maps.Keys(visited))
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	return periods
}

// Accounts returns the distinct account names used with the given category,
// sorted alphabetically.
func (l *Ledger) Accounts(c Category) []string {
	visited := make(map[string]struct{})
	for _, tx := range l.transactions {
		if tx.Category == c {
			visited[tx.Account] = struct{}{}
		}
	}
	accounts := slices.Collect(maps.Keys(visited))
	slices.Sort(accounts)
	return accounts
}
