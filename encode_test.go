package statements

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeTransactions(t *testing.T) {
	csv := `date,account,category,amount,type
2024-01-15,Cash,Revenue,50000,credit
2024-01-15,Inventory,COGS,20000,debit
2024-01-20,Cash,Sales & Marketing,15000.50,debit
`
	ledger, err := DecodeTransactions(strings.NewReader(csv), "USD")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if got := ledger.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	var first Transaction
	for _, tx := range ledger.Transactions() {
		first = tx
		break
	}
	want := NewTransaction(NewDate(2024, time.January, 15), "Cash", CatRevenue, M(50_000, "USD"), Credit)
	if first.Date != want.Date || first.Account != want.Account ||
		first.Category != want.Category || first.Side != want.Side || !first.Amount.Equal(want.Amount) {
		t.Errorf("first transaction = %v, want %v", first, want)
	}
}

func TestDecodeTransactionsColumnOrder(t *testing.T) {
	// The header decides the column mapping, not the column position.
	csv := `type,amount,category,account,date
credit,50000,Revenue,Cash,2024-01-15
`
	ledger, err := DecodeTransactions(strings.NewReader(csv), "USD")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if got := ledger.Sum(ByCategory(CatRevenue)); !got.Equal(M(50_000, "USD")) {
		t.Errorf("Sum(Revenue) = %v", got)
	}
}

func TestDecodeTransactionsErrors(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{
			name: "missing column",
			csv:  "date,account,category,amount\n2024-01-15,Cash,Revenue,50000\n",
		},
		{
			name: "bad date",
			csv:  "date,account,category,amount,type\n15/01/2024,Cash,Revenue,50000,credit\n",
		},
		{
			name: "bad amount",
			csv:  "date,account,category,amount,type\n2024-01-15,Cash,Revenue,fifty,credit\n",
		},
		{
			name: "bad type",
			csv:  "date,account,category,amount,type\n2024-01-15,Cash,Revenue,50000,deposit\n",
		},
		{
			name: "unknown category",
			csv:  "date,account,category,amount,type\n2024-01-15,Cash,Misc,50000,credit\n",
		},
		{
			name: "negative amount",
			csv:  "date,account,category,amount,type\n2024-01-15,Cash,Revenue,-50000,credit\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeTransactions(strings.NewReader(tc.csv), "USD"); err == nil {
				t.Error("DecodeTransactions() should fail")
			}
		})
	}
}

func TestDecodeTransactionsEmpty(t *testing.T) {
	ledger, err := DecodeTransactions(strings.NewReader(""), "USD")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
}

func TestEncodeTransactions(t *testing.T) {
	ledger := testLedger()

	var b strings.Builder
	if err := EncodeTransactions(&b, ledger); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}

	decoded, err := DecodeTransactions(strings.NewReader(b.String()), "USD")
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("round trip lost transactions: %d != %d", decoded.Len(), ledger.Len())
	}
	if got, want := decoded.Sum(ByCategory(CatRevenue)), ledger.Sum(ByCategory(CatRevenue)); !got.Equal(want) {
		t.Errorf("round trip revenue = %v, want %v", got, want)
	}
}
