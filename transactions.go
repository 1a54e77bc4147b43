package statements

import (
	"errors"
	"fmt"
)

// Side is the debit/credit marker of a transaction.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// ParseSide parses a debit/credit marker. Matching is exact.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Debit:
		return Debit, nil
	case Credit:
		return Credit, nil
	}
	return "", fmt.Errorf("unknown transaction type: %q (want %q or %q)", s, Debit, Credit)
}

func (s Side) String() string { return string(s) }

// Transaction is a single dated posting. Transactions are immutable once
// loaded into a ledger; statements only ever read them.
type Transaction struct {
	Date     Date
	Account  string   // free-text account name, e.g. "Cash"
	Category Category // statement category, from the closed taxonomy
	Amount   Money    // non-negative magnitude; the sign comes from Side
	Side     Side
}

// NewTransaction builds a transaction from already-parsed parts.
func NewTransaction(on Date, account string, category Category, amount Money, side Side) Transaction {
	return Transaction{Date: on, Account: account, Category: category, Amount: amount, Side: side}
}

// Validate checks the transaction for internal consistency.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if _, err := ParseSide(string(t.Side)); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount %s is negative", t.Amount)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s (%s)", t.Date, t.Category, t.Amount, t.Side, t.Account)
}
