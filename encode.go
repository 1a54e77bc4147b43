package statements

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// The canonical CSV column set. The header row is required; column order is free.
var csvColumns = []string{"date", "account", "category", "amount", "type"}

// DecodeTransactions reads transactions from CSV data and returns a sorted
// Ledger. The first row must be a header naming the columns date, account,
// category, amount and type, in any order. Amounts are given the provided
// currency. Any malformed row aborts the decode with an error carrying the
// line number.
func DecodeTransactions(r io.Reader, currency string) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range csvColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q in CSV header", name)
		}
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tx, err := decodeRecord(record, cols, currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

func decodeRecord(record []string, cols map[string]int, currency string) (Transaction, error) {
	field := func(name string) string { return strings.TrimSpace(record[cols[name]]) }

	on, err := ParseDate(field("date"))
	if err != nil {
		return Transaction{}, err
	}
	category, err := ParseCategory(field("category"))
	if err != nil {
		return Transaction{}, err
	}
	value, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", field("amount"), err)
	}
	side, err := ParseSide(field("type"))
	if err != nil {
		return Transaction{}, err
	}

	tx := NewTransaction(on, field("account"), category, M(value, currency), side)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// EncodeTransactions writes the ledger's transactions to w in the canonical
// CSV format, oldest first.
func EncodeTransactions(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, tx := range ledger.Transactions() {
		record := []string{
			tx.Date.String(),
			tx.Account,
			string(tx.Category),
			tx.Amount.Amount().String(),
			string(tx.Side),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write transaction on %s: %w", tx.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
