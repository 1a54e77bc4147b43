package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/finlab/statements"
	"github.com/finlab/statements/renderer"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	file     string
	currency string
	asOf     string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "generate the balance sheet as of a date" }
func (*balanceCmd) Usage() string {
	return `fsg balance [-f <file>] [-d <date>]

  Generate the balance sheet, cumulating all transactions up to and
  including the given date. Without -d, the whole ledger is included.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultFile(), "Transactions CSV file.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Currency code for amounts.")
	f.StringVar(&c.asOf, "d", "", "As-of date (e.g. 2024-03-31). Defaults to all data.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.file, c.currency)
	if err != nil {
		return fail(err)
	}

	var asOf statements.Date
	if c.asOf != "" {
		asOf, err = statements.ParseDate(c.asOf)
		if err != nil {
			return fail(fmt.Errorf("parsing as-of date: %w", err))
		}
	}

	b := statements.NewBalanceSheet(ledger, statements.DefaultTaxonomy(), asOf)
	printMarkdown(renderer.BalanceSheetMarkdown(b))
	return subcommands.ExitSuccess
}
