package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finlab/statements"
	"github.com/finlab/statements/renderer"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	file     string
	currency string
	period   string
	taxRate  float64
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "generate the income statement for a period" }
func (*incomeCmd) Usage() string {
	return `fsg income [-f <file>] [-p <period>] [-tax <rate>]

  Generate the income statement for a given year-month (e.g. 2024-03).
  Without -p, the most recent period found in the data is used.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultFile(), "Transactions CSV file.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Currency code for amounts.")
	f.StringVar(&c.period, "p", "", "Period to report on (e.g. 2024-03). Defaults to the latest in the data.")
	f.Float64Var(&c.taxRate, "tax", defaultTaxRate(), "Flat tax rate applied to pre-tax income (0 disables the tax lines).")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.file, c.currency)
	if err != nil {
		return fail(err)
	}

	period, err := resolvePeriod(ledger, c.period)
	if err != nil {
		return fail(err)
	}

	cfg := statements.DefaultConfig()
	cfg.TaxRate = decimal.NewFromFloat(c.taxRate)

	s := statements.NewIncomeStatement(ledger, statements.DefaultTaxonomy(), cfg, period)
	printMarkdown(renderer.IncomeStatementMarkdown(s))
	return subcommands.ExitSuccess
}

// resolvePeriod parses the period flag, defaulting to the newest period
// present in the ledger.
func resolvePeriod(ledger *statements.Ledger, flagValue string) (statements.Period, error) {
	if flagValue != "" {
		period, err := statements.ParsePeriod(flagValue)
		if err != nil {
			return statements.Period{}, fmt.Errorf("parsing period: %w", err)
		}
		return period, nil
	}
	periods := ledger.Periods()
	if len(periods) == 0 {
		return statements.Period{}, fmt.Errorf("no transactions to derive a period from, use -p")
	}
	return periods[len(periods)-1], nil
}
