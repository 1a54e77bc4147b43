package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/finlab/statements"
	"github.com/finlab/statements/renderer"
	"github.com/finlab/statements/xlsx"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file      string
	output    string
	currency  string
	period    string
	prior     string
	threshold float64
	taxRate   float64
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all statements to a styled spreadsheet" }
func (*exportCmd) Usage() string {
	return `fsg export [-f <file>] [-o <output.xlsx>] [-p <period>] [-prior <period>]

  Derive the income statement, balance sheet and variance analysis, and
  write them as three styled sheets of one .xlsx workbook. Without -p and
  -prior, the two most recent periods in the data are compared.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultFile(), "Transactions CSV file.")
	f.StringVar(&c.output, "o", defaultOutput(), "Output workbook path.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Currency code for amounts.")
	f.StringVar(&c.period, "p", "", "Current period. Defaults to the latest in the data.")
	f.StringVar(&c.prior, "prior", "", "Prior period for the variance sheet. Defaults to the month before the current period.")
	f.Float64Var(&c.threshold, "threshold", defaultThreshold(), "Variance significance threshold as a ratio.")
	f.Float64Var(&c.taxRate, "tax", defaultTaxRate(), "Flat tax rate applied to pre-tax income (0 disables the tax lines).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(c.file, c.currency)
	if err != nil {
		return fail(err)
	}

	current, err := resolvePeriod(ledger, c.period)
	if err != nil {
		return fail(err)
	}
	prior := current.Prev()
	if c.prior != "" {
		prior, err = statements.ParsePeriod(c.prior)
		if err != nil {
			return fail(fmt.Errorf("parsing prior period: %w", err))
		}
	} else if periods := ledger.Periods(); len(periods) > 1 {
		// Mirror the on-screen default: compare the two latest periods.
		if last := periods[len(periods)-1]; last == current {
			prior = periods[len(periods)-2]
		}
	}

	cfg := statements.DefaultConfig()
	cfg.Threshold = c.threshold
	cfg.TaxRate = decimal.NewFromFloat(c.taxRate)
	taxonomy := statements.DefaultTaxonomy()

	is := statements.NewIncomeStatement(ledger, taxonomy, cfg, current)
	bs := statements.NewBalanceSheet(ledger, taxonomy, statements.Date{})
	va := statements.NewVarianceAnalysis(ledger, taxonomy, cfg, current, prior)

	out, err := os.Create(c.output)
	if err != nil {
		return fail(fmt.Errorf("could not create output file: %w", err))
	}
	defer out.Close()

	if err := xlsx.Write(out, is, bs, va); err != nil {
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	printMarkdown(renderer.IncomeStatementMarkdown(is))
	fmt.Printf("Financial statements exported to %s\n", c.output)
	return subcommands.ExitSuccess
}
