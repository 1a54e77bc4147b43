package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/finlab/statements"
	"github.com/finlab/statements/renderer"
)

// varianceCmd holds the flags for the 'variance' subcommand.
type varianceCmd struct {
	file      string
	currency  string
	period    string
	prior     string
	threshold float64
}

func (*varianceCmd) Name() string     { return "variance" }
func (*varianceCmd) Synopsis() string { return "compare the income statements of two periods" }
func (*varianceCmd) Usage() string {
	return `fsg variance [-f <file>] [-p <period>] [-prior <period>] [-threshold <ratio>]

  Compare the income statement of a period against a prior period, line by
  line, in dollars and percent. Without -p the latest period in the data is
  used; without -prior, the month before -p.
`
}

func (c *varianceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultFile(), "Transactions CSV file.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Currency code for amounts.")
	f.StringVar(&c.period, "p", "", "Current period (e.g. 2024-03). Defaults to the latest in the data.")
	f.StringVar(&c.prior, "prior", "", "Prior period to compare against. Defaults to the month before the current period.")
	f.Float64Var(&c.threshold, "threshold", defaultThreshold(), "Significance threshold as a ratio (0.1 flags changes beyond 10%).")
}

func (c *varianceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	}

	cfg := statements.DefaultConfig()
	cfg.Threshold = c.threshold

	va := statements.NewVarianceAnalysis(ledger, statements.DefaultTaxonomy(), cfg, current, prior)
	printMarkdown(renderer.VarianceMarkdown(va))
	return subcommands.ExitSuccess
}
