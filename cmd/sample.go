package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finlab/statements"
)

// sampleCmd holds the flags for the 'sample' subcommand.
type sampleCmd struct {
	output   string
	currency string
	seed     int64
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "generate a sample transactions file" }
func (*sampleCmd) Usage() string {
	return `fsg sample [-o <output.csv>] [-seed <n>]

  Generate a year of demonstration transactions: weekly revenue and COGS,
  monthly operating expenses, and opening balance sheet positions. The
  output is deterministic for a given seed.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "sample_transactions.csv", "Output CSV path.")
	f.StringVar(&c.currency, "c", defaultCurrency(), "Currency code for amounts.")
	f.Int64Var(&c.seed, "seed", 42, "Random seed.")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := statements.SampleLedger(c.seed, c.currency)

	out, err := os.Create(c.output)
	if err != nil {
		return fail(fmt.Errorf("could not create output file: %w", err))
	}
	defer out.Close()

	if err := statements.EncodeTransactions(out, ledger); err != nil {
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	fmt.Printf("Sample data saved to %s (%d transactions)\n", c.output, ledger.Len())
	return subcommands.ExitSuccess
}
