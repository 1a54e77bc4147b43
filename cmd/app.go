// Package cmd implements the CLI application to generate financial statements.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/finlab/statements"
)

// Register registers all fsg subcommands.
// A main package calls LoadEnv() and Register(), then Execute() on the
// user-selected command.
func Register(c *subcommands.Commander) {
	c.Register(subcommands.HelpCommand(), "")
	c.Register(subcommands.CommandsCommand(), "")

	c.Register(&incomeCmd{}, "statements")
	c.Register(&balanceCmd{}, "statements")
	c.Register(&varianceCmd{}, "statements")
	c.Register(&exportCmd{}, "statements")

	c.Register(&sampleCmd{}, "data")
}

// LoadEnv loads flag defaults from a local .env file. A missing file is not
// an error; anything else is only worth a warning.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load .env: %v", err)
	}
}

// envOr returns the value of the environment variable, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloat is envOr for float-valued variables. An unparseable value falls
// back with a warning instead of failing the whole command.
func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("warning: ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return f
}

// Environment variables providing flag defaults.
const (
	envFile      = "FSG_FILE"
	envOutput    = "FSG_OUTPUT"
	envCurrency  = "FSG_CURRENCY"
	envThreshold = "FSG_THRESHOLD"
	envTaxRate   = "FSG_TAX_RATE"
)

func defaultFile() string      { return envOr(envFile, "transactions.csv") }
func defaultOutput() string    { return envOr(envOutput, "financial_statements.xlsx") }
func defaultCurrency() string  { return envOr(envCurrency, "USD") }
func defaultThreshold() float64 { return envFloat(envThreshold, statements.DefaultThreshold) }
func defaultTaxRate() float64  { return envFloat(envTaxRate, 0) }

// loadLedger reads and decodes the transactions file.
func loadLedger(file, currency string) (*statements.Ledger, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open transactions file: %w", err)
	}
	defer f.Close()

	ledger, err := statements.DecodeTransactions(f, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", file, err)
	}
	return ledger, nil
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
