package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the holdings from the broker export" }
func (*holdingsCmd) Usage() string {
	return `folionews holdings

  Lists the holdings parsed from the broker CSV export, to check the file
  is read correctly.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := OpenHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, h := range holdings {
		fmt.Printf("%-12s %12s @ %s\n", h.Symbol, h.Quantity, h.AvgPrice)
	}
	return subcommands.ExitSuccess
}
