package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/smadan/folionews/renderer"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	force bool
}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "display the portfolio dashboard with prices and recent news"
}
func (*dashboardCmd) Usage() string {
	return `folionews dashboard [-f]

  Displays, for every holding, the current price, recent performance and
  relevant news with a sentiment score. News is served from the cache when
  fresh enough.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "refresh news even when the cache is still fresh")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := OpenHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	cache := OpenNewsCache()
	pipeline, err := newPipeline(ctx, cache, c.force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating pipeline: %v\n", err)
		return subcommands.ExitFailure
	}

	reports := pipeline.ProcessAll(ctx, holdings)

	if err := SaveNewsCache(cache); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving news cache: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Dashboard(reports))
	return subcommands.ExitSuccess
}
