package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// refreshCmd holds the flags for the 'refresh' subcommand.
type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh the news cache for all holdings" }
func (*refreshCmd) Usage() string {
	return `folionews refresh

  Runs the full news pipeline for every holding, ignoring cache freshness,
  and saves the result. Useful from a cron job to keep the dashboard fast.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := OpenHoldings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	cache := OpenNewsCache()
	pipeline, err := newPipeline(ctx, cache, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating pipeline: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, r := range pipeline.ProcessAll(ctx, holdings) {
		fmt.Printf("%s: %d articles\n", r.Symbol, len(r.Articles))
	}

	if err := SaveNewsCache(cache); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving news cache: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
