package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/smadan/folionews"
	"github.com/smadan/folionews/renderer"
)

// newsCmd holds the flags for the 'news' subcommand.
type newsCmd struct {
	force bool
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "display relevant news for a single symbol" }
func (*newsCmd) Usage() string {
	return `folionews news [-f] <symbol>

  Fetches, filters and scores news for one symbol, served from the cache
  when fresh enough.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "refresh news even when the cache is still fresh")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one symbol\n")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	cache := OpenNewsCache()
	pipeline, err := newPipeline(ctx, cache, c.force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating pipeline: %v\n", err)
		return subcommands.ExitFailure
	}

	report := pipeline.Process(ctx, folionews.Holding{Symbol: symbol})

	if err := SaveNewsCache(cache); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving news cache: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.News(report))
	return subcommands.ExitSuccess
}
