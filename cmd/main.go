// Package cmd implements the CLI application to display the portfolio
// news dashboard.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/smadan/folionews"
	"github.com/smadan/folionews/brave"
	"github.com/smadan/folionews/oracle"
	"github.com/smadan/folionews/yfin"
)

// Commands lists the subcommands for a main package to register.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&newsCmd{},
	&refreshCmd{},
	&headlinesCmd{},
	&holdingsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings", "holdings.csv", "Path to the broker holdings export (CSV)")
var cacheFile = flag.String("cache-file", "news-cache.jsonl", "Path to the news cache file (JSONL format)")
var ttlFlag = flag.Duration("ttl", folionews.DefaultTTL, "Freshness window for cached news")
var currencyFlag = flag.String("currency", folionews.DefaultCurrency, "Currency the holdings are priced in")
var suffixFlag = flag.String("suffix", ".NS", "Exchange suffix appended to symbols for profile and price lookups")

// OpenHoldings loads the holdings export from the app holdings path.
func OpenHoldings() ([]folionews.Holding, error) {
	return folionews.LoadHoldings(*holdingsFile, *currencyFlag)
}

// OpenNewsCache loads the news cache from the app cache path. A missing or
// corrupt cache is not fatal: the pipeline runs fresh for all symbols.
func OpenNewsCache() *folionews.NewsCache {
	c, err := folionews.LoadNewsCache(*cacheFile)
	if err != nil {
		log.Println("warning, cannot read the news cache, starting from an empty one:", err)
		return folionews.NewNewsCache()
	}
	return c
}

// SaveNewsCache persists the news cache into the app cache path.
func SaveNewsCache(c *folionews.NewsCache) error {
	return folionews.SaveNewsCache(*cacheFile, c)
}

// newPipeline assembles the production pipeline: Gemini oracle, Brave news
// search, Yahoo Finance profiles.
func newPipeline(ctx context.Context, cache *folionews.NewsCache, force bool) (*folionews.Pipeline, error) {
	o, err := oracle.NewGemini(ctx)
	if err != nil {
		return nil, err
	}
	return &folionews.Pipeline{
		Oracle:   o,
		Searcher: brave.NewClient(brave.APIKey()),
		Profiles: yfin.NewClient(*suffixFlag),
		Cache:    cache,
		TTL:      *ttlFlag,
		Force:    force,
	}, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is not happy.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
