package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/smadan/folionews/brave"
	"github.com/smadan/folionews/renderer"
)

// headlinesCmd holds the flags for the 'headlines' subcommand.
type headlinesCmd struct {
	topic   string
	country string
	lang    string
	count   int
}

func (*headlinesCmd) Name() string     { return "headlines" }
func (*headlinesCmd) Synopsis() string { return "display top market headlines" }
func (*headlinesCmd) Usage() string {
	return `folionews headlines [-topic <topic>] [-country <cc>] [-n <count>]

  Displays the current top business headlines, independent of holdings.
`
}

func (c *headlinesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.topic, "topic", "India business finance market", "Topic to search headlines for")
	f.StringVar(&c.country, "country", "in", "Country code for the headlines")
	f.StringVar(&c.lang, "lang", "en", "Language code for the headlines")
	f.IntVar(&c.count, "n", 10, "Number of headlines to display")
}

func (c *headlinesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := brave.NewClient(brave.APIKey())
	articles, err := client.TopHeadlines(ctx, c.topic, c.country, c.lang, c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching headlines: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Headlines(articles))
	return subcommands.ExitSuccess
}
