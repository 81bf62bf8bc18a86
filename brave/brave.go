// Package brave implements the news search provider on top of the Brave
// News Search API.
package brave

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/smadan/folionews"
)

// Endpoint is the Brave news search endpoint.
const Endpoint = "https://api.search.brave.com/res/v1/news/search"

const braveAPIKeyEnv = "BRAVE_API_KEY"

var braveAPIFlag = flag.String("brave-api-key", "", "Brave Search API key used for news searches.\n If missing it will read the environment variable \""+braveAPIKeyEnv+"\". You can get one at https://brave.com/search/api/")

// APIKey returns the Brave API key from the flag, falling back to the
// environment variable.
func APIKey() string {
	if *braveAPIFlag == "" {
		*braveAPIFlag = os.Getenv(braveAPIKeyEnv)
	}
	return *braveAPIFlag
}

// Client is a Brave news search client.
type Client struct {
	Key      string
	Endpoint string       // Endpoint when empty; tests point it at a local server
	HTTP     *http.Client // http.DefaultClient when nil
}

var _ folionews.NewsSearcher = (*Client)(nil)

// NewClient returns a client authenticating with the given subscription key.
func NewClient(key string) *Client { return &Client{Key: key} }

// Search issues one news query and returns the results in provider order.
//
// Excluded domains are folded into the query with -site: operators, the way
// the Brave query language expects them.
func (c *Client) Search(ctx context.Context, query string, opts folionews.SearchOptions) ([]folionews.Article, error) {
	q := query
	for _, domain := range opts.Exclude {
		q += " -site:" + domain
	}

	params := url.Values{}
	params.Set("q", q)
	if opts.MaxResults > 0 {
		params.Set("count", strconv.Itoa(opts.MaxResults))
	}
	if opts.Freshness != "" {
		params.Set("freshness", opts.Freshness)
	}
	return c.get(ctx, params)
}

// TopHeadlines returns general news for a free-text topic, localized to a
// country and language.
func (c *Client) TopHeadlines(ctx context.Context, topic, country, lang string, count int) ([]folionews.Article, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("count", strconv.Itoa(count))
	if country != "" {
		params.Set("country", country)
	}
	if lang != "" {
		params.Set("search_lang", lang)
	}
	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) ([]folionews.Article, error) {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = Endpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.Key)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach news search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search for %q: %v", params.Get("q"), resp.Status)
	}
	return decodeResults(resp.Body)
}

// decodeResults parses the provider payload into articles, in payload order.
func decodeResults(r io.Reader) ([]folionews.Article, error) {
	// jresult is one item of the provider's "results" array.
	type jresult struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      string `json:"source"`
		PageAge     string `json:"page_age"`
	}
	var payload struct {
		Results []jresult `json:"results"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot parse news search response: %w", err)
	}

	articles := make([]folionews.Article, 0, len(payload.Results))
	for _, jr := range payload.Results {
		articles = append(articles, folionews.Article{
			Title:       strings.TrimSpace(jr.Title),
			Description: jr.Description,
			URL:         jr.URL,
			Source:      jr.Source,
			PublishedAt: jr.PageAge,
		})
	}
	return articles, nil
}
