package folionews

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Oracle is the text-in/text-out capability behind query expansion,
// relevance classification and sentiment scoring. The three call sites share
// this single interface so tests can substitute canned responses for the
// live model.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SearchOptions are the filters applied to every news search request.
type SearchOptions struct {
	// MaxResults caps the number of results per search phrase.
	MaxResults int
	// Freshness is the provider recency window, e.g. "pd7" for the past 7 days.
	Freshness string
	// Exclude lists domains dropped from the results, e.g. "simplywall.st".
	Exclude []string
}

// NewsSearcher issues one free-text query against the news search provider
// and returns its results in provider order.
type NewsSearcher interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]Article, error)
}

// maxPhrases caps the search phrase set produced by the expander.
const maxPhrases = 4

// ExpandQueries turns a company profile into a small set of diverse search
// phrases using the oracle.
//
// The first phrase is the company's official name, the remaining ones cover
// business-activity and announcement angles. If the oracle is unreachable or
// returns something unusable, it falls back to a single-element set with the
// quoted company name; this failure is never fatal.
func ExpandQueries(ctx context.Context, o Oracle, profile CompanyProfile) []string {
	prompt := fmt.Sprintf(
		"You are a financial news search expert creating queries for a news search API.\n"+
			"Company: %q (sector: %s)\n%s"+
			"Task: Generate 3 to 4 diverse, professional-grade search phrases to find relevant news.\n"+
			"Guidelines:\n"+
			"- Phrase 1: The company's full, official name.\n"+
			"- Phrase 2-4: Focus on key business activities, major announcements, partnerships, or market news.\n"+
			"Output a valid JSON object with a single key 'phrases' which contains an array of strings.",
		profile.Name, profile.Sector, promptContext(profile.Description))

	fallback := []string{fmt.Sprintf("%q", profile.Name)}

	log.Printf("[oracle] generating search phrases for %q", profile.Name)
	reply, err := o.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[oracle] phrase generation failed for %q: %v", profile.Name, err)
		return fallback
	}
	phrases, err := parsePhrases(reply)
	if err != nil {
		log.Printf("[oracle] unusable phrase reply for %q: %v", profile.Name, err)
		return fallback
	}
	log.Printf("[oracle] phrases for %q: %v", profile.Name, phrases)
	return phrases
}

func promptContext(description string) string {
	if description == "" {
		return ""
	}
	return "About: " + description + "\n"
}

// parsePhrases extracts the "phrases" array from the oracle's JSON reply.
// Models like to wrap JSON in markdown fences, so those are stripped first.
func parsePhrases(reply string) ([]string, error) {
	var jobj any
	if err := json.Unmarshal([]byte(stripFences(reply)), &jobj); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}
	// jsonpath keeps this tolerant to the model nesting the object differently.
	jval, err := jsonpath.Get("$.phrases", jobj)
	if err != nil {
		return nil, fmt.Errorf("missing 'phrases': %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("'phrases' is not an array, got %T", jval)
	}

	var phrases []string
	for _, jp := range jlist {
		s, ok := jp.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		phrases = append(phrases, s)
		if len(phrases) == maxPhrases {
			break
		}
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("'phrases' contains no usable phrase")
	}
	return phrases, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fetchArticles runs one search per phrase and concatenates the results in
// phrase order.
//
// A failing phrase is logged and skipped; only when every phrase fails does
// it return an error, so the caller can fall back to a previously cached
// article list.
func fetchArticles(ctx context.Context, s NewsSearcher, phrases []string, opts SearchOptions) ([]Article, error) {
	var all []Article
	failed := 0
	for _, phrase := range phrases {
		results, err := s.Search(ctx, phrase, opts)
		if err != nil {
			failed++
			log.Printf("[search] phrase %q failed: %v", phrase, err)
			continue
		}
		all = append(all, results...)
	}
	if len(phrases) > 0 && failed == len(phrases) {
		return nil, fmt.Errorf("all %d news searches failed", failed)
	}
	return all, nil
}

// dedupArticles keeps the first occurrence of each URL, preserving order.
// Articles without a URL cannot be deduplicated or identified later and are
// dropped.
func dedupArticles(raw []Article) []Article {
	seen := make(map[string]bool, len(raw))
	unique := make([]Article, 0, len(raw))
	for _, a := range raw {
		if a.URL == "" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		unique = append(unique, a)
	}
	return unique
}

// relevant asks the oracle whether the article is actually about the
// company. Oracle errors and unusable answers count as "not relevant": a
// coincidental keyword match polluting the feed is worse than a missed
// article.
func relevant(ctx context.Context, o Oracle, a Article, profile CompanyProfile) bool {
	prompt := fmt.Sprintf(
		"You are a news classifier for an investor in %q.\n\n"+
			"News Article:\nTitle: %s\nDescription: %s\n\n"+
			"Task: Is this article directly relevant to %q's business operations, financial performance, "+
			"stock, or major partnerships/products? Answer 'YES' or 'NO'.",
		profile.Name, a.Title, a.Description, profile.Name)

	log.Printf("[oracle] relevance check for %q", a.Title)
	reply, err := o.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[oracle] relevance check failed for %q: %v", a.Title, err)
		return false
	}
	return strings.Contains(strings.ToUpper(reply), "YES")
}

// filterRelevant keeps, in input order, the articles the oracle affirms.
func filterRelevant(ctx context.Context, o Oracle, articles []Article, profile CompanyProfile) []Article {
	kept := make([]Article, 0, len(articles))
	for _, a := range articles {
		if relevant(ctx, o, a, profile) {
			kept = append(kept, a)
		}
	}
	return kept
}

// sentimentOf scores one article from an investor's perspective.
//
// The oracle is asked for a single float in [-1, 1]; out-of-range values are
// clamped, and errors or unparseable replies default to 0 (neutral).
func sentimentOf(ctx context.Context, o Oracle, a Article) float64 {
	prompt := fmt.Sprintf(
		"You are a financial news sentiment analyst.\nAnalyze the following news article:\n"+
			"Title: %s\nDescription: %s\n\n"+
			"Task: Rate the sentiment from an investor's perspective. "+
			"Return ONLY a single float between -1.0 (very negative) and 1.0 (very positive).",
		a.Title, a.Description)

	log.Printf("[oracle] sentiment check for %q", a.Title)
	reply, err := o.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[oracle] sentiment check failed for %q: %v", a.Title, err)
		return 0
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(stripFences(reply)), 64)
	if err != nil {
		log.Printf("[oracle] unusable sentiment reply %q for %q", reply, a.Title)
		return 0
	}
	return clampSentiment(score)
}

func clampSentiment(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// scoreArticles attaches a sentiment to every article, preserving order.
func scoreArticles(ctx context.Context, o Oracle, articles []Article) []Article {
	scored := make([]Article, 0, len(articles))
	for _, a := range articles {
		scored = append(scored, a.Scored(sentimentOf(ctx, o, a)))
	}
	return scored
}
