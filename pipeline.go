package folionews

import (
	"context"
	"log"
	"time"

	"github.com/smadan/folionews/date"
)

// ProfileSource resolves a portfolio symbol into a company identity, its
// valuation ratios and its recent price history. Every method may fail
// per-symbol; callers degrade and continue rather than abort.
type ProfileSource interface {
	Profile(ctx context.Context, symbol string) (CompanyProfile, error)
	Stats(ctx context.Context, symbol string) (CompanyStats, error)
	History(ctx context.Context, symbol string, from, to date.Date) (date.History[float64], error)
}

// Pipeline computes, per portfolio symbol, the price statistics and the
// relevant scored news articles.
//
// For each symbol the cache is consulted first; on a miss or a stale entry
// the full chain runs: query expansion, per-phrase search, URL dedup,
// relevance filter, sentiment scoring, and the result replaces the cache
// entry. The pipeline owns no persistence: the caller loads the cache before
// the batch and saves it after.
type Pipeline struct {
	Oracle   Oracle
	Searcher NewsSearcher
	Profiles ProfileSource
	Cache    *NewsCache

	// TTL is the cache freshness window; DefaultTTL when zero.
	TTL time.Duration
	// Force refreshes every symbol regardless of cache freshness.
	Force bool
	// Search overrides the per-phrase search filters; zero fields get the
	// defaults (5 results, past 7 days, simplywall.st excluded).
	Search SearchOptions
}

func (p *Pipeline) ttl() time.Duration {
	if p.TTL == 0 {
		return DefaultTTL
	}
	return p.TTL
}

func (p *Pipeline) searchOptions() SearchOptions {
	opts := p.Search
	if opts.MaxResults == 0 {
		opts.MaxResults = 5
	}
	if opts.Freshness == "" {
		opts.Freshness = "pd7"
	}
	if opts.Exclude == nil {
		opts.Exclude = []string{"simplywall.st"}
	}
	return opts
}

// ProcessAll runs the pipeline for every holding in order. It always returns
// one report per holding: a symbol's failures degrade its own report and
// never abort the batch.
func (p *Pipeline) ProcessAll(ctx context.Context, holdings []Holding) []*SymbolReport {
	reports := make([]*SymbolReport, 0, len(holdings))
	for _, h := range holdings {
		log.Printf("processing %s", h.Symbol)
		reports = append(reports, p.Process(ctx, h))
	}
	return reports
}

// Process builds the report for a single holding: company identity, price
// statistics, and the scored news articles (from cache when fresh).
func (p *Pipeline) Process(ctx context.Context, h Holding) *SymbolReport {
	report := &SymbolReport{Holding: h, Name: h.Symbol}

	profile := p.profileFor(ctx, h.Symbol)
	report.Name = profile.Name
	report.Sector = profile.Sector
	report.Articles, report.StaleNews = p.newsFor(ctx, profile)

	if stats, err := p.Profiles.Stats(ctx, h.Symbol); err != nil {
		log.Printf("[profile] no stats for %s: %v", h.Symbol, err)
	} else {
		report.Stats = stats
	}

	today := date.Today()
	hist, err := p.Profiles.History(ctx, h.Symbol, today.Add(-30), today)
	if err != nil {
		log.Printf("[profile] no price history for %s: %v", h.Symbol, err)
		return report
	}
	report.Price = newPriceStats(hist)
	if report.Price.Valid {
		report.LastPrice = M(report.Price.Last, h.AvgPrice.Currency())
		report.MarketValue = h.MarketValue(report.LastPrice)
	}
	return report
}

// newsFor returns the article list for the symbol, refreshing through the
// full pipeline when the cache entry is absent or stale. The second return
// reports degraded service: a stale entry served because the refresh failed.
func (p *Pipeline) newsFor(ctx context.Context, profile CompanyProfile) (articles []Article, stale bool) {
	symbol := profile.Symbol
	entry, cached := p.Cache.Get(symbol)
	if cached && !p.Force && entry.Fresh(time.Now(), p.ttl()) {
		log.Printf("[cache] using fresh articles for %s", symbol)
		return entry.Articles, false
	}

	log.Printf("[cache] stale or missing entry for %s, refreshing", symbol)
	fresh, err := p.refresh(ctx, profile)
	if err != nil {
		// Stale-but-present beats empty.
		log.Printf("refresh failed for %s: %v", symbol, err)
		if cached {
			return entry.Articles, true
		}
		return nil, false
	}
	p.Cache.Put(symbol, fresh)
	return fresh, false
}

// refresh runs the full news chain for one company.
//
// Only a total search failure is an error; an empty article list after
// dedup and filtering is a valid, cacheable result.
func (p *Pipeline) refresh(ctx context.Context, profile CompanyProfile) ([]Article, error) {
	phrases := ExpandQueries(ctx, p.Oracle, profile)
	raw, err := fetchArticles(ctx, p.Searcher, phrases, p.searchOptions())
	if err != nil {
		return nil, err
	}
	unique := dedupArticles(raw)
	kept := filterRelevant(ctx, p.Oracle, unique, profile)
	return scoreArticles(ctx, p.Oracle, kept), nil
}

// profileFor resolves the company identity, degrading to the bare symbol
// when the profile source fails.
func (p *Pipeline) profileFor(ctx context.Context, symbol string) CompanyProfile {
	profile, err := p.Profiles.Profile(ctx, symbol)
	if err != nil {
		log.Printf("[profile] lookup failed for %s: %v, using the symbol as name", symbol, err)
		return CompanyProfile{Symbol: symbol, Name: symbol}
	}
	if profile.Name == "" {
		profile.Name = symbol
	}
	return profile
}
