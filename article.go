package folionews

// Article is a single news item as returned by the news search provider.
//
// Its identity is the URL: two articles with the same URL are the same
// article, whatever search phrase surfaced them. Once deduplicated and
// scored, articles are treated as immutable values.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	// Sentiment is the investor-perspective score in [-1, 1].
	// It is nil until the article has been through the scorer.
	Sentiment *float64 `json:"sentiment,omitempty"`
}

// Scored returns a copy of the article with the given sentiment attached.
func (a Article) Scored(sentiment float64) Article {
	a.Sentiment = &sentiment
	return a
}

// CompanyProfile identifies the company behind a portfolio symbol.
//
// Name is never empty (it falls back to the symbol itself when the profile
// source has nothing better); Sector and Description may be empty.
// A profile is derived once per pipeline run and not retained across runs.
type CompanyProfile struct {
	Symbol      string
	Name        string
	Sector      string
	Description string
}

// CompanyStats carries the valuation ratios displayed next to a holding.
// A zero field means the profile source did not provide that figure.
type CompanyStats struct {
	PERatio        float64
	EPS            float64
	ReturnOnEquity float64
}
