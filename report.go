package folionews

import (
	"github.com/smadan/folionews/date"
)

// SymbolReport is everything the dashboard shows for one holding: identity,
// price statistics and the scored news list.
type SymbolReport struct {
	Holding
	Name   string
	Sector string
	Stats  CompanyStats

	Price       PriceStats
	LastPrice   Money // zero when Price is not Valid
	MarketValue Money

	Articles []Article
	// StaleNews marks articles served from an expired cache entry because
	// the refresh failed.
	StaleNews bool
}

// PriceStats are display statistics derived from one month of daily closes.
type PriceStats struct {
	Valid     bool // false when no history was available
	Last      float64
	PrevClose float64

	Day   Percent // change since the previous close
	Week  Percent // change over roughly five trading days
	Month Percent // change since the start of the history
}

// newPriceStats derives the statistics from a chronological close history.
// With fewer points than a full week or month, the earliest close stands in
// for the missing reference, matching what a freshly listed security shows.
func newPriceStats(closes date.History[float64]) PriceStats {
	n := closes.Len()
	if n == 0 {
		return PriceStats{}
	}

	closeAt := func(fromEnd int) float64 {
		i := n - 1 - fromEnd
		if i < 0 {
			i = 0
		}
		_, v := closes.At(i)
		return v
	}

	last := closeAt(0)
	prev := closeAt(1)
	week := closeAt(4)
	_, month := closes.At(0)

	return PriceStats{
		Valid:     true,
		Last:      last,
		PrevClose: prev,
		Day:       changePercent(last, prev),
		Week:      changePercent(last, week),
		Month:     changePercent(last, month),
	}
}

// changePercent returns the percent change from ref to v, 0 when ref is 0.
func changePercent(v, ref float64) Percent {
	if ref == 0 {
		return 0
	}
	return Percent((v - ref) / ref * 100)
}
