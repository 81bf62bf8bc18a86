package folionews

import (
	"math"
	"testing"

	"github.com/smadan/folionews/date"
)

func closesFrom(values ...float64) date.History[float64] {
	var h date.History[float64]
	today := date.Today()
	for i, v := range values {
		h.Append(today.Add(i-len(values)+1), v)
	}
	return h
}

func near(a, b Percent) bool { return math.Abs(float64(a-b)) < 0.001 }

func TestNewPriceStats(t *testing.T) {
	stats := newPriceStats(closesFrom(100, 101, 102, 103, 104, 105, 110))
	if !stats.Valid {
		t.Fatal("newPriceStats() not Valid with history present")
	}
	if stats.Last != 110 || stats.PrevClose != 105 {
		t.Errorf("newPriceStats() last/prev = %v/%v, want 110/105", stats.Last, stats.PrevClose)
	}
	if want := Percent(100 * 5.0 / 105); !near(stats.Day, want) {
		t.Errorf("newPriceStats() Day = %v, want %v", stats.Day, want)
	}
	// five trading days back lands on 102
	if want := Percent(100 * 8.0 / 102); !near(stats.Week, want) {
		t.Errorf("newPriceStats() Week = %v, want %v", stats.Week, want)
	}
	if want := Percent(10); !near(stats.Month, want) {
		t.Errorf("newPriceStats() Month = %v, want %v", stats.Month, want)
	}
}

func TestNewPriceStats_shortHistory(t *testing.T) {
	// freshly listed: the earliest close stands in for missing references
	stats := newPriceStats(closesFrom(200, 210))
	if !stats.Valid {
		t.Fatal("newPriceStats() not Valid with two closes")
	}
	if stats.Last != 210 || stats.PrevClose != 200 {
		t.Errorf("newPriceStats() last/prev = %v/%v, want 210/200", stats.Last, stats.PrevClose)
	}
	if !near(stats.Week, stats.Month) || !near(stats.Day, stats.Month) {
		t.Errorf("newPriceStats() short history: day/week/month = %v/%v/%v, want all equal", stats.Day, stats.Week, stats.Month)
	}

	one := newPriceStats(closesFrom(50))
	if !one.Valid || !near(one.Day, 0) {
		t.Errorf("newPriceStats() single close = %+v, want Valid with zero changes", one)
	}
}

func TestNewPriceStats_empty(t *testing.T) {
	if stats := newPriceStats(date.History[float64]{}); stats.Valid {
		t.Errorf("newPriceStats() on empty history = %+v, want not Valid", stats)
	}
}

func TestChangePercent(t *testing.T) {
	if got := changePercent(110, 100); !near(got, 10) {
		t.Errorf("changePercent(110, 100) = %v, want 10", got)
	}
	if got := changePercent(90, 100); !near(got, -10) {
		t.Errorf("changePercent(90, 100) = %v, want -10", got)
	}
	if got := changePercent(110, 0); got != 0 {
		t.Errorf("changePercent(110, 0) = %v, want 0", got)
	}
}
