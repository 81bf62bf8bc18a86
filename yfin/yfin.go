// Package yfin resolves portfolio symbols into company profiles, valuation
// ratios and daily price history using Yahoo Finance's public JSON
// endpoints.
package yfin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"

	"github.com/smadan/folionews"
	"github.com/smadan/folionews/date"
)

const (
	summaryEndpoint = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/"
	chartEndpoint   = "https://query1.finance.yahoo.com/v8/finance/chart/"
)

// Client looks up symbols on Yahoo Finance.
//
// Suffix is appended to every symbol before querying, the way Yahoo
// namespaces exchanges (".NS" for NSE symbols). Responses are cached on disk
// with daily expiry, so repeated dashboard runs within a day do not hammer
// the endpoints.
type Client struct {
	Suffix string
	client *http.Client
}

var _ folionews.ProfileSource = (*Client)(nil)

// NewClient returns a client for the exchange identified by suffix.
func NewClient(suffix string) *Client {
	return &Client{Suffix: suffix, client: newDailyCachingClient()}
}

func (c *Client) ticker(symbol string) string { return symbol + c.Suffix }

// summary fetches the quoteSummary payload for the given modules.
func (c *Client) summary(symbol string, modules string) (any, error) {
	addr := summaryEndpoint + url.PathEscape(c.ticker(symbol)) + "?modules=" + modules
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch summary for %q: %w", symbol, err)
	}
	return jobj, nil
}

// Profile returns the company identity behind the symbol.
func (c *Client) Profile(_ context.Context, symbol string) (folionews.CompanyProfile, error) {
	jobj, err := c.summary(symbol, "assetProfile,price")
	if err != nil {
		return folionews.CompanyProfile{}, err
	}
	return folionews.CompanyProfile{
		Symbol:      symbol,
		Name:        jstring(jobj, "$.quoteSummary.result[0].price.longName"),
		Sector:      jstring(jobj, "$.quoteSummary.result[0].assetProfile.sector"),
		Description: jstring(jobj, "$.quoteSummary.result[0].assetProfile.longBusinessSummary"),
	}, nil
}

// Stats returns the valuation ratios for the symbol; fields Yahoo does not
// provide stay zero.
func (c *Client) Stats(_ context.Context, symbol string) (folionews.CompanyStats, error) {
	jobj, err := c.summary(symbol, "summaryDetail,defaultKeyStatistics,financialData")
	if err != nil {
		return folionews.CompanyStats{}, err
	}
	return folionews.CompanyStats{
		PERatio:        jfloat(jobj, "$.quoteSummary.result[0].summaryDetail.trailingPE.raw"),
		EPS:            jfloat(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.trailingEps.raw"),
		ReturnOnEquity: jfloat(jobj, "$.quoteSummary.result[0].financialData.returnOnEquity.raw"),
	}, nil
}

// History returns the daily closing prices between from and to inclusive.
func (c *Client) History(_ context.Context, symbol string, from, to date.Date) (prices date.History[float64], err error) {
	// the chart endpoint has a clean enough shape for a typed payload.
	type jquote struct {
		Close []*float64 `json:"close"` // null on non-traded days
	}
	type jresult struct {
		Timestamp  []int64 `json:"timestamp"`
		Indicators struct {
			Quote []jquote `json:"quote"`
		} `json:"indicators"`
	}
	var payload struct {
		Chart struct {
			Result []jresult `json:"result"`
		} `json:"chart"`
	}

	addr := fmt.Sprintf("%s%s?interval=1d&period1=%d&period2=%d",
		chartEndpoint, url.PathEscape(c.ticker(symbol)), from.Unix(), to.Add(1).Unix())
	if err := jwget(c.client, addr, &payload); err != nil {
		return prices, fmt.Errorf("cannot fetch price history for %q: %w", symbol, err)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return prices, fmt.Errorf("no price history for %q", symbol)
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		prices.Append(date.FromUnix(ts), *closes[i])
	}
	return prices, nil
}

// jstring extracts a string at path, "" when absent.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// jfloat extracts a number at path, 0 when absent.
func jfloat(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, _ := jval.(float64)
	return v
}
