package yfin

import (
	"encoding/json"
	"testing"
)

const summaryPayload = `{
	"quoteSummary": {
		"result": [{
			"price": {"longName": "Reliance Industries Limited"},
			"assetProfile": {
				"sector": "Energy",
				"longBusinessSummary": "Reliance Industries Limited engages in hydrocarbon exploration..."
			},
			"summaryDetail": {"trailingPE": {"raw": 28.4, "fmt": "28.40"}},
			"defaultKeyStatistics": {"trailingEps": {"raw": 102.9, "fmt": "102.90"}},
			"financialData": {"returnOnEquity": {"raw": 0.089, "fmt": "8.90%"}}
		}],
		"error": null
	}
}`

func TestExtractors(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(summaryPayload), &jobj); err != nil {
		t.Fatal(err)
	}

	if got := jstring(jobj, "$.quoteSummary.result[0].price.longName"); got != "Reliance Industries Limited" {
		t.Errorf("jstring(longName) = %q", got)
	}
	if got := jstring(jobj, "$.quoteSummary.result[0].assetProfile.sector"); got != "Energy" {
		t.Errorf("jstring(sector) = %q", got)
	}
	if got := jstring(jobj, "$.quoteSummary.result[0].price.shortName"); got != "" {
		t.Errorf("jstring(absent) = %q, want empty", got)
	}

	if got := jfloat(jobj, "$.quoteSummary.result[0].summaryDetail.trailingPE.raw"); got != 28.4 {
		t.Errorf("jfloat(trailingPE) = %v, want 28.4", got)
	}
	if got := jfloat(jobj, "$.quoteSummary.result[0].financialData.returnOnEquity.raw"); got != 0.089 {
		t.Errorf("jfloat(returnOnEquity) = %v, want 0.089", got)
	}
	if got := jfloat(jobj, "$.quoteSummary.result[0].summaryDetail.forwardPE.raw"); got != 0 {
		t.Errorf("jfloat(absent) = %v, want 0", got)
	}
}

func TestClient_ticker(t *testing.T) {
	c := &Client{Suffix: ".NS"}
	if got := c.ticker("RELIANCE"); got != "RELIANCE.NS" {
		t.Errorf("ticker() = %q, want RELIANCE.NS", got)
	}
	if got := (&Client{}).ticker("MCD"); got != "MCD" {
		t.Errorf("ticker() without suffix = %q, want MCD", got)
	}
}
