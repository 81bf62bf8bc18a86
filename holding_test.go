package folionews

import (
	"strings"
	"testing"
)

func TestDecodeHoldings(t *testing.T) {
	input := `tradingsymbol,exchange,isin,quantity,average_price
RELIANCE,NSE,INE002A01018,10,2450.50
,NSE,,0,0
TCS,NSE,INE467B01029,2.5,3900
`
	holdings, err := DecodeHoldings(strings.NewReader(input), "INR")
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("DecodeHoldings() parsed %d holdings, want 2", len(holdings))
	}

	h := holdings[0]
	if h.Symbol != "RELIANCE" || !h.Quantity.Equal(Q(10)) || !h.AvgPrice.Equal(M(2450.50, "INR")) {
		t.Errorf("DecodeHoldings()[0] = %+v", h)
	}
	// fractional quantities survive
	if !holdings[1].Quantity.Equal(Q(2.5)) {
		t.Errorf("DecodeHoldings()[1].Quantity = %s, want 2.5", holdings[1].Quantity)
	}
}

func TestDecodeHoldings_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing column", "tradingsymbol,quantity\nRELIANCE,10\n"},
		{"bad quantity", "tradingsymbol,quantity,average_price\nRELIANCE,ten,2450\n"},
		{"bad price", "tradingsymbol,quantity,average_price\nRELIANCE,10,n/a\n"},
	}
	for _, tt := range tests {
		if _, err := DecodeHoldings(strings.NewReader(tt.input), "INR"); err == nil {
			t.Errorf("%s: DecodeHoldings() expected an error", tt.name)
		}
	}
}

func TestHolding_MarketValue(t *testing.T) {
	h := Holding{Symbol: "RELIANCE", Quantity: Q(10), AvgPrice: M(2450.50, "INR")}
	if got, want := h.MarketValue(M(2500, "INR")), M(25000, "INR"); !got.Equal(want) {
		t.Errorf("MarketValue() = %s, want %s", got, want)
	}
}
