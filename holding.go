package folionews

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency holdings are priced in. The broker export
// carries no currency column; NSE holdings trade in rupees.
const DefaultCurrency = "INR"

// Holding is one line of the broker's holdings export: a symbol, the number
// of shares held, and the average acquisition price per share.
type Holding struct {
	Symbol   string
	Quantity Quantity
	AvgPrice Money
}

// MarketValue returns the value of the holding at the given price per share.
func (h Holding) MarketValue(price Money) Money { return price.Mul(h.Quantity) }

// DecodeHoldings reads holdings from a broker CSV export.
//
// The export must have a header line with at least the columns
// "tradingsymbol", "quantity" and "average_price"; other columns are
// ignored. Rows with a blank symbol are skipped.
func DecodeHoldings(r io.Reader, currency string) ([]Holding, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range []string{"tradingsymbol", "quantity", "average_price"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("holdings file is missing the %q column", name)
		}
	}

	var holdings []Holding
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read holdings line %d: %w", line, err)
		}

		symbol := strings.TrimSpace(record[col["tradingsymbol"]])
		if symbol == "" {
			continue
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(record[col["quantity"]]))
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: invalid quantity for %q: %w", line, symbol, err)
		}
		avg, err := decimal.NewFromString(strings.TrimSpace(record[col["average_price"]]))
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: invalid average_price for %q: %w", line, symbol, err)
		}

		holdings = append(holdings, Holding{
			Symbol:   symbol,
			Quantity: Q(qty),
			AvgPrice: M(avg, currency),
		})
	}
	return holdings, nil
}

// LoadHoldings reads the holdings export at path.
func LoadHoldings(path, currency string) ([]Holding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeHoldings(f, currency)
}
