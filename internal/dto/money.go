package dto

import "github.com/shopspring/decimal"

// Money renders a decimal with two fractional digits. Monetary values
// travel as strings so nothing on the wire ever rounds through a float.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func MoneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
