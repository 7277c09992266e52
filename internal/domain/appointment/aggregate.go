package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

// ===============================
// Totals Aggregation
// ===============================

// Totals are snapshots taken at booking time. Later price changes never
// touch an existing appointment.
type Totals struct {
	Duration int
	Price    decimal.Decimal
}

// Aggregate sums duration (from each offer's parent product) and price
// (from each offer) across the resolved offers, in order.
func Aggregate(offers []models.ServiceProductSupplier) Totals {
	t := Totals{Price: decimal.Zero}
	for _, offer := range offers {
		t.Duration += offer.Product.Duration
		t.Price = t.Price.Add(offer.Price)
	}
	return t
}
