package cart

import (
	"laman-client/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var (
	// DeliveryFee is flat regardless of distance or weight.
	DeliveryFee = decimal.NewFromInt(200)

	serviceFeeRate = decimal.NewFromFloat(0.05)

	// HeavyCargoThreshold is the weight (kg) above which couriers switch to
	// the cargo tariff. Display concern only; the fee stays flat.
	HeavyCargoThreshold = decimal.NewFromInt(15)
)

// ResolvedItem is a cart line joined with its product snapshot.
type ResolvedItem struct {
	Product  catalog.Product
	Quantity int
}

func (ri ResolvedItem) LineTotal() decimal.Decimal {
	return ri.Product.Price.Mul(decimal.NewFromInt(int64(ri.Quantity)))
}

type Totals struct {
	Subtotal    decimal.Decimal
	ServiceFee  decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	ItemCount   int
	Weight      decimal.Decimal
	HeavyCargo  bool
}

// CalculateTotals recomputes every derived figure from the resolved items.
// Nothing is cached; callers get a consistent view of one instant.
func CalculateTotals(items []ResolvedItem) Totals {
	subtotal := decimal.Zero
	weight := decimal.Zero
	count := 0
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		subtotal = subtotal.Add(it.Product.Price.Mul(qty))
		weight = weight.Add(it.Product.UnitWeight().Mul(qty))
		count += it.Quantity
	}

	serviceFee := subtotal.Mul(serviceFeeRate)
	if serviceFee.IsNegative() {
		serviceFee = decimal.Zero
	}

	return Totals{
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		DeliveryFee: DeliveryFee,
		Total:       subtotal.Add(DeliveryFee).Add(serviceFee),
		ItemCount:   count,
		Weight:      weight,
		HeavyCargo:  weight.GreaterThan(HeavyCargoThreshold),
	}
}
