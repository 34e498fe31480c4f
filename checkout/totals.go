package checkout

import (
	"github.com/shopspring/decimal"

	"gemrock-store/models"
	"gemrock-store/utils"
)

// TaxRate is applied to the subtotal only
var TaxRate = decimal.RequireFromString("0.10")

// Totals holds the exact derived figures of a checkout. Values are never
// rounded here; rounding happens once per figure when displayed.
type Totals struct {
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals derives subtotal, shipping, tax and total from the unit price
func ComputeTotals(unitPrice decimal.Decimal, quantity int, method ShippingMethod) Totals {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	shipping := method.Cost()
	tax := subtotal.Mul(TaxRate)

	return Totals{
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
	}
}

// Display renders every figure with two decimals, rounding half away from zero
func (t Totals) Display() models.OrderTotals {
	return models.OrderTotals{
		UnitPrice: utils.FormatAmount(t.UnitPrice),
		Quantity:  t.Quantity,
		Subtotal:  utils.FormatAmount(t.Subtotal),
		Shipping:  utils.FormatAmount(t.Shipping),
		Tax:       utils.FormatAmount(t.Tax),
		Total:     utils.FormatAmount(t.Total),
	}
}

// Increment raises the quantity by one
func Increment(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity + 1
}

// Decrement lowers the quantity by one, never below 1
func Decrement(quantity int) int {
	if quantity <= 1 {
		return 1
	}
	return quantity - 1
}
