package cart

import (
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/shopspring/decimal"
)

// Pricing holds the layered tax rates applied at checkout.
type Pricing struct {
	TourismTaxRate   decimal.Decimal
	CateringLevyRate decimal.Decimal
	Currency         string
}

// DefaultPricing is 16% tourism tax and a 2% catering levy in shillings.
func DefaultPricing() Pricing {
	return Pricing{
		TourismTaxRate:   decimal.RequireFromString("0.16"),
		CateringLevyRate: decimal.RequireFromString("0.02"),
		Currency:         "KES",
	}
}

// ComputeTotals layers both taxes on the pre-tax subtotal. Both are computed
// on the subtotal, not on each other.
func ComputeTotals(subtotal decimal.Decimal, p Pricing) models.OrderTotals {
	tourism := subtotal.Mul(p.TourismTaxRate)
	levy := subtotal.Mul(p.CateringLevyRate)
	return models.OrderTotals{
		Subtotal:     subtotal,
		TourismTax:   tourism,
		CateringLevy: levy,
		GrandTotal:   subtotal.Add(tourism).Add(levy),
		Currency:     p.Currency,
	}
}
