package cart

import (
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/shopspring/decimal"
)

// FormValues is a filled-in item form: a quantity plus one answer per choice
// group, keyed by the group ID.
type FormValues struct {
	Quantity   int            `json:"quantity"`
	Selections models.Choices `json:"selections"`
}

func (v FormValues) quantity() int {
	if v.Quantity <= 0 {
		return 1
	}
	return v.Quantity
}

// CalculateTotalPrice prices one cart line: (base + selected add-ons) x quantity.
// Multi-valued answers add every option whose label is selected; single
// answers add the matching option. Unknown labels add nothing. No rounding.
func CalculateTotalPrice(values FormValues, choices []models.MenuChoice, basePrice decimal.Decimal) decimal.Decimal {
	unit := basePrice
	for _, group := range choices {
		answer, found := values.Selections[group.ID]
		if !found || answer.Empty() {
			continue
		}
		if answer.Multi {
			for _, opt := range group.Options {
				if answer.Contains(opt.Label) {
					unit = unit.Add(opt.Price)
				}
			}
			continue
		}
		if price, ok := group.OptionPrice(answer.Labels[0]); ok {
			unit = unit.Add(price)
		}
	}
	return unit.Mul(decimal.NewFromInt(int64(values.quantity())))
}

// FormatAmount renders an amount for display with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
