package cart

import (
	"strings"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

// QuoteItem validates a form against a menu item and returns the priced cart
// line. A missing quantity means one.
func QuoteItem(item models.MenuItem, values FormValues, instructions string) (models.CartItem, error) {
	if values.Quantity == 0 {
		values.Quantity = 1
	}
	schema := BuildSchema(item.Choices)
	if err := schema.Validate(values); err != nil {
		return models.CartItem{}, err
	}
	selections := schema.normalize(values.Selections)
	return models.CartItem{
		ID:                  item.ID,
		Name:                item.Name,
		ImageURL:            item.ImageURL,
		Quantity:            values.Quantity,
		Choices:             selections,
		Price:               CalculateTotalPrice(values, item.Choices, item.BasePrice),
		SpecialInstructions: strings.TrimSpace(instructions),
	}, nil
}
