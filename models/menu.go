package models

import "github.com/shopspring/decimal"

// MenuOption is a priced add-on inside a choice group. An absent price is zero.
type MenuOption struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// MenuChoice is a group of options. MaxSelectable 1 means exclusive selection.
type MenuChoice struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Required      bool         `json:"required"`
	MaxSelectable int          `json:"maxSelectable"`
	Options       []MenuOption `json:"options"`
}

// MultiSelect reports whether answers to this group are label sets.
func (c MenuChoice) MultiSelect() bool {
	return c.MaxSelectable > 1
}

// OptionPrice returns the price of the option with the given label.
func (c MenuChoice) OptionPrice(label string) (decimal.Decimal, bool) {
	for _, opt := range c.Options {
		if opt.Label == label {
			return opt.Price, true
		}
	}
	return decimal.Zero, false
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Choices     []MenuChoice    `json:"choices,omitempty"`
}
