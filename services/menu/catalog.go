package menu

import (
	"errors"
	"sort"
	"strings"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("menu item not found")

// Catalog is a read-only menu.
type Catalog struct {
	items map[string]models.MenuItem
}

// NewCatalog indexes items by ID. Later duplicates replace earlier ones.
func NewCatalog(items []models.MenuItem) *Catalog {
	c := &Catalog{items: make(map[string]models.MenuItem, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// DefaultCatalog serves the house menu.
func DefaultCatalog() *Catalog {
	return NewCatalog(houseMenu)
}

// Get returns a copy of the item so callers cannot edit the catalog.
func (c *Catalog) Get(id string) (models.MenuItem, error) {
	it, exists := c.items[id]
	if !exists {
		return models.MenuItem{}, ErrItemNotFound
	}
	return cloneItem(it), nil
}

// List returns items sorted by name. An empty category returns everything.
func (c *Catalog) List(category string) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.items))
	for _, it := range c.items {
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		out = append(out, cloneItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out
}

func cloneItem(it models.MenuItem) models.MenuItem {
	if it.Choices == nil {
		return it
	}
	choices := make([]models.MenuChoice, len(it.Choices))
	for i, ch := range it.Choices {
		ch.Options = append([]models.MenuOption(nil), ch.Options...)
		choices[i] = ch
	}
	it.Choices = choices
	return it
}

func kes(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
