package menu

import (
	"errors"
	"testing"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	item, err := c.Get("nyama-choma")
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "Nyama Choma" || len(item.Choices) != 3 {
		t.Errorf("unexpected item %+v", item)
	}

	item.Choices[0].Options[0].Label = "Raw"
	again, _ := c.Get("nyama-choma")
	if again.Choices[0].Options[0].Label != "Medium" {
		t.Error("Get must not expose the catalog's slices")
	}

	if _, err := c.Get("ugali-pizza"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestCatalogList(t *testing.T) {
	c := NewCatalog([]models.MenuItem{
		{ID: "b", Name: "Bhajia", Category: "Starters"},
		{ID: "a", Name: "Ndizi", Category: "Mains"},
		{ID: "c", Name: "Avocado Salad", Category: "starters"},
	})

	starters := c.List("Starters")
	if len(starters) != 2 || starters[0].Name != "Avocado Salad" {
		t.Errorf("starters = %+v", starters)
	}
	if len(c.List("")) != 3 {
		t.Error("empty category lists everything")
	}
	if cats := c.Categories(); len(cats) != 3 {
		t.Errorf("categories = %v", cats)
	}
}

func TestHouseMenuIsConsistent(t *testing.T) {
	for _, item := range DefaultCatalog().List("") {
		if item.BasePrice.IsNegative() || item.BasePrice.IsZero() {
			t.Errorf("%s has no price", item.ID)
		}
		for _, ch := range item.Choices {
			if ch.MaxSelectable < 1 || len(ch.Options) == 0 {
				t.Errorf("%s/%s is malformed", item.ID, ch.ID)
			}
		}
	}
}
