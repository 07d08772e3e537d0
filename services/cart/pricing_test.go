package cart

import (
	"testing"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sizeAndExtras() []models.MenuChoice {
	return []models.MenuChoice{
		{
			ID: "size", Title: "Size", Required: true, MaxSelectable: 1,
			Options: []models.MenuOption{{Label: "Regular"}, {Label: "Large", Price: dec("100")}},
		},
		{
			ID: "extras", Title: "Extras", MaxSelectable: 3,
			Options: []models.MenuOption{
				{Label: "Kachumbari", Price: dec("50")},
				{Label: "Avocado", Price: dec("80")},
				{Label: "Extra Chapati", Price: dec("40")},
				{Label: "Pili Pili"},
			},
		},
	}
}

func TestCalculateTotalPrice(t *testing.T) {
	choices := sizeAndExtras()

	tests := []struct {
		name   string
		values FormValues
		base   string
		want   string
	}{
		{
			name:   "single select times quantity",
			values: FormValues{Quantity: 2, Selections: models.Choices{"size": models.Single("Large")}},
			base:   "500",
			want:   "1200",
		},
		{
			name:   "missing quantity counts as one",
			values: FormValues{Selections: models.Choices{"size": models.Single("Large")}},
			base:   "500",
			want:   "600",
		},
		{
			name: "multi select sums every chosen option",
			values: FormValues{Quantity: 1, Selections: models.Choices{
				"size":   models.Single("Regular"),
				"extras": models.Multiple("Kachumbari", "Avocado"),
			}},
			base: "450",
			want: "580",
		},
		{
			name:   "option without price adds nothing",
			values: FormValues{Quantity: 3, Selections: models.Choices{"extras": models.Multiple("Pili Pili")}},
			base:   "100.50",
			want:   "301.5",
		},
		{
			name:   "unknown label adds nothing",
			values: FormValues{Quantity: 1, Selections: models.Choices{"size": models.Single("Jumbo")}},
			base:   "500",
			want:   "500",
		},
		{
			name:   "no selections",
			values: FormValues{Quantity: 4},
			base:   "250",
			want:   "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotalPrice(tt.values, choices, dec(tt.base))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPrice_NoRounding(t *testing.T) {
	choices := []models.MenuChoice{{ID: "sauce", MaxSelectable: 1, Options: []models.MenuOption{{Label: "Tamarind", Price: dec("0.333")}}}}
	got := CalculateTotalPrice(FormValues{Quantity: 3, Selections: models.Choices{"sauce": models.Single("Tamarind")}}, choices, dec("10"))
	if !got.Equal(dec("30.999")) {
		t.Errorf("got %s", got)
	}
	if FormatAmount(got) != "31.00" {
		t.Errorf("FormatAmount = %s", FormatAmount(got))
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(dec("1000"), DefaultPricing())

	if !totals.TourismTax.Equal(dec("160")) {
		t.Errorf("tourism tax = %s", totals.TourismTax)
	}
	if !totals.CateringLevy.Equal(dec("20")) {
		t.Errorf("catering levy = %s", totals.CateringLevy)
	}
	if !totals.GrandTotal.Equal(dec("1180")) {
		t.Errorf("grand total = %s", totals.GrandTotal)
	}
	if totals.Currency != "KES" {
		t.Errorf("currency = %s", totals.Currency)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(decimal.Zero, DefaultPricing())
	if !totals.GrandTotal.IsZero() {
		t.Errorf("grand total = %s", totals.GrandTotal)
	}
}
