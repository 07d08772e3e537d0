package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ChoiceValue is the answer to one choice group: a single label for exclusive
// groups or a set of labels for multi-select groups. On the wire it is either a
// JSON string or a JSON array of strings.
type ChoiceValue struct {
	Labels []string
	Multi  bool
}

// Single builds the answer to an exclusive choice group.
func Single(label string) ChoiceValue {
	if label == "" {
		return ChoiceValue{}
	}
	return ChoiceValue{Labels: []string{label}}
}

// Multiple builds the answer to a multi-select choice group.
func Multiple(labels ...string) ChoiceValue {
	return ChoiceValue{Labels: append([]string(nil), labels...), Multi: true}
}

// Empty reports whether nothing was selected.
func (v ChoiceValue) Empty() bool {
	return len(v.Labels) == 0
}

// Contains reports whether label is among the selected labels.
func (v ChoiceValue) Contains(label string) bool {
	for _, l := range v.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Equal compares two answers ignoring label order.
func (v ChoiceValue) Equal(o ChoiceValue) bool {
	if v.Multi != o.Multi || len(v.Labels) != len(o.Labels) {
		return false
	}
	a := append([]string(nil), v.Labels...)
	b := append([]string(nil), o.Labels...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v ChoiceValue) MarshalJSON() ([]byte, error) {
	if v.Multi {
		labels := v.Labels
		if labels == nil {
			labels = []string{}
		}
		return json.Marshal(labels)
	}
	if len(v.Labels) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(v.Labels[0])
}

func (v *ChoiceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ChoiceValue{}
		return nil
	}
	switch data[0] {
	case '"':
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*v = Single(label)
		return nil
	case '[':
		var labels []string
		if err := json.Unmarshal(data, &labels); err != nil {
			return err
		}
		*v = Multiple(labels...)
		return nil
	}
	return fmt.Errorf("choice value must be a string or an array of strings, got %s", string(data))
}

// Choices maps a choice group ID to its answer.
type Choices map[string]ChoiceValue

// Equal compares two selections group by group; empty answers count as absent.
func (c Choices) Equal(o Choices) bool {
	for k, v := range c {
		if v.Empty() {
			continue
		}
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	for k, ov := range o {
		if ov.Empty() {
			continue
		}
		if v, ok := c[k]; !ok || v.Empty() {
			return false
		}
	}
	return true
}

// CartItem is one line of the cart. Price already includes add-ons and quantity.
type CartItem struct {
	CartItemID          string          `json:"cartItemId"`
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	ImageURL            string          `json:"image_url"`
	Quantity            int             `json:"quantity"`
	Choices             Choices         `json:"choices"`
	Price               decimal.Decimal `json:"price"`
	SpecialInstructions string          `json:"specialInstructions"`
}

// OrderTotals are the layered totals shown at checkout.
type OrderTotals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TourismTax   decimal.Decimal `json:"tourismTax"`
	CateringLevy decimal.Decimal `json:"cateringLevy"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	Currency     string          `json:"currency"`
}

// LastOrder is the immutable snapshot rendered on the confirmation screen
// after the live cart has been cleared.
type LastOrder struct {
	OrderNumber      string        `json:"orderNumber"`
	Items            []CartItem    `json:"items"`
	ItemsCount       int           `json:"itemsCount"`
	Totals           OrderTotals   `json:"totals"`
	PickupAt         *time.Time    `json:"pickupAt,omitempty"`
	PickupName       string        `json:"pickupName,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference"`
	CardLast4        string        `json:"cardLast4,omitempty"`
	PlacedAt         time.Time     `json:"placedAt"`
}
