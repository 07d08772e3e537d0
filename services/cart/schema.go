package cart

import (
	"fmt"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

// Schema validates item forms for one menu item. It is derived from the
// item's choice groups and holds no other state.
type Schema struct {
	groups map[string]models.MenuChoice
	order  []string
}

// BuildSchema derives the form rules from a list of choice groups.
func BuildSchema(choices []models.MenuChoice) Schema {
	s := Schema{groups: make(map[string]models.MenuChoice, len(choices))}
	for _, c := range choices {
		s.groups[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return s
}

// Defaults are the values a fresh form starts with.
func (s Schema) Defaults() FormValues {
	sel := make(models.Choices, len(s.order))
	for _, id := range s.order {
		if s.groups[id].MultiSelect() {
			sel[id] = models.Multiple()
		} else {
			sel[id] = models.ChoiceValue{}
		}
	}
	return FormValues{Quantity: 1, Selections: sel}
}

// Validate returns a *ValidationError listing every invalid field, or nil.
func (s Schema) Validate(values FormValues) error {
	verr := &ValidationError{order: append([]string{"quantity"}, s.order...)}
	if values.Quantity < 1 {
		verr.add("quantity", "Quantity must be at least 1")
	}

	for id := range values.Selections {
		if _, known := s.groups[id]; !known {
			verr.add(id, "Unknown choice")
		}
	}

	for _, id := range s.order {
		group := s.groups[id]
		answer := values.Selections[id]

		if !group.MultiSelect() && answer.Multi && len(answer.Labels) > 1 {
			verr.add(id, fmt.Sprintf("Choose only one %s", group.Title))
			continue
		}
		if group.Required && answer.Empty() {
			verr.add(id, fmt.Sprintf("Please select %s", group.Title))
			continue
		}
		if group.MultiSelect() && len(answer.Labels) > group.MaxSelectable {
			verr.add(id, fmt.Sprintf("You can select up to %d options", group.MaxSelectable))
			continue
		}
		for _, label := range answer.Labels {
			if _, ok := group.OptionPrice(label); !ok {
				verr.add(id, fmt.Sprintf("%q is not an option for %s", label, group.Title))
				break
			}
		}
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

// normalize drops empty answers and stores each answer in its group's shape:
// a single label for single-select groups and a list for the rest. Two
// submissions of the same selection then compare equal.
func (s Schema) normalize(sel models.Choices) models.Choices {
	out := make(models.Choices, len(sel))
	for id, v := range sel {
		if v.Empty() {
			continue
		}
		if s.groups[id].MultiSelect() {
			out[id] = models.Multiple(v.Labels...)
		} else {
			out[id] = models.Single(v.Labels[0])
		}
	}
	return out
}
