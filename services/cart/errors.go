package cart

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by the cart.
var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
)

// ValidationError collects per-field messages from a choice form.
type ValidationError struct {
	Fields map[string]string `json:"fields"`

	order []string
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// First returns the failing field that comes first on the form: quantity,
// then the item's choice groups in menu order. Fields the form does not know
// follow in name order.
func (e *ValidationError) First() (string, string) {
	for _, k := range e.order {
		if msg, ok := e.Fields[k]; ok {
			return k, msg
		}
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return "", ""
	}
	return keys[0], e.Fields[keys[0]]
}

func (e *ValidationError) Error() string {
	field, msg := e.First()
	if len(e.Fields) > 1 {
		return fmt.Sprintf("%s: %s (and %d more)", field, msg, len(e.Fields)-1)
	}
	return fmt.Sprintf("%s: %s", field, msg)
}
