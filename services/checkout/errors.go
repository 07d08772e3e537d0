package checkout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

var (
	ErrEmptyCart         = errors.New("your cart is empty")
	ErrInvalidTransition = errors.New("action not available at this checkout step")
	ErrNothingToRetry    = errors.New("no failed M-Pesa payment to retry")
)

// FieldErrors maps a form field to its inline message.
type FieldErrors map[string]string

// First returns the first failing field in form order.
func (f FieldErrors) First(order []string) (string, string) {
	for _, k := range order {
		if msg, ok := f[k]; ok {
			return k, msg
		}
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return "", ""
	}
	return keys[0], f[keys[0]]
}

// FormError is a failed pickup or payment form.
type FormError struct {
	Form   string
	Fields FieldErrors
	order  []string
}

func (e *FormError) Toast() string {
	_, msg := e.Fields.First(e.order)
	return msg
}

func (e *FormError) Error() string {
	field, msg := e.Fields.First(e.order)
	return fmt.Sprintf("%s form: %s: %s", e.Form, field, msg)
}

// PaymentError is a payment the gateway did not approve. The checkout stays
// on the payment step until the guest retries or changes number.
type PaymentError struct {
	Outcome models.PaymentOutcome `json:"outcome"`
	Message string                `json:"message"`
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment %s: %s", e.Outcome, e.Message)
}
