package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodMpesa PaymentMethod = "mpesa"
	PaymentMethodCard  PaymentMethod = "card"
)

type PaymentOutcome string

const (
	PaymentSuccess  PaymentOutcome = "success"
	PaymentDeclined PaymentOutcome = "declined"
	PaymentTimeout  PaymentOutcome = "timeout"
)

// CardDetails are never stored; only the last four digits survive a payment.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// PaymentRequest is what the checkout hands to a payment gateway.
type PaymentRequest struct {
	Reference string          `json:"reference"`
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Phone     string          `json:"phone,omitempty"`
	Card      *CardDetails    `json:"-"`
}

type PaymentResult struct {
	Outcome     PaymentOutcome `json:"outcome"`
	Reference   string         `json:"reference"`
	Message     string         `json:"message,omitempty"`
	ProcessedAt time.Time      `json:"processedAt"`
}
