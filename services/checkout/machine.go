package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"

	"github.com/google/uuid"
)

// Stage is a checkout step.
type Stage int

const (
	StageCart Stage = iota
	StagePickupDetails
	StagePayment
	StageSuccess
)

var stageNames = [...]string{"cart", "pickup", "payment", "success"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// MachineState is the serializable part of a checkout.
type MachineState struct {
	Stage        Stage                 `json:"stage"`
	Pickup       *models.PickupDetails `json:"pickup,omitempty"`
	PickupAt     *time.Time            `json:"pickupAt,omitempty"`
	Method       models.PaymentMethod  `json:"method,omitempty"`
	Phone        string                `json:"phone,omitempty"`
	PaymentError *PaymentError         `json:"paymentError,omitempty"`
}

// Options select the checkout flow.
type Options struct {
	// SkipPickupDetails goes straight from the cart to payment.
	SkipPickupDetails bool
}

// MachineConfig holds what a checkout needs besides its state.
type MachineConfig struct {
	Options
	Gateway        PaymentGateway
	Pricing        cart.Pricing
	Location       *time.Location
	PaymentTimeout time.Duration
	Now            func() time.Time
}

// PaymentInput is the payment form. Card is only read for card payments.
type PaymentInput struct {
	Method models.PaymentMethod `json:"method"`
	Phone  string               `json:"phone,omitempty"`
	Card   *models.CardDetails  `json:"card,omitempty"`
}

// Machine drives cart, pickup details, payment and success.
type Machine struct {
	state MachineState
	cfg   MachineConfig
}

func NewMachine(cfg MachineConfig) *Machine {
	return RestoreMachine(MachineState{}, cfg)
}

// RestoreMachine rebuilds a checkout from saved state.
func RestoreMachine(state MachineState, cfg MachineConfig) *Machine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Machine{state: state, cfg: cfg}
}

func (m *Machine) State() MachineState { return m.state }
func (m *Machine) Stage() Stage        { return m.state.Stage }

// Totals are the taxed totals of the live cart.
func (m *Machine) Totals(store *cart.Store) models.OrderTotals {
	return cart.ComputeTotals(store.Total(), m.cfg.Pricing)
}

// Continue leaves the cart for pickup details, or for payment when the
// pickup step is skipped. The cart must not be empty.
func (m *Machine) Continue(store *cart.Store) error {
	if m.state.Stage != StageCart {
		return ErrInvalidTransition
	}
	if store.Empty() {
		return ErrEmptyCart
	}
	if m.cfg.SkipPickupDetails {
		m.state.Stage = StagePayment
	} else {
		m.state.Stage = StagePickupDetails
	}
	return nil
}

// CartEmptied returns a checkout whose cart became empty on the pickup or
// payment step to the cart step, dropping any payment error. Pickup details
// are kept for the next attempt.
func (m *Machine) CartEmptied(store *cart.Store) bool {
	if !store.Empty() {
		return false
	}
	switch m.state.Stage {
	case StagePickupDetails, StagePayment:
		m.state.Stage = StageCart
		m.state.PaymentError = nil
		return true
	}
	return false
}

// SubmitPickup validates the pickup form, records the combined pickup time
// and moves on to payment.
func (m *Machine) SubmitPickup(d models.PickupDetails) error {
	if m.state.Stage != StagePickupDetails {
		return ErrInvalidTransition
	}
	at, err := ValidatePickup(d, m.cfg.Now(), m.cfg.Location)
	if err != nil {
		return err
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = reservation.NormalizePhone(d.Phone)
	d.Instructions = strings.TrimSpace(d.Instructions)
	m.state.Pickup = &d
	m.state.PickupAt = &at
	m.state.Stage = StagePayment
	return nil
}

// Back steps towards the cart. Leaving payment drops any payment error.
func (m *Machine) Back() error {
	switch m.state.Stage {
	case StagePayment:
		m.state.PaymentError = nil
		if m.cfg.SkipPickupDetails {
			m.state.Stage = StageCart
		} else {
			m.state.Stage = StagePickupDetails
		}
	case StagePickupDetails:
		m.state.Stage = StageCart
	case StageCart:
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Pay validates the payment form and charges the grand total. On success the
// cart is snapshotted into the last order and cleared. A declined or timed
// out payment keeps the checkout on the payment step and is returned as a
// *PaymentError. If ctx ends first nothing changes.
func (m *Machine) Pay(ctx context.Context, store *cart.Store, in PaymentInput) (*models.LastOrder, error) {
	if m.state.Stage != StagePayment {
		return nil, ErrInvalidTransition
	}
	if store.Empty() {
		return nil, ErrEmptyCart
	}

	req := models.PaymentRequest{Method: in.Method}
	switch in.Method {
	case models.PaymentMethodMpesa:
		if err := ValidateMpesa(in.Phone); err != nil {
			return nil, err
		}
		req.Phone = reservation.NormalizePhone(in.Phone)
	case models.PaymentMethodCard:
		if in.Card == nil {
			return nil, &FormError{Form: "card", Fields: FieldErrors{"number": "Enter your card details"}, order: cardFields}
		}
		if err := ValidateCard(*in.Card, m.cfg.Now()); err != nil {
			return nil, err
		}
		req.Card = in.Card
	default:
		return nil, &FormError{Form: "payment", Fields: FieldErrors{"method": "Choose M-Pesa or card"}, order: []string{"method"}}
	}
	return m.charge(ctx, store, req)
}

// RetryPayment re-sends a failed M-Pesa request to the same number.
func (m *Machine) RetryPayment(ctx context.Context, store *cart.Store) (*models.LastOrder, error) {
	if m.state.Stage != StagePayment {
		return nil, ErrInvalidTransition
	}
	if m.state.PaymentError == nil || m.state.Method != models.PaymentMethodMpesa || m.state.Phone == "" {
		return nil, ErrNothingToRetry
	}
	return m.charge(ctx, store, models.PaymentRequest{Method: models.PaymentMethodMpesa, Phone: m.state.Phone})
}

// ChangePhone clears a failed M-Pesa attempt so a new number can be entered.
func (m *Machine) ChangePhone() error {
	if m.state.Stage != StagePayment {
		return ErrInvalidTransition
	}
	m.state.PaymentError = nil
	m.state.Phone = ""
	return nil
}

func (m *Machine) charge(ctx context.Context, store *cart.Store, req models.PaymentRequest) (*models.LastOrder, error) {
	totals := m.Totals(store)
	req.Reference = "PAY-" + uuid.New().String()
	req.Amount = totals.GrandTotal
	req.Currency = totals.Currency

	payCtx := ctx
	if m.cfg.PaymentTimeout > 0 {
		var cancel context.CancelFunc
		payCtx, cancel = context.WithTimeout(ctx, m.cfg.PaymentTimeout)
		defer cancel()
	}

	res, err := m.cfg.Gateway.Initiate(payCtx, req)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			res = models.PaymentResult{
				Outcome: models.PaymentTimeout,
				Message: "The payment took too long to confirm. Please try again.",
			}
		} else {
			return nil, fmt.Errorf("payment not completed: %w", err)
		}
	}

	m.state.Method = req.Method
	if req.Method == models.PaymentMethodMpesa {
		m.state.Phone = req.Phone
	}

	if res.Outcome != models.PaymentSuccess {
		perr := &PaymentError{Outcome: res.Outcome, Message: res.Message}
		if perr.Message == "" {
			perr.Message = "The payment was not completed. Please try again."
		}
		m.state.PaymentError = perr
		return nil, perr
	}

	meta := cart.OrderMeta{
		OrderNumber:      orderNumber(),
		PickupAt:         m.state.PickupAt,
		PaymentMethod:    req.Method,
		PaymentReference: res.Reference,
		PlacedAt:         m.cfg.Now(),
	}
	if m.state.Pickup != nil {
		meta.PickupName = m.state.Pickup.Name
	}
	if req.Card != nil {
		meta.CardLast4 = CardLast4(req.Card.Number)
	}
	order := store.CompleteOrder(totals, meta)
	m.state.PaymentError = nil
	m.state.Stage = StageSuccess
	return &order, nil
}

// Exit leaves the success screen for a fresh cart and drops the snapshot.
func (m *Machine) Exit(store *cart.Store) error {
	if m.state.Stage != StageSuccess {
		return ErrInvalidTransition
	}
	store.ClearLastOrder()
	m.state = MachineState{}
	return nil
}

func orderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
