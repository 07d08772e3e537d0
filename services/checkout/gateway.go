package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/google/uuid"
)

// PaymentGateway charges a guest. A non-nil error means the request never
// completed (for example the context ended); declines and timeouts reported
// by the provider come back as an outcome.
type PaymentGateway interface {
	Initiate(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error)
}

// SimulatedGateway stands in for M-Pesa STK push and card processing. It
// waits Delay, then answers M-Pesa requests from Script in order (success once
// the script runs out). Card payments always succeed.
type SimulatedGateway struct {
	Delay  time.Duration
	Script []models.PaymentOutcome
	Now    func() time.Time

	mu   sync.Mutex
	next int
}

func NewSimulatedGateway(delay time.Duration, script ...models.PaymentOutcome) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay, Script: script}
}

func (g *SimulatedGateway) Initiate(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.PaymentResult{}, err
	}

	outcome := models.PaymentSuccess
	if req.Method == models.PaymentMethodMpesa {
		outcome = g.scripted()
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	res := models.PaymentResult{
		Outcome:     outcome,
		Reference:   providerReference(req.Method),
		ProcessedAt: now(),
	}
	switch outcome {
	case models.PaymentDeclined:
		res.Message = "The M-Pesa request was declined. Try again or use a different number."
	case models.PaymentTimeout:
		res.Message = "We did not get a confirmation from M-Pesa in time. Check your phone and try again."
	}
	return res, nil
}

func (g *SimulatedGateway) scripted() models.PaymentOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next >= len(g.Script) {
		return models.PaymentSuccess
	}
	o := g.Script[g.next]
	g.next++
	return o
}

func providerReference(method models.PaymentMethod) string {
	code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	if method == models.PaymentMethodCard {
		return "CARD-" + code
	}
	return code
}
