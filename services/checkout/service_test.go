package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/menu"

	"github.com/shopspring/decimal"
)

func newOrderService(gw PaymentGateway) (*DefaultOrderService, *session.MemoryRepo) {
	repo := session.NewMemoryRepo()
	return &DefaultOrderService{
		Repo:     repo,
		Catalog:  menu.DefaultCatalog(),
		Contacts: &RepoContactStore{Repo: repo},
		Gateway:  gw,
		Pricing:  cart.DefaultPricing(),
		Location: eat,
		Now:      func() time.Time { return testNow },
	}, repo
}

func pilauLarge(qty int) cart.FormValues {
	return cart.FormValues{Quantity: qty, Selections: models.Choices{
		"portion": models.Single("Large"),
		"extras":  models.Multiple("Avocado", "Kachumbari"),
	}}
}

func TestOrderService_AddEditQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(&fakeGateway{})
	v, err := svc.StartOrder(ctx, "client-1")
	if err != nil {
		t.Fatal(err)
	}
	id := v.SessionID

	v, err = svc.AddItem(ctx, id, "pilau", pilauLarge(2), "no onions")
	if err != nil {
		t.Fatal(err)
	}
	// (650 + 250 + 80 + 50) x 2
	if len(v.Items) != 1 || !v.Items[0].Price.Equal(decimal.NewFromInt(2060)) {
		t.Fatalf("items = %+v", v.Items)
	}
	lineID := v.Items[0].CartItemID

	v, err = svc.SetQuantity(ctx, id, lineID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v.ItemsCount != 3 || !v.Totals.Subtotal.Equal(decimal.NewFromInt(3090)) {
		t.Errorf("after quantity change: count %d subtotal %s", v.ItemsCount, v.Totals.Subtotal)
	}

	v, err = svc.EditItem(ctx, id, lineID, cart.FormValues{Quantity: 1, Selections: models.Choices{"portion": models.Single("Regular")}}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Items[0].Price.Equal(decimal.NewFromInt(650)) || v.Items[0].CartItemID != lineID {
		t.Errorf("edited line = %+v", v.Items[0])
	}

	v, err = svc.SetQuantity(ctx, id, lineID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Items) != 0 {
		t.Error("quantity zero removes the line")
	}
}

func TestOrderService_RejectsInvalidForms(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(&fakeGateway{})
	v, _ := svc.StartOrder(ctx, "")

	_, err := svc.AddItem(ctx, v.SessionID, "samosa", cart.FormValues{Quantity: 1}, "")
	var verr *cart.ValidationError
	if !errors.As(err, &verr) || verr.Fields["filling"] == "" {
		t.Fatalf("expected filling error, got %v", err)
	}
	if _, err := svc.AddItem(ctx, v.SessionID, "sushi", cart.FormValues{}, ""); !errors.Is(err, menu.ErrItemNotFound) {
		t.Errorf("unknown product: %v", err)
	}
	got, _ := svc.GetOrder(ctx, v.SessionID)
	if len(got.Items) != 0 {
		t.Error("rejected items must not be stored")
	}
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{outcomes: []models.PaymentOutcome{models.PaymentDeclined}}
	svc, _ := newOrderService(gw)
	v, _ := svc.StartOrder(ctx, "client-7")
	id := v.SessionID

	if _, err := svc.Continue(ctx, id); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("continue with empty cart: %v", err)
	}
	if _, err := svc.AddItem(ctx, id, "dawa", cart.FormValues{Quantity: 2}, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Continue(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitPickup(ctx, id, validPickup()); err != nil {
		t.Fatal(err)
	}

	saved, err := svc.SavedContact(ctx, "client-7")
	if err != nil || saved == nil || saved.Name != "Achieng Otieno" {
		t.Fatalf("saved contact = %+v, %v", saved, err)
	}

	v, err = svc.Pay(ctx, id, PaymentInput{Method: models.PaymentMethodMpesa, Phone: "0712345678"})
	var payErr *PaymentError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected payment error, got %v", err)
	}
	stored, _ := svc.GetOrder(ctx, id)
	if stored.PaymentError == nil || stored.Stage != StagePayment {
		t.Fatalf("payment error must be persisted: %+v", stored)
	}

	v, err = svc.RetryPayment(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Stage != StageSuccess || v.LastOrder == nil || len(v.Items) != 0 {
		t.Fatalf("unexpected view %+v", v)
	}
	if len(v.LastOrder.Items) != 1 || v.LastOrder.ItemsCount != 2 {
		t.Errorf("snapshot = %+v", v.LastOrder)
	}
	if !v.LastOrder.Totals.GrandTotal.Equal(decimal.NewFromInt(1652)) {
		t.Errorf("grand total = %s", v.LastOrder.Totals.GrandTotal)
	}

	if _, err := svc.AddItem(ctx, id, "chai", cart.FormValues{}, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cart is locked on the success screen: %v", err)
	}

	v, err = svc.Exit(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Stage != StageCart || v.LastOrder != nil {
		t.Errorf("after exit %+v", v)
	}
}

func TestOrderService_CancelledPaymentIsNotSaved(t *testing.T) {
	svc, _ := newOrderService(NewSimulatedGateway(time.Hour))
	svc.SkipPickupDetails = true
	bg := context.Background()
	v, _ := svc.StartOrder(bg, "")
	if _, err := svc.AddItem(bg, v.SessionID, "chai", cart.FormValues{}, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Continue(bg, v.SessionID); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(bg, 20*time.Millisecond)
	defer cancel()
	if _, err := svc.Pay(ctx, v.SessionID, PaymentInput{Method: models.PaymentMethodMpesa, Phone: "0712345678"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}

	got, _ := svc.GetOrder(bg, v.SessionID)
	if got.Stage != StagePayment || got.PaymentError != nil || len(got.Items) != 1 {
		t.Errorf("abandoned payment changed the order: %+v", got)
	}
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(&fakeGateway{})
	v, _ := svc.StartOrder(ctx, "")
	if err := svc.CancelOrder(ctx, v.SessionID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetOrder(ctx, v.SessionID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestOrderService_EmptyingCartLeavesCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("clear on payment step", func(t *testing.T) {
		svc, _ := newOrderService(&fakeGateway{})
		svc.SkipPickupDetails = true
		v, _ := svc.StartOrder(ctx, "")
		id := v.SessionID
		if _, err := svc.AddItem(ctx, id, "chai", cart.FormValues{}, ""); err != nil {
			t.Fatal(err)
		}
		if v, _ = svc.Continue(ctx, id); v.Stage != StagePayment {
			t.Fatalf("stage = %v, want payment", v.Stage)
		}
		v, err := svc.ClearCart(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if v.Stage != StageCart || v.ItemsCount != 0 {
			t.Fatalf("after clearing: stage=%v items=%d", v.Stage, v.ItemsCount)
		}
		stored, _ := svc.GetOrder(ctx, id)
		if stored.Stage != StageCart {
			t.Errorf("stored stage = %v, want cart", stored.Stage)
		}
	})

	t.Run("last line set to zero on pickup step", func(t *testing.T) {
		svc, _ := newOrderService(&fakeGateway{})
		v, _ := svc.StartOrder(ctx, "")
		id := v.SessionID
		v, err := svc.AddItem(ctx, id, "dawa", cart.FormValues{Quantity: 1}, "")
		if err != nil {
			t.Fatal(err)
		}
		line := v.Items[0].CartItemID
		if v, _ = svc.Continue(ctx, id); v.Stage != StagePickupDetails {
			t.Fatalf("stage = %v, want pickup", v.Stage)
		}
		v, err = svc.SetQuantity(ctx, id, line, 0)
		if err != nil {
			t.Fatal(err)
		}
		if v.Stage != StageCart || len(v.Items) != 0 {
			t.Errorf("after removing the last line: stage=%v items=%d", v.Stage, len(v.Items))
		}
	})
}

func TestOrderService_ConcurrentWritersAndUnknownSessions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(&fakeGateway{})

	for i := 0; i < 500; i++ {
		if _, err := svc.Continue(ctx, fmt.Sprintf("missing-%d", i)); !errors.Is(err, session.ErrSessionNotFound) {
			t.Fatalf("unknown session %d: %v", i, err)
		}
	}

	v, _ := svc.StartOrder(ctx, "")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.AddItem(ctx, v.SessionID, "chai", cart.FormValues{}, ""); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	got, err := svc.GetOrder(ctx, v.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 20 {
		t.Errorf("items = %d, want 20 (a concurrent write was lost)", len(got.Items))
	}
}
