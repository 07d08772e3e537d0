package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderKeyPrefix = "order:"

type orderSession struct {
	ClientID string          `json:"clientId"`
	Cart     cart.StoreState `json:"cart"`
	Checkout MachineState    `json:"checkout"`
}

type order struct {
	id      string
	session orderSession
	store   *cart.Store
	machine *Machine
}

func (s *DefaultOrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultOrderService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultOrderService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return 30 * time.Minute
	}
	return s.SessionTTL
}

func (s *DefaultOrderService) machineConfig() MachineConfig {
	return MachineConfig{
		Options:        Options{SkipPickupDetails: s.SkipPickupDetails},
		Gateway:        s.Gateway,
		Pricing:        s.Pricing,
		Location:       s.Location,
		PaymentTimeout: s.PaymentTimeout,
		Now:            s.now,
	}
}

func (s *DefaultOrderService) open(sess orderSession, id string) *order {
	return &order{
		id:      id,
		session: sess,
		store:   cart.RestoreStore(sess.Cart, cart.StoreOptions{MergeDuplicates: s.MergeDuplicates}),
		machine: RestoreMachine(sess.Checkout, s.machineConfig()),
	}
}

func (s *DefaultOrderService) load(ctx context.Context, sessionID string) (*order, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("order not initialized")
	}
	var sess orderSession
	if err := s.Repo.Load(ctx, orderKeyPrefix+sessionID, &sess); err != nil {
		return nil, err
	}
	return s.open(sess, sessionID), nil
}

func (s *DefaultOrderService) save(ctx context.Context, o *order) error {
	o.session.Cart = o.store.State()
	o.session.Checkout = o.machine.State()
	return s.Repo.Save(ctx, orderKeyPrefix+o.id, o.session, s.ttl())
}

func (o *order) view() *OrderView {
	st := o.machine.State()
	return &OrderView{
		SessionID:     o.id,
		Stage:         st.Stage,
		StageName:     st.Stage.String(),
		Items:         o.store.Items(),
		ItemsCount:    o.store.ItemsCount(),
		Totals:        o.machine.Totals(o.store),
		Pickup:        st.Pickup,
		PickupAt:      st.PickupAt,
		PaymentMethod: st.Method,
		PaymentError:  st.PaymentError,
		LastOrder:     o.store.LastOrder(),
	}
}

// mutate applies fn under the session lock. State is saved when fn succeeds
// and also when a payment was refused, so the error stays visible.
func (s *DefaultOrderService) mutate(ctx context.Context, sessionID string, fn func(o *order) error) (*OrderView, error) {
	unlock := s.locks.Lock(orderKeyPrefix + sessionID)
	defer unlock()

	o, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fnErr := fn(o)
	o.machine.CartEmptied(o.store)
	var payErr *PaymentError
	if fnErr != nil && !errors.As(fnErr, &payErr) {
		return o.view(), fnErr
	}
	if err := s.save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to store order session: %w", err)
	}
	return o.view(), fnErr
}

func (s *DefaultOrderService) StartOrder(ctx context.Context, clientID string) (*OrderView, error) {
	o := s.open(orderSession{ClientID: clientID}, uuid.New().String())
	if err := s.save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to store order session: %w", err)
	}
	s.logger().Info("order session started", zap.String("sessionID", o.id), zap.String("clientID", clientID))
	return o.view(), nil
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, sessionID string) (*OrderView, error) {
	o, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return o.view(), nil
}

func (s *DefaultOrderService) SavedContact(ctx context.Context, clientID string) (*models.SavedContact, error) {
	if s.Contacts == nil || clientID == "" {
		return nil, nil
	}
	return s.Contacts.LoadContact(ctx, clientID)
}

func editable(o *order) error {
	if o.machine.Stage() == StageSuccess {
		return ErrInvalidTransition
	}
	return nil
}

func (s *DefaultOrderService) AddItem(ctx context.Context, sessionID, productID string, values cart.FormValues, instructions string) (*OrderView, error) {
	item, err := s.Catalog.Get(productID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(o *order) error {
		if err := editable(o); err != nil {
			return err
		}
		line, err := cart.QuoteItem(item, values, instructions)
		if err != nil {
			return err
		}
		added, err := o.store.AddToCart(line)
		if err != nil {
			return err
		}
		s.logger().Debug("item added to cart",
			zap.String("sessionID", sessionID),
			zap.String("product", productID),
			zap.String("cartItemID", added.CartItemID),
			zap.Int("quantity", added.Quantity))
		return nil
	})
}

func (s *DefaultOrderService) EditItem(ctx context.Context, sessionID, cartItemID string, values cart.FormValues, instructions string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		if err := editable(o); err != nil {
			return err
		}
		current, err := o.store.Get(cartItemID)
		if err != nil {
			return err
		}
		item, err := s.Catalog.Get(current.ID)
		if err != nil {
			return err
		}
		line, err := cart.QuoteItem(item, values, instructions)
		if err != nil {
			return err
		}
		line.CartItemID = cartItemID
		return o.store.UpdateCartItem(line)
	})
}

// SetQuantity reprices the line for qty; zero or less removes it.
func (s *DefaultOrderService) SetQuantity(ctx context.Context, sessionID, cartItemID string, qty int) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		if err := editable(o); err != nil {
			return err
		}
		if qty <= 0 {
			return o.store.RemoveFromCart(cartItemID)
		}
		current, err := o.store.Get(cartItemID)
		if err != nil {
			return err
		}
		item, err := s.Catalog.Get(current.ID)
		if err != nil {
			return err
		}
		current.Quantity = qty
		current.Price = cart.CalculateTotalPrice(cart.FormValues{Quantity: qty, Selections: current.Choices}, item.Choices, item.BasePrice)
		return o.store.UpdateCartItem(current)
	})
}

func (s *DefaultOrderService) RemoveItem(ctx context.Context, sessionID, cartItemID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		if err := editable(o); err != nil {
			return err
		}
		return o.store.RemoveFromCart(cartItemID)
	})
}

func (s *DefaultOrderService) ClearCart(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		o.store.ClearCart()
		if o.machine.Stage() == StageSuccess {
			return o.machine.Exit(o.store)
		}
		return nil
	})
}

func (s *DefaultOrderService) Continue(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error { return o.machine.Continue(o.store) })
}

// SubmitPickup stores the pickup details and remembers the contact fields
// for the client's next visit.
func (s *DefaultOrderService) SubmitPickup(ctx context.Context, sessionID string, details models.PickupDetails) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		if err := o.machine.SubmitPickup(details); err != nil {
			return err
		}
		if s.Contacts != nil && o.session.ClientID != "" {
			if err := s.Contacts.SaveContact(ctx, o.session.ClientID, contactFrom(*o.machine.State().Pickup)); err != nil {
				s.logger().Warn("failed to save pickup contact", zap.String("clientID", o.session.ClientID), zap.Error(err))
			}
		}
		return nil
	})
}

func (s *DefaultOrderService) Back(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error { return o.machine.Back() })
}

func (s *DefaultOrderService) Pay(ctx context.Context, sessionID string, in PaymentInput) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		placed, err := o.machine.Pay(ctx, o.store, in)
		s.logPayment(sessionID, in.Method, placed, err)
		return err
	})
}

func (s *DefaultOrderService) RetryPayment(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error {
		placed, err := o.machine.RetryPayment(ctx, o.store)
		s.logPayment(sessionID, models.PaymentMethodMpesa, placed, err)
		return err
	})
}

func (s *DefaultOrderService) logPayment(sessionID string, method models.PaymentMethod, placed *models.LastOrder, err error) {
	var payErr *PaymentError
	switch {
	case placed != nil:
		s.logger().Info("order placed",
			zap.String("sessionID", sessionID),
			zap.String("orderNumber", placed.OrderNumber),
			zap.String("method", string(method)),
			zap.String("grandTotal", placed.Totals.GrandTotal.StringFixed(2)))
	case errors.As(err, &payErr):
		s.logger().Warn("payment not approved",
			zap.String("sessionID", sessionID),
			zap.String("method", string(method)),
			zap.String("outcome", string(payErr.Outcome)))
	case err != nil:
		s.logger().Debug("payment not attempted", zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func (s *DefaultOrderService) ChangePhone(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error { return o.machine.ChangePhone() })
}

func (s *DefaultOrderService) Exit(ctx context.Context, sessionID string) (*OrderView, error) {
	return s.mutate(ctx, sessionID, func(o *order) error { return o.machine.Exit(o.store) })
}

func (s *DefaultOrderService) CancelOrder(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(orderKeyPrefix + sessionID)
	defer unlock()
	if err := s.Repo.Delete(ctx, orderKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to cancel order session: %w", err)
	}
	return nil
}
