package cart

import (
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreOptions tune cart behaviour.
type StoreOptions struct {
	// MergeDuplicates folds an added item into an existing line with the same
	// product, choices and instructions instead of appending a new line.
	MergeDuplicates bool
}

// StoreState is the serializable content of a Store.
type StoreState struct {
	Items     []models.CartItem `json:"items"`
	LastOrder *models.LastOrder `json:"lastOrder,omitempty"`
}

// OrderMeta describes a paid order when the cart is completed.
type OrderMeta struct {
	OrderNumber      string
	PickupAt         *time.Time
	PickupName       string
	PaymentMethod    models.PaymentMethod
	PaymentReference string
	CardLast4        string
	PlacedAt         time.Time
}

// Store is a cart owned by one session. It is not safe for concurrent use.
type Store struct {
	state StoreState
	opts  StoreOptions
}

func NewStore(opts StoreOptions) *Store {
	return &Store{opts: opts}
}

// RestoreStore rebuilds a cart from saved state.
func RestoreStore(state StoreState, opts StoreOptions) *Store {
	return &Store{state: state, opts: opts}
}

func (s *Store) State() StoreState { return s.state }

// Items returns a copy of the cart lines.
func (s *Store) Items() []models.CartItem {
	return cloneItems(s.state.Items)
}

func (s *Store) Empty() bool { return len(s.state.Items) == 0 }

// AddToCart appends item under a fresh cartItemId and returns the stored line.
func (s *Store) AddToCart(item models.CartItem) (models.CartItem, error) {
	if item.Quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}
	if s.opts.MergeDuplicates {
		for i := range s.state.Items {
			existing := &s.state.Items[i]
			if sameSelection(*existing, item) {
				existing.Quantity += item.Quantity
				existing.Price = existing.Price.Add(item.Price)
				return cloneItem(*existing), nil
			}
		}
	}
	item = cloneItem(item)
	item.CartItemID = uuid.New().String()
	s.state.Items = append(s.state.Items, item)
	return cloneItem(item), nil
}

func sameSelection(a, b models.CartItem) bool {
	return a.ID == b.ID && a.SpecialInstructions == b.SpecialInstructions && a.Choices.Equal(b.Choices)
}

func (s *Store) find(cartItemID string) int {
	for i, it := range s.state.Items {
		if it.CartItemID == cartItemID {
			return i
		}
	}
	return -1
}

// Get returns the line with the given cartItemId.
func (s *Store) Get(cartItemID string) (models.CartItem, error) {
	i := s.find(cartItemID)
	if i < 0 {
		return models.CartItem{}, ErrItemNotFound
	}
	return cloneItem(s.state.Items[i]), nil
}

// UpdateCartItem replaces the choices, quantity, price and instructions of
// the line with item's cartItemId.
func (s *Store) UpdateCartItem(item models.CartItem) error {
	i := s.find(item.CartItemID)
	if i < 0 {
		return ErrItemNotFound
	}
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	line := &s.state.Items[i]
	line.Choices = cloneChoices(item.Choices)
	line.Quantity = item.Quantity
	line.Price = item.Price
	line.SpecialInstructions = item.SpecialInstructions
	return nil
}

// UpdateQuantity sets the quantity only. The stored price still reflects the
// previous quantity; callers reprice with UpdateCartItem. Zero or negative
// quantities are rejected, callers remove the line instead.
func (s *Store) UpdateQuantity(cartItemID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	i := s.find(cartItemID)
	if i < 0 {
		return ErrItemNotFound
	}
	s.state.Items[i].Quantity = qty
	return nil
}

func (s *Store) RemoveFromCart(cartItemID string) error {
	i := s.find(cartItemID)
	if i < 0 {
		return ErrItemNotFound
	}
	s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
	return nil
}

// ClearCart empties the cart and forgets the last order snapshot.
func (s *Store) ClearCart() {
	s.state.Items = nil
	s.state.LastOrder = nil
}

// ItemsCount is the sum of quantities.
func (s *Store) ItemsCount() int {
	n := 0
	for _, it := range s.state.Items {
		n += it.Quantity
	}
	return n
}

// Total is the pre-tax sum of line prices.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.state.Items {
		total = total.Add(it.Price)
	}
	return total
}

// CompleteOrder snapshots the cart into the last order and then empties the
// live items. The snapshot survives until ClearCart or ClearLastOrder.
func (s *Store) CompleteOrder(totals models.OrderTotals, meta OrderMeta) models.LastOrder {
	order := models.LastOrder{
		OrderNumber:      meta.OrderNumber,
		Items:            cloneItems(s.state.Items),
		ItemsCount:       s.ItemsCount(),
		Totals:           totals,
		PickupAt:         meta.PickupAt,
		PickupName:       meta.PickupName,
		PaymentMethod:    meta.PaymentMethod,
		PaymentReference: meta.PaymentReference,
		CardLast4:        meta.CardLast4,
		PlacedAt:         meta.PlacedAt,
	}
	s.state.LastOrder = &order
	s.state.Items = nil
	return order
}

func (s *Store) LastOrder() *models.LastOrder {
	if s.state.LastOrder == nil {
		return nil
	}
	order := *s.state.LastOrder
	order.Items = cloneItems(order.Items)
	return &order
}

func (s *Store) ClearLastOrder() {
	s.state.LastOrder = nil
}

func cloneItems(items []models.CartItem) []models.CartItem {
	if items == nil {
		return nil
	}
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it models.CartItem) models.CartItem {
	it.Choices = cloneChoices(it.Choices)
	return it
}

func cloneChoices(c models.Choices) models.Choices {
	if c == nil {
		return nil
	}
	out := make(models.Choices, len(c))
	for k, v := range c {
		v.Labels = append([]string(nil), v.Labels...)
		out[k] = v
	}
	return out
}
