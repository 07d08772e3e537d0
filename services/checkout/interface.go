package checkout

import (
	"context"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"

	"go.uber.org/zap"
)

// OrderService hosts a cart and its checkout behind a session ID.
type OrderService interface {
	StartOrder(ctx context.Context, clientID string) (*OrderView, error)
	GetOrder(ctx context.Context, sessionID string) (*OrderView, error)
	SavedContact(ctx context.Context, clientID string) (*models.SavedContact, error)

	AddItem(ctx context.Context, sessionID, productID string, values cart.FormValues, instructions string) (*OrderView, error)
	EditItem(ctx context.Context, sessionID, cartItemID string, values cart.FormValues, instructions string) (*OrderView, error)
	SetQuantity(ctx context.Context, sessionID, cartItemID string, qty int) (*OrderView, error)
	RemoveItem(ctx context.Context, sessionID, cartItemID string) (*OrderView, error)
	ClearCart(ctx context.Context, sessionID string) (*OrderView, error)

	Continue(ctx context.Context, sessionID string) (*OrderView, error)
	SubmitPickup(ctx context.Context, sessionID string, details models.PickupDetails) (*OrderView, error)
	Back(ctx context.Context, sessionID string) (*OrderView, error)
	Pay(ctx context.Context, sessionID string, in PaymentInput) (*OrderView, error)
	RetryPayment(ctx context.Context, sessionID string) (*OrderView, error)
	ChangePhone(ctx context.Context, sessionID string) (*OrderView, error)
	Exit(ctx context.Context, sessionID string) (*OrderView, error)
	CancelOrder(ctx context.Context, sessionID string) error
}

// MenuCatalog prices cart lines from the menu.
type MenuCatalog interface {
	Get(id string) (models.MenuItem, error)
}

// DefaultOrderService implements OrderService on a session repository.
type DefaultOrderService struct {
	Repo              session.SessionRepository
	Catalog           MenuCatalog
	Contacts          ContactStore
	Gateway           PaymentGateway
	Pricing           cart.Pricing
	Location          *time.Location
	MergeDuplicates   bool
	SkipPickupDetails bool
	PaymentTimeout    time.Duration
	SessionTTL        time.Duration
	Logger            *zap.Logger
	Now               func() time.Time

	locks session.Locks
}

// OrderView is what clients see of an order session.
type OrderView struct {
	SessionID     string                `json:"sessionId"`
	Stage         Stage                 `json:"stage"`
	StageName     string                `json:"stageName"`
	Items         []models.CartItem     `json:"items"`
	ItemsCount    int                   `json:"itemsCount"`
	Totals        models.OrderTotals    `json:"totals"`
	Pickup        *models.PickupDetails `json:"pickup,omitempty"`
	PickupAt      *time.Time            `json:"pickupAt,omitempty"`
	PaymentMethod models.PaymentMethod  `json:"paymentMethod,omitempty"`
	PaymentError  *PaymentError         `json:"paymentError,omitempty"`
	LastOrder     *models.LastOrder     `json:"lastOrder,omitempty"`
}
