package handlers

import (
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	GeoLocator        middleware.GeoLocator
	MaxRequestsPerMin int

	// Menu endpoints
	ListMenuHandler      gin.HandlerFunc
	GetMenuItemHandler   gin.HandlerFunc
	GetCategoriesHandler gin.HandlerFunc
	QuoteMenuItemHandler gin.HandlerFunc

	// Reservation endpoints
	GetTimeSlotsHandler      gin.HandlerFunc
	StartReservationHandler  gin.HandlerFunc
	GetReservationHandler    gin.HandlerFunc
	UpdateReservationHandler gin.HandlerFunc
	SelectDateTimeHandler    gin.HandlerFunc
	SelectTableHandler       gin.HandlerFunc
	GetTablesHandler         gin.HandlerFunc
	NextStepHandler          gin.HandlerFunc
	PreviousStepHandler      gin.HandlerFunc
	JumpToStepHandler        gin.HandlerFunc
	ResetReservationHandler  gin.HandlerFunc
	CancelReservationHandler gin.HandlerFunc

	// Cart endpoints
	StartOrderHandler     gin.HandlerFunc
	GetOrderHandler       gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	EditCartItemHandler   gin.HandlerFunc
	SetQuantityHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc
	CancelOrderHandler    gin.HandlerFunc

	// Checkout endpoints
	ContinueCheckoutHandler gin.HandlerFunc
	SubmitPickupHandler     gin.HandlerFunc
	BackCheckoutHandler     gin.HandlerFunc
	PayHandler              gin.HandlerFunc
	RetryPaymentHandler     gin.HandlerFunc
	ChangePhoneHandler      gin.HandlerFunc
	ExitCheckoutHandler     gin.HandlerFunc
	SavedContactHandler     gin.HandlerFunc

	// Campaign endpoints
	ListOffersHandler   gin.HandlerFunc
	CopyCouponHandler   gin.HandlerFunc
	ShareResultHandler  gin.HandlerFunc
	RegisterHandler     gin.HandlerFunc
	DismissPopupHandler gin.HandlerFunc
	PopupStatusHandler  gin.HandlerFunc

	LocationHandler gin.HandlerFunc
	HealthHandler   gin.HandlerFunc
}

// NewHandlerBundle wires every handler method into the bundle.
func NewHandlerBundle(menu *MenuHandler, res *ReservationHandler, carts *CartHandler, co *CheckoutHandler, camp *CampaignHandler) *HandlerBundle {
	return &HandlerBundle{
		ListMenuHandler:      menu.ListItems,
		GetMenuItemHandler:   menu.GetItem,
		GetCategoriesHandler: menu.GetCategories,
		QuoteMenuItemHandler: menu.QuoteItem,

		GetTimeSlotsHandler:      res.GetTimeSlots,
		StartReservationHandler:  res.StartSession,
		GetReservationHandler:    res.GetSession,
		UpdateReservationHandler: res.UpdateDetails,
		SelectDateTimeHandler:    res.SelectDateTime,
		SelectTableHandler:       res.SelectTable,
		GetTablesHandler:         res.GetTables,
		NextStepHandler:          res.Next,
		PreviousStepHandler:      res.Previous,
		JumpToStepHandler:        res.JumpTo,
		ResetReservationHandler:  res.Reset,
		CancelReservationHandler: res.CancelSession,

		StartOrderHandler:     carts.StartOrder,
		GetOrderHandler:       carts.GetOrder,
		AddCartItemHandler:    carts.AddItem,
		EditCartItemHandler:   carts.EditItem,
		SetQuantityHandler:    carts.SetQuantity,
		RemoveCartItemHandler: carts.RemoveItem,
		ClearCartHandler:      carts.ClearCart,
		CancelOrderHandler:    carts.CancelOrder,

		ContinueCheckoutHandler: co.Continue,
		SubmitPickupHandler:     co.SubmitPickup,
		BackCheckoutHandler:     co.Back,
		PayHandler:              co.Pay,
		RetryPaymentHandler:     co.RetryPayment,
		ChangePhoneHandler:      co.ChangePhone,
		ExitCheckoutHandler:     co.Exit,
		SavedContactHandler:     co.GetSavedContact,

		ListOffersHandler:   camp.ListOffers,
		CopyCouponHandler:   camp.CopyCoupon,
		ShareResultHandler:  camp.ShareResult,
		RegisterHandler:     camp.Register,
		DismissPopupHandler: camp.DismissPopup,
		PopupStatusHandler:  camp.PopupStatus,

		LocationHandler: GetLocation,
		HealthHandler:   HealthCheck,
	}
}
