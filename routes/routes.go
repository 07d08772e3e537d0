package routes

import (
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/handlers"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMenuRoutes registers menu browsing and live pricing endpoints.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/menu")
	{
		api.GET("", hb.ListMenuHandler)
		api.GET("/categories", hb.GetCategoriesHandler)
		api.GET("/items/:itemID", hb.GetMenuItemHandler)
		api.POST("/items/:itemID/quote", hb.QuoteMenuItemHandler)
	}
}

// RegisterReservationRoutes sets up the endpoints for the reservation wizard.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.GET("/timeslots", hb.GetTimeSlotsHandler)
		api.POST("/sessions", hb.StartReservationHandler)

		session := api.Group("/sessions/:sessionID")
		session.GET("", hb.GetReservationHandler)
		session.PATCH("", hb.UpdateReservationHandler)
		session.DELETE("", hb.CancelReservationHandler)
		session.PUT("/datetime", hb.SelectDateTimeHandler)
		session.PUT("/table", hb.SelectTableHandler)
		session.GET("/tables", hb.GetTablesHandler)
		session.POST("/next", hb.NextStepHandler)
		session.POST("/previous", hb.PreviousStepHandler)
		session.POST("/jump", hb.JumpToStepHandler)
		session.POST("/reset", hb.ResetReservationHandler)
	}
}

// RegisterCartRoutes registers order session and cart line endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("", hb.StartOrderHandler)

		order := api.Group("/:sessionID")
		order.GET("", hb.GetOrderHandler)
		order.DELETE("", hb.CancelOrderHandler)
		order.POST("/items", hb.AddCartItemHandler)
		order.PUT("/items/:itemID", hb.EditCartItemHandler)
		order.PATCH("/items/:itemID/quantity", hb.SetQuantityHandler)
		order.DELETE("/items/:itemID", hb.RemoveCartItemHandler)
		order.POST("/clear", hb.ClearCartHandler)
	}
}

// RegisterCheckoutRoutes registers the checkout transitions of an order session.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.GET("/contact", hb.SavedContactHandler)

		order := api.Group("/:sessionID")
		order.POST("/continue", hb.ContinueCheckoutHandler)
		order.PUT("/pickup", hb.SubmitPickupHandler)
		order.POST("/back", hb.BackCheckoutHandler)
		order.POST("/pay", hb.PayHandler)
		order.POST("/retry", hb.RetryPaymentHandler)
		order.POST("/change-phone", hb.ChangePhoneHandler)
		order.POST("/exit", hb.ExitCheckoutHandler)
	}
}

// RegisterCampaignRoutes registers offers, sharing and WhatsApp campaign endpoints.
func RegisterCampaignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/campaign")
	{
		api.GET("/offers", hb.ListOffersHandler)
		api.POST("/offers/:offerID/copy", hb.CopyCouponHandler)
		api.POST("/share", hb.ShareResultHandler)
		api.POST("/register", hb.RegisterHandler)
		api.GET("/popup", hb.PopupStatusHandler)
		api.POST("/popup/dismiss", hb.DismissPopupHandler)
	}
}

// RegisterLocationRoute resolves the caller's location from their IP.
func RegisterLocationRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.GeoLocator == nil {
		r.GET("/api/location", hb.LocationHandler)
		return
	}
	r.GET("/api/location", middleware.GeolocationMiddleware(hb.GeoLocator), hb.LocationHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Client-ID", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if hb.MaxRequestsPerMin > 0 {
		r.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
	}

	RegisterMenuRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterCampaignRoutes(r, hb)
	RegisterLocationRoute(r, hb)
	RegisterHealthRoute(r, hb)
}
