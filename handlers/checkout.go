package handlers

import (
	"errors"
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	Orders checkout.OrderService
}

func NewCheckoutHandler(orders checkout.OrderService) *CheckoutHandler {
	return &CheckoutHandler{Orders: orders}
}

func (h *CheckoutHandler) Continue(c *gin.Context) {
	orderReply(c)(h.Orders.Continue(c.Request.Context(), c.Param("sessionID")))
}

func (h *CheckoutHandler) SubmitPickup(c *gin.Context) {
	var details models.PickupDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		badRequest(c, err)
		return
	}
	orderReply(c)(h.Orders.SubmitPickup(c.Request.Context(), c.Param("sessionID"), details))
}

func (h *CheckoutHandler) Back(c *gin.Context) {
	orderReply(c)(h.Orders.Back(c.Request.Context(), c.Param("sessionID")))
}

// Pay handles POST /api/checkout/:sessionID/pay. A declined or timed out
// payment answers 402 with the order view so the client can offer a retry.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var in checkout.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	paymentReply(c)(h.Orders.Pay(c.Request.Context(), c.Param("sessionID"), in))
}

func (h *CheckoutHandler) RetryPayment(c *gin.Context) {
	paymentReply(c)(h.Orders.RetryPayment(c.Request.Context(), c.Param("sessionID")))
}

func (h *CheckoutHandler) ChangePhone(c *gin.Context) {
	orderReply(c)(h.Orders.ChangePhone(c.Request.Context(), c.Param("sessionID")))
}

func (h *CheckoutHandler) Exit(c *gin.Context) {
	orderReply(c)(h.Orders.Exit(c.Request.Context(), c.Param("sessionID")))
}

// GetSavedContact returns the pickup contact remembered for X-Client-ID.
func (h *CheckoutHandler) GetSavedContact(c *gin.Context) {
	contact, err := h.Orders.SavedContact(c.Request.Context(), c.GetHeader(clientIDHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	if contact == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "no saved contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func paymentReply(c *gin.Context) func(*checkout.OrderView, error) {
	return func(view *checkout.OrderView, err error) {
		var payErr *checkout.PaymentError
		switch {
		case err == nil:
			c.JSON(http.StatusOK, view)
		case errors.As(err, &payErr) && view != nil:
			c.JSON(http.StatusPaymentRequired, view)
		default:
			respondError(c, err)
		}
	}
}
