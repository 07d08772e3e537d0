package handlers

import (
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/checkout"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
)

// clientIDHeader identifies a returning browser across sessions.
const clientIDHeader = "X-Client-ID"

type CartHandler struct {
	Orders checkout.OrderService
}

func NewCartHandler(orders checkout.OrderService) *CartHandler {
	return &CartHandler{Orders: orders}
}

type cartItemRequest struct {
	ProductID           string `json:"productId"`
	SpecialInstructions string `json:"specialInstructions"`
	cart.FormValues
}

// StartOrder handles POST /api/cart.
func (h *CartHandler) StartOrder(c *gin.Context) {
	view, err := h.Orders.StartOrder(c.Request.Context(), c.GetHeader(clientIDHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CartHandler) GetOrder(c *gin.Context) {
	view, err := h.Orders.GetOrder(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.ProductID == "" {
		utils.JSONValidationError(c, "Please choose a menu item", map[string]string{"productId": "Please choose a menu item"})
		return
	}
	view, err := h.Orders.AddItem(c.Request.Context(), c.Param("sessionID"), req.ProductID, req.FormValues, req.SpecialInstructions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// EditItem handles PUT /api/cart/:sessionID/items/:itemID. The product is
// taken from the existing line.
func (h *CartHandler) EditItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	orderReply(c)(h.Orders.EditItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"), req.FormValues, req.SpecialInstructions))
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	orderReply(c)(h.Orders.SetQuantity(c.Request.Context(), c.Param("sessionID"), c.Param("itemID"), *body.Quantity))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	orderReply(c)(h.Orders.RemoveItem(c.Request.Context(), c.Param("sessionID"), c.Param("itemID")))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	orderReply(c)(h.Orders.ClearCart(c.Request.Context(), c.Param("sessionID")))
}

func (h *CartHandler) CancelOrder(c *gin.Context) {
	if err := h.Orders.CancelOrder(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order session cancelled"})
}

func orderReply(c *gin.Context) func(*checkout.OrderView, error) {
	return func(view *checkout.OrderView, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
