package handlers

import (
	"errors"
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"

	"github.com/gin-gonic/gin"
)

// MenuCatalog is the read side of the menu used by the HTTP layer.
type MenuCatalog interface {
	Get(id string) (models.MenuItem, error)
	List(category string) []models.MenuItem
	Categories() []string
}

type MenuHandler struct {
	Catalog MenuCatalog
}

func NewMenuHandler(catalog MenuCatalog) *MenuHandler {
	return &MenuHandler{Catalog: catalog}
}

// ListItems handles GET /api/menu?category=.
func (h *MenuHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Catalog.List(c.Query("category"))})
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.Catalog.Get(c.Param("itemID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":     item,
		"defaults": cart.BuildSchema(item.Choices).Defaults(),
	})
}

func (h *MenuHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// QuoteItem prices a filled-in item form without touching any cart, so the
// dialog can show a live total.
func (h *MenuHandler) QuoteItem(c *gin.Context) {
	item, err := h.Catalog.Get(c.Param("itemID"))
	if err != nil {
		respondError(c, err)
		return
	}
	var values cart.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		badRequest(c, err)
		return
	}

	total := cart.CalculateTotalPrice(values, item.Choices, item.BasePrice)
	resp := gin.H{
		"itemId":    item.ID,
		"total":     total,
		"formatted": cart.FormatAmount(total),
	}
	var verr *cart.ValidationError
	if err := cart.BuildSchema(item.Choices).Validate(values); errors.As(err, &verr) {
		resp["fields"] = verr.Fields
	}
	c.JSON(http.StatusOK, resp)
}
