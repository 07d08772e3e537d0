package handlers

import (
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/campaign"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
)

// sessionIDHeader scopes popup dismissal to one browsing session.
const sessionIDHeader = "X-Session-ID"

type CampaignHandler struct {
	Campaigns *campaign.Service
}

func NewCampaignHandler(svc *campaign.Service) *CampaignHandler {
	return &CampaignHandler{Campaigns: svc}
}

func (h *CampaignHandler) ListOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": h.Campaigns.ActiveOffers()})
}

// CopyCoupon returns the coupon code to put on the clipboard plus the toast.
func (h *CampaignHandler) CopyCoupon(c *gin.Context) {
	res, err := h.Campaigns.CouponCode(c.Param("offerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CampaignHandler) ShareResult(c *gin.Context) {
	var body struct {
		Result campaign.ShareResult `json:"result" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign.ShareOutcome(body.Result))
}

func (h *CampaignHandler) Register(c *gin.Context) {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	reg, err := h.Campaigns.Register(c.Request.Context(), c.GetHeader(clientIDHeader), body.Name, body.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "You're in! Watch WhatsApp for our offers.", "registration": reg})
}

func (h *CampaignHandler) DismissPopup(c *gin.Context) {
	sessionID := c.GetHeader(sessionIDHeader)
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing session identifier", "set the "+sessionIDHeader+" header")
		return
	}
	if err := h.Campaigns.DismissPopup(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": true})
}

func (h *CampaignHandler) PopupStatus(c *gin.Context) {
	show, err := h.Campaigns.ShouldShowPopup(c.Request.Context(), c.GetHeader(clientIDHeader), c.GetHeader(sessionIDHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"show": show})
}
