package handlers

import (
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	Svc   reservation.ReservationService
	Rules reservation.Rules
}

func NewReservationHandler(svc reservation.ReservationService, rules reservation.Rules) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Rules: rules}
}

// GetTimeSlots handles GET /api/reservations/timeslots?date=2006-01-02.
func (h *ReservationHandler) GetTimeSlots(c *gin.Context) {
	date, err := h.Rules.ParseDate(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "use YYYY-MM-DD")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "slots": h.Svc.AvailableTimeSlots(date)})
}

func (h *ReservationHandler) StartSession(c *gin.Context) {
	view, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ReservationHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateDetails handles PATCH /api/reservations/sessions/:sessionID.
func (h *ReservationHandler) UpdateDetails(c *gin.Context) {
	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.Svc.UpdateDetails(c.Request.Context(), c.Param("sessionID"), patch))
}

func (h *ReservationHandler) SelectDateTime(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	date, err := h.Rules.ParseDate(body.Date)
	if err != nil {
		utils.JSONValidationError(c, "Please select a valid date", map[string]string{"date": "Please select a valid date"})
		return
	}
	h.reply(c)(h.Svc.SelectDateTime(c.Request.Context(), c.Param("sessionID"), date, body.Time))
}

func (h *ReservationHandler) SelectTable(c *gin.Context) {
	var body struct {
		TableID string `json:"tableId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.Svc.SelectTable(c.Request.Context(), c.Param("sessionID"), body.TableID))
}

func (h *ReservationHandler) GetTables(c *gin.Context) {
	tables, err := h.Svc.AvailableTables(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

func (h *ReservationHandler) Next(c *gin.Context) {
	h.reply(c)(h.Svc.Next(c.Request.Context(), c.Param("sessionID")))
}

func (h *ReservationHandler) Previous(c *gin.Context) {
	h.reply(c)(h.Svc.Previous(c.Request.Context(), c.Param("sessionID")))
}

// JumpTo accepts {"step": "contact"} or {"step": "3"}.
func (h *ReservationHandler) JumpTo(c *gin.Context) {
	var body struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	step, err := reservation.ParseStep(body.Step)
	if err != nil {
		respondError(c, err)
		return
	}
	h.reply(c)(h.Svc.JumpTo(c.Request.Context(), c.Param("sessionID"), step))
}

func (h *ReservationHandler) Reset(c *gin.Context) {
	h.reply(c)(h.Svc.Reset(c.Request.Context(), c.Param("sessionID")))
}

func (h *ReservationHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation session cancelled"})
}

func (h *ReservationHandler) reply(c *gin.Context) func(*reservation.SessionView, error) {
	return func(view *reservation.SessionView, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
