package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/campaign"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/checkout"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/menu"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses. Validation failures
// become 422 with inline field messages and a toast.
func respondError(c *gin.Context, err error) {
	var (
		stepErr *reservation.StepError
		cartErr *cart.ValidationError
		formErr *checkout.FormError
		regErr  *campaign.RegistrationError
	)

	switch {
	case errors.As(err, &stepErr):
		utils.JSONValidationError(c, stepErr.Message, map[string]string{stepErr.Field: stepErr.Message})
	case errors.As(err, &cartErr):
		_, toast := cartErr.First()
		utils.JSONValidationError(c, toast, cartErr.Fields)
	case errors.As(err, &formErr):
		utils.JSONValidationError(c, formErr.Toast(), formErr.Fields)
	case errors.As(err, &regErr):
		utils.JSONValidationError(c, regErr.Error(), regErr.Fields)
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.JSONValidationError(c, err.Error(), nil)

	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", "start a new session")
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, campaign.ErrOfferNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, campaign.ErrOfferExpired):
		utils.JSONError(c, http.StatusGone, err.Error(), "")

	case errors.Is(err, reservation.ErrWizardComplete),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrNothingToRetry):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, reservation.ErrInvalidStep),
		errors.Is(err, reservation.ErrInvalidDiningArea),
		errors.Is(err, reservation.ErrInvalidOccasion),
		errors.Is(err, reservation.ErrInvalidPartySize),
		errors.Is(err, cart.ErrInvalidQuantity):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.JSONError(c, http.StatusServiceUnavailable, "request cancelled", err.Error())
	default:
		getLogger(c).Error("unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
}
