package campaign

import (
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

// DefaultOffers are the running promotions.
func DefaultOffers() []models.Offer {
	return []models.Offer{
		{
			ID:              "karibu",
			Title:           "Karibu Discount",
			Description:     "10% off your first pickup order",
			CouponCode:      "KARIBU10",
			DiscountPercent: 10,
			ValidUntil:      time.Date(2027, 6, 30, 23, 59, 0, 0, time.UTC),
		},
		{
			ID:              "choma-friday",
			Title:           "Choma Friday",
			Description:     "15% off nyama choma every Friday",
			CouponCode:      "CHOMA15",
			DiscountPercent: 15,
			ValidUntil:      time.Date(2027, 12, 31, 23, 59, 0, 0, time.UTC),
		},
		{
			ID:              "birthday",
			Title:           "Birthday Treat",
			Description:     "Free dessert platter when you book for a birthday",
			CouponCode:      "HBD2026",
			DiscountPercent: 0,
			ValidUntil:      time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
		},
	}
}
