package models

import "time"

// Offer is a promotional offer with a copyable coupon code.
type Offer struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CouponCode      string    `json:"couponCode"`
	DiscountPercent int       `json:"discountPercent"`
	ValidUntil      time.Time `json:"validUntil"`
}

// CampaignRegistration is a WhatsApp campaign sign-up.
type CampaignRegistration struct {
	ClientID     string    `json:"clientId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registeredAt"`
}
