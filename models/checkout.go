package models

// PickupDetails is the pickup form. Date is "2006-01-02", Time is "3:04 PM".
type PickupDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Instructions string `json:"instructions"`
}

// SavedContact is the reusable subset of PickupDetails kept across sessions.
type SavedContact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions"`
}
