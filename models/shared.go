package models

// ReservationReminderPayload is the body of a delayed reservation reminder task.
type ReservationReminderPayload struct {
	Reference string `json:"reference"`
	GuestName string `json:"guestName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
	TableName string `json:"tableName"`
}
