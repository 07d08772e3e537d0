package models

import "time"

type DiningArea string

const (
	DiningAreaIndoor  DiningArea = "indoor"
	DiningAreaOutdoor DiningArea = "outdoor"
)

// Valid reports whether the area is one the floor plan knows about.
func (a DiningArea) Valid() bool {
	return a == DiningAreaIndoor || a == DiningAreaOutdoor
}

// Occasion is display-only; it has no effect on availability.
type Occasion string

const (
	OccasionNone        Occasion = ""
	OccasionBirthday    Occasion = "birthday"
	OccasionAnniversary Occasion = "anniversary"
	OccasionDate        Occasion = "date"
	OccasionBusiness    Occasion = "business"
	OccasionCelebration Occasion = "celebration"
	OccasionOther       Occasion = "other"
)

func (o Occasion) Valid() bool {
	switch o {
	case OccasionNone, OccasionBirthday, OccasionAnniversary, OccasionDate,
		OccasionBusiness, OccasionCelebration, OccasionOther:
		return true
	}
	return false
}

// ReservationData is the working state of the booking wizard.
type ReservationData struct {
	Date                *time.Time `json:"date"`                 // calendar day in the restaurant's zone, midnight
	Time                string     `json:"time"`                 // 12-hour slot label, e.g. "12:30 PM"
	PartySize           int        `json:"partySize"`            // 1..MaxPartySize
	Occasion            Occasion   `json:"occasion"`             // optional
	DiningArea          DiningArea `json:"diningArea"`           // indoor or outdoor
	TableID             string     `json:"tableId"`              // set together with TableName
	TableName           string     `json:"tableName"`            // display name of TableID
	FirstName           string     `json:"firstName"`            // >= 2 chars
	LastName            string     `json:"lastName"`             // >= 2 chars
	Email               string     `json:"email"`                // local@domain.tld
	Phone               string     `json:"phone"`                // Kenyan mobile
	DietaryRestrictions string     `json:"dietaryRestrictions"`  // free text
	SpecialRequests     string     `json:"specialRequests"`      // free text
}

// ReservationPatch is a partial update; nil fields are left untouched.
type ReservationPatch struct {
	PartySize           *int        `json:"partySize,omitempty"`
	Occasion            *Occasion   `json:"occasion,omitempty"`
	DiningArea          *DiningArea `json:"diningArea,omitempty"`
	FirstName           *string     `json:"firstName,omitempty"`
	LastName            *string     `json:"lastName,omitempty"`
	Email               *string     `json:"email,omitempty"`
	Phone               *string     `json:"phone,omitempty"`
	DietaryRestrictions *string     `json:"dietaryRestrictions,omitempty"`
	SpecialRequests     *string     `json:"specialRequests,omitempty"`
}

// Table is a bookable table on the floor plan.
type Table struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Area        DiningArea `json:"area"`
	Capacity    int        `json:"capacity"`
	Available   bool       `json:"available"`
	Description string     `json:"description,omitempty"`
}

// ReservationConfirmation is what the success step displays.
type ReservationConfirmation struct {
	Reference  string     `json:"reference"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	StartsAt   time.Time  `json:"startsAt"`
	PartySize  int        `json:"partySize"`
	Occasion   Occasion   `json:"occasion,omitempty"`
	DiningArea DiningArea `json:"diningArea"`
	TableName  string     `json:"tableName"`
	GuestName  string     `json:"guestName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CreatedAt  time.Time  `json:"createdAt"`
}
