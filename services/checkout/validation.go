package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"
)

var (
	cardNumberPattern = regexp.MustCompile(`^(\d{16}|\d{4}( \d{4}){3})$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

var (
	pickupFields = []string{"name", "phone", "email", "date", "time"}
	cardFields   = []string{"number", "expiry", "cvv", "name"}
)

const (
	pickupDateLayout = "2006-01-02"
	pickupTimeLayout = "3:04 PM"
)

// ValidatePickup checks the pickup form and returns the combined pickup
// instant in loc. The instant must be strictly after now.
func ValidatePickup(d models.PickupDetails, now time.Time, loc *time.Location) (time.Time, error) {
	fields := FieldErrors{}
	if len(strings.TrimSpace(d.Name)) < 2 {
		fields["name"] = "Name must be at least 2 characters"
	}
	if !reservation.IsKenyanMobile(d.Phone) {
		fields["phone"] = "Enter a valid Kenyan phone number"
	}
	if !reservation.IsEmail(d.Email) {
		fields["email"] = "Enter a valid email address"
	}

	day, dateErr := time.ParseInLocation(pickupDateLayout, strings.TrimSpace(d.Date), loc)
	if dateErr != nil {
		fields["date"] = "Please select a pickup date"
	}
	clock, timeErr := time.Parse(pickupTimeLayout, strings.ToUpper(strings.TrimSpace(d.Time)))
	if timeErr != nil {
		fields["time"] = "Please select a pickup time"
	}

	var at time.Time
	if dateErr == nil && timeErr == nil {
		at = time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
		if !at.After(now) {
			fields["time"] = "Pickup time must be in the future"
		}
	}

	if len(fields) > 0 {
		return time.Time{}, &FormError{Form: "pickup", Fields: fields, order: pickupFields}
	}
	return at, nil
}

// ValidateMpesa checks the number an STK push is sent to.
func ValidateMpesa(phone string) error {
	if !reservation.IsKenyanMobile(phone) {
		return &FormError{
			Form:   "mpesa",
			Fields: FieldErrors{"phone": "Enter a valid M-Pesa number"},
			order:  []string{"phone"},
		}
	}
	return nil
}

// ValidateCard checks the card form. A card is usable through the last day
// of its expiry month.
func ValidateCard(card models.CardDetails, now time.Time) error {
	fields := FieldErrors{}
	if !cardNumberPattern.MatchString(strings.TrimSpace(card.Number)) {
		fields["number"] = "Card number must be 16 digits"
	}
	if m := expiryPattern.FindStringSubmatch(strings.TrimSpace(card.Expiry)); m == nil {
		fields["expiry"] = "Expiry must be MM/YY"
	} else {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		year += 2000
		if year*12+month < now.Year()*12+int(now.Month()) {
			fields["expiry"] = "This card has expired"
		}
	}
	if !cvvPattern.MatchString(strings.TrimSpace(card.CVV)) {
		fields["cvv"] = "CVV must be 3 or 4 digits"
	}
	if len(strings.TrimSpace(card.Name)) < 2 {
		fields["name"] = "Enter the name on the card"
	}
	if len(fields) > 0 {
		return &FormError{Form: "card", Fields: fields, order: cardFields}
	}
	return nil
}

// CardLast4 keeps only the digits safe to display.
func CardLast4(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}
