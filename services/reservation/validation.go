package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+254|254|0)[17]\d{8}$`)
	phoneNoise   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Result is the outcome of a single check; Reason is user-facing.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func valid() Result { return Result{Valid: true} }

func invalid(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// ValidateReservationDate compares calendar days only: the date must fall
// between today and today plus MaxAdvanceDays, both inclusive.
func ValidateReservationDate(date, now time.Time, r Rules) Result {
	day := r.dateOnly(date)
	if day.Before(r.Today(now)) {
		return invalid("Please select a date from today onwards")
	}
	if day.After(r.LastBookableDay(now)) {
		return invalid("Reservations can only be made up to %d days in advance", r.MaxAdvanceDays)
	}
	return valid()
}

// ValidateTimeSlot checks that slot is an operating slot whose instant on
// date is strictly after now plus the minimum advance.
func ValidateTimeSlot(date time.Time, slot string, now time.Time, r Rules) Result {
	at, err := SlotDateTime(date, slot, r)
	if err != nil {
		return invalid("Please select a valid time")
	}
	if !isOperatingSlot(slot, r) {
		return invalid("Please select a time between %s and %s", hourLabel(r.OpeningHour), hourLabel(r.ClosingHour))
	}
	if !at.After(now.Add(r.MinAdvance)) {
		return invalid("Reservations must be made at least %s in advance", hoursLabel(r.MinAdvance))
	}
	return valid()
}

func hourLabel(hour int) string {
	return time.Date(2000, 1, 1, hour%24, 0, 0, 0, time.UTC).Format(SlotLayout)
}

func hoursLabel(d time.Duration) string {
	h := int(d.Hours())
	if h == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", h)
}

// contactFields is the order in which contact errors are reported.
var contactFields = []string{"firstName", "lastName", "email", "phone"}

// ContactResult holds per-field messages for the contact step.
type ContactResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// First returns the first failing field in form order.
func (c ContactResult) First() (field, message string, found bool) {
	for _, f := range contactFields {
		if msg, ok := c.FieldErrors[f]; ok {
			return f, msg, true
		}
	}
	return "", "", false
}

// NormalizePhone strips spaces, dashes and parentheses.
func NormalizePhone(phone string) string {
	return phoneNoise.Replace(strings.TrimSpace(phone))
}

// IsKenyanMobile accepts +254, 254 or 0 followed by a 1 or 7 and eight digits.
func IsKenyanMobile(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

// IsEmail accepts the basic local@domain.tld shape.
func IsEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidateContactInfo checks the guest's name, email and phone.
func ValidateContactInfo(data models.ReservationData) ContactResult {
	errs := map[string]string{}

	checkName := func(field, label, value string) {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			errs[field] = label + " is required"
		case len([]rune(value)) < 2:
			errs[field] = label + " must be at least 2 characters"
		}
	}
	checkName("firstName", "First name", data.FirstName)
	checkName("lastName", "Last name", data.LastName)

	switch {
	case strings.TrimSpace(data.Email) == "":
		errs["email"] = "Email is required"
	case !IsEmail(data.Email):
		errs["email"] = "Please enter a valid email address"
	}

	switch {
	case strings.TrimSpace(data.Phone) == "":
		errs["phone"] = "Phone number is required"
	case !IsKenyanMobile(data.Phone):
		errs["phone"] = "Please enter a valid Kenyan phone number (e.g. 0712 345 678)"
	}

	if len(errs) == 0 {
		return ContactResult{Valid: true}
	}
	return ContactResult{FieldErrors: errs}
}

// StepRequirement returns the first unmet requirement of step, or nil.
func StepRequirement(step Step, data models.ReservationData, r Rules) *StepError {
	switch step {
	case StepDateTime:
		if data.Date == nil {
			return newStepError(step, "date", "Please select a date")
		}
		if strings.TrimSpace(data.Time) == "" {
			return newStepError(step, "time", "Please select a time")
		}
	case StepParty:
		if data.PartySize <= 0 {
			return newStepError(step, "partySize", "Please select the number of guests")
		}
		if data.PartySize > r.MaxPartySize {
			return newStepError(step, "partySize",
				fmt.Sprintf("Party size cannot exceed %d guests. Please call us for larger groups", r.MaxPartySize))
		}
	case StepTable:
		if data.DiningArea == "" {
			return newStepError(step, "diningArea", "Please select a dining area")
		}
		if data.TableID == "" || data.TableName == "" {
			return newStepError(step, "tableId", "Please select a table")
		}
	case StepContact:
		if field, msg, found := ValidateContactInfo(data).First(); found {
			return newStepError(step, field, msg)
		}
	case StepConfirm, StepSuccess:
	default:
		return newStepError(step, "step", ErrInvalidStep.Error())
	}
	return nil
}

// ValidateReservationStep reports whether step's requirements are met.
func ValidateReservationStep(step Step, data models.ReservationData, r Rules) bool {
	return StepRequirement(step, data, r) == nil
}
