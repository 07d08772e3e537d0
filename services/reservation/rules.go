package reservation

import "time"

// Rules are the restaurant's booking constraints.
type Rules struct {
	Location       *time.Location
	OpeningHour    int
	ClosingHour    int
	SlotInterval   time.Duration
	MinAdvance     time.Duration
	MaxAdvanceDays int
	MaxPartySize   int
}

// DefaultRules returns the house rules: 11 AM to 10 PM in 30 minute slots,
// booked at least 2 hours and at most 30 days ahead, up to 12 guests.
func DefaultRules() Rules {
	return Rules{
		Location:       time.FixedZone("EAT", 3*60*60),
		OpeningHour:    11,
		ClosingHour:    22,
		SlotInterval:   30 * time.Minute,
		MinAdvance:     2 * time.Hour,
		MaxAdvanceDays: 30,
		MaxPartySize:   12,
	}
}

func (r Rules) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

func (r Rules) interval() time.Duration {
	if r.SlotInterval <= 0 {
		return 30 * time.Minute
	}
	return r.SlotInterval
}

// dateOnly truncates t to midnight of its calendar day in the restaurant's zone.
func (r Rules) dateOnly(t time.Time) time.Time {
	loc := r.location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today is the current calendar day in the restaurant's zone.
func (r Rules) Today(now time.Time) time.Time {
	return r.dateOnly(now)
}

// LastBookableDay is the final day inside the advance-booking window.
func (r Rules) LastBookableDay(now time.Time) time.Time {
	return r.dateOnly(now).AddDate(0, 0, r.MaxAdvanceDays)
}

// ParseDate reads a "2006-01-02" calendar day in the restaurant's zone.
func (r Rules) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, r.location())
}
