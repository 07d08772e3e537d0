package reservation

import (
	"fmt"
	"strings"
	"time"
)

// SlotLayout is the 12-hour clock format of slot labels.
const SlotLayout = "3:04 PM"

// GenerateAllTimeSlots lists every slot from opening time up to, but not
// including, closing time.
func GenerateAllTimeSlots(r Rules) []string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	start := base.Add(time.Duration(r.OpeningHour) * time.Hour)
	end := base.Add(time.Duration(r.ClosingHour) * time.Hour)

	slots := make([]string, 0)
	for t := start; t.Before(end); t = t.Add(r.interval()) {
		slots = append(slots, t.Format(SlotLayout))
	}
	return slots
}

// FilterAvailableTimeSlots returns the slots still bookable on date.
// Today keeps only slots strictly after now plus the minimum advance; later
// days inside the booking window keep everything; other days get nothing.
func FilterAvailableTimeSlots(date, now time.Time, r Rules) []string {
	day := r.dateOnly(date)
	today := r.dateOnly(now)
	all := GenerateAllTimeSlots(r)

	switch {
	case day.Before(today), day.After(r.LastBookableDay(now)):
		return []string{}
	case day.After(today):
		return all
	}

	cutoff := now.Add(r.MinAdvance)
	available := make([]string, 0, len(all))
	for _, slot := range all {
		at, err := SlotDateTime(day, slot, r)
		if err != nil {
			continue
		}
		if at.After(cutoff) {
			available = append(available, slot)
		}
	}
	return available
}

// ParseTimeSlot reads a slot label back into hour (0-23) and minute.
func ParseTimeSlot(slot string) (hour, minute int, err error) {
	t, err := time.Parse(SlotLayout, strings.ToUpper(strings.TrimSpace(slot)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q: %w", slot, err)
	}
	return t.Hour(), t.Minute(), nil
}

// SlotDateTime combines a calendar day and a slot label into an instant.
func SlotDateTime(date time.Time, slot string, r Rules) (time.Time, error) {
	hour, minute, err := ParseTimeSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	loc := r.location()
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// isOperatingSlot reports whether slot is one of the generated slots.
func isOperatingSlot(slot string, r Rules) bool {
	hour, minute, err := ParseTimeSlot(slot)
	if err != nil {
		return false
	}
	offset := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
	open := time.Duration(r.OpeningHour) * time.Hour
	closing := time.Duration(r.ClosingHour) * time.Hour
	if offset < open || offset >= closing {
		return false
	}
	return (offset-open)%r.interval() == 0
}
