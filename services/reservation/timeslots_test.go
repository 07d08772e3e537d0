package reservation

import (
	"testing"
	"time"
)

var eat = time.FixedZone("EAT", 3*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, eat)
}

func testRules() Rules {
	r := DefaultRules()
	r.Location = eat
	return r
}

func TestGenerateAllTimeSlots(t *testing.T) {
	slots := GenerateAllTimeSlots(testRules())

	if len(slots) != 22 {
		t.Fatalf("expected 22 slots between 11:00 and 22:00, got %d", len(slots))
	}
	if slots[0] != "11:00 AM" {
		t.Errorf("first slot = %q", slots[0])
	}
	if slots[2] != "12:00 PM" {
		t.Errorf("third slot = %q, want 12:00 PM", slots[2])
	}
	if last := slots[len(slots)-1]; last != "9:30 PM" {
		t.Errorf("last slot = %q, closing hour must be excluded", last)
	}
}

func TestFilterAvailableTimeSlots_FutureDayKeepsAll(t *testing.T) {
	r := testRules()
	now := at(2026, 10, 19, 21, 0)
	tomorrow := at(2026, 10, 20, 0, 0)

	got := FilterAvailableTimeSlots(tomorrow, now, r)
	if len(got) != len(GenerateAllTimeSlots(r)) {
		t.Errorf("future day: got %d slots, want all %d", len(got), len(GenerateAllTimeSlots(r)))
	}
}

func TestFilterAvailableTimeSlots_Today(t *testing.T) {
	r := testRules()
	now := at(2026, 10, 19, 10, 0)

	got := FilterAvailableTimeSlots(now, now, r)
	if len(got) != 19 {
		t.Fatalf("got %d slots, want 19 (12:30 PM onwards)", len(got))
	}
	if got[0] != "12:30 PM" {
		t.Errorf("first slot = %q; 12:00 PM is exactly two hours away and must be excluded", got[0])
	}
}

func TestFilterAvailableTimeSlots_MinimumAdvance(t *testing.T) {
	r := testRules()
	now := at(2026, 10, 19, 13, 17)

	for _, slot := range FilterAvailableTimeSlots(now, now, r) {
		start, err := SlotDateTime(now, slot, r)
		if err != nil {
			t.Fatalf("SlotDateTime(%q): %v", slot, err)
		}
		if start.Sub(now) < r.MinAdvance {
			t.Errorf("slot %s is only %v away", slot, start.Sub(now))
		}
	}
}

func TestFilterAvailableTimeSlots_NonIncreasingThroughTheDay(t *testing.T) {
	r := testRules()
	prev := len(GenerateAllTimeSlots(r))
	for now := at(2026, 10, 19, 6, 0); now.Before(at(2026, 10, 19, 23, 59)); now = now.Add(7 * time.Minute) {
		n := len(FilterAvailableTimeSlots(now, now, r))
		if n > prev {
			t.Fatalf("slot count grew from %d to %d at %s", prev, n, now.Format(time.Kitchen))
		}
		prev = n
	}
	if prev != 0 {
		t.Errorf("expected no slots late at night, got %d", prev)
	}
}

func TestFilterAvailableTimeSlots_OutsideWindow(t *testing.T) {
	r := testRules()
	now := at(2026, 10, 19, 9, 0)

	if got := FilterAvailableTimeSlots(at(2026, 10, 18, 0, 0), now, r); len(got) != 0 {
		t.Errorf("past day returned %d slots", len(got))
	}
	if got := FilterAvailableTimeSlots(now.AddDate(0, 0, r.MaxAdvanceDays+1), now, r); len(got) != 0 {
		t.Errorf("day beyond the window returned %d slots", len(got))
	}
	if got := FilterAvailableTimeSlots(now.AddDate(0, 0, r.MaxAdvanceDays), now, r); len(got) != 22 {
		t.Errorf("last day of the window returned %d slots", len(got))
	}
}

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"12:00 PM", 12, 0, false},
		{"12:30 AM", 0, 30, false},
		{"9:30 pm", 21, 30, false},
		{" 11:00 AM ", 11, 0, false},
		{"21:00", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		h, m, err := ParseTimeSlot(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeSlot(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && (h != tt.hour || m != tt.minute) {
			t.Errorf("ParseTimeSlot(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.hour, tt.minute)
		}
	}
}
