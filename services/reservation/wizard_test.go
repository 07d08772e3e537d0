package reservation

import (
	"errors"
	"testing"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"
)

func newTestWizard(now time.Time) *Wizard {
	return NewWizard(testRules(), WithClock(func() time.Time { return now }))
}

func ptr[T any](v T) *T { return &v }

func tableNames(tables []models.Table) map[string]bool {
	out := map[string]bool{}
	for _, t := range tables {
		out[t.Name] = true
	}
	return out
}

func TestWizard_Defaults(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))
	if w.Step() != StepDateTime {
		t.Errorf("step = %v", w.Step())
	}
	if d := w.Data(); d.PartySize != 2 || d.DiningArea != models.DiningAreaIndoor {
		t.Errorf("unexpected defaults %+v", d)
	}
}

func TestWizard_NextBlockedUntilDateAndTime(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))

	err := w.Next()
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Field != "date" {
		t.Fatalf("expected date requirement, got %v", err)
	}
	if w.Step() != StepDateTime {
		t.Fatal("blocked transition must not move the wizard")
	}

	if err := w.SelectDateTime(at(2026, 10, 20, 0, 0), "12:00 PM"); err != nil {
		t.Fatalf("SelectDateTime: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if w.Step() != StepParty {
		t.Errorf("step = %v, want party", w.Step())
	}
}

func TestWizard_SelectDateTimeRejectsInvalid(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 10, 0))

	var stepErr *StepError
	err := w.SelectDateTime(at(2026, 10, 18, 0, 0), "12:00 PM")
	if !errors.As(err, &stepErr) || stepErr.Field != "date" {
		t.Errorf("past date: got %v", err)
	}
	err = w.SelectDateTime(at(2026, 10, 19, 0, 0), "12:00 PM")
	if !errors.As(err, &stepErr) || stepErr.Field != "time" {
		t.Errorf("slot inside minimum advance: got %v", err)
	}
	if w.Data().Date != nil || w.Data().Time != "" {
		t.Error("rejected selection must not be stored")
	}
}

// Tomorrow, 12:00 PM, five guests: the four-seat table is hidden, the booth
// is offered, and the contact step stays locked until a table is chosen.
func TestWizard_TableScenario(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))

	if err := w.SelectDateTime(at(2026, 10, 20, 0, 0), "12:00 PM"); err != nil {
		t.Fatal(err)
	}
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(models.ReservationPatch{PartySize: ptr(5)}); err != nil {
		t.Fatal(err)
	}
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}

	names := tableNames(w.AvailableTables())
	if names["Central Table 5"] {
		t.Error("Central Table 5 seats 4 and must not be offered to 5 guests")
	}
	if !names["Corner Booth 3"] {
		t.Error("Corner Booth 3 seats 6 and must be offered")
	}

	var stepErr *StepError
	if err := w.Next(); !errors.As(err, &stepErr) || stepErr.Field != "tableId" {
		t.Fatalf("expected table requirement, got %v", err)
	}
	if err := w.JumpTo(StepContact); !errors.As(err, &stepErr) || stepErr.Step != StepTable {
		t.Fatalf("jump to contact without table: got %v", err)
	}

	if err := w.SelectTable("indoor-central-5"); err == nil {
		t.Error("selecting an undersized table must fail")
	}
	if err := w.SelectTable("indoor-booth-3"); err != nil {
		t.Fatalf("SelectTable: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next after table: %v", err)
	}
	if w.Step() != StepContact {
		t.Errorf("step = %v, want contact", w.Step())
	}
}

func TestWizard_AreaChangeClearsTable(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))
	if err := w.SelectTable("indoor-central-5"); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(models.ReservationPatch{DiningArea: ptr(models.DiningAreaOutdoor)}); err != nil {
		t.Fatal(err)
	}
	if d := w.Data(); d.TableID != "" || d.TableName != "" {
		t.Errorf("table not cleared: %+v", d)
	}
	for _, tbl := range w.AvailableTables() {
		if tbl.Area != models.DiningAreaOutdoor || !tbl.Available {
			t.Errorf("unexpected table offered: %+v", tbl)
		}
	}
}

func TestWizard_SameAreaKeepsTable(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))
	if err := w.SelectTable("indoor-central-5"); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(models.ReservationPatch{DiningArea: ptr(models.DiningAreaIndoor)}); err != nil {
		t.Fatal(err)
	}
	if w.Data().TableID != "indoor-central-5" {
		t.Error("re-selecting the same area must keep the table")
	}
}

func TestWizard_LargerPartyDropsSmallTable(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))
	if err := w.SelectTable("indoor-central-5"); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(models.ReservationPatch{PartySize: ptr(6)}); err != nil {
		t.Fatal(err)
	}
	if w.Data().TableID != "" {
		t.Error("table smaller than the party must be cleared")
	}
}

func TestWizard_UpdateRejectsBadValues(t *testing.T) {
	w := newTestWizard(at(2026, 10, 19, 9, 0))
	if err := w.Update(models.ReservationPatch{DiningArea: ptr(models.DiningArea("rooftop"))}); !errors.Is(err, ErrInvalidDiningArea) {
		t.Errorf("got %v", err)
	}
	if err := w.Update(models.ReservationPatch{Occasion: ptr(models.Occasion("wake"))}); !errors.Is(err, ErrInvalidOccasion) {
		t.Errorf("got %v", err)
	}
	if err := w.Update(models.ReservationPatch{PartySize: ptr(0)}); !errors.Is(err, ErrInvalidPartySize) {
		t.Errorf("got %v", err)
	}
}

func TestWizard_JumpRequiresEveryEarlierStep(t *testing.T) {
	day := at(2026, 10, 20, 0, 0)
	state := WizardState{Data: models.ReservationData{Date: &day, Time: "12:00 PM", PartySize: 0}}
	w := ResumeWizard(state, testRules(), WithClock(func() time.Time { return at(2026, 10, 19, 9, 0) }))

	err := w.JumpTo(StepContact)
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StepParty {
		t.Fatalf("expected party step failure, got %v", err)
	}
	if w.Step() != StepDateTime {
		t.Error("rejected jump must not move the wizard")
	}

	empty := newTestWizard(at(2026, 10, 19, 9, 0))
	if err := empty.JumpTo(StepConfirm); !errors.As(err, &stepErr) || stepErr.Step != StepDateTime {
		t.Errorf("earliest failing step must win, got %v", err)
	}
	if err := empty.JumpTo(StepSuccess); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("success is not jumpable, got %v", err)
	}
}

func TestWizard_PreviousAndBackwardJumpNeedNoValidation(t *testing.T) {
	day := at(2026, 10, 20, 0, 0)
	state := WizardState{Step: StepContact, Data: models.ReservationData{Date: &day}}
	w := ResumeWizard(state, testRules())

	w.Previous()
	if w.Step() != StepTable {
		t.Errorf("step = %v", w.Step())
	}
	if err := w.JumpTo(StepDateTime); err != nil {
		t.Fatalf("backward jump: %v", err)
	}
	w.Previous()
	if w.Step() != StepDateTime {
		t.Error("previous at the first step is a no-op")
	}
}

func completeToConfirm(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.SelectDateTime(at(2026, 10, 20, 0, 0), "7:30 PM"); err != nil {
		t.Fatal(err)
	}
	if err := w.Update(models.ReservationPatch{
		PartySize: ptr(4),
		Occasion:  ptr(models.OccasionBirthday),
		FirstName: ptr("Otieno"),
		LastName:  ptr("Odhiambo"),
		Email:     ptr("otieno@example.com"),
		Phone:     ptr("+254 722 000 111"),
	}); err != nil {
		t.Fatal(err)
	}
	if err := w.SelectTable("outdoor-garden-2"); err == nil {
		t.Fatal("outdoor table must not be selectable while indoor is chosen")
	}
	if err := w.SelectTable("indoor-central-6"); err != nil {
		t.Fatal(err)
	}
	if err := w.JumpTo(StepConfirm); err != nil {
		t.Fatalf("jump to confirm: %v", err)
	}
}

func TestWizard_CompleteAndReset(t *testing.T) {
	now := at(2026, 10, 19, 9, 0)
	w := newTestWizard(now)
	completeToConfirm(t, w)

	if err := w.Next(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !w.Complete() {
		t.Fatal("wizard should be complete")
	}
	c := w.State().Confirmation
	if c == nil {
		t.Fatal("missing confirmation")
	}
	if c.TableName != "Central Table 6" || c.PartySize != 4 || c.GuestName != "Otieno Odhiambo" {
		t.Errorf("unexpected confirmation %+v", c)
	}
	if c.Phone != "+254722000111" {
		t.Errorf("phone not normalized: %q", c.Phone)
	}
	if !c.StartsAt.Equal(at(2026, 10, 20, 19, 30)) {
		t.Errorf("StartsAt = %v", c.StartsAt)
	}
	if len(c.Reference) != len("RSV-")+8 {
		t.Errorf("reference %q", c.Reference)
	}

	if err := w.Next(); !errors.Is(err, ErrWizardComplete) {
		t.Errorf("Next at success: %v", err)
	}
	w.Previous()
	if w.Step() != StepSuccess {
		t.Error("success is display-only")
	}

	w.Reset()
	if w.Step() != StepDateTime || w.Data().Date != nil || w.State().Confirmation != nil {
		t.Errorf("reset left state behind: %+v", w.State())
	}
}

func TestParseStep(t *testing.T) {
	for in, want := range map[string]Step{"0": StepDateTime, "3": StepContact, "table": StepTable, "Confirm": StepConfirm} {
		got, err := ParseStep(in)
		if err != nil || got != want {
			t.Errorf("ParseStep(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseStep("7"); err == nil {
		t.Error("expected error for unknown step")
	}
}
