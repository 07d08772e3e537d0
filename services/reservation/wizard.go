package reservation

import (
	"strings"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/google/uuid"
)

// Step is a position in the booking wizard.
type Step int

const (
	StepDateTime Step = iota
	StepParty
	StepTable
	StepContact
	StepConfirm
	StepSuccess
)

var stepNames = [...]string{"datetime", "party", "table", "contact", "confirm", "success"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// ParseStep accepts either a step index or a step name.
func ParseStep(s string) (Step, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range stepNames {
		if s == name || (len(s) == 1 && s[0] == byte('0'+i)) {
			return Step(i), nil
		}
	}
	return 0, ErrInvalidStep
}

// WizardState is the serializable part of a wizard.
type WizardState struct {
	Step         Step                            `json:"step"`
	Data         models.ReservationData          `json:"data"`
	Confirmation *models.ReservationConfirmation `json:"confirmation,omitempty"`
}

// Wizard walks a guest through date/time, party, table, contact and confirm.
type Wizard struct {
	state  WizardState
	rules  Rules
	tables []models.Table
	now    func() time.Time
}

type Option func(*Wizard)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithFloorPlan replaces DefaultFloorPlan.
func WithFloorPlan(tables []models.Table) Option {
	return func(w *Wizard) { w.tables = tables }
}

// NewWizard starts a wizard at the first step with default data.
func NewWizard(rules Rules, opts ...Option) *Wizard {
	return ResumeWizard(WizardState{Data: defaultData()}, rules, opts...)
}

// ResumeWizard rebuilds a wizard from saved state.
func ResumeWizard(state WizardState, rules Rules, opts ...Option) *Wizard {
	w := &Wizard{state: state, rules: rules, tables: DefaultFloorPlan(), now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func defaultData() models.ReservationData {
	return models.ReservationData{PartySize: 2, DiningArea: models.DiningAreaIndoor}
}

func (w *Wizard) State() WizardState { return w.state }
func (w *Wizard) Step() Step         { return w.state.Step }

func (w *Wizard) Data() models.ReservationData { return w.state.Data }

func (w *Wizard) Complete() bool { return w.state.Step == StepSuccess }

// Update merges a partial change into the reservation data. Switching the
// dining area drops the chosen table, as does growing the party beyond it.
func (w *Wizard) Update(p models.ReservationPatch) error {
	if w.Complete() {
		return ErrWizardComplete
	}
	if p.DiningArea != nil && !p.DiningArea.Valid() {
		return ErrInvalidDiningArea
	}
	if p.Occasion != nil && !p.Occasion.Valid() {
		return ErrInvalidOccasion
	}
	if p.PartySize != nil && *p.PartySize < 1 {
		return ErrInvalidPartySize
	}

	d := &w.state.Data
	if p.DiningArea != nil && *p.DiningArea != d.DiningArea {
		d.DiningArea = *p.DiningArea
		w.clearTable()
	}
	if p.PartySize != nil {
		d.PartySize = *p.PartySize
		if t, found := findTable(w.tables, d.TableID); found && t.Capacity < d.PartySize {
			w.clearTable()
		}
	}
	setString(&d.FirstName, p.FirstName)
	setString(&d.LastName, p.LastName)
	setString(&d.Email, p.Email)
	setString(&d.Phone, p.Phone)
	setString(&d.DietaryRestrictions, p.DietaryRestrictions)
	setString(&d.SpecialRequests, p.SpecialRequests)
	if p.Occasion != nil {
		d.Occasion = *p.Occasion
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (w *Wizard) clearTable() {
	w.state.Data.TableID = ""
	w.state.Data.TableName = ""
}

// AvailableTimeSlots lists the bookable slots for date as of now.
func (w *Wizard) AvailableTimeSlots(date time.Time) []string {
	return FilterAvailableTimeSlots(date, w.now(), w.rules)
}

// SelectDateTime stores a date and slot once both pass validation.
func (w *Wizard) SelectDateTime(date time.Time, slot string) error {
	if w.Complete() {
		return ErrWizardComplete
	}
	now := w.now()
	if res := ValidateReservationDate(date, now, w.rules); !res.Valid {
		return newStepError(StepDateTime, "date", res.Reason)
	}
	if res := ValidateTimeSlot(date, slot, now, w.rules); !res.Valid {
		return newStepError(StepDateTime, "time", res.Reason)
	}
	day := w.rules.dateOnly(date)
	w.state.Data.Date = &day
	w.state.Data.Time = strings.ToUpper(strings.TrimSpace(slot))
	return nil
}

// AvailableTables lists tables selectable for the current party and area.
func (w *Wizard) AvailableTables() []models.Table {
	return SelectableTables(w.tables, w.state.Data.PartySize, w.state.Data.DiningArea)
}

// SelectTable picks a table; it must pass the availability filter.
func (w *Wizard) SelectTable(tableID string) error {
	if w.Complete() {
		return ErrWizardComplete
	}
	d := &w.state.Data
	t, found := findTable(w.tables, tableID)
	if !found || !IsSelectable(t, d.PartySize, d.DiningArea) {
		return newStepError(StepTable, "tableId", "This table is not available for your party")
	}
	d.TableID = t.ID
	d.TableName = t.Name
	return nil
}

// Next advances one step when the current step validates. Leaving the
// confirm step completes the reservation.
func (w *Wizard) Next() error {
	if w.Complete() {
		return ErrWizardComplete
	}
	if err := StepRequirement(w.state.Step, w.state.Data, w.rules); err != nil {
		return err
	}
	w.state.Step++
	if w.state.Step == StepSuccess {
		w.state.Confirmation = w.confirmation()
	}
	return nil
}

// Previous moves back one step without validation.
func (w *Wizard) Previous() {
	if w.state.Step > StepDateTime && w.state.Step < StepSuccess {
		w.state.Step--
	}
}

// JumpTo moves to target. Moving forward requires every earlier step to
// validate; the earliest failure is returned.
func (w *Wizard) JumpTo(target Step) error {
	if target < StepDateTime || target > StepConfirm {
		return ErrInvalidStep
	}
	if w.Complete() {
		return ErrWizardComplete
	}
	if target > w.state.Step {
		for s := StepDateTime; s < target; s++ {
			if err := StepRequirement(s, w.state.Data, w.rules); err != nil {
				return err
			}
		}
	}
	w.state.Step = target
	return nil
}

// Reset discards everything and returns to the first step.
func (w *Wizard) Reset() {
	w.state = WizardState{Data: defaultData()}
}

func (w *Wizard) confirmation() *models.ReservationConfirmation {
	d := w.state.Data
	c := &models.ReservationConfirmation{
		Reference:  "RSV-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8]),
		Time:       d.Time,
		PartySize:  d.PartySize,
		Occasion:   d.Occasion,
		DiningArea: d.DiningArea,
		TableName:  d.TableName,
		GuestName:  strings.TrimSpace(d.FirstName + " " + d.LastName),
		Email:      d.Email,
		Phone:      NormalizePhone(d.Phone),
		CreatedAt:  w.now(),
	}
	if d.Date != nil {
		c.Date = d.Date.Format("2006-01-02")
		if at, err := SlotDateTime(*d.Date, d.Time, w.rules); err == nil {
			c.StartsAt = at
		}
	}
	return c
}
