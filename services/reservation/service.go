package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "reservation:"

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReservationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultReservationService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return 30 * time.Minute
	}
	return s.SessionTTL
}

func (s *DefaultReservationService) options() []Option {
	opts := []Option{WithClock(s.now)}
	if len(s.FloorPlan) > 0 {
		opts = append(opts, WithFloorPlan(s.FloorPlan))
	}
	return opts
}

func (s *DefaultReservationService) load(ctx context.Context, sessionID string) (*Wizard, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("reservation not initialized")
	}
	var state WizardState
	if err := s.Repo.Load(ctx, sessionKeyPrefix+sessionID, &state); err != nil {
		return nil, err
	}
	return ResumeWizard(state, s.Rules, s.options()...), nil
}

func (s *DefaultReservationService) save(ctx context.Context, sessionID string, w *Wizard) (*SessionView, error) {
	if err := s.Repo.Save(ctx, sessionKeyPrefix+sessionID, w.State(), s.ttl()); err != nil {
		return nil, err
	}
	return view(sessionID, w), nil
}

func view(sessionID string, w *Wizard) *SessionView {
	st := w.State()
	return &SessionView{
		SessionID:    sessionID,
		Step:         st.Step,
		StepName:     st.Step.String(),
		Data:         st.Data,
		Confirmation: st.Confirmation,
	}
}

// mutate loads a wizard, applies fn and saves it only when fn succeeds.
// Writers of one session are serialized so concurrent patches are not lost.
func (s *DefaultReservationService) mutate(ctx context.Context, sessionID string, fn func(w *Wizard) error) (*SessionView, error) {
	unlock := s.locks.Lock(sessionKeyPrefix + sessionID)
	defer unlock()

	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(w); err != nil {
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			s.logger().Debug("reservation step blocked",
				zap.String("sessionID", sessionID),
				zap.String("step", stepErr.Step.String()),
				zap.String("field", stepErr.Field))
		}
		return view(sessionID, w), err
	}
	return s.save(ctx, sessionID, w)
}

func (s *DefaultReservationService) StartSession(ctx context.Context) (*SessionView, error) {
	sessionID := uuid.New().String()
	w := NewWizard(s.Rules, s.options()...)
	v, err := s.save(ctx, sessionID, w)
	if err != nil {
		return nil, fmt.Errorf("failed to store reservation session: %w", err)
	}
	s.logger().Info("reservation session started", zap.String("sessionID", sessionID))
	return v, nil
}

func (s *DefaultReservationService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(sessionID, w), nil
}

func (s *DefaultReservationService) UpdateDetails(ctx context.Context, sessionID string, patch models.ReservationPatch) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error { return w.Update(patch) })
}

func (s *DefaultReservationService) SelectDateTime(ctx context.Context, sessionID string, date time.Time, slot string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error { return w.SelectDateTime(date, slot) })
}

func (s *DefaultReservationService) SelectTable(ctx context.Context, sessionID, tableID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error { return w.SelectTable(tableID) })
}

// Next advances the wizard; completing it schedules a reminder.
func (s *DefaultReservationService) Next(ctx context.Context, sessionID string) (*SessionView, error) {
	v, err := s.mutate(ctx, sessionID, func(w *Wizard) error { return w.Next() })
	if err != nil {
		return v, err
	}
	if v.Step == StepSuccess && v.Confirmation != nil {
		s.logger().Info("reservation confirmed",
			zap.String("sessionID", sessionID),
			zap.String("reference", v.Confirmation.Reference),
			zap.String("date", v.Confirmation.Date),
			zap.String("time", v.Confirmation.Time),
			zap.Int("partySize", v.Confirmation.PartySize))
		s.scheduleReminder(ctx, v.Confirmation)
	}
	return v, nil
}

func (s *DefaultReservationService) scheduleReminder(ctx context.Context, c *models.ReservationConfirmation) {
	if s.Reminders == nil || c.StartsAt.IsZero() {
		return
	}
	fireAt := c.StartsAt.Add(-s.ReminderLead)
	if !fireAt.After(s.now()) {
		s.logger().Debug("reminder window already passed", zap.String("reference", c.Reference))
		return
	}
	payload := models.ReservationReminderPayload{
		Reference: c.Reference,
		GuestName: c.GuestName,
		Phone:     c.Phone,
		Email:     c.Email,
		Date:      c.Date,
		Time:      c.Time,
		PartySize: c.PartySize,
		TableName: c.TableName,
	}
	if err := s.Reminders.ScheduleReservationReminder(ctx, payload, fireAt); err != nil {
		s.logger().Error("failed to schedule reservation reminder", zap.String("reference", c.Reference), zap.Error(err))
	}
}

func (s *DefaultReservationService) Previous(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error {
		w.Previous()
		return nil
	})
}

func (s *DefaultReservationService) JumpTo(ctx context.Context, sessionID string, step Step) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error { return w.JumpTo(step) })
}

func (s *DefaultReservationService) Reset(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(w *Wizard) error {
		w.Reset()
		return nil
	})
}

func (s *DefaultReservationService) AvailableTimeSlots(date time.Time) []string {
	return FilterAvailableTimeSlots(date, s.now(), s.Rules)
}

func (s *DefaultReservationService) AvailableTables(ctx context.Context, sessionID string) ([]models.Table, error) {
	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return w.AvailableTables(), nil
}

func (s *DefaultReservationService) CancelSession(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(sessionKeyPrefix + sessionID)
	defer unlock()

	if err := s.Repo.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to cancel reservation session: %w", err)
	}
	return nil
}
