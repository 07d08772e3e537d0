package reservation

import (
	"context"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"go.uber.org/zap"
)

// ReservationService hosts booking wizards behind session IDs.
type ReservationService interface {
	StartSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	UpdateDetails(ctx context.Context, sessionID string, patch models.ReservationPatch) (*SessionView, error)
	SelectDateTime(ctx context.Context, sessionID string, date time.Time, slot string) (*SessionView, error)
	SelectTable(ctx context.Context, sessionID, tableID string) (*SessionView, error)
	Next(ctx context.Context, sessionID string) (*SessionView, error)
	Previous(ctx context.Context, sessionID string) (*SessionView, error)
	JumpTo(ctx context.Context, sessionID string, step Step) (*SessionView, error)
	Reset(ctx context.Context, sessionID string) (*SessionView, error)
	AvailableTimeSlots(date time.Time) []string
	AvailableTables(ctx context.Context, sessionID string) ([]models.Table, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// ReminderScheduler queues a reminder to fire at a given instant.
type ReminderScheduler interface {
	ScheduleReservationReminder(ctx context.Context, payload models.ReservationReminderPayload, fireAt time.Time) error
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo         session.SessionRepository
	Rules        Rules
	FloorPlan    []models.Table
	Reminders    ReminderScheduler
	ReminderLead time.Duration
	SessionTTL   time.Duration
	Logger       *zap.Logger
	Now          func() time.Time

	locks session.Locks
}

// SessionView is what clients see of a wizard.
type SessionView struct {
	SessionID    string                          `json:"sessionId"`
	Step         Step                            `json:"step"`
	StepName     string                          `json:"stepName"`
	Data         models.ReservationData          `json:"data"`
	Confirmation *models.ReservationConfirmation `json:"confirmation,omitempty"`
}
