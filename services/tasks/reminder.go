package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/hibiken/asynq"
)

const TypeReservationReminder = "reservation:reminder"

// NewReservationReminderTask builds a reminder task processed at fireAt. The
// reservation reference is used as the task ID so a booking is reminded once.
func NewReservationReminderTask(payload models.ReservationReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}
	if payload.Reference != "" {
		opts = append(opts, asynq.TaskID("reminder:"+payload.Reference))
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqScheduler queues reservation reminders.
type AsynqScheduler struct {
	Client Enqueuer
}

func (s *AsynqScheduler) ScheduleReservationReminder(ctx context.Context, payload models.ReservationReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReservationReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder %s: %w", payload.Reference, err)
	}
	return nil
}
