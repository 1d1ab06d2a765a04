package consultations

import (
	"context"
	"time"
)

// ConsultationService defines consultation intake and follow-up
type ConsultationService interface {
	Submit(ctx context.Context, input *SubmitInput) (*Request, error)
	List(ctx context.Context, query *ConsultationQuery) ([]*Request, int64, error)
	GetByID(ctx context.Context, requestID string) (*Request, error)
	Update(ctx context.Context, requestID string, input *UpdateInput) (*Request, error)
	DeleteByID(ctx context.Context, requestID string) error
	// SendReminders notifies operators about scheduled consultations starting
	// before the horizon and returns how many reminders were created.
	SendReminders(ctx context.Context, horizon time.Duration) (int, error)
}

// ConsultationRepository defines the persistence operations for consultation requests
type ConsultationRepository interface {
	Create(ctx context.Context, request *Request) error
	List(ctx context.Context, query *ConsultationQuery) ([]*Request, int64, error)
	GetByID(ctx context.Context, requestID string) (*Request, error)
	Update(ctx context.Context, request *Request) error
	DeleteByID(ctx context.Context, requestID string) error
	CountOpen(ctx context.Context) (int64, error)
	// DueForReminder lists scheduled requests between from and to without a reminder.
	DueForReminder(ctx context.Context, from, to time.Time) ([]*Request, error)
}
