package notifications

import (
	"context"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Notification kinds
const (
	KindPayment      = "payment"
	KindConsultation = "consultation"
	KindReport       = "report"
	KindSystem       = "system"
)

// Notification is an admin panel message. A nil AdminID broadcasts to every operator.
type Notification struct {
	ID        string     `validate:"required,uuid4"`
	AdminID   *string    `validate:"omitempty,uuid4"`
	Kind      string     `validate:"required,oneof=payment consultation report system"`
	Title     string     `validate:"required,min=1,max=255"`
	Body      string     `validate:"max=2000"`
	ReadAt    *time.Time `validate:"omitempty"`
	CreatedAt time.Time  `validate:"required"`
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return common.ValidateStruct(n)
}

// NotificationQuery lists the notifications visible to one operator
type NotificationQuery struct {
	common.Page
	AdminID    string `validate:"required,uuid4"`
	UnreadOnly bool
	Kind       string `validate:"omitempty,oneof=payment consultation report system"`
}

// NewNotificationQuery creates a NotificationQuery for adminID with default paging
func NewNotificationQuery(adminID string) *NotificationQuery {
	return &NotificationQuery{Page: common.NewPage(), AdminID: adminID}
}

// Validate for validating NotificationQuery struct
func (q *NotificationQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "kind")
}

// NotificationService creates and reads admin notifications
type NotificationService interface {
	// Notify creates a notification; adminID nil broadcasts.
	Notify(ctx context.Context, adminID *string, kind, title, body string) (*Notification, error)
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, adminID, notificationID string) error
	MarkAllRead(ctx context.Context, adminID string) (int64, error)
	CountUnread(ctx context.Context, adminID string) (int64, error)
}

// NotificationRepository defines the persistence operations for notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, int64, error)
	// MarkRead stamps read_at on a notification visible to adminID.
	MarkRead(ctx context.Context, adminID, notificationID string, at time.Time) error
	MarkAllRead(ctx context.Context, adminID string, at time.Time) (int64, error)
	CountUnread(ctx context.Context, adminID string) (int64, error)
}
