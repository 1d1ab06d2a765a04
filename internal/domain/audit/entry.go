package audit

import (
	"context"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Entry records one mutating admin request
type Entry struct {
	ID         string
	AdminID    string
	AdminEmail string
	Action     string
	Resource   string
	StatusCode int
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

// EntryQuery filters audit log listings
type EntryQuery struct {
	common.Page
	AdminID string    `validate:"omitempty,uuid4"`
	Action  string    `validate:"omitempty,oneof=POST PUT PATCH DELETE"`
	Since   time.Time `validate:"-"`
}

// NewEntryQuery creates an EntryQuery with default paging
func NewEntryQuery() *EntryQuery {
	return &EntryQuery{Page: common.NewPage()}
}

// Validate for validating EntryQuery struct
func (q *EntryQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "action", "status_code")
}

// AuditService records and lists admin activity
type AuditService interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, query *EntryQuery) ([]*Entry, int64, error)
}

// AuditRepository defines the persistence operations for audit entries
type AuditRepository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, query *EntryQuery) ([]*Entry, int64, error)
}
