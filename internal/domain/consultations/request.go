package consultations

import (
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Consultation statuses
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Request is a prospect's consultation request from the marketing site
type Request struct {
	ID             string     `validate:"required,uuid4"`
	Name           string     `validate:"required,min=1,max=255"`
	Email          string     `validate:"required,email,max=255"`
	Company        string     `validate:"max=255"`
	Phone          string     `validate:"max=50"`
	Subject        string     `validate:"required,min=1,max=255"`
	Message        string     `validate:"required,min=1,max=5000"`
	PreferredDate  *time.Time `validate:"omitempty"`
	Status         string     `validate:"required,oneof=new contacted scheduled completed cancelled"`
	AssignedTo     *string    `validate:"omitempty,uuid4"`
	AdminNotes     string     `validate:"max=5000"`
	ReminderSentAt *time.Time `validate:"omitempty"`
	CreatedAt      time.Time  `validate:"required"`
	UpdatedAt      time.Time  `validate:"required"`
}

// Validate for validating Request struct. A scheduled request needs a date.
func (r *Request) Validate() error {
	if err := common.ValidateStruct(r); err != nil {
		return err
	}
	if r.Status == StatusScheduled && r.PreferredDate == nil {
		return fmt.Errorf("%w: a scheduled consultation needs a preferred date", common.ErrValidation)
	}
	return nil
}

// IsOpen reports whether the request still needs operator attention
func (r *Request) IsOpen() bool {
	return r.Status == StatusNew || r.Status == StatusContacted || r.Status == StatusScheduled
}

// ConsultationQuery filters consultation listings
type ConsultationQuery struct {
	common.Page
	Status     string `validate:"omitempty,oneof=new contacted scheduled completed cancelled"`
	AssignedTo string `validate:"omitempty,uuid4"`
	Email      string
}

// NewConsultationQuery creates a ConsultationQuery with default paging
func NewConsultationQuery() *ConsultationQuery {
	return &ConsultationQuery{Page: common.NewPage()}
}

// Validate for validating ConsultationQuery struct
func (q *ConsultationQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "updated_at", "preferred_date", "status")
}

// SubmitInput is the public consultation form
type SubmitInput struct {
	Name          string     `json:"name" validate:"required,min=1,max=255"`
	Email         string     `json:"email" validate:"required,email,max=255"`
	Company       string     `json:"company" validate:"max=255"`
	Phone         string     `json:"phone" validate:"max=50"`
	Subject       string     `json:"subject" validate:"required,min=1,max=255"`
	Message       string     `json:"message" validate:"required,min=1,max=5000"`
	PreferredDate *time.Time `json:"preferred_date"`
}

// UpdateInput is an operator's partial update
type UpdateInput struct {
	Status        *string    `json:"status" validate:"omitempty,oneof=new contacted scheduled completed cancelled"`
	AssignedTo    *string    `json:"assigned_to" validate:"omitempty,uuid4"`
	AdminNotes    *string    `json:"admin_notes" validate:"omitempty,max=5000"`
	PreferredDate *time.Time `json:"preferred_date"`
}

// Apply copies the set fields of in onto r. Rescheduling clears the reminder stamp.
func (in *UpdateInput) Apply(r *Request) {
	if in.Status != nil {
		r.Status = *in.Status
	}
	if in.AssignedTo != nil {
		r.AssignedTo = in.AssignedTo
	}
	if in.AdminNotes != nil {
		r.AdminNotes = *in.AdminNotes
	}
	if in.PreferredDate != nil {
		r.PreferredDate = in.PreferredDate
		r.ReminderSentAt = nil
	}
}
