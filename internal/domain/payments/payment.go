package payments

import (
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// ProviderStripe is the only payment provider in use
const ProviderStripe = "stripe"

// Payment statuses
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
	StatusCanceled  = "canceled"
)

// Payment mirrors a provider payment intent
type Payment struct {
	ID                string    `validate:"required,uuid4"`
	Provider          string    `validate:"required,oneof=stripe"`
	ProviderPaymentID string    `validate:"required,max=255"`
	UserID            *string   `validate:"omitempty,uuid4"`
	ReportID          *string   `validate:"omitempty,uuid4"`
	AmountCents       int64     `validate:"gte=0"`
	RefundedCents     int64     `validate:"gte=0,ltefield=AmountCents"`
	Currency          string    `validate:"required,len=3"`
	Status            string    `validate:"required,oneof=pending succeeded failed refunded canceled"`
	FailureReason     string    `validate:"max=1000"`
	CreatedAt         time.Time `validate:"required"`
	UpdatedAt         time.Time `validate:"required"`
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	return common.ValidateStruct(p)
}

// FullyRefunded reports whether every captured cent was returned
func (p *Payment) FullyRefunded() bool {
	return p.AmountCents > 0 && p.RefundedCents >= p.AmountCents
}

// PaymentQuery filters payment listings
type PaymentQuery struct {
	common.Page
	Status   string `validate:"omitempty,oneof=pending succeeded failed refunded canceled"`
	UserID   string `validate:"omitempty,uuid4"`
	ReportID string `validate:"omitempty,uuid4"`
}

// NewPaymentQuery creates a PaymentQuery with default paging
func NewPaymentQuery() *PaymentQuery {
	return &PaymentQuery{Page: common.NewPage()}
}

// Validate for validating PaymentQuery struct
func (q *PaymentQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "updated_at", "amount_cents", "status")
}

// Revenue summarises captured money. Refunded payments add to both sums but not to SucceededCount.
type Revenue struct {
	SucceededCount int64
	GrossCents     int64
	RefundedCents  int64
}

// NetCents is gross revenue minus refunds
func (r Revenue) NetCents() int64 {
	return r.GrossCents - r.RefundedCents
}
