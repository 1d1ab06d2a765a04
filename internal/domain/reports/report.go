package reports

import (
	"fmt"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
)

// Report products
const (
	TypeSpotCheck      = "spot_check"
	TypeProfessional   = "professional"
	TypeFleetValuation = "fleet_valuation"
)

// Report statuses
const (
	StatusPendingPayment = "pending_payment"
	StatusPaid           = "paid"
	StatusInProgress     = "in_progress"
	StatusCompleted      = "completed"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
	StatusRefunded       = "refunded"
)

// DefaultCurrency is the currency every report is priced in
const DefaultCurrency = "usd"

// prices in cents per report product
var prices = map[string]int64{
	TypeSpotCheck:      49500,
	TypeProfessional:   99500,
	TypeFleetValuation: 249500,
}

var transitions = map[string][]string{
	StatusPendingPayment: {StatusPaid, StatusCancelled},
	StatusPaid:           {StatusInProgress, StatusCancelled, StatusRefunded},
	StatusInProgress:     {StatusCompleted, StatusCancelled, StatusRefunded},
	StatusCompleted:      {StatusDelivered, StatusRefunded},
	StatusDelivered:      {StatusRefunded},
}

// PriceFor returns the list price in cents of a report product
func PriceFor(reportType string) (int64, error) {
	price, ok := prices[reportType]
	if !ok {
		return 0, fmt.Errorf("%w: unknown report type %q", common.ErrValidation, reportType)
	}
	return price, nil
}

// CanTransition reports whether a report may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// FMVReport is a fair market valuation ordered for one crane or a fleet
type FMVReport struct {
	ID                  string     `validate:"required,uuid4"`
	UserID              string     `validate:"required,uuid4"`
	ReportType          string     `validate:"required,oneof=spot_check professional fleet_valuation"`
	CraneMake           string     `validate:"required,min=1,max=100"`
	CraneModel          string     `validate:"required,min=1,max=100"`
	CraneYear           int        `validate:"required,gte=1950,lte=2100"`
	Hours               int        `validate:"gte=0"`
	CapacityTons        float64    `validate:"gte=0"`
	Location            string     `validate:"max=255"`
	Status              string     `validate:"required,oneof=pending_payment paid in_progress completed delivered cancelled refunded"`
	AmountCents         int64      `validate:"gte=0"`
	Currency            string     `validate:"required,len=3"`
	EstimatedValueCents *int64     `validate:"omitempty,gte=0"`
	ReportURL           *string    `validate:"omitempty,url"`
	Notes               string     `validate:"max=5000"`
	CreatedAt           time.Time  `validate:"required"`
	UpdatedAt           time.Time  `validate:"required"`
	DeliveredAt         *time.Time `validate:"omitempty"`
}

// Validate for validating FMVReport struct
func (r *FMVReport) Validate() error {
	return common.ValidateStruct(r)
}

// TransitionTo moves the report to status, enforcing the lifecycle.
// Delivering requires a report URL and stamps DeliveredAt.
func (r *FMVReport) TransitionTo(status string, now time.Time) error {
	if r.Status == status {
		return nil
	}
	if !CanTransition(r.Status, status) {
		return fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, r.Status, status)
	}
	if status == StatusDelivered {
		if r.ReportURL == nil || *r.ReportURL == "" {
			return fmt.Errorf("%w: a report url is required before delivery", common.ErrValidation)
		}
		r.DeliveredAt = &now
	}
	r.Status = status
	r.UpdatedAt = now
	return nil
}

// ReportQuery filters report listings
type ReportQuery struct {
	common.Page
	UserID     string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=pending_payment paid in_progress completed delivered cancelled refunded"`
	ReportType string `validate:"omitempty,oneof=spot_check professional fleet_valuation"`
	CraneMake  string `validate:"max=100"`
}

// NewReportQuery creates a ReportQuery with default paging
func NewReportQuery() *ReportQuery {
	return &ReportQuery{Page: common.NewPage()}
}

// Validate for validating ReportQuery struct
func (q *ReportQuery) Validate() error {
	if err := common.ValidateStruct(q); err != nil {
		return err
	}
	return q.Page.Validate("created_at", "updated_at", "status", "amount_cents", "crane_year")
}

// SubmitReportInput is a customer's report request
type SubmitReportInput struct {
	UserID       string  `json:"user_id" validate:"required,uuid4"`
	ReportType   string  `json:"report_type" validate:"required,oneof=spot_check professional fleet_valuation"`
	CraneMake    string  `json:"crane_make" validate:"required,min=1,max=100"`
	CraneModel   string  `json:"crane_model" validate:"required,min=1,max=100"`
	CraneYear    int     `json:"crane_year" validate:"required,gte=1950,lte=2100"`
	Hours        int     `json:"hours" validate:"gte=0"`
	CapacityTons float64 `json:"capacity_tons" validate:"gte=0"`
	Location     string  `json:"location" validate:"max=255"`
	Notes        string  `json:"notes" validate:"max=5000"`
}

// UpdateReportInput is an operator's partial update; status changes go through TransitionTo
type UpdateReportInput struct {
	EstimatedValueCents *int64   `json:"estimated_value_cents" validate:"omitempty,gte=0"`
	ReportURL           *string  `json:"report_url" validate:"omitempty,url"`
	Notes               *string  `json:"notes" validate:"omitempty,max=5000"`
	Location            *string  `json:"location" validate:"omitempty,max=255"`
	Hours               *int     `json:"hours" validate:"omitempty,gte=0"`
	CapacityTons        *float64 `json:"capacity_tons" validate:"omitempty,gte=0"`
}

// Apply copies the set fields of in onto r
func (in *UpdateReportInput) Apply(r *FMVReport) {
	if in.EstimatedValueCents != nil {
		r.EstimatedValueCents = in.EstimatedValueCents
	}
	if in.ReportURL != nil {
		r.ReportURL = in.ReportURL
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	if in.Location != nil {
		r.Location = *in.Location
	}
	if in.Hours != nil {
		r.Hours = *in.Hours
	}
	if in.CapacityTons != nil {
		r.CapacityTons = *in.CapacityTons
	}
}
