package app

import (
	"context"

	"github.com/craneintel/crane-intelligence/internal/domain/payments"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	paymentRepository payments.PaymentRepository
	logger            logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(paymentRepository payments.PaymentRepository, logger logger.Logger) (payments.PaymentService, error) {
	return &paymentService{
		paymentRepository: paymentRepository,
		logger:            logger,
	}, nil
}

// List returns a page of payments and the total matching the filters
func (s *paymentService) List(ctx context.Context, query *payments.PaymentQuery) ([]*payments.Payment, int64, error) {
	return s.paymentRepository.List(ctx, query)
}

// GetByID retrieves a payment by ID
func (s *paymentService) GetByID(ctx context.Context, paymentID string) (*payments.Payment, error) {
	return s.paymentRepository.GetByID(ctx, paymentID)
}
