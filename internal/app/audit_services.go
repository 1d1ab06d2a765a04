package app

import (
	"context"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// auditService implements the AuditService interface
type auditService struct {
	auditRepository audit.AuditRepository
	logger          logger.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(auditRepository audit.AuditRepository, logger logger.Logger) (audit.AuditService, error) {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}, nil
}

// Record stores an audit entry, assigning its ID and timestamp when unset
func (s *auditService) Record(ctx context.Context, entry *audit.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return s.auditRepository.Create(ctx, entry)
}

// List returns a page of audit entries and the total matching the filters
func (s *auditService) List(ctx context.Context, query *audit.EntryQuery) ([]*audit.Entry, int64, error) {
	return s.auditRepository.List(ctx, query)
}
