package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/consultations"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/google/uuid"
)

// reminderTimeLayout is how consultation times appear in reminder notifications
const reminderTimeLayout = "Mon Jan 2 15:04 MST"

// consultationService implements the ConsultationService interface
type consultationService struct {
	consultationRepository consultations.ConsultationRepository
	notificationService    notifications.NotificationService
	logger                 logger.Logger
	now                    func() time.Time
}

// NewConsultationService creates a new instance of ConsultationService
func NewConsultationService(
	consultationRepository consultations.ConsultationRepository,
	notificationService notifications.NotificationService,
	logger logger.Logger,
) (consultations.ConsultationService, error) {
	return &consultationService{
		consultationRepository: consultationRepository,
		notificationService:    notificationService,
		logger:                 logger,
		now:                    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Submit stores a consultation request from the public form and notifies operators
func (s *consultationService) Submit(ctx context.Context, input *consultations.SubmitInput) (*consultations.Request, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	now := s.now()
	request := &consultations.Request{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(input.Name),
		Email:         normalizeEmail(input.Email),
		Company:       strings.TrimSpace(input.Company),
		Phone:         strings.TrimSpace(input.Phone),
		Subject:       strings.TrimSpace(input.Subject),
		Message:       input.Message,
		PreferredDate: input.PreferredDate,
		Status:        consultations.StatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.consultationRepository.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create consultation request: %w", err)
	}

	notify(ctx, s.notificationService, s.logger, notifications.KindConsultation,
		"New consultation request",
		fmt.Sprintf("%s <%s>: %s", request.Name, request.Email, request.Subject))

	return request, nil
}

// List returns a page of consultation requests and the total matching the filters
func (s *consultationService) List(ctx context.Context, query *consultations.ConsultationQuery) ([]*consultations.Request, int64, error) {
	return s.consultationRepository.List(ctx, query)
}

// GetByID retrieves a consultation request by ID
func (s *consultationService) GetByID(ctx context.Context, requestID string) (*consultations.Request, error) {
	return s.consultationRepository.GetByID(ctx, requestID)
}

// Update applies an operator's partial update
func (s *consultationService) Update(ctx context.Context, requestID string, input *consultations.UpdateInput) (*consultations.Request, error) {
	if err := common.ValidateStruct(input); err != nil {
		return nil, err
	}

	request, err := s.consultationRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	input.Apply(request)
	request.UpdatedAt = s.now()

	if err := s.consultationRepository.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update consultation request: %w", err)
	}
	return request, nil
}

// DeleteByID deletes a consultation request by ID
func (s *consultationService) DeleteByID(ctx context.Context, requestID string) error {
	return s.consultationRepository.DeleteByID(ctx, requestID)
}

// SendReminders notifies the assigned operator, or everyone when unassigned, about each
// scheduled consultation starting within horizon, then stamps reminder_sent_at.
// A failing request does not stop the others.
func (s *consultationService) SendReminders(ctx context.Context, horizon time.Duration) (int, error) {
	if horizon <= 0 {
		return 0, fmt.Errorf("%w: reminder horizon must be positive", common.ErrValidation)
	}

	now := s.now()
	due, err := s.consultationRepository.DueForReminder(ctx, now, now.Add(horizon))
	if err != nil {
		return 0, err
	}

	sent := 0
	var errs []error
	for _, request := range due {
		title := fmt.Sprintf("Consultation with %s starts soon", request.Name)
		body := fmt.Sprintf("%s (%s) at %s", request.Subject, request.Email, request.PreferredDate.Format(reminderTimeLayout))

		if _, err := s.notificationService.Notify(ctx, request.AssignedTo, notifications.KindConsultation, title, body); err != nil {
			errs = append(errs, fmt.Errorf("consultation %s: %w", request.ID, err))
			continue
		}

		request.ReminderSentAt = &now
		request.UpdatedAt = now
		if err := s.consultationRepository.Update(ctx, request); err != nil {
			errs = append(errs, fmt.Errorf("consultation %s: %w", request.ID, err))
			continue
		}
		sent++
	}

	s.logger.Info("Consultation reminders sent", "due", len(due), "sent", sent)
	return sent, errors.Join(errs...)
}
