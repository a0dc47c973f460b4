package app

import (
	"context"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// moderationService implements the ModerationService interface
type moderationService struct {
	moderationRepo moderation.ModerationRepository
	mailer         moderation.DemoMailer
	now            func() time.Time
	logger         logger.Logger
}

// NewModerationService creates a new moderationService instance.
// mailer may be nil, in which case scheduled demos are not announced.
func NewModerationService(moderationRepo moderation.ModerationRepository, mailer moderation.DemoMailer, logger logger.Logger) (moderation.ModerationService, error) {
	return &moderationService{
		moderationRepo: moderationRepo,
		mailer:         mailer,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}, nil
}

func (s *moderationService) ListReports(ctx context.Context, query *moderation.Query) ([]*moderation.Report, int64, error) {
	err := moderation.ValidateStatusFilter(query.Status,
		moderation.ReportPending, moderation.ReportReviewed, moderation.ReportResolved, moderation.ReportDismissed)
	if err != nil {
		return nil, 0, err
	}
	return s.moderationRepo.ListReports(ctx, query)
}

func (s *moderationService) ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *moderation.ReportReview) (*moderation.Report, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}
	if err := s.moderationRepo.ReviewReport(ctx, reportID, reviewerID, review, s.now()); err != nil {
		return nil, err
	}
	return s.moderationRepo.GetReport(ctx, reportID)
}

func (s *moderationService) ListContactMessages(ctx context.Context, query *moderation.Query) ([]*moderation.ContactMessage, int64, error) {
	err := moderation.ValidateStatusFilter(query.Status,
		moderation.ContactPending, moderation.ContactInProgress, moderation.ContactResolved, moderation.ContactClosed)
	if err != nil {
		return nil, 0, err
	}
	return s.moderationRepo.ListContactMessages(ctx, query)
}

func (s *moderationService) UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *moderation.ContactUpdate) (*moderation.ContactMessage, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if err := s.moderationRepo.UpdateContactMessage(ctx, messageID, adminID, update, s.now()); err != nil {
		return nil, err
	}
	return s.moderationRepo.GetContactMessage(ctx, messageID)
}

func (s *moderationService) ListDemoRequests(ctx context.Context, query *moderation.Query) ([]*moderation.DemoRequest, int64, error) {
	err := moderation.ValidateStatusFilter(query.Status,
		moderation.DemoPending, moderation.DemoScheduled, moderation.DemoCompleted, moderation.DemoCancelled)
	if err != nil {
		return nil, 0, err
	}
	return s.moderationRepo.ListDemoRequests(ctx, query)
}

// UpdateDemoRequest persists the update and mails the requester once a demo time is set.
// A mail failure is logged and does not fail the update.
func (s *moderationService) UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *moderation.DemoUpdate) (*moderation.DemoRequest, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if err := s.moderationRepo.UpdateDemoRequest(ctx, demoID, adminID, update, s.now()); err != nil {
		return nil, err
	}

	demo, err := s.moderationRepo.GetDemoRequest(ctx, demoID)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil && update.ScheduledDemoAt != nil && demo.Email != "" {
		if err := s.mailer.SendDemoScheduled(ctx, demo); err != nil {
			s.logger.Warn("Failed to send demo confirmation for request ", demoID, ": ", err)
		}
	}
	return demo, nil
}
