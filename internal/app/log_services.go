package app

import (
	"context"

	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// logService implements the LogService interface
type logService struct {
	logRepo logs.LogRepository
	logger  logger.Logger
}

// NewLogService creates a new logService instance
func NewLogService(logRepo logs.LogRepository, logger logger.Logger) (logs.LogService, error) {
	return &logService{
		logRepo: logRepo,
		logger:  logger,
	}, nil
}

func (s *logService) ListSMS(ctx context.Context, query *logs.SMSQuery) ([]*logs.SMSLog, int64, error) {
	return s.logRepo.ListSMS(ctx, query)
}

func (s *logService) ListExceptions(ctx context.Context, query *logs.ExceptionQuery) ([]*logs.ExceptionLog, int64, error) {
	return s.logRepo.ListExceptions(ctx, query)
}

func (s *logService) ListRequests(ctx context.Context, query *logs.RequestQuery) ([]*logs.RequestLog, int64, error) {
	return s.logRepo.ListRequests(ctx, query)
}

// notificationService implements the NotificationService interface
type notificationService struct {
	notificationRepo notifications.NotificationRepository
	logger           logger.Logger
}

// NewNotificationService creates a new notificationService instance
func NewNotificationService(notificationRepo notifications.NotificationRepository, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}, nil
}

func (s *notificationService) List(ctx context.Context, query *notifications.Query) ([]*notifications.Notification, int64, error) {
	return s.notificationRepo.List(ctx, query)
}
