package persistence

import (
	"context"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) List(ctx context.Context, query *notifications.Query) ([]*notifications.Notification, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if query.Status != "" {
			db = db.Where("status = ?", query.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	if err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(filter, paginate(query.Page)).
		Order("sent_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	list := make([]*notifications.Notification, len(modelList))
	for i, m := range modelList {
		n := &notifications.Notification{
			ID:           m.ID,
			UserID:       m.UserID,
			Title:        m.Title,
			Body:         m.Body,
			Type:         m.Type,
			Status:       m.Status,
			ErrorMessage: m.ErrorMessage,
			SentAt:       m.SentAt,
		}
		if m.User != nil {
			n.User = m.User.ToSummary()
		}
		list[i] = n
	}
	return list, total, nil
}
