package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormModerationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormModerationRepository creates a new GORM-based ModerationRepository implementation
func NewGormModerationRepository(db *gorm.DB, logger logger.Logger) (moderation.ModerationRepository, error) {
	return &gormModerationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// listByStatus pages rows of model into dest, optionally filtered by status.
func (r *gormModerationRepository) listByStatus(ctx context.Context, model, dest interface{}, query *moderation.Query, order string, preloads ...string) (int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if query.Status != "" {
			db = db.Where("status = ?", query.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(model).Scopes(filter).Count(&total).Error; err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx)
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	if err := tx.Scopes(filter, paginate(query.Page)).Order(order).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *gormModerationRepository) ListReports(ctx context.Context, query *moderation.Query) ([]*moderation.Report, int64, error) {
	var modelList []*models.UserReportModel
	total, err := r.listByStatus(ctx, &models.UserReportModel{}, &modelList, query, "reported_at DESC", "Reporter", "Reported")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reports: %w", err)
	}

	list := make([]*moderation.Report, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormModerationRepository) GetReport(ctx context.Context, reportID int64) (*moderation.Report, error) {
	var model models.UserReportModel
	if err := r.db.WithContext(ctx).Preload("Reporter").Preload("Reported").Where("id = ?", reportID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "report", reportID)
	}
	return model.ToDomain(), nil
}

func (r *gormModerationRepository) ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *moderation.ReportReview, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.UserReportModel{}).Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":              review.Status,
			"admin_notes":         review.AdminNotes,
			"reviewed_at":         at,
			"reviewed_by_user_id": reviewerID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("report", reportID)
	}

	r.logger.Info("Reviewed report with id ", reportID)
	return nil
}

func (r *gormModerationRepository) ListContactMessages(ctx context.Context, query *moderation.Query) ([]*moderation.ContactMessage, int64, error) {
	var modelList []*models.ContactMessageModel
	total, err := r.listByStatus(ctx, &models.ContactMessageModel{}, &modelList, query, "created_at DESC")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	list := make([]*moderation.ContactMessage, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormModerationRepository) GetContactMessage(ctx context.Context, messageID int64) (*moderation.ContactMessage, error) {
	var model models.ContactMessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "contact message", messageID)
	}
	return model.ToDomain(), nil
}

func (r *gormModerationRepository) UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *moderation.ContactUpdate, at time.Time) error {
	values := map[string]interface{}{
		"status":      update.Status,
		"admin_notes": update.AdminNotes,
		"updated_at":  at,
	}
	if update.Status == moderation.ContactResolved {
		values["resolved_at"] = at
		values["resolved_by"] = adminID
	}

	result := r.db.WithContext(ctx).Model(&models.ContactMessageModel{}).Where("id = ?", messageID).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("contact message", messageID)
	}

	r.logger.Info("Updated contact message with id ", messageID)
	return nil
}

func (r *gormModerationRepository) ListDemoRequests(ctx context.Context, query *moderation.Query) ([]*moderation.DemoRequest, int64, error) {
	var modelList []*models.DemoRequestModel
	total, err := r.listByStatus(ctx, &models.DemoRequestModel{}, &modelList, query, "created_at DESC")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch demo requests: %w", err)
	}

	list := make([]*moderation.DemoRequest, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormModerationRepository) GetDemoRequest(ctx context.Context, demoID int64) (*moderation.DemoRequest, error) {
	var model models.DemoRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", demoID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "demo request", demoID)
	}
	return model.ToDomain(), nil
}

func (r *gormModerationRepository) UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *moderation.DemoUpdate, at time.Time) error {
	values := map[string]interface{}{
		"status":              update.Status,
		"admin_notes":         update.AdminNotes,
		"assigned_to_user_id": adminID,
		"updated_at":          at,
	}
	if update.ScheduledDemoAt != nil {
		values["scheduled_demo_at"] = update.ScheduledDemoAt.UTC()
	}

	result := r.db.WithContext(ctx).Model(&models.DemoRequestModel{}).Where("id = ?", demoID).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update demo request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("demo request", demoID)
	}

	r.logger.Info("Updated demo request with id ", demoID)
	return nil
}
