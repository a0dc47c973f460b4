package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLogRepository creates a new GORM-based LogRepository implementation
func NewGormLogRepository(db *gorm.DB, logger logger.Logger) (logs.LogRepository, error) {
	return &gormLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

// RecordSMS stores an outbound SMS, resolving the country by dialing code and
// creating the feature on first use.
func (r *gormLogRepository) RecordSMS(ctx context.Context, entry *logs.SMSLog) error {
	model := models.SMSDeliveryLogModel{
		PhoneNo:       entry.PhoneNo,
		MessageStatus: entry.MessageStatus,
		ErrorMessage:  entry.ErrorMessage,
		DeliveryDate:  entry.DeliveryDate,
	}
	if model.DeliveryDate.IsZero() {
		model.DeliveryDate = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if code := strings.TrimPrefix(entry.CountryCode, "+"); code != "" {
			var countries []models.CountryModel
			if err := tx.Where("phone_code = ?", code).Limit(1).Find(&countries).Error; err != nil {
				return fmt.Errorf("failed to resolve country: %w", err)
			}
			if len(countries) == 1 {
				model.CountryID = &countries[0].ID
			}
		}

		if entry.FeatureName != "" {
			feature := models.FeatureModel{Name: entry.FeatureName}
			if err := tx.Where(models.FeatureModel{Name: entry.FeatureName}).FirstOrCreate(&feature).Error; err != nil {
				return fmt.Errorf("failed to resolve feature: %w", err)
			}
			model.FeatureID = &feature.ID
		}

		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create sms log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	entry.ID = model.ID
	r.logger.Debug("Created sms log with id ", model.ID)
	return nil
}

func (r *gormLogRepository) ListSMS(ctx context.Context, query *logs.SMSQuery) ([]*logs.SMSLog, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if query.Status != "" {
			db = db.Where("message_status = ?", query.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SMSDeliveryLogModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sms logs: %w", err)
	}

	var modelList []*models.SMSDeliveryLogModel
	if err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("Feature").
		Scopes(filter, paginate(query.Page)).
		Order("delivery_date DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sms logs: %w", err)
	}

	list := make([]*logs.SMSLog, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormLogRepository) ListExceptions(ctx context.Context, query *logs.ExceptionQuery) ([]*logs.ExceptionLog, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}
	filter := func(db *gorm.DB) *gorm.DB {
		if query.StatusCode != 0 {
			db = db.Where("status_code = ?", query.StatusCode)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ExceptionLogModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exception logs: %w", err)
	}

	var modelList []*models.ExceptionLogModel
	if err := r.db.WithContext(ctx).Scopes(filter, paginate(query.Page)).Order("timestamp DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch exception logs: %w", err)
	}

	list := make([]*logs.ExceptionLog, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormLogRepository) ListRequests(ctx context.Context, query *logs.RequestQuery) ([]*logs.RequestLog, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}
	filter := func(db *gorm.DB) *gorm.DB {
		if query.Method != "" {
			db = db.Where("method = ?", query.Method)
		}
		if query.StatusCode != 0 {
			db = db.Where("status_code = ?", query.StatusCode)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.RequestLogModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count request logs: %w", err)
	}

	var modelList []*models.RequestLogModel
	if err := r.db.WithContext(ctx).Scopes(filter, paginate(query.Page)).Order("timestamp DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch request logs: %w", err)
	}

	list := make([]*logs.RequestLog, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}
