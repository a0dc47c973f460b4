package persistence

import (
	"context"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var openStatuses = []string{payouts.StatusPending, payouts.StatusProcessing}

type gormPayoutRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPayoutRepository creates a new GORM-based PayoutRepository implementation
func NewGormPayoutRepository(db *gorm.DB, logger logger.Logger) (payouts.PayoutRepository, error) {
	return &gormPayoutRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPayoutRepository) List(ctx context.Context, query *payouts.PayoutQuery) ([]*payouts.Payout, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}
	filter := func(db *gorm.DB) *gorm.DB {
		if query.Status != "" {
			db = db.Where("payout_status = ?", query.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.EventPayoutModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	var modelList []*models.EventPayoutModel
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Host").
		Scopes(filter, paginate(query.Page)).
		Order("requested_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payouts: %w", err)
	}

	list := make([]*payouts.Payout, len(modelList))
	for i, m := range modelList {
		list[i] = m.ToDomain()
	}
	return list, total, nil
}

func (r *gormPayoutRepository) Stats(ctx context.Context) (*payouts.Stats, error) {
	var stats payouts.Stats
	if err := r.db.WithContext(ctx).Model(&models.EventPayoutModel{}).
		Select(`COUNT(*) AS total_payouts,
			COALESCE(SUM(gross_revenue), 0) AS gross_revenue,
			COALESCE(SUM(platform_fees), 0) AS platform_fees,
			COALESCE(SUM(gst_amount), 0) AS gst_collected,
			COALESCE(SUM(net_amount), 0) AS net_payouts,
			COALESCE(SUM(CASE WHEN payout_status = ? THEN net_amount ELSE 0 END), 0) AS completed_amount,
			COALESCE(SUM(CASE WHEN payout_status IN ? THEN net_amount ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN payout_status IN ? THEN 1 ELSE 0 END), 0) AS failed_count`,
			payouts.StatusCompleted,
			[]string{payouts.StatusPending, payouts.StatusProcessing},
			[]string{payouts.StatusFailed, payouts.StatusCancelled}).
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate payouts: %w", err)
	}
	return &stats, nil
}

func (r *gormPayoutRepository) GetByID(ctx context.Context, payoutID int64) (*payouts.Payout, error) {
	var model models.EventPayoutModel
	if err := r.db.WithContext(ctx).Preload("Event").Preload("Host").Where("id = ?", payoutID).First(&model).Error; err != nil {
		return nil, translateNotFound(err, "payout", payoutID)
	}
	return model.ToDomain(), nil
}

func (r *gormPayoutRepository) CapturedTotals(ctx context.Context, eventID string) (*payouts.CapturedTotals, error) {
	var row struct {
		Gross decimal.Decimal
		Fees  decimal.Decimal
		Gst   decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.PurchasedTicketModel{}).
		Select("COALESCE(SUM(total_amount), 0) AS gross, COALESCE(SUM(fees_amount), 0) AS fees, COALESCE(SUM(gst_amount), 0) AS gst").
		Where("event_id = ? AND payment_status = ?", eventID, tickets.PaymentCaptured).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate captured purchases: %w", err)
	}
	return &payouts.CapturedTotals{Gross: row.Gross, Fees: row.Fees, Gst: row.Gst}, nil
}

func (r *gormPayoutRepository) CreateIfNoneOpen(ctx context.Context, payout *payouts.Payout) error {
	if err := payout.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	var model models.EventPayoutModel
	model.FromDomain(payout)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEvent(tx, payout.EventID); err != nil {
			return err
		}

		var open int64
		if err := tx.Model(&models.EventPayoutModel{}).
			Where("event_id = ? AND payout_status IN ?", payout.EventID, openStatuses).
			Count(&open).Error; err != nil {
			return fmt.Errorf("failed to check open payouts: %w", err)
		}
		if open > 0 {
			return fmt.Errorf("%w: event already has an open payout", apperr.ErrInvalidInput)
		}
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create payout: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	payout.ID = model.ID
	r.logger.Info("Created payout with id ", model.ID, " for event ", payout.EventID)
	return nil
}

func (r *gormPayoutRepository) UpdateStatus(ctx context.Context, payout *payouts.Payout, from string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEvent(tx, payout.EventID); err != nil {
			return err
		}

		if payout.IsOpen() {
			var open int64
			if err := tx.Model(&models.EventPayoutModel{}).
				Where("event_id = ? AND id <> ? AND payout_status IN ?", payout.EventID, payout.ID, openStatuses).
				Count(&open).Error; err != nil {
				return fmt.Errorf("failed to check open payouts: %w", err)
			}
			if open > 0 {
				return fmt.Errorf("%w: event already has an open payout", apperr.ErrInvalidTransition)
			}
		}

		result := tx.Model(&models.EventPayoutModel{}).
			Where("id = ? AND payout_status = ?", payout.ID, from).
			Updates(map[string]interface{}{
				"payout_status":      payout.PayoutStatus,
				"razorpay_payout_id": payout.Reference,
				"processed_at":       payout.ProcessedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update payout: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			found, err := exists(tx, &models.EventPayoutModel{}, payout.ID)
			if err != nil {
				return fmt.Errorf("failed to check payout: %w", err)
			}
			if !found {
				return notFound("payout", payout.ID)
			}
			return fmt.Errorf("%w: payout %d is no longer %s", apperr.ErrInvalidTransition, payout.ID, from)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated payout with id ", payout.ID, " from ", from, " to status ", payout.PayoutStatus)
	return nil
}

// lockEvent serializes payout writes of one event. SQLite locks the whole
// database for a write transaction and has no row locks.
func lockEvent(tx *gorm.DB, eventID string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	var ids []string
	if err := tx.Model(&models.EventModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", eventID).
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}
	return nil
}
