package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

const (
	newUserWindow   = 30 * 24 * time.Hour
	recentSignupWin = 7 * 24 * time.Hour
	topCitiesLimit  = 10
)

type gormAnalyticsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAnalyticsRepository creates a new GORM-based AnalyticsRepository implementation
func NewGormAnalyticsRepository(db *gorm.DB, logger logger.Logger) (analytics.AnalyticsRepository, error) {
	return &gormAnalyticsRepository{
		db:     db,
		logger: logger,
	}, nil
}

type groupRow struct {
	Name  string
	Count int64
}

// groupCount counts rows of model grouped by column, largest groups first.
func (r *gormAnalyticsRepository) groupCount(ctx context.Context, model interface{}, column string, limit int, where string, args ...interface{}) ([]analytics.Bucket, error) {
	tx := r.db.WithContext(ctx).Model(model).
		Select(column + " AS name, COUNT(*) AS count").
		Group(column).
		Order("count DESC, name")
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []groupRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}
	buckets := make([]analytics.Bucket, len(rows))
	for i, row := range rows {
		buckets[i] = analytics.Bucket{Key: row.Name, Count: row.Count}
	}
	return buckets, nil
}

func (r *gormAnalyticsRepository) count(ctx context.Context, model interface{}, where string, args ...interface{}) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(model)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

func (r *gormAnalyticsRepository) Totals(ctx context.Context) (*analytics.Totals, error) {
	var totals analytics.Totals
	var err error
	if totals.Users, err = r.count(ctx, &models.UserModel{}, ""); err != nil {
		return nil, err
	}
	if totals.Events, err = r.count(ctx, &models.EventModel{}, ""); err != nil {
		return nil, err
	}
	if totals.Purchases, err = r.count(ctx, &models.PurchasedTicketModel{}, ""); err != nil {
		return nil, err
	}

	var row struct {
		Revenue decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.PurchasedTicketModel{}).
		Select("COALESCE(SUM(total_amount_including_fees), 0) AS revenue").
		Where("payment_status = ?", tickets.PaymentCaptured).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to sum captured revenue: %w", err)
	}
	totals.CapturedRevenue = row.Revenue
	return &totals, nil
}

func (r *gormAnalyticsRepository) RecentUsers(ctx context.Context, limit int) ([]analytics.RecentUser, error) {
	var modelList []models.UserModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent users: %w", err)
	}
	list := make([]analytics.RecentUser, len(modelList))
	for i, m := range modelList {
		list[i] = analytics.RecentUser{
			ID:         m.ID,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			PhoneNo:    m.PhoneNo,
			IsVerified: m.IsVerified,
			CreatedAt:  m.CreatedAt,
		}
	}
	return list, nil
}

func (r *gormAnalyticsRepository) RecentEvents(ctx context.Context, limit int) ([]analytics.RecentEvent, error) {
	var modelList []models.EventModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent events: %w", err)
	}
	list := make([]analytics.RecentEvent, len(modelList))
	for i, m := range modelList {
		list[i] = analytics.RecentEvent{
			ID:          m.ID,
			Title:       m.Title,
			City:        m.City,
			StartTime:   m.StartTime,
			IsPublished: m.IsPublished,
			CreatedAt:   m.CreatedAt,
		}
	}
	return list, nil
}

func (r *gormAnalyticsRepository) UserStats(ctx context.Context, now time.Time) (*analytics.UserStats, error) {
	var stats analytics.UserStats
	var err error
	if stats.Total, err = r.count(ctx, &models.UserModel{}, ""); err != nil {
		return nil, err
	}
	if stats.NewThisMonth, err = r.count(ctx, &models.UserModel{}, "created_at >= ?", now.Add(-newUserWindow)); err != nil {
		return nil, err
	}
	if stats.Verified, err = r.count(ctx, &models.UserModel{}, "is_verified = ?", true); err != nil {
		return nil, err
	}
	if stats.RecentSignups, err = r.count(ctx, &models.UserModel{}, "created_at >= ?", now.Add(-recentSignupWin)); err != nil {
		return nil, err
	}
	if stats.ByGender, err = r.groupCount(ctx, &models.UserModel{}, "gender", 0, "gender IS NOT NULL AND gender <> ''"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormAnalyticsRepository) EventStats(ctx context.Context, now time.Time) (*analytics.EventStats, error) {
	var stats analytics.EventStats
	var err error
	if stats.Total, err = r.count(ctx, &models.EventModel{}, ""); err != nil {
		return nil, err
	}
	if stats.Published, err = r.count(ctx, &models.EventModel{}, "is_published = ?", true); err != nil {
		return nil, err
	}
	if stats.Active, err = r.count(ctx, &models.EventModel{}, "is_published = ? AND end_time >= ?", true, now); err != nil {
		return nil, err
	}
	if stats.ByType, err = r.groupCount(ctx, &models.EventModel{}, "event_type", 0, "event_type IS NOT NULL AND event_type <> ''"); err != nil {
		return nil, err
	}
	if stats.ByStatus, err = r.groupCount(ctx, &models.EventModel{}, "status", 0, ""); err != nil {
		return nil, err
	}
	if stats.TopCities, err = r.groupCount(ctx, &models.EventModel{}, "city", topCitiesLimit, "city IS NOT NULL AND city <> ''"); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormAnalyticsRepository) FinancialStats(ctx context.Context) (*analytics.FinancialStats, error) {
	var row struct {
		Tickets int64
		Revenue decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.PurchasedTicketModel{}).
		Select("COALESCE(SUM(total_tickets), 0) AS tickets, COALESCE(SUM(total_amount_including_fees), 0) AS revenue").
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate purchases: %w", err)
	}

	stats := &analytics.FinancialStats{TotalTicketsSold: row.Tickets, TotalRevenue: row.Revenue}
	var err error
	if stats.TotalPayouts, err = r.count(ctx, &models.EventPayoutModel{}, ""); err != nil {
		return nil, err
	}
	if stats.PendingPayouts, err = r.count(ctx, &models.EventPayoutModel{}, "payout_status = ?", payouts.StatusPending); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *gormAnalyticsRepository) ModerationStats(ctx context.Context) (*analytics.ModerationStats, error) {
	var stats analytics.ModerationStats
	var err error
	if stats.Reports.Total, err = r.count(ctx, &models.UserReportModel{}, ""); err != nil {
		return nil, err
	}
	if stats.Reports.Pending, err = r.count(ctx, &models.UserReportModel{}, "status = ?", moderation.ReportPending); err != nil {
		return nil, err
	}
	if stats.Contacts.Total, err = r.count(ctx, &models.ContactMessageModel{}, ""); err != nil {
		return nil, err
	}
	if stats.Contacts.Pending, err = r.count(ctx, &models.ContactMessageModel{}, "status = ?", moderation.ContactPending); err != nil {
		return nil, err
	}
	if stats.Demos, err = r.count(ctx, &models.DemoRequestModel{}, ""); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormAnalyticsRepository) EngagementStats(ctx context.Context) (*analytics.EngagementStats, error) {
	var stats analytics.EngagementStats
	var err error
	if stats.RSVPs, err = r.count(ctx, &models.EventRSVPModel{}, ""); err != nil {
		return nil, err
	}
	if stats.Swipes, err = r.count(ctx, &models.EventSwipeModel{}, ""); err != nil {
		return nil, err
	}
	if stats.Matches, err = r.count(ctx, &models.EventMatchModel{}, ""); err != nil {
		return nil, err
	}
	if stats.ActiveSessions, err = r.count(ctx, &models.DeviceTokenModel{}, "is_session_active = ?", true); err != nil {
		return nil, err
	}
	stats.MatchRate = analytics.MatchRate(stats.Matches, stats.Swipes)
	return &stats, nil
}

func (r *gormAnalyticsRepository) SignupTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &stamps).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch signup times: %w", err)
	}
	return stamps, nil
}

func (r *gormAnalyticsRepository) CapturedRevenue(ctx context.Context, since time.Time) ([]analytics.DatedAmount, error) {
	var rows []models.PurchasedTicketModel
	if err := r.db.WithContext(ctx).
		Select("created_at", "total_amount_including_fees").
		Where("payment_status = ? AND created_at >= ?", tickets.PaymentCaptured, since).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch captured revenue: %w", err)
	}
	amounts := make([]analytics.DatedAmount, len(rows))
	for i, row := range rows {
		amounts[i] = analytics.DatedAmount{At: row.CreatedAt, Amount: row.TotalAmountIncludingFees}
	}
	return amounts, nil
}

func (r *gormAnalyticsRepository) PlatformUsage(ctx context.Context) ([]analytics.Bucket, error) {
	return r.groupCount(ctx, &models.DeviceTokenModel{}, "platform", 0, "is_active = ?", true)
}
