package analytics

import (
	"context"
	"time"
)

// AnalyticsService builds the dashboard and analytics screens.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

// AnalyticsRepository exposes the aggregate queries behind the dashboard and analytics screens.
// Each method is independent so callers may run them concurrently.
type AnalyticsRepository interface {
	Totals(ctx context.Context) (*Totals, error)
	RecentUsers(ctx context.Context, limit int) ([]RecentUser, error)
	RecentEvents(ctx context.Context, limit int) ([]RecentEvent, error)
	UserStats(ctx context.Context, now time.Time) (*UserStats, error)
	EventStats(ctx context.Context, now time.Time) (*EventStats, error)
	FinancialStats(ctx context.Context) (*FinancialStats, error)
	ModerationStats(ctx context.Context) (*ModerationStats, error)
	EngagementStats(ctx context.Context) (*EngagementStats, error)
	SignupTimes(ctx context.Context, since time.Time) ([]time.Time, error)
	CapturedRevenue(ctx context.Context, since time.Time) ([]DatedAmount, error)
	PlatformUsage(ctx context.Context) ([]Bucket, error)
}
