package app

import (
	"context"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const dashboardRecentLimit = 5

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	analyticsRepo analytics.AnalyticsRepository
	now           func() time.Time
	logger        logger.Logger
}

// NewAnalyticsService creates a new analyticsService instance
func NewAnalyticsService(analyticsRepo analytics.AnalyticsRepository, logger logger.Logger) (analytics.AnalyticsService, error) {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger,
	}, nil
}

// Dashboard runs the headline queries concurrently
func (s *analyticsService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	var (
		totals       *analytics.Totals
		moderation   *analytics.ModerationStats
		recentUsers  []analytics.RecentUser
		recentEvents []analytics.RecentEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.analyticsRepo.Totals(gctx)
		return err
	})
	g.Go(func() (err error) {
		moderation, err = s.analyticsRepo.ModerationStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		recentUsers, err = s.analyticsRepo.RecentUsers(gctx, dashboardRecentLimit)
		return err
	})
	g.Go(func() (err error) {
		recentEvents, err = s.analyticsRepo.RecentEvents(gctx, dashboardRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &analytics.Dashboard{
		Totals:          *totals,
		PendingReports:  moderation.Reports.Pending,
		PendingContacts: moderation.Contacts.Pending,
		RecentUsers:     recentUsers,
		RecentEvents:    recentEvents,
	}, nil
}

// Analytics runs every aggregate concurrently and buckets the twelve-month timelines
func (s *analyticsService) Analytics(ctx context.Context) (*analytics.Analytics, error) {
	now := s.now()
	since := analytics.TimelineStart(now, analytics.TimelineMonths)

	var (
		userStats   *analytics.UserStats
		eventStats  *analytics.EventStats
		financial   *analytics.FinancialStats
		moderation  *analytics.ModerationStats
		engagement  *analytics.EngagementStats
		signups     []time.Time
		revenue     []analytics.DatedAmount
		platformUse []analytics.Bucket
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		userStats, err = s.analyticsRepo.UserStats(gctx, now)
		return err
	})
	g.Go(func() (err error) {
		eventStats, err = s.analyticsRepo.EventStats(gctx, now)
		return err
	})
	g.Go(func() (err error) {
		financial, err = s.analyticsRepo.FinancialStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		moderation, err = s.analyticsRepo.ModerationStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		engagement, err = s.analyticsRepo.EngagementStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		signups, err = s.analyticsRepo.SignupTimes(gctx, since)
		return err
	})
	g.Go(func() (err error) {
		revenue, err = s.analyticsRepo.CapturedRevenue(gctx, since)
		return err
	})
	g.Go(func() (err error) {
		platformUse, err = s.analyticsRepo.PlatformUsage(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &analytics.Analytics{
		Users:      *userStats,
		Events:     *eventStats,
		Financial:  *financial,
		Moderation: *moderation,
		Engagement: *engagement,
		Timelines: analytics.Timelines{
			UserSignups: analytics.CountByMonth(now, analytics.TimelineMonths, signups),
			Revenue:     analytics.SumByMonth(now, analytics.TimelineMonths, revenue),
		},
		PlatformUsage: platformUse,
	}, nil
}
