//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsServiceUnderTest(t *testing.T) (*analyticsService, *MockAnalyticsRepository) {
	t.Helper()
	repo := new(MockAnalyticsRepository)
	svc, err := NewAnalyticsService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	impl := svc.(*analyticsService)
	impl.now = func() time.Time { return fixedNow }
	return impl, repo
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	svc, repo := newAnalyticsServiceUnderTest(t)

	repo.On("Totals", mock.Anything).Return(&analytics.Totals{Users: 10, Events: 3, Purchases: 7, CapturedRevenue: decimal.NewFromInt(500)}, nil)
	repo.On("ModerationStats", mock.Anything).Return(&analytics.ModerationStats{
		Reports:  analytics.Counter{Total: 4, Pending: 2},
		Contacts: analytics.Counter{Total: 5, Pending: 1},
	}, nil)
	repo.On("RecentUsers", mock.Anything, dashboardRecentLimit).Return([]analytics.RecentUser{{ID: "u-1"}}, nil)
	repo.On("RecentEvents", mock.Anything, dashboardRecentLimit).Return([]analytics.RecentEvent{{ID: "ev-1"}}, nil)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), d.Totals.Users)
	assert.Equal(t, int64(2), d.PendingReports)
	assert.Equal(t, int64(1), d.PendingContacts)
	assert.Len(t, d.RecentUsers, 1)
	assert.Len(t, d.RecentEvents, 1)
}

func TestAnalyticsService_Dashboard_PropagatesError(t *testing.T) {
	svc, repo := newAnalyticsServiceUnderTest(t)

	repo.On("Totals", mock.Anything).Return(nil, errors.New("db down"))
	repo.On("ModerationStats", mock.Anything).Return(&analytics.ModerationStats{}, nil)
	repo.On("RecentUsers", mock.Anything, mock.Anything).Return([]analytics.RecentUser{}, nil)
	repo.On("RecentEvents", mock.Anything, mock.Anything).Return([]analytics.RecentEvent{}, nil)

	_, err := svc.Dashboard(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestAnalyticsService_Analytics_BuildsTimelines(t *testing.T) {
	svc, repo := newAnalyticsServiceUnderTest(t)
	since := analytics.TimelineStart(fixedNow, analytics.TimelineMonths)

	repo.On("UserStats", mock.Anything, fixedNow).Return(&analytics.UserStats{Total: 10}, nil)
	repo.On("EventStats", mock.Anything, fixedNow).Return(&analytics.EventStats{Total: 3}, nil)
	repo.On("FinancialStats", mock.Anything).Return(&analytics.FinancialStats{TotalTicketsSold: 12}, nil)
	repo.On("ModerationStats", mock.Anything).Return(&analytics.ModerationStats{Demos: 1}, nil)
	repo.On("EngagementStats", mock.Anything).Return(&analytics.EngagementStats{Swipes: 4, Matches: 1, MatchRate: 25}, nil)
	repo.On("SignupTimes", mock.Anything, since).Return([]time.Time{
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
	}, nil)
	repo.On("CapturedRevenue", mock.Anything, since).Return([]analytics.DatedAmount{
		{At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("99.50")},
	}, nil)
	repo.On("PlatformUsage", mock.Anything).Return([]analytics.Bucket{{Key: "ios", Count: 2}}, nil)

	a, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	require.Len(t, a.Timelines.UserSignups, analytics.TimelineMonths)
	assert.Equal(t, int64(1), a.Timelines.UserSignups[11].Count)
	assert.Equal(t, int64(1), a.Timelines.UserSignups[9].Count)
	assert.Equal(t, "99.50", a.Timelines.Revenue[11].Amount.StringFixed(2))
	assert.Equal(t, 25.0, a.Engagement.MatchRate)
	assert.Equal(t, "ios", a.PlatformUsage[0].Key)
}
