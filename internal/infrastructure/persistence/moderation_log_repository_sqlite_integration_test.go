//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationSqliteRepository_Reports(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	reporter := CreateTestUser(t, ctx.DB, "Rita", "9400000001")
	reported := CreateTestUser(t, ctx.DB, "Sam", "9400000002")
	admin := CreateTestUser(t, ctx.DB, "Admin", "9400000003")
	report := models.UserReportModel{
		ReporterUserID: reporter.ID,
		ReportedUserID: reported.ID,
		ReportType:     "Spam",
		Status:         moderation.ReportPending,
		ReportedAt:     time.Now().UTC(),
	}
	require.NoError(t, ctx.DB.Create(&report).Error)

	query := moderation.NewQuery()
	query.Status = moderation.ReportPending
	list, total, err := ctx.ModerationRepo.ListReports(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.NotNil(t, list[0].Reporter)
	assert.Equal(t, "Rita", list[0].Reporter.FirstName)
	assert.Equal(t, "Sam", list[0].Reported.FirstName)

	at := time.Now().UTC()
	review := &moderation.ReportReview{Status: moderation.ReportDismissed, AdminNotes: "not spam"}
	require.NoError(t, ctx.ModerationRepo.ReviewReport(context.Background(), report.ID, admin.ID, review, at))

	fetched, err := ctx.ModerationRepo.GetReport(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, moderation.ReportDismissed, fetched.Status)
	require.NotNil(t, fetched.ReviewedByUserID)
	assert.Equal(t, admin.ID, *fetched.ReviewedByUserID)
	assert.NotNil(t, fetched.ReviewedAt)

	err = ctx.ModerationRepo.ReviewReport(context.Background(), 9999, admin.ID, review, at)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestModerationSqliteRepository_ContactMessages(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	msg := models.ContactMessageModel{FullName: "Visitor", Subject: "Help", Status: moderation.ContactPending}
	require.NoError(t, ctx.DB.Create(&msg).Error)

	at := time.Now().UTC()
	require.NoError(t, ctx.ModerationRepo.UpdateContactMessage(context.Background(), msg.ID, "admin-1",
		&moderation.ContactUpdate{Status: moderation.ContactInProgress}, at))
	fetched, err := ctx.ModerationRepo.GetContactMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.ResolvedAt)
	assert.Nil(t, fetched.ResolvedByUserID)

	require.NoError(t, ctx.ModerationRepo.UpdateContactMessage(context.Background(), msg.ID, "admin-1",
		&moderation.ContactUpdate{Status: moderation.ContactResolved, AdminNotes: "done"}, at))
	fetched, err = ctx.ModerationRepo.GetContactMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, moderation.ContactResolved, fetched.Status)
	require.NotNil(t, fetched.ResolvedByUserID)
	assert.Equal(t, "admin-1", *fetched.ResolvedByUserID)
	assert.NotNil(t, fetched.ResolvedAt)
}

func TestModerationSqliteRepository_DemoRequests(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	demo := models.DemoRequestModel{FullName: "Planner", Email: "planner@example.com", Status: moderation.DemoPending}
	require.NoError(t, ctx.DB.Create(&demo).Error)

	scheduled := time.Now().UTC().Add(48 * time.Hour)
	update := &moderation.DemoUpdate{Status: moderation.DemoScheduled, ScheduledDemoAt: &scheduled}
	require.NoError(t, ctx.ModerationRepo.UpdateDemoRequest(context.Background(), demo.ID, "admin-2", update, time.Now().UTC()))

	list, total, err := ctx.ModerationRepo.ListDemoRequests(context.Background(), moderation.NewQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, moderation.DemoScheduled, list[0].Status)
	require.NotNil(t, list[0].AssignedToUserID)
	assert.Equal(t, "admin-2", *list[0].AssignedToUserID)
	require.NotNil(t, list[0].ScheduledDemoAt)
}

func TestLogSqliteRepository_RecordSMS(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.DB.Create(&models.CountryModel{Name: "India", PhoneCode: "91"}).Error)

	for i := 0; i < 2; i++ {
		entry := &logs.SMSLog{
			PhoneNo:       "9876543210",
			CountryCode:   "+91",
			FeatureName:   logs.FeatureOTP,
			MessageStatus: logs.SMSSent,
		}
		require.NoError(t, ctx.LogRepo.RecordSMS(context.Background(), entry))
		assert.NotZero(t, entry.ID)
	}

	var features int64
	require.NoError(t, ctx.DB.Model(&models.FeatureModel{}).Count(&features).Error)
	assert.Equal(t, int64(1), features)

	list, total, err := ctx.LogRepo.ListSMS(context.Background(), &logs.SMSQuery{Status: logs.SMSSent, Page: pagination.Default(pagination.DefaultLogLimit)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "India", list[0].CountryName)
	assert.Equal(t, logs.FeatureOTP, list[0].FeatureName)
}

func TestLogSqliteRepository_ListRequestsAndExceptions(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	now := time.Now().UTC()
	require.NoError(t, ctx.DB.Create(&models.RequestLogModel{Path: "/a", Method: "GET", StatusCode: 200, Timestamp: now}).Error)
	require.NoError(t, ctx.DB.Create(&models.RequestLogModel{Path: "/b", Method: "POST", StatusCode: 500, Timestamp: now}).Error)
	require.NoError(t, ctx.DB.Create(&models.ExceptionLogModel{Path: "/b", Method: "POST", StatusCode: 500, Message: "boom", Timestamp: now}).Error)

	requests, total, err := ctx.LogRepo.ListRequests(context.Background(), &logs.RequestQuery{Method: "post", Page: pagination.Default(pagination.DefaultLogLimit)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "/b", requests[0].Path)

	exceptions, total, err := ctx.LogRepo.ListExceptions(context.Background(), &logs.ExceptionQuery{StatusCode: 500, Page: pagination.Default(pagination.DefaultLogLimit)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "boom", exceptions[0].Message)

	_, _, err = ctx.LogRepo.ListExceptions(context.Background(), &logs.ExceptionQuery{StatusCode: 42})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNotificationSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx.DB, "Nina", "9400000004")
	now := time.Now().UTC()
	require.NoError(t, ctx.DB.Create(&models.NotificationModel{UserID: user.ID, Title: "old", Status: "Sent", SentAt: now.Add(-time.Hour)}).Error)
	require.NoError(t, ctx.DB.Create(&models.NotificationModel{UserID: user.ID, Title: "new", Status: "Sent", SentAt: now}).Error)
	require.NoError(t, ctx.DB.Create(&models.NotificationModel{UserID: user.ID, Title: "err", Status: "Failed", SentAt: now}).Error)

	list, total, err := ctx.NotificationRepo.List(context.Background(), &notifications.Query{Status: "Sent", Page: pagination.Default(pagination.DefaultLimit)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Title)
	assert.Equal(t, "Nina", list[0].User.FirstName)
}
