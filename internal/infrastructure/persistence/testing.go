//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence/models"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         users.UserRepository
	EventRepo        events.EventRepository
	TicketRepo       tickets.TicketRepository
	PayoutRepo       payouts.PayoutRepository
	ModerationRepo   moderation.ModerationRepository
	ContentRepo      content.ContentRepository
	LogRepo          logs.LogRepository
	NotificationRepo notifications.NotificationRepository
	AnalyticsRepo    analytics.AnalyticsRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)
	tc.EventRepo, err = NewGormEventRepository(db, logger)
	require.NoError(t, err)
	tc.TicketRepo, err = NewGormTicketRepository(db, logger)
	require.NoError(t, err)
	tc.PayoutRepo, err = NewGormPayoutRepository(db, logger)
	require.NoError(t, err)
	tc.ModerationRepo, err = NewGormModerationRepository(db, logger)
	require.NoError(t, err)
	tc.ContentRepo, err = NewGormContentRepository(db, logger)
	require.NoError(t, err)
	tc.LogRepo, err = NewGormLogRepository(db, logger)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, logger)
	require.NoError(t, err)
	tc.AnalyticsRepo, err = NewGormAnalyticsRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestUser inserts a user with default values
func CreateTestUser(t *testing.T, db *gorm.DB, firstName, phone string) *models.UserModel {
	t.Helper()

	now := time.Now().UTC()
	user := &models.UserModel{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    "Tester",
		Email:       strings.ToLower(firstName) + "@example.com",
		PhoneNo:     phone,
		CountryCode: "91",
		Gender:      "Female",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestEvent inserts a published event hosted by hostID
func CreateTestEvent(t *testing.T, db *gorm.DB, hostID, title string) *models.EventModel {
	t.Helper()

	now := time.Now().UTC()
	event := &models.EventModel{
		ID:          uuid.NewString(),
		HostUserID:  hostID,
		Title:       title,
		Location:    "Main Hall",
		City:        "Pune",
		StartTime:   now.Add(24 * time.Hour),
		EndTime:     now.Add(28 * time.Hour),
		EventType:   "Music",
		Status:      events.StatusActive,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

// CreateTestTicket inserts a ticket type for an event
func CreateTestTicket(t *testing.T, db *gorm.DB, eventID string, price string) *models.TicketModel {
	t.Helper()

	ticket := &models.TicketModel{
		EventID:          eventID,
		Name:             "General",
		Price:            decimal.RequireFromString(price),
		IsFree:           price == "0",
		TotalTickets:     100,
		AvailableTickets: 100,
	}
	require.NoError(t, db.Create(ticket).Error)
	return ticket
}

// CreateTestPurchase inserts a purchase; a nil status records a free purchase
func CreateTestPurchase(t *testing.T, db *gorm.DB, ticket *models.TicketModel, userID string, quantity int, amount string, status *string) *models.PurchasedTicketModel {
	t.Helper()

	base := decimal.RequireFromString(amount)
	fees := base.Mul(decimal.NewFromInt(10)).Div(decimal.NewFromInt(100)).Round(2)
	gst := fees.Mul(decimal.NewFromInt(18)).Div(decimal.NewFromInt(100)).Round(2)
	purchase := &models.PurchasedTicketModel{
		TicketID:                 ticket.ID,
		UserID:                   userID,
		EventID:                  ticket.EventID,
		TotalTickets:             quantity,
		TotalAmount:              base,
		TotalAmountIncludingFees: base.Add(fees).Add(gst),
		FeesPercentage:           decimal.NewFromInt(10),
		FeesAmount:               fees,
		GstPercentage:            decimal.NewFromInt(18),
		GstAmount:                gst,
		PaymentStatus:            status,
		CreatedAt:                time.Now().UTC(),
		UpdatedAt:                time.Now().UTC(),
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

// StatusPtr returns a pointer to s
func StatusPtr(s string) *string {
	return &s
}
