//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/mailer"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/otp"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/persistence"
	"github.com/gauravkdm/admin-portal/internal/infrastructure/session"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestSessionSecret signs sessions issued in integration tests
const TestSessionSecret = "integration-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService       auth.AuthService
	UserService       users.UserService
	AdminRoleService  users.AdminRoleService
	EventService      events.EventService
	TicketService     tickets.TicketService
	PayoutService     payouts.PayoutService
	ModerationService moderation.ModerationService
	ContentService    content.ContentService
	AnalyticsService  analytics.AnalyticsService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service over a migrated test database, the
// development OTP provider, the log SMS dispatcher and a JWT session manager
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	sessions, err := session.NewJWTManager(&config.SessionSettings{
		Secret:     TestSessionSecret,
		TTL:        time.Hour,
		CookieName: "admin_session",
	})
	require.NoError(t, err)

	authService, err := NewAuthService(
		otp.NewDevProvider(logger),
		otp.NewLogDispatcher(logger),
		dbContext.LogRepo,
		dbContext.UserRepo,
		sessions,
		otp.NewKeyedLimiter(3),
		"91",
		logger,
	)
	require.NoError(t, err)

	userService, err := NewUserService(dbContext.UserRepo, logger)
	require.NoError(t, err)
	adminRoleService, err := NewAdminRoleService(dbContext.UserRepo, logger)
	require.NoError(t, err)
	eventService, err := NewEventService(dbContext.EventRepo, logger)
	require.NoError(t, err)
	ticketService, err := NewTicketService(dbContext.TicketRepo, logger)
	require.NoError(t, err)

	calculator, err := payouts.NewFeeCalculator(5, 18)
	require.NoError(t, err)
	payoutService, err := NewPayoutService(dbContext.PayoutRepo, dbContext.EventRepo, calculator, logger)
	require.NoError(t, err)

	moderationService, err := NewModerationService(dbContext.ModerationRepo, mailer.NewLogMailer(logger), logger)
	require.NoError(t, err)
	contentService, err := NewContentService(dbContext.ContentRepo, logger)
	require.NoError(t, err)
	analyticsService, err := NewAnalyticsService(dbContext.AnalyticsRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		AuthService:       authService,
		UserService:       userService,
		AdminRoleService:  adminRoleService,
		EventService:      eventService,
		TicketService:     ticketService,
		PayoutService:     payoutService,
		ModerationService: moderationService,
		ContentService:    contentService,
		AnalyticsService:  analyticsService,
		DBContext:         dbContext,
	}
}
