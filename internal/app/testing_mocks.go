//go:build unit
// +build unit

package app

import (
	"context"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*users.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phoneNo string) (*users.User, error) {
	args := m.Called(ctx, phoneNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) GetDetail(ctx context.Context, userID string) (*users.Detail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Detail), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID string, update *users.UserUpdate) error {
	args := m.Called(ctx, userID, update)
	return args.Error(0)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	args := m.Called(ctx, userID, isAdmin)
	return args.Error(0)
}

func (m *MockUserRepository) ForceLogout(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.ListItem, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*events.ListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventRepository) GetDetail(ctx context.Context, eventID string) (*events.Detail, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Detail), args.Error(1)
}

func (m *MockEventRepository) Guests(ctx context.Context, eventID string, page pagination.Params) ([]*events.Guest, int64, error) {
	args := m.Called(ctx, eventID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*events.Guest), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) Financials(ctx context.Context, eventID string) (*events.Financials, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Financials), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, eventID string, update *events.EventUpdate) error {
	args := m.Called(ctx, eventID, update)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteCascade(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context, query *tickets.PurchaseQuery) ([]*tickets.Purchase, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*tickets.Purchase), args.Get(1).(int64), args.Error(2)
}

func (m *MockTicketRepository) Stats(ctx context.Context) (*tickets.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Stats), args.Error(1)
}

func (m *MockTicketRepository) GetDetail(ctx context.Context, purchaseID int64) (*tickets.Detail, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Detail), args.Error(1)
}

// MockPayoutRepository is a mock implementation of PayoutRepository
type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) List(ctx context.Context, query *payouts.PayoutQuery) ([]*payouts.Payout, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*payouts.Payout), args.Get(1).(int64), args.Error(2)
}

func (m *MockPayoutRepository) Stats(ctx context.Context) (*payouts.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.Stats), args.Error(1)
}

func (m *MockPayoutRepository) GetByID(ctx context.Context, payoutID int64) (*payouts.Payout, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.Payout), args.Error(1)
}

func (m *MockPayoutRepository) CapturedTotals(ctx context.Context, eventID string) (*payouts.CapturedTotals, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.CapturedTotals), args.Error(1)
}

func (m *MockPayoutRepository) CreateIfNoneOpen(ctx context.Context, payout *payouts.Payout) error {
	args := m.Called(ctx, payout)
	return args.Error(0)
}

func (m *MockPayoutRepository) UpdateStatus(ctx context.Context, payout *payouts.Payout, from string) error {
	args := m.Called(ctx, payout, from)
	return args.Error(0)
}

// MockModerationRepository is a mock implementation of ModerationRepository
type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) ListReports(ctx context.Context, query *moderation.Query) ([]*moderation.Report, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationRepository) GetReport(ctx context.Context, reportID int64) (*moderation.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.Report), args.Error(1)
}

func (m *MockModerationRepository) ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *moderation.ReportReview, at time.Time) error {
	args := m.Called(ctx, reportID, reviewerID, review, at)
	return args.Error(0)
}

func (m *MockModerationRepository) ListContactMessages(ctx context.Context, query *moderation.Query) ([]*moderation.ContactMessage, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationRepository) GetContactMessage(ctx context.Context, messageID int64) (*moderation.ContactMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.ContactMessage), args.Error(1)
}

func (m *MockModerationRepository) UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *moderation.ContactUpdate, at time.Time) error {
	args := m.Called(ctx, messageID, adminID, update, at)
	return args.Error(0)
}

func (m *MockModerationRepository) ListDemoRequests(ctx context.Context, query *moderation.Query) ([]*moderation.DemoRequest, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.DemoRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationRepository) GetDemoRequest(ctx context.Context, demoID int64) (*moderation.DemoRequest, error) {
	args := m.Called(ctx, demoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.DemoRequest), args.Error(1)
}

func (m *MockModerationRepository) UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *moderation.DemoUpdate, at time.Time) error {
	args := m.Called(ctx, demoID, adminID, update, at)
	return args.Error(0)
}

// MockDemoMailer is a mock implementation of DemoMailer
type MockDemoMailer struct {
	mock.Mock
}

func (m *MockDemoMailer) SendDemoScheduled(ctx context.Context, demo *moderation.DemoRequest) error {
	args := m.Called(ctx, demo)
	return args.Error(0)
}

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListCategories(ctx context.Context) ([]*content.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Category), args.Error(1)
}

func (m *MockContentRepository) CreateCategory(ctx context.Context, input *content.CategoryInput) (*content.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Category), args.Error(1)
}

func (m *MockContentRepository) UpdateCategory(ctx context.Context, id int64, input *content.CategoryInput) (*content.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Category), args.Error(1)
}

func (m *MockContentRepository) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ListTags(ctx context.Context, kind content.TagKind) ([]*content.Tag, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Tag), args.Error(1)
}

func (m *MockContentRepository) CreateTag(ctx context.Context, kind content.TagKind, input *content.TagInput) (*content.Tag, error) {
	args := m.Called(ctx, kind, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Tag), args.Error(1)
}

func (m *MockContentRepository) UpdateTag(ctx context.Context, kind content.TagKind, id int64, input *content.TagInput) (*content.Tag, error) {
	args := m.Called(ctx, kind, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Tag), args.Error(1)
}

func (m *MockContentRepository) DeleteTag(ctx context.Context, kind content.TagKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockContentRepository) ListLanguages(ctx context.Context) ([]*content.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Language), args.Error(1)
}

func (m *MockContentRepository) CreateLanguage(ctx context.Context, input *content.LanguageInput) (*content.Language, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Language), args.Error(1)
}

func (m *MockContentRepository) UpdateLanguage(ctx context.Context, id int64, input *content.LanguageInput) (*content.Language, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Language), args.Error(1)
}

func (m *MockContentRepository) DeleteLanguage(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ListQuestions(ctx context.Context, query *content.QuestionQuery) ([]*content.Question, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Question), args.Error(1)
}

func (m *MockContentRepository) MaxQuestionOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockContentRepository) CreateQuestion(ctx context.Context, question *content.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockContentRepository) UpdateQuestion(ctx context.Context, id int64, input *content.QuestionInput) (*content.Question, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Question), args.Error(1)
}

func (m *MockContentRepository) DeleteQuestion(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Totals(ctx context.Context) (*analytics.Totals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Totals), args.Error(1)
}

func (m *MockAnalyticsRepository) RecentUsers(ctx context.Context, limit int) ([]analytics.RecentUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.RecentUser), args.Error(1)
}

func (m *MockAnalyticsRepository) RecentEvents(ctx context.Context, limit int) ([]analytics.RecentEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.RecentEvent), args.Error(1)
}

func (m *MockAnalyticsRepository) UserStats(ctx context.Context, now time.Time) (*analytics.UserStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.UserStats), args.Error(1)
}

func (m *MockAnalyticsRepository) EventStats(ctx context.Context, now time.Time) (*analytics.EventStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.EventStats), args.Error(1)
}

func (m *MockAnalyticsRepository) FinancialStats(ctx context.Context) (*analytics.FinancialStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.FinancialStats), args.Error(1)
}

func (m *MockAnalyticsRepository) ModerationStats(ctx context.Context) (*analytics.ModerationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.ModerationStats), args.Error(1)
}

func (m *MockAnalyticsRepository) EngagementStats(ctx context.Context) (*analytics.EngagementStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.EngagementStats), args.Error(1)
}

func (m *MockAnalyticsRepository) SignupTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockAnalyticsRepository) CapturedRevenue(ctx context.Context, since time.Time) ([]analytics.DatedAmount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.DatedAmount), args.Error(1)
}

func (m *MockAnalyticsRepository) PlatformUsage(ctx context.Context) ([]analytics.Bucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.Bucket), args.Error(1)
}

// MockOTPProvider is a mock implementation of OTPProvider
type MockOTPProvider struct {
	mock.Mock
}

func (m *MockOTPProvider) Generate(ctx context.Context, phoneNo string) (string, error) {
	args := m.Called(ctx, phoneNo)
	return args.String(0), args.Error(1)
}

func (m *MockOTPProvider) Verify(ctx context.Context, phoneNo, code string) error {
	args := m.Called(ctx, phoneNo, code)
	return args.Error(0)
}

func (m *MockOTPProvider) Length() int {
	args := m.Called()
	return args.Int(0)
}

// MockSMSDispatcher is a mock implementation of SMSDispatcher
type MockSMSDispatcher struct {
	mock.Mock
}

func (m *MockSMSDispatcher) Dispatch(ctx context.Context, msg *auth.SMSMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockSMSLogWriter is a mock implementation of SMSLogWriter
type MockSMSLogWriter struct {
	mock.Mock
}

func (m *MockSMSLogWriter) RecordSMS(ctx context.Context, entry *logs.SMSLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockSessionManager is a mock implementation of SessionManager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Issue(principal auth.Principal) (*auth.Session, error) {
	args := m.Called(principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionManager) Parse(token string) (*auth.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

// MockRateLimiter is a mock implementation of RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}
