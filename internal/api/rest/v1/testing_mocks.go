//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/gauravkdm/admin-portal/internal/domain/analytics"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/content"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/moderation"
	"github.com/gauravkdm/admin-portal/internal/domain/notifications"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SendOTP(ctx context.Context, req *auth.OTPRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, creds *auth.Credentials) (*users.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, creds *auth.Credentials) (*auth.Session, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*users.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetDetail(ctx context.Context, userID string) (*users.Detail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Detail), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, userID string, update *users.UserUpdate) (*users.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) SetVerification(ctx context.Context, userID string, verified bool) (*users.User, error) {
	args := m.Called(ctx, userID, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ForceLogout(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(ctx context.Context, query *events.EventQuery) ([]*events.ListItem, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*events.ListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventService) GetDetail(ctx context.Context, eventID string) (*events.Detail, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Detail), args.Error(1)
}

func (m *MockEventService) Guests(ctx context.Context, eventID string, page pagination.Params) ([]*events.Guest, int64, error) {
	args := m.Called(ctx, eventID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*events.Guest), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventService) Financials(ctx context.Context, eventID string) (*events.Financials, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Financials), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, eventID string, update *events.EventUpdate) (*events.Event, error) {
	args := m.Called(ctx, eventID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) SetPublished(ctx context.Context, eventID string, published bool) (*events.Event, error) {
	args := m.Called(ctx, eventID, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) SetStatus(ctx context.Context, eventID string, status string) (*events.Event, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockTicketService is a mock implementation of TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) List(ctx context.Context, query *tickets.PurchaseQuery) ([]*tickets.Purchase, int64, *tickets.Stats, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, nil, args.Error(3)
	}
	return args.Get(0).([]*tickets.Purchase), args.Get(1).(int64), args.Get(2).(*tickets.Stats), args.Error(3)
}

func (m *MockTicketService) GetDetail(ctx context.Context, purchaseID int64) (*tickets.Detail, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tickets.Detail), args.Error(1)
}

// MockPayoutService is a mock implementation of PayoutService
type MockPayoutService struct {
	mock.Mock
}

func (m *MockPayoutService) List(ctx context.Context, query *payouts.PayoutQuery) ([]*payouts.Payout, int64, *payouts.Stats, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, nil, args.Error(3)
	}
	return args.Get(0).([]*payouts.Payout), args.Get(1).(int64), args.Get(2).(*payouts.Stats), args.Error(3)
}

func (m *MockPayoutService) GetByID(ctx context.Context, payoutID int64) (*payouts.Payout, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.Payout), args.Error(1)
}

func (m *MockPayoutService) CreateForEvent(ctx context.Context, eventID string) (*payouts.Payout, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.Payout), args.Error(1)
}

func (m *MockPayoutService) ChangeStatus(ctx context.Context, payoutID int64, change *payouts.StatusChange) (*payouts.Payout, error) {
	args := m.Called(ctx, payoutID, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payouts.Payout), args.Error(1)
}

func (m *MockPayoutService) Preview(base float64) (payouts.FeeBreakdown, error) {
	args := m.Called(base)
	return args.Get(0).(payouts.FeeBreakdown), args.Error(1)
}

// MockModerationService is a mock implementation of ModerationService
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListReports(ctx context.Context, query *moderation.Query) ([]*moderation.Report, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.Report), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationService) ReviewReport(ctx context.Context, reportID int64, reviewerID string, review *moderation.ReportReview) (*moderation.Report, error) {
	args := m.Called(ctx, reportID, reviewerID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.Report), args.Error(1)
}

func (m *MockModerationService) ListContactMessages(ctx context.Context, query *moderation.Query) ([]*moderation.ContactMessage, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationService) UpdateContactMessage(ctx context.Context, messageID int64, adminID string, update *moderation.ContactUpdate) (*moderation.ContactMessage, error) {
	args := m.Called(ctx, messageID, adminID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.ContactMessage), args.Error(1)
}

func (m *MockModerationService) ListDemoRequests(ctx context.Context, query *moderation.Query) ([]*moderation.DemoRequest, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*moderation.DemoRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockModerationService) UpdateDemoRequest(ctx context.Context, demoID int64, adminID string, update *moderation.DemoUpdate) (*moderation.DemoRequest, error) {
	args := m.Called(ctx, demoID, adminID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*moderation.DemoRequest), args.Error(1)
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListCategories(ctx context.Context) ([]*content.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Category), args.Error(1)
}

func (m *MockContentService) CreateCategory(ctx context.Context, input *content.CategoryInput) (*content.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Category), args.Error(1)
}

func (m *MockContentService) UpdateCategory(ctx context.Context, id int64, input *content.CategoryInput) (*content.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Category), args.Error(1)
}

func (m *MockContentService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentService) ListTags(ctx context.Context, kind content.TagKind) ([]*content.Tag, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Tag), args.Error(1)
}

func (m *MockContentService) CreateTag(ctx context.Context, kind content.TagKind, input *content.TagInput) (*content.Tag, error) {
	args := m.Called(ctx, kind, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Tag), args.Error(1)
}

func (m *MockContentService) UpdateTag(ctx context.Context, kind content.TagKind, id int64, input *content.TagInput) (*content.Tag, error) {
	args := m.Called(ctx, kind, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Tag), args.Error(1)
}

func (m *MockContentService) DeleteTag(ctx context.Context, kind content.TagKind, id int64) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockContentService) ListLanguages(ctx context.Context) ([]*content.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Language), args.Error(1)
}

func (m *MockContentService) CreateLanguage(ctx context.Context, input *content.LanguageInput) (*content.Language, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Language), args.Error(1)
}

func (m *MockContentService) UpdateLanguage(ctx context.Context, id int64, input *content.LanguageInput) (*content.Language, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Language), args.Error(1)
}

func (m *MockContentService) DeleteLanguage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContentService) ListQuestions(ctx context.Context, query *content.QuestionQuery) ([]*content.Question, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Question), args.Error(1)
}

func (m *MockContentService) CreateQuestion(ctx context.Context, input *content.QuestionInput) (*content.Question, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Question), args.Error(1)
}

func (m *MockContentService) UpdateQuestion(ctx context.Context, id int64, input *content.QuestionInput) (*content.Question, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Question), args.Error(1)
}

func (m *MockContentService) DeleteQuestion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockLogService is a mock implementation of LogService
type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) ListSMS(ctx context.Context, query *logs.SMSQuery) ([]*logs.SMSLog, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*logs.SMSLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockLogService) ListExceptions(ctx context.Context, query *logs.ExceptionQuery) ([]*logs.ExceptionLog, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*logs.ExceptionLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockLogService) ListRequests(ctx context.Context, query *logs.RequestQuery) ([]*logs.RequestLog, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*logs.RequestLog), args.Get(1).(int64), args.Error(2)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, query *notifications.Query) ([]*notifications.Notification, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*notifications.Notification), args.Get(1).(int64), args.Error(2)
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Dashboard), args.Error(1)
}

func (m *MockAnalyticsService) Analytics(ctx context.Context) (*analytics.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Analytics), args.Error(1)
}

// MockInvalidator records invalidated route prefixes
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, paths ...string) {
	m.Called(ctx, paths)
}
