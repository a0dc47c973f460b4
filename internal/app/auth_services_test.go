//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	otp      *MockOTPProvider
	sms      *MockSMSDispatcher
	smsLog   *MockSMSLogWriter
	users    *MockUserRepository
	sessions *MockSessionManager
	limiter  *MockRateLimiter
}

func newAuthServiceUnderTest(t *testing.T) (auth.AuthService, *authDeps) {
	t.Helper()
	d := &authDeps{
		otp:      new(MockOTPProvider),
		sms:      new(MockSMSDispatcher),
		smsLog:   new(MockSMSLogWriter),
		users:    new(MockUserRepository),
		sessions: new(MockSessionManager),
		limiter:  new(MockRateLimiter),
	}
	svc, err := NewAuthService(d.otp, d.sms, d.smsLog, d.users, d.sessions, d.limiter, "91", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	impl := svc.(*authService)
	impl.now = func() time.Time { return fixedNow }
	return svc, d
}

func TestAuthService_SendOTP(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.limiter.On("Allow", "9876543210").Return(true)
	d.otp.On("Generate", ctx, "9876543210").Return("4821", nil)
	d.sms.On("Dispatch", ctx, mock.MatchedBy(func(m *auth.SMSMessage) bool {
		return m.To == "+919876543210" && m.Feature == logs.FeatureOTP
	})).Return(nil)
	d.smsLog.On("RecordSMS", ctx, mock.MatchedBy(func(e *logs.SMSLog) bool {
		return e.MessageStatus == logs.SMSSent && e.CountryCode == "91"
	})).Return(nil)

	require.NoError(t, svc.SendOTP(ctx, &auth.OTPRequest{PhoneNo: "9876543210"}))
	d.sms.AssertExpectations(t)
	d.smsLog.AssertExpectations(t)
}

func TestAuthService_SendOTP_RecordsFailedDispatch(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.limiter.On("Allow", "9876543210").Return(true)
	d.otp.On("Generate", ctx, "9876543210").Return("4821", nil)
	d.sms.On("Dispatch", ctx, mock.Anything).Return(errors.New("gateway unavailable"))
	d.smsLog.On("RecordSMS", ctx, mock.MatchedBy(func(e *logs.SMSLog) bool {
		return e.MessageStatus == logs.SMSFailed && e.ErrorMessage == "gateway unavailable"
	})).Return(errors.New("log table locked"))

	err := svc.SendOTP(ctx, &auth.OTPRequest{PhoneNo: "9876543210", CountryCode: "1"})
	assert.ErrorContains(t, err, "gateway unavailable")
	d.smsLog.AssertExpectations(t)
}

func TestAuthService_SendOTP_RateLimited(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)

	d.limiter.On("Allow", "9876543210").Return(false)

	err := svc.SendOTP(context.Background(), &auth.OTPRequest{PhoneNo: "9876543210"})
	assert.True(t, errors.Is(err, apperr.ErrRateLimited))
	d.otp.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAuthService_SendOTP_RequiresPhone(t *testing.T) {
	svc, _ := newAuthServiceUnderTest(t)

	err := svc.SendOTP(context.Background(), &auth.OTPRequest{})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestAuthService_VerifyOTP(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.otp.On("Length").Return(4)
	d.otp.On("Verify", ctx, "9876543210", "1234").Return(nil)
	d.users.On("GetByPhone", ctx, "9876543210").Return(&users.User{ID: "u-1", PhoneNo: "9876543210"}, nil)

	user, err := svc.VerifyOTP(ctx, &auth.Credentials{PhoneNo: "9876543210", OTP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestAuthService_VerifyOTP_WrongCode(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.otp.On("Length").Return(4)
	d.otp.On("Verify", ctx, "9876543210", "9999").Return(apperr.ErrInvalidOTP)

	_, err := svc.VerifyOTP(ctx, &auth.Credentials{PhoneNo: "9876543210", OTP: "9999"})
	assert.True(t, errors.Is(err, apperr.ErrInvalidOTP))
	d.users.AssertNotCalled(t, "GetByPhone", mock.Anything, mock.Anything)
}

func TestAuthService_SignIn(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	admin := &users.User{ID: "u-1", PhoneNo: "9876543210", FirstName: "Asha", IsAdmin: true}
	d.otp.On("Length").Return(4)
	d.otp.On("Verify", ctx, "9876543210", "1234").Return(nil)
	d.users.On("GetByPhone", ctx, "9876543210").Return(admin, nil)
	d.sessions.On("Issue", auth.PrincipalFromUser(admin)).Return(&auth.Session{Token: "tok", User: auth.PrincipalFromUser(admin)}, nil)

	session, err := svc.SignIn(ctx, &auth.Credentials{PhoneNo: "9876543210", OTP: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.True(t, session.User.IsAdmin)
}

func TestAuthService_SignIn_RejectsNonAdmin(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.otp.On("Length").Return(4)
	d.otp.On("Verify", ctx, "9876543210", "1234").Return(nil)
	d.users.On("GetByPhone", ctx, "9876543210").Return(&users.User{ID: "u-2", PhoneNo: "9876543210"}, nil)

	_, err := svc.SignIn(ctx, &auth.Credentials{PhoneNo: "9876543210", OTP: "1234"})
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
	d.sessions.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.sessions.On("Parse", "good").Return(&auth.Principal{UserID: "u-1", Phone: "9876543210", IsAdmin: true}, nil)
	d.sessions.On("Parse", "bad").Return(nil, errors.New("signature is invalid"))
	d.users.On("GetByID", ctx, "u-1").Return(&users.User{ID: "u-1", PhoneNo: "9876543210", IsAdmin: true}, nil).Once()

	p, err := svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)

	_, err = svc.Authenticate(ctx, "bad")
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))

	_, err = svc.Authenticate(ctx, "")
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))

	// admin flag revoked after the session was issued
	d.users.On("GetByID", ctx, "u-1").Return(&users.User{ID: "u-1", PhoneNo: "9876543210", IsAdmin: false}, nil)
	_, err = svc.Authenticate(ctx, "good")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
	d.users.AssertNotCalled(t, "GetByPhone", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_SurvivesPhoneChange(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	d.sessions.On("Parse", "tok").Return(&auth.Principal{UserID: "u-1", Phone: "9876543210", IsAdmin: true}, nil)
	d.users.On("GetByID", ctx, "u-1").Return(&users.User{ID: "u-1", PhoneNo: "9123456780", FirstName: "Asha", IsAdmin: true}, nil)

	p, err := svc.Authenticate(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "9123456780", p.Phone)
	assert.Equal(t, "Asha", p.FirstName)
}

func TestAuthService_Authenticate_PhoneReassignedToAnotherUser(t *testing.T) {
	svc, d := newAuthServiceUnderTest(t)
	ctx := context.Background()

	// u-1 was deleted and its old number now belongs to an admin u-2
	d.sessions.On("Parse", "tok").Return(&auth.Principal{UserID: "u-1", Phone: "9876543210", IsAdmin: true}, nil)
	d.users.On("GetByID", ctx, "u-1").Return(nil, fmt.Errorf("user with ID u-1 %w", apperr.ErrNotFound))
	d.users.On("GetByPhone", ctx, "9876543210").Return(&users.User{ID: "u-2", PhoneNo: "9876543210", IsAdmin: true}, nil).Maybe()

	_, err := svc.Authenticate(ctx, "tok")
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
}
