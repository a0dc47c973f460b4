package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/domain/logs"
	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// authService implements the AuthService interface
type authService struct {
	otp                auth.OTPProvider
	sms                auth.SMSDispatcher
	smsLog             logs.SMSLogWriter
	userLookup         auth.UserLookup
	sessions           auth.SessionManager
	limiter            auth.RateLimiter
	defaultCountryCode string
	now                func() time.Time
	logger             logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	otp auth.OTPProvider,
	sms auth.SMSDispatcher,
	smsLog logs.SMSLogWriter,
	userLookup auth.UserLookup,
	sessions auth.SessionManager,
	limiter auth.RateLimiter,
	defaultCountryCode string,
	logger logger.Logger,
) (auth.AuthService, error) {
	if otp == nil || sms == nil || sessions == nil || userLookup == nil {
		return nil, fmt.Errorf("otp provider, sms dispatcher, user lookup and session manager are required")
	}
	return &authService{
		otp:                otp,
		sms:                sms,
		smsLog:             smsLog,
		userLookup:         userLookup,
		sessions:           sessions,
		limiter:            limiter,
		defaultCountryCode: defaultCountryCode,
		now:                func() time.Time { return time.Now().UTC() },
		logger:             logger,
	}, nil
}

// SendOTP generates a code and hands it to the SMS dispatcher, recording the delivery attempt
func (s *authService) SendOTP(ctx context.Context, req *auth.OTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if s.limiter != nil && !s.limiter.Allow(req.PhoneNo) {
		return fmt.Errorf("%w: otp send limit reached for %s", apperr.ErrRateLimited, req.PhoneNo)
	}

	code, err := s.otp.Generate(ctx, req.PhoneNo)
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = s.defaultCountryCode
	}
	msg := &auth.SMSMessage{
		To:          auth.Recipient(countryCode, req.PhoneNo),
		PhoneNo:     req.PhoneNo,
		CountryCode: countryCode,
		Body:        fmt.Sprintf("Your admin login code is %s", code),
		Feature:     logs.FeatureOTP,
		CreatedAt:   s.now(),
	}
	dispatchErr := s.sms.Dispatch(ctx, msg)

	s.recordSMS(ctx, msg, dispatchErr)

	if dispatchErr != nil {
		return fmt.Errorf("failed to send otp: %w", dispatchErr)
	}
	return nil
}

func (s *authService) recordSMS(ctx context.Context, msg *auth.SMSMessage, dispatchErr error) {
	if s.smsLog == nil {
		return
	}
	entry := &logs.SMSLog{
		PhoneNo:       msg.PhoneNo,
		CountryCode:   msg.CountryCode,
		FeatureName:   msg.Feature,
		MessageStatus: logs.SMSSent,
		DeliveryDate:  msg.CreatedAt,
	}
	if dispatchErr != nil {
		entry.MessageStatus = logs.SMSFailed
		entry.ErrorMessage = dispatchErr.Error()
	}
	if err := s.smsLog.RecordSMS(ctx, entry); err != nil {
		s.logger.Warn("Failed to record sms log for ", msg.PhoneNo, ": ", err)
	}
}

// VerifyOTP checks the code and resolves the user owning the phone
func (s *authService) VerifyOTP(ctx context.Context, creds *auth.Credentials) (*users.User, error) {
	if err := creds.Validate(s.otp.Length()); err != nil {
		return nil, err
	}
	if err := s.otp.Verify(ctx, creds.PhoneNo, creds.OTP); err != nil {
		return nil, err
	}

	return s.userLookup.GetByPhone(ctx, creds.PhoneNo)
}

// SignIn issues a session for a verified admin
func (s *authService) SignIn(ctx context.Context, creds *auth.Credentials) (*auth.Session, error) {
	user, err := s.VerifyOTP(ctx, creds)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		s.logger.Warn("Rejected sign-in of non-admin user ", user.ID)
		return nil, fmt.Errorf("user %s is not an admin: %w", user.ID, apperr.ErrForbidden)
	}

	session, err := s.sessions.Issue(auth.PrincipalFromUser(user))
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	s.logger.Info("Admin ", user.ID, " signed in")
	return session, nil
}

// Authenticate parses the token and re-checks the admin flag against the database.
// The session is bound to the user ID, so a phone number change keeps it valid.
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	if token == "" {
		return nil, apperr.ErrUnauthenticated
	}
	principal, err := s.sessions.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperr.ErrUnauthenticated)
	}

	user, err := s.userLookup.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("session user no longer exists: %w", apperr.ErrUnauthenticated)
		}
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperr.ErrForbidden
	}

	current := auth.PrincipalFromUser(user)
	return &current, nil
}
