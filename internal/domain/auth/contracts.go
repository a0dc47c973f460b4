package auth

import (
	"context"

	"github.com/gauravkdm/admin-portal/internal/domain/users"
)

// OTPProvider generates, stores and checks one-time passwords.
type OTPProvider interface {
	// Generate creates and stores a code for the phone and returns it.
	Generate(ctx context.Context, phoneNo string) (string, error)
	// Verify checks the code; a successful verification consumes it.
	Verify(ctx context.Context, phoneNo, code string) error
	// Length is the number of digits of the codes this provider issues.
	Length() int
}

// RateLimiter budgets OTP sends per phone number.
type RateLimiter interface {
	Allow(key string) bool
}

// SMSDispatcher hands text messages to the SMS gateway.
type SMSDispatcher interface {
	Dispatch(ctx context.Context, msg *SMSMessage) error
}

// SessionManager issues and parses admin session tokens.
type SessionManager interface {
	Issue(principal Principal) (*Session, error)
	Parse(token string) (*Principal, error)
}

// UserLookup resolves the user behind an OTP login or a session.
type UserLookup interface {
	GetByPhone(ctx context.Context, phoneNo string) (*users.User, error)
	GetByID(ctx context.Context, userID string) (*users.User, error)
}

// AuthService defines the OTP login flow.
type AuthService interface {
	// SendOTP rate-limits, generates and dispatches a code.
	SendOTP(ctx context.Context, req *OTPRequest) error
	// VerifyOTP checks a code and returns the user owning the phone.
	VerifyOTP(ctx context.Context, creds *Credentials) (*users.User, error)
	// SignIn verifies the code, requires the admin flag and issues a session.
	SignIn(ctx context.Context, creds *Credentials) (*Session, error)
	// Authenticate parses a session token and requires the admin flag.
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
