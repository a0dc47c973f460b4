// Package apperr defines the sentinel errors shared by every bounded context.
// Repositories and services wrap these with fmt.Errorf("...: %w", ...) so the
// REST layer can map them to status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed ids, bodies or query parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated is returned when no valid admin session is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the session user is not an admin.
	ErrForbidden = errors.New("admin access required")
	// ErrInvalidOTP is returned when a one-time password does not match or has expired.
	ErrInvalidOTP = errors.New("invalid or expired otp")
	// ErrRateLimited is returned when OTP sends or attempts exceed their budget.
	ErrRateLimited = errors.New("too many requests")
	// ErrInvalidTransition is returned when a status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
)
