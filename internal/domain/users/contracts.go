package users

import (
	"context"
)

// UserService defines the admin operations on platform users.
type UserService interface {
	// List returns a page of users matching the query, newest first, and the total count.
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)

	// GetDetail returns the user with device tokens, sessions, RSVPs and profile tags.
	GetDetail(ctx context.Context, userID string) (*Detail, error)

	// Update applies a partial update and returns the updated user.
	Update(ctx context.Context, userID string, update *UserUpdate) (*User, error)

	// SetVerification sets the verified flag.
	SetVerification(ctx context.Context, userID string, verified bool) (*User, error)

	// ForceLogout removes every session token of the user and deactivates their devices.
	// It returns the number of session tokens removed.
	ForceLogout(ctx context.Context, userID string) (int64, error)

	// Delete removes the user and all dependent rows atomically.
	Delete(ctx context.Context, userID string) error
}

// AdminRoleService grants and revokes the admin flag, looked up by phone.
type AdminRoleService interface {
	SetAdmin(ctx context.Context, phoneNo string, isAdmin bool) (*User, error)
}

// UserRepository defines the interface for User-related persistence
type UserRepository interface {
	// List lists users matching the query and returns the total count
	List(ctx context.Context, query *UserQuery) ([]*User, int64, error)
	// GetByID retrieves a User by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByPhone retrieves a User by phone number
	GetByPhone(ctx context.Context, phoneNo string) (*User, error)
	// GetDetail retrieves a User with related activity
	GetDetail(ctx context.Context, userID string) (*Detail, error)
	// Update applies a partial update to a User
	Update(ctx context.Context, userID string, update *UserUpdate) error
	// SetAdmin sets the admin flag of a User
	SetAdmin(ctx context.Context, userID string, isAdmin bool) error
	// ForceLogout deletes session tokens and deactivates device tokens in one transaction
	ForceLogout(ctx context.Context, userID string) (int64, error)
	// DeleteCascade deletes a User and all dependent rows in one transaction
	DeleteCascade(ctx context.Context, userID string) error
}
