package notifications

import (
	"context"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/users"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
)

// Notification is a push notification sent to a user.
type Notification struct {
	ID           int64          `json:"id"`
	UserID       string         `json:"userId"`
	User         *users.Summary `json:"user"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"errorMessage"`
	SentAt       time.Time      `json:"sentAt"`
}

// Query filters notification history.
type Query struct {
	Status string
	Page   pagination.Params
}

// NotificationService defines read access to push notification history.
type NotificationService interface {
	List(ctx context.Context, query *Query) ([]*Notification, int64, error)
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	List(ctx context.Context, query *Query) ([]*Notification, int64, error)
}
