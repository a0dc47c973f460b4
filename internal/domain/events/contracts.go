package events

import (
	"context"

	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
)

// EventService defines the admin operations on events.
type EventService interface {
	// List returns a page of events with relation counts and the total count.
	List(ctx context.Context, query *EventQuery) ([]*ListItem, int64, error)
	// GetDetail returns an event with media, categories, ticket types, sections and counts.
	GetDetail(ctx context.Context, eventID string) (*Detail, error)
	// Guests returns the RSVPs of an event, newest first.
	Guests(ctx context.Context, eventID string, page pagination.Params) ([]*Guest, int64, error)
	// Financials aggregates captured purchases and the latest payout of an event.
	Financials(ctx context.Context, eventID string) (*Financials, error)
	// Update applies a partial update and returns the updated event.
	Update(ctx context.Context, eventID string, update *EventUpdate) (*Event, error)
	// SetPublished publishes or unpublishes an event.
	SetPublished(ctx context.Context, eventID string, published bool) (*Event, error)
	// SetStatus changes the lifecycle status of an event.
	SetStatus(ctx context.Context, eventID string, status string) (*Event, error)
	// Delete removes the event and all dependent rows atomically.
	Delete(ctx context.Context, eventID string) error
}

// EventRepository defines the interface for Event-related persistence
type EventRepository interface {
	List(ctx context.Context, query *EventQuery) ([]*ListItem, int64, error)
	GetByID(ctx context.Context, eventID string) (*Event, error)
	GetDetail(ctx context.Context, eventID string) (*Detail, error)
	Guests(ctx context.Context, eventID string, page pagination.Params) ([]*Guest, int64, error)
	Financials(ctx context.Context, eventID string) (*Financials, error)
	Update(ctx context.Context, eventID string, update *EventUpdate) error
	// DeleteCascade deletes an Event and all dependent rows in one transaction
	DeleteCascade(ctx context.Context, eventID string) error
}
