package payouts

import (
	"context"
)

// PayoutService defines the admin operations on host payouts.
type PayoutService interface {
	// List returns a page of payouts, newest requested first, with stats over all payouts.
	List(ctx context.Context, query *PayoutQuery) ([]*Payout, int64, *Stats, error)
	// GetByID returns one payout.
	GetByID(ctx context.Context, payoutID int64) (*Payout, error)
	// CreateForEvent nets the captured purchases of an event into a Pending payout.
	CreateForEvent(ctx context.Context, eventID string) (*Payout, error)
	// ChangeStatus moves a payout along its lifecycle.
	ChangeStatus(ctx context.Context, payoutID int64, change *StatusChange) (*Payout, error)
	// Preview applies the configured fee calculator to a base amount.
	Preview(base float64) (FeeBreakdown, error)
}

// PayoutRepository defines the interface for Payout persistence
type PayoutRepository interface {
	List(ctx context.Context, query *PayoutQuery) ([]*Payout, int64, error)
	Stats(ctx context.Context) (*Stats, error)
	GetByID(ctx context.Context, payoutID int64) (*Payout, error)
	// CapturedTotals sums the captured purchases of an event
	CapturedTotals(ctx context.Context, eventID string) (*CapturedTotals, error)
	// CreateIfNoneOpen inserts the payout unless the event already has a Pending or Processing payout
	CreateIfNoneOpen(ctx context.Context, payout *Payout) error
	// UpdateStatus persists status, reference and processed time if the stored status is still from.
	// Moving into an open status fails while another payout of the event is open.
	UpdateStatus(ctx context.Context, payout *Payout, from string) error
}
