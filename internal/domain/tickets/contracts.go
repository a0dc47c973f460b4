package tickets

import (
	"context"
)

// TicketService defines the admin read operations on ticket purchases.
type TicketService interface {
	// List returns a page of purchases, the total count, and stats over all purchases.
	List(ctx context.Context, query *PurchaseQuery) ([]*Purchase, int64, *Stats, error)
	// GetDetail returns a purchase with buyer, ticket type, QR codes, shares and breakdown.
	GetDetail(ctx context.Context, purchaseID int64) (*Detail, error)
}

// TicketRepository defines the interface for purchase persistence
type TicketRepository interface {
	List(ctx context.Context, query *PurchaseQuery) ([]*Purchase, int64, error)
	Stats(ctx context.Context) (*Stats, error)
	GetDetail(ctx context.Context, purchaseID int64) (*Detail, error)
}
