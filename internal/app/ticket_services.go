package app

import (
	"context"

	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
)

// ticketService implements the TicketService interface
type ticketService struct {
	ticketRepo tickets.TicketRepository
	logger     logger.Logger
}

// NewTicketService creates a new ticketService instance
func NewTicketService(ticketRepo tickets.TicketRepository, logger logger.Logger) (tickets.TicketService, error) {
	return &ticketService{
		ticketRepo: ticketRepo,
		logger:     logger,
	}, nil
}

// List returns the filtered page together with stats over every purchase
func (s *ticketService) List(ctx context.Context, query *tickets.PurchaseQuery) ([]*tickets.Purchase, int64, *tickets.Stats, error) {
	list, total, err := s.ticketRepo.List(ctx, query)
	if err != nil {
		return nil, 0, nil, err
	}
	stats, err := s.ticketRepo.Stats(ctx)
	if err != nil {
		return nil, 0, nil, err
	}
	return list, total, stats, nil
}

func (s *ticketService) GetDetail(ctx context.Context, purchaseID int64) (*tickets.Detail, error) {
	return s.ticketRepo.GetDetail(ctx, purchaseID)
}
