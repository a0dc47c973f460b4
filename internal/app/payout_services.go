package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// payoutService implements the PayoutService interface
type payoutService struct {
	payoutRepo payouts.PayoutRepository
	eventRepo  events.EventRepository
	calculator *payouts.FeeCalculator
	now        func() time.Time
	logger     logger.Logger
}

// NewPayoutService creates a new payoutService instance
func NewPayoutService(
	payoutRepo payouts.PayoutRepository,
	eventRepo events.EventRepository,
	calculator *payouts.FeeCalculator,
	logger logger.Logger,
) (payouts.PayoutService, error) {
	if calculator == nil {
		return nil, fmt.Errorf("fee calculator is required")
	}
	return &payoutService{
		payoutRepo: payoutRepo,
		eventRepo:  eventRepo,
		calculator: calculator,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}, nil
}

func (s *payoutService) List(ctx context.Context, query *payouts.PayoutQuery) ([]*payouts.Payout, int64, *payouts.Stats, error) {
	list, total, err := s.payoutRepo.List(ctx, query)
	if err != nil {
		return nil, 0, nil, err
	}
	stats, err := s.payoutRepo.Stats(ctx)
	if err != nil {
		return nil, 0, nil, err
	}
	return list, total, stats, nil
}

func (s *payoutService) GetByID(ctx context.Context, payoutID int64) (*payouts.Payout, error) {
	return s.payoutRepo.GetByID(ctx, payoutID)
}

// CreateForEvent records a Pending payout of the event's captured revenue net of fees and GST
func (s *payoutService) CreateForEvent(ctx context.Context, eventID string) (*payouts.Payout, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HostUserID == "" {
		return nil, fmt.Errorf("%w: event has no host", apperr.ErrInvalidInput)
	}

	totals, err := s.payoutRepo.CapturedTotals(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !totals.Gross.IsPositive() {
		return nil, fmt.Errorf("%w: event has no captured revenue", apperr.ErrInvalidInput)
	}

	payout := &payouts.Payout{
		EventID:      eventID,
		HostUserID:   event.HostUserID,
		GrossRevenue: totals.Gross.Round(2),
		PlatformFees: totals.Fees.Round(2),
		GstAmount:    totals.Gst.Round(2),
		NetAmount:    payouts.Net(*totals),
		PayoutStatus: payouts.StatusPending,
		RequestedAt:  s.now(),
	}
	if err := s.payoutRepo.CreateIfNoneOpen(ctx, payout); err != nil {
		return nil, err
	}

	s.logger.Info("Requested payout ", payout.ID, " of ", payout.NetAmount.StringFixed(2), " for event ", eventID)
	return s.payoutRepo.GetByID(ctx, payout.ID)
}

// ChangeStatus applies an allowed transition, stamping ProcessedAt on Completed and Failed
func (s *payoutService) ChangeStatus(ctx context.Context, payoutID int64, change *payouts.StatusChange) (*payouts.Payout, error) {
	if err := change.Validate(); err != nil {
		return nil, err
	}

	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if !payouts.CanTransition(payout.PayoutStatus, change.Status) {
		return nil, fmt.Errorf("%w: %s to %s", apperr.ErrInvalidTransition, payout.PayoutStatus, change.Status)
	}

	from := payout.PayoutStatus
	payout.PayoutStatus = change.Status
	if change.Reference != "" {
		payout.Reference = change.Reference
	}
	if payouts.IsTerminalProcessing(change.Status) {
		processed := s.now()
		payout.ProcessedAt = &processed
	}
	if err := s.payoutRepo.UpdateStatus(ctx, payout, from); err != nil {
		return nil, err
	}

	return s.payoutRepo.GetByID(ctx, payoutID)
}

func (s *payoutService) Preview(base float64) (payouts.FeeBreakdown, error) {
	return s.calculator.Calculate(decimal.NewFromFloat(base))
}
