package app

import (
	"context"
	"fmt"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/domain/payouts"
	"github.com/gauravkdm/admin-portal/internal/pkg/logger"
	"github.com/gauravkdm/admin-portal/internal/pkg/pagination"
)

// eventService implements the EventService interface
type eventService struct {
	eventRepo events.EventRepository
	logger    logger.Logger
}

// NewEventService creates a new eventService instance
func NewEventService(eventRepo events.EventRepository, logger logger.Logger) (events.EventService, error) {
	return &eventService{
		eventRepo: eventRepo,
		logger:    logger,
	}, nil
}

func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.ListItem, int64, error) {
	return s.eventRepo.List(ctx, query)
}

func (s *eventService) GetDetail(ctx context.Context, eventID string) (*events.Detail, error) {
	return s.eventRepo.GetDetail(ctx, eventID)
}

func (s *eventService) Guests(ctx context.Context, eventID string, page pagination.Params) ([]*events.Guest, int64, error) {
	return s.eventRepo.Guests(ctx, eventID, page)
}

// Financials nets captured revenue the same way payouts are computed
func (s *eventService) Financials(ctx context.Context, eventID string) (*events.Financials, error) {
	fin, err := s.eventRepo.Financials(ctx, eventID)
	if err != nil {
		return nil, err
	}
	fin.NetRevenue = payouts.Net(payouts.CapturedTotals{
		Gross: fin.Revenue,
		Fees:  fin.PlatformFees,
		Gst:   fin.GstAmount,
	})
	return fin, nil
}

func (s *eventService) Update(ctx context.Context, eventID string, update *events.EventUpdate) (*events.Event, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	// a one-sided time change must still leave the event ordered
	if update.StartTime != nil || update.EndTime != nil {
		current, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		start, end := current.StartTime, current.EndTime
		if update.StartTime != nil {
			start = *update.StartTime
		}
		if update.EndTime != nil {
			end = *update.EndTime
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: end time before start time", apperr.ErrInvalidInput)
		}
	}

	if err := s.eventRepo.Update(ctx, eventID, update); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) SetPublished(ctx context.Context, eventID string, published bool) (*events.Event, error) {
	return s.Update(ctx, eventID, &events.EventUpdate{IsPublished: &published})
}

func (s *eventService) SetStatus(ctx context.Context, eventID string, status string) (*events.Event, error) {
	if !events.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown event status %q", apperr.ErrInvalidInput, status)
	}
	return s.Update(ctx, eventID, &events.EventUpdate{Status: &status})
}

func (s *eventService) Delete(ctx context.Context, eventID string) error {
	return s.eventRepo.DeleteCascade(ctx, eventID)
}
