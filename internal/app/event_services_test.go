//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/apperr"
	"github.com/gauravkdm/admin-portal/internal/domain/events"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventServiceUnderTest(t *testing.T) (events.EventService, *MockEventRepository) {
	t.Helper()
	repo := new(MockEventRepository)
	svc, err := NewEventService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc, repo
}

func TestEventService_Financials_NetsRevenue(t *testing.T) {
	svc, repo := newEventServiceUnderTest(t)
	ctx := context.Background()

	repo.On("Financials", ctx, "ev-1").Return(&events.Financials{
		EventID:      "ev-1",
		Revenue:      decimal.NewFromInt(1059),
		PlatformFees: decimal.NewFromInt(50),
		GstAmount:    decimal.NewFromInt(9),
	}, nil)

	fin, err := svc.Financials(ctx, "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "1000.00", fin.NetRevenue.StringFixed(2))
}

func TestEventService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	svc, repo := newEventServiceUnderTest(t)

	_, err := svc.SetStatus(context.Background(), "ev-1", "Archived")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventService_SetPublished(t *testing.T) {
	svc, repo := newEventServiceUnderTest(t)
	ctx := context.Background()

	repo.On("Update", ctx, "ev-1", mock.MatchedBy(func(u *events.EventUpdate) bool {
		return u.IsPublished != nil && !*u.IsPublished
	})).Return(nil)
	repo.On("GetByID", ctx, "ev-1").Return(&events.Event{ID: "ev-1", IsPublished: false}, nil)

	event, err := svc.SetPublished(ctx, "ev-1", false)
	require.NoError(t, err)
	assert.False(t, event.IsPublished)
}

func TestEventService_Update_RejectsEndBeforeStoredStart(t *testing.T) {
	svc, repo := newEventServiceUnderTest(t)
	ctx := context.Background()

	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	repo.On("GetByID", ctx, "ev-1").Return(&events.Event{ID: "ev-1", StartTime: start, EndTime: start.Add(2 * time.Hour)}, nil)

	end := start.Add(-time.Hour)
	_, err := svc.Update(ctx, "ev-1", &events.EventUpdate{EndTime: &end})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventService_Delete_PropagatesNotFound(t *testing.T) {
	svc, repo := newEventServiceUnderTest(t)
	ctx := context.Background()

	repo.On("DeleteCascade", ctx, "missing").Return(apperr.ErrNotFound)
	assert.True(t, errors.Is(svc.Delete(ctx, "missing"), apperr.ErrNotFound))
}
