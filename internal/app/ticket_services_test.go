//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/gauravkdm/admin-portal/internal/domain/tickets"
	"github.com/gauravkdm/admin-portal/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_List_AttachesStats(t *testing.T) {
	repo := new(MockTicketRepository)
	svc, err := NewTicketService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	query := tickets.NewPurchaseQuery()
	repo.On("List", ctx, query).Return([]*tickets.Purchase{{ID: 1}}, int64(1), nil)
	repo.On("Stats", ctx).Return(&tickets.Stats{TotalPurchases: 9}, nil)

	list, total, stats, err := svc.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(9), stats.TotalPurchases)
}

func TestTicketService_List_StatsError(t *testing.T) {
	repo := new(MockTicketRepository)
	svc, err := NewTicketService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	query := tickets.NewPurchaseQuery()
	repo.On("List", ctx, query).Return([]*tickets.Purchase{}, int64(0), nil)
	repo.On("Stats", ctx).Return(nil, errors.New("boom"))

	_, _, _, err = svc.List(ctx, query)
	assert.EqualError(t, err, "boom")
}
