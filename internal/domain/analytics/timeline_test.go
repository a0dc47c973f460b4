//go:build unit
// +build unit

package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), TimelineStart(now, 12))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), TimelineStart(now, 1))
}

func TestCountByMonth(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), // outside the window
	}

	points := CountByMonth(now, TimelineMonths, stamps)
	require.Len(t, points, 12)
	assert.Equal(t, "2025-04", points[0].Month)
	assert.Equal(t, int64(1), points[0].Count)
	assert.Equal(t, "2026-03", points[11].Month)
	assert.Equal(t, int64(2), points[11].Count)

	var total int64
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, int64(3), total)
}

func TestSumByMonth(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	amounts := []DatedAmount{
		{At: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("100.50")},
		{At: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("49.50")},
	}

	points := SumByMonth(now, TimelineMonths, amounts)
	assert.Equal(t, "2026-02", points[10].Month)
	assert.Equal(t, "150.00", points[10].Amount.StringFixed(2))
	assert.Equal(t, int64(2), points[10].Count)
	assert.True(t, points[11].Amount.IsZero())
}

func TestMatchRate(t *testing.T) {
	assert.Equal(t, 0.0, MatchRate(5, 0))
	assert.Equal(t, 25.0, MatchRate(1, 4))
	assert.Equal(t, 33.33, MatchRate(1, 3))
}
