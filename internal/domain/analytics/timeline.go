package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimelineMonths is the length of every timeline.
const TimelineMonths = 12

const monthLayout = "2006-01"

// TimelineStart returns the first day of the oldest month in a window ending at now.
func TimelineStart(now time.Time, months int) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(months - 1), 0)
}

// MatchRate is matches per swipe as a percentage rounded to two places.
func MatchRate(matches, swipes int64) float64 {
	if swipes == 0 {
		return 0
	}
	rate := decimal.NewFromInt(matches).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(swipes)).Round(2)
	f, _ := rate.Float64()
	return f
}

// CountByMonth buckets timestamps into the months of the window ending at now.
// Months without data are present with a zero count.
func CountByMonth(now time.Time, months int, stamps []time.Time) []MonthPoint {
	points, index := emptyTimeline(now, months)
	for _, ts := range stamps {
		if i, ok := index[ts.UTC().Format(monthLayout)]; ok {
			points[i].Count++
		}
	}
	return points
}

// SumByMonth buckets amounts into the months of the window ending at now.
func SumByMonth(now time.Time, months int, amounts []DatedAmount) []MonthPoint {
	points, index := emptyTimeline(now, months)
	for _, a := range amounts {
		if i, ok := index[a.At.UTC().Format(monthLayout)]; ok {
			points[i].Count++
			points[i].Amount = points[i].Amount.Add(a.Amount)
		}
	}
	return points
}

func emptyTimeline(now time.Time, months int) ([]MonthPoint, map[string]int) {
	start := TimelineStart(now, months)
	points := make([]MonthPoint, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format(monthLayout)
		points[i] = MonthPoint{Month: key, Amount: decimal.Zero}
		index[key] = i
	}
	return points, index
}
