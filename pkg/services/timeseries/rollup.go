package timeseries

import (
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Rollup folds consecutive day buckets into weekly strides or calendar months.
// The folded buckets still partition the original range and keep its totals.
func Rollup(buckets []domain.Bucket, g domain.Granularity) []domain.Bucket {
	rolled := make([]domain.Bucket, 0, len(buckets))
	for i, b := range buckets {
		if i == 0 || startsGroup(buckets, i, g) {
			rolled = append(rolled, domain.Bucket{
				Label:       rollupLabel(b.PeriodStart, g),
				PeriodStart: b.PeriodStart,
				PeriodEnd:   b.PeriodEnd,
				Total:       b.Total,
				Count:       b.Count,
			})
			continue
		}

		current := &rolled[len(rolled)-1]
		current.PeriodEnd = b.PeriodEnd
		current.Total = current.Total.Add(b.Total)
		current.Count += b.Count
	}
	return rolled
}

func startsGroup(buckets []domain.Bucket, i int, g domain.Granularity) bool {
	switch g {
	case domain.GranularityWeekly:
		return i%weeklyLabelStride == 0
	case domain.GranularityMonthly:
		prev, cur := buckets[i-1].PeriodStart, buckets[i].PeriodStart
		return prev.Year() != cur.Year() || prev.Month() != cur.Month()
	default:
		return true
	}
}

func rollupLabel(t time.Time, g domain.Granularity) string {
	if g == domain.GranularityMonthly {
		return MonthYear(t)
	}
	return DayMonth(t)
}
