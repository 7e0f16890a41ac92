package timeseries

import (
	"fmt"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Bucketer groups dated events into contiguous buckets covering a range.
type Bucketer interface {
	Bucketize(events []domain.CostEvent, r domain.DateRange, horizonDays int) ([]domain.Bucket, error)
}

// DayBucketer allocates one bucket per calendar day of the range, in the
// location of r.Start, so days around a clock change last 23 or 25 hours.
// Buckets are half-open [start, end) except the last one, which is closed so
// that r.End is included.
type DayBucketer struct{}

func NewBucketer() *DayBucketer {
	return &DayBucketer{}
}

func ValidateRange(r domain.DateRange, horizonDays int) error {
	if horizonDays <= 0 {
		return &domain.InvalidRangeError{
			Start:  r.Start,
			End:    r.End,
			Reason: fmt.Sprintf("horizon must be positive, got %d days", horizonDays),
		}
	}
	if r.Start.After(r.End) {
		return &domain.InvalidRangeError{Start: r.Start, End: r.End, Reason: "start is after end"}
	}
	return nil
}

func (b *DayBucketer) Bucketize(
	events []domain.CostEvent,
	r domain.DateRange,
	horizonDays int,
) ([]domain.Bucket, error) {
	if err := ValidateRange(r, horizonDays); err != nil {
		return nil, err
	}

	buckets := allocate(r, GranularityFor(horizonDays))
	last := len(buckets) - 1

	for _, event := range events {
		if !r.Contains(event.OccurredOn) {
			continue
		}
		idx := dayIndex(r.Start, event.OccurredOn)
		if idx > last {
			idx = last
		}
		buckets[idx].Total = buckets[idx].Total.Add(event.Amount)
		buckets[idx].Count++
	}

	return buckets, nil
}

// dayIndex returns the bucket holding t, for buckets starting at
// start.AddDate(0, 0, i).
func dayIndex(start, t time.Time) int {
	idx := domain.DaysBetween(start, t)
	if t.Before(start.AddDate(0, 0, idx)) {
		idx--
	}
	return idx
}

func allocate(r domain.DateRange, g domain.Granularity) []domain.Bucket {
	buckets := make([]domain.Bucket, 0, r.Days())
	start := r.Start
	for i := 0; ; i++ {
		end := r.Start.AddDate(0, 0, i+1)
		closing := !end.Before(r.End)
		if closing {
			end = r.End
		}

		buckets = append(buckets, domain.Bucket{
			Label:       Label(start, i, g),
			PeriodStart: start,
			PeriodEnd:   end,
			Total:       decimal.Zero,
		})

		if closing {
			return buckets
		}
		start = end
	}
}
