package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnclassifiedDimension groups events that carry no dimension value.
const UnclassifiedDimension = "Non classé"

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// CostEvent is a single dated amount derived from a stay, an act or an investment.
type CostEvent struct {
	OccurredOn   time.Time
	Amount       decimal.Decimal // 1500.00
	DimensionKey string          // Cardiologie, CHIRURGIE, EQUIPEMENT
}

// DateRange is closed on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DayRange returns the range covering every instant of the days from..to inclusive.
func DayRange(from, to time.Time) DateRange {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return DateRange{Start: start, End: end.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days is the number of calendar days touched by the range.
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return DaysBetween(r.Start, r.End) + 1
}

// DaysBetween counts calendar days from the date of a to the date of b, both
// read in the location of a. Days of 23 or 25 hours count as one.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / (24 * time.Hour))
}

type Bucket struct {
	Label       string // 05 janv.
	PeriodStart time.Time
	PeriodEnd   time.Time
	Total       decimal.Decimal
	Count       int
}

type Series struct {
	Buckets         []Bucket
	DimensionFilter string // empty for the global series
	Granularity     Granularity
	Range           DateRange
}

func (s Series) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Buckets {
		total = total.Add(b.Total)
	}
	return total
}

func (s Series) Count() int {
	count := 0
	for _, b := range s.Buckets {
		count += b.Count
	}
	return count
}
