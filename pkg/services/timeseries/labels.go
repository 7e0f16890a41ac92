package timeseries

import (
	"fmt"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

const (
	dailyHorizonLimit  = 30
	weeklyHorizonLimit = 180

	weeklyLabelStride  = 7
	monthlyLabelStride = 30
)

var frenchMonths = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// GranularityFor picks the label granularity for a horizon expressed in days.
func GranularityFor(horizonDays int) domain.Granularity {
	switch {
	case horizonDays <= dailyHorizonLimit:
		return domain.GranularityDaily
	case horizonDays <= weeklyHorizonLimit:
		return domain.GranularityWeekly
	default:
		return domain.GranularityMonthly
	}
}

// Label returns the chart label of the index-th bucket. Weekly and monthly
// granularities only label every 7th / 30th bucket; the others get "".
func Label(t time.Time, index int, g domain.Granularity) string {
	switch g {
	case domain.GranularityWeekly:
		if index%weeklyLabelStride != 0 {
			return ""
		}
		return DayMonth(t)
	case domain.GranularityMonthly:
		if index%monthlyLabelStride != 0 {
			return ""
		}
		return MonthYear(t)
	default:
		return DayMonth(t)
	}
}

// DayMonth formats t as "05 janv.".
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), frenchMonths[t.Month()-1])
}

// MonthYear formats t as "janv. 25".
func MonthYear(t time.Time) string {
	return fmt.Sprintf("%s %02d", frenchMonths[t.Month()-1], t.Year()%100)
}
