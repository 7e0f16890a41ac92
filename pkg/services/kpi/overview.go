package kpi

import (
	"time"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/timeseries"
	"github.com/shopspring/decimal"
)

const revenueHistoryMonths = 12

// Overview builds the dashboard landing figures as of now. Revenue is the sum
// of act tariffs performed since the start of the year and of the month.
func Overview(
	stays []domain.Stay,
	acts []domain.MedicalAct,
	investments []domain.Investment,
	now time.Time,
) (domain.Overview, error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	patients := make(map[int64]struct{})
	active := make(map[string]int64)
	var inProgress int64
	for _, s := range stays {
		patients[s.PatientID] = struct{}{}
		if s.Status == domain.StayInProgress {
			inProgress++
			service := s.Service
			if service == "" {
				service = domain.UnclassifiedDimension
			}
			active[service]++
		}
	}

	revenueYear := decimal.Zero
	revenueMonth := decimal.Zero
	for _, a := range acts {
		if a.PerformedAt.After(now) || a.PerformedAt.Before(startOfYear) {
			continue
		}
		revenueYear = revenueYear.Add(a.Tariff)
		if !a.PerformedAt.Before(startOfMonth) {
			revenueMonth = revenueMonth.Add(a.Tariff)
		}
	}

	byMonth, err := RevenueByMonth(acts, now)
	if err != nil {
		return domain.Overview{}, err
	}

	return domain.Overview{
		TotalPatients:   int64(len(patients)),
		StaysInProgress: inProgress,
		TotalActs:       int64(len(acts)),
		RevenueYear:     revenueYear,
		RevenueMonth:    revenueMonth,
		Stays:           Summarize(stays, StaysByService),
		Acts:            Summarize(acts, ActsByType),
		Investments:     Summarize(investments, InvestmentsByCategory),
		ActiveByService: active,
		RevenueByMonth:  byMonth,
	}, nil
}

// RevenueByMonth folds act tariffs of the last twelve months, current month
// included, into one bucket per calendar month.
func RevenueByMonth(acts []domain.MedicalAct, now time.Time) (domain.Series, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(revenueHistoryMonths - 1), 0)
	r := domain.DayRange(from, now)

	series, err := timeseries.NewAggregator(nil).Aggregate(adapters.MapActsToCostEvents(acts), r, r.Days())
	if err != nil {
		return domain.Series{}, err
	}

	series.Buckets = timeseries.Rollup(series.Buckets, domain.GranularityMonthly)
	series.Granularity = domain.GranularityMonthly
	return series, nil
}
