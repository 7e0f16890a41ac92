package report

import (
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func forecastAssessment(days int) domain.Assessment {
	value := decimal.NewFromInt(1500)
	low := decimal.NewFromInt(1350)
	high := decimal.NewFromInt(1650)

	points := make([]domain.ForecastPoint, days)
	for i := range points {
		points[i] = domain.ForecastPoint{
			Date:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Value: value,
			Min:   low,
			Max:   high,
		}
	}

	profile := domain.PredictionCost.Profile()
	return domain.Assessment{
		Forecast: domain.ForecastResult{
			Service:           "Cardiologie",
			PredictionType:    domain.PredictionCost,
			HorizonDays:       days,
			PredictedPoints:   points,
			Trend:             domain.TrendUp,
			VariationPercent:  12.5,
			ConfidencePercent: 85,
			MeanValue:         value,
			MinValue:          low,
			MaxValue:          high,
			KeyFactors:        profile.KeyFactors,
			Recommendations:   profile.Recommendations[domain.TrendUp],
		},
		Risk: domain.RiskHigh,
	}
}

func serviceBudgets() []domain.ServiceBudget {
	budget := func(service string, allocated, spent int64) domain.ServiceBudget {
		return domain.ServiceBudget{
			Service:   service,
			Allocated: decimal.NewFromInt(allocated),
			Spent:     decimal.NewFromInt(spent),
		}
	}
	return []domain.ServiceBudget{
		budget("Cardiologie", 250000, 248500),
		budget("Urgences", 180000, 185200),
		budget("Pédiatrie", 150000, 142800),
		budget("Chirurgie", 320000, 315600),
	}
}

func headings(doc *domain.ReportDocument) []string {
	result := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		result[i] = s.Heading
	}
	return result
}
