package adapters

import (
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// MapApiPredictionToDomain converts an externally computed prediction. The
// variation is left to the caller since the payload carries none.
func MapApiPredictionToDomain(prediction api.PredictionResponse) domain.ForecastResult {
	points := make([]domain.ForecastPoint, 0, len(prediction.Predictions))
	for _, p := range prediction.Predictions {
		points = append(points, domain.ForecastPoint{
			Date:  p.Date.Time,
			Value: decimal.NewFromFloat(p.Valeur),
			Min:   decimal.NewFromFloat(p.Min),
			Max:   decimal.NewFromFloat(p.Max),
		})
	}

	trend := domain.Trend(prediction.Tendance)
	switch trend {
	case domain.TrendUp, domain.TrendDown, domain.TrendStable:
	default:
		trend = domain.TrendStable
	}

	confidence := prediction.Confiance
	if confidence < 0 {
		confidence = 0
	} else if confidence > 100 {
		confidence = 100
	}

	return domain.ForecastResult{
		Service:           prediction.Service,
		PredictionType:    domain.PredictionType(prediction.PredictionType),
		HorizonDays:       len(points),
		PredictedPoints:   points,
		Trend:             trend,
		ConfidencePercent: confidence,
		MeanValue:         decimal.NewFromFloat(prediction.ValeurMoyenne),
		MinValue:          decimal.NewFromFloat(prediction.ValeurMin),
		MaxValue:          decimal.NewFromFloat(prediction.ValeurMax),
		KeyFactors:        prediction.FacteursCles,
		Recommendations:   prediction.Recommandations,
	}
}
