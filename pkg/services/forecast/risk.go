package forecast

import (
	"math"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

const (
	highRiskIncrease   = 10.0
	mediumRiskIncrease = 5.0
	mediumRiskDecrease = -5.0
)

// Classify maps a trend and its variation in percent to a risk level.
// Comparisons are strict, so a tie lands on the lower level.
func Classify(trend domain.Trend, variationPercent float64) (domain.RiskLevel, error) {
	if math.IsNaN(variationPercent) || math.IsInf(variationPercent, 0) {
		return "", &domain.InvalidMetricError{Name: "variationPercent", Value: variationPercent}
	}

	switch {
	case trend == domain.TrendUp && variationPercent > highRiskIncrease:
		return domain.RiskHigh, nil
	case trend == domain.TrendUp && variationPercent > mediumRiskIncrease:
		return domain.RiskMedium, nil
	case trend == domain.TrendDown && variationPercent < mediumRiskDecrease:
		return domain.RiskMedium, nil
	default:
		return domain.RiskLow, nil
	}
}

// Assess classifies a forecast using its own variation.
func Assess(result domain.ForecastResult) (domain.Assessment, error) {
	risk, err := Classify(result.Trend, result.VariationPercent)
	if err != nil {
		return domain.Assessment{}, err
	}
	return domain.Assessment{Forecast: result, Risk: risk}, nil
}

// BandVariationPercent is the width of the predicted band relative to its
// lower bound: (max - min) / min * 100. A zero lower bound yields 0.
func BandVariationPercent(result domain.ForecastResult) float64 {
	if result.MinValue.IsZero() {
		return 0
	}
	return result.MaxValue.Sub(result.MinValue).
		Div(result.MinValue).
		Mul(hundred).
		Round(2).
		InexactFloat64()
}
