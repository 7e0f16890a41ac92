package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		trend     domain.Trend
		variation float64
		expected  domain.RiskLevel
	}{
		{name: "strong increase", trend: domain.TrendUp, variation: 12, expected: domain.RiskHigh},
		{name: "moderate increase", trend: domain.TrendUp, variation: 7, expected: domain.RiskMedium},
		{name: "increase on high threshold", trend: domain.TrendUp, variation: 10, expected: domain.RiskMedium},
		{name: "increase on medium threshold", trend: domain.TrendUp, variation: 5, expected: domain.RiskLow},
		{name: "decrease", trend: domain.TrendDown, variation: -8, expected: domain.RiskMedium},
		{name: "decrease on threshold", trend: domain.TrendDown, variation: -5, expected: domain.RiskLow},
		{name: "stable ignores magnitude", trend: domain.TrendStable, variation: 50, expected: domain.RiskLow},
		{name: "increase label with negative variation", trend: domain.TrendUp, variation: -20, expected: domain.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk, err := Classify(tt.trend, tt.variation)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, risk)
		})
	}
}

func TestClassify_NonFiniteVariation_ShouldReturnInvalidMetricError(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Classify(domain.TrendUp, v)

		var metricErr *domain.InvalidMetricError
		require.True(t, errors.As(err, &metricErr), "value %v", v)
		assert.Equal(t, "variationPercent", metricErr.Name)
	}
}

func TestAssess(t *testing.T) {
	result := domain.ForecastResult{Trend: domain.TrendUp, VariationPercent: 25}

	assessment, err := Assess(result)

	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, assessment.Risk)
	assert.Equal(t, result.Trend, assessment.Forecast.Trend)
}

func TestBandVariationPercent(t *testing.T) {
	t.Run("declared band", func(t *testing.T) {
		result := domain.ForecastResult{
			MinValue: decimal.NewFromInt(90),
			MaxValue: decimal.NewFromInt(110),
		}
		assert.InDelta(t, 22.22, BandVariationPercent(result), 0.001)
	})

	t.Run("zero lower bound", func(t *testing.T) {
		result := domain.ForecastResult{MinValue: decimal.Zero, MaxValue: decimal.NewFromInt(10)}
		assert.Zero(t, BandVariationPercent(result))
	})
}
