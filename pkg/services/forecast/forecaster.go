package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/timeseries"
	"github.com/shopspring/decimal"
)

// The band and the confidence are declared presentation values, not statistics.
const (
	DefaultWindow         = 8
	DefaultTrendThreshold = 0.05
	DefaultConfidence     = 85.0
)

var (
	DefaultMargin = decimal.NewFromFloat(0.10)

	hundred = decimal.NewFromInt(100)
)

type Settings struct {
	Window         int             // number of trailing buckets averaged
	Margin         decimal.Decimal // 0.10
	TrendThreshold float64         // 0.05
	Confidence     float64         // declared with a full window
}

func DefaultSettings() Settings {
	return Settings{
		Window:         DefaultWindow,
		Margin:         DefaultMargin,
		TrendThreshold: DefaultTrendThreshold,
		Confidence:     DefaultConfidence,
	}
}

// Forecaster projects a flat moving average over the horizon. The trend is a
// three-way comparison of the earliest and latest thirds of the series.
type Forecaster struct {
	settings Settings
}

// NewForecaster fills zero settings with the defaults.
func NewForecaster(settings Settings) *Forecaster {
	defaults := DefaultSettings()
	if settings.Window <= 0 {
		settings.Window = defaults.Window
	}
	if settings.Margin.IsZero() || settings.Margin.IsNegative() {
		settings.Margin = defaults.Margin
	}
	if settings.TrendThreshold <= 0 {
		settings.TrendThreshold = defaults.TrendThreshold
	}
	if settings.Confidence <= 0 || settings.Confidence > 100 {
		settings.Confidence = defaults.Confidence
	}
	return &Forecaster{settings: settings}
}

// Forecast projects a cost series.
func (f *Forecaster) Forecast(series domain.Series, horizonDays int) (domain.ForecastResult, error) {
	return f.ForecastPrediction(domain.PredictionCost, series, horizonDays)
}

func (f *Forecaster) ForecastPrediction(
	predictionType domain.PredictionType,
	series domain.Series,
	horizonDays int,
) (domain.ForecastResult, error) {
	if err := validateSeries(series.Buckets); err != nil {
		return domain.ForecastResult{}, err
	}

	totals := make([]decimal.Decimal, len(series.Buckets))
	for i, b := range series.Buckets {
		totals[i] = b.Total
	}

	avg := mean(tail(totals, f.settings.Window)).Round(2)
	low, high := f.band(avg)
	trend, variation := f.trend(totals)
	profile := predictionType.Profile()

	return domain.ForecastResult{
		Service:           series.DimensionFilter,
		PredictionType:    predictionType,
		HorizonDays:       max(horizonDays, 0),
		PredictedPoints:   points(series.Range.End, horizonDays, avg, low, high),
		Trend:             trend,
		VariationPercent:  variation,
		ConfidencePercent: f.confidence(len(totals)),
		MeanValue:         avg,
		MinValue:          low,
		MaxValue:          high,
		KeyFactors:        profile.KeyFactors,
		Recommendations:   profile.Recommendations[trend],
	}, nil
}

func validateSeries(buckets []domain.Bucket) error {
	for i, b := range buckets {
		if b.PeriodEnd.Before(b.PeriodStart) {
			return &domain.InvalidSeriesError{Index: i, Reason: "bucket ends before it starts"}
		}
		if i == 0 {
			continue
		}
		prev := buckets[i-1]
		if b.PeriodStart.Before(prev.PeriodStart) {
			return &domain.InvalidSeriesError{Index: i, Reason: "bucket is out of chronological order"}
		}
		if b.PeriodStart.Before(prev.PeriodEnd) {
			return &domain.InvalidSeriesError{
				Index:  i,
				Reason: fmt.Sprintf("bucket overlaps the previous one by %s", prev.PeriodEnd.Sub(b.PeriodStart)),
			}
		}
	}
	return nil
}

func (f *Forecaster) band(avg decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	one := decimal.NewFromInt(1)
	low := avg.Mul(one.Sub(f.settings.Margin)).Round(2)
	high := avg.Mul(one.Add(f.settings.Margin)).Round(2)
	if low.GreaterThan(high) {
		low, high = high, low
	}
	return low, high
}

func (f *Forecaster) trend(totals []decimal.Decimal) (domain.Trend, float64) {
	if len(totals) == 0 {
		return domain.TrendStable, 0
	}

	third := max(len(totals)/3, 1)
	early := mean(totals[:third])
	recent := mean(totals[len(totals)-third:])

	var change decimal.Decimal
	switch {
	case !early.IsZero():
		change = recent.Sub(early).Div(early.Abs())
	case recent.IsPositive():
		change = decimal.NewFromInt(1)
	case recent.IsNegative():
		change = decimal.NewFromInt(-1)
	}

	variation := change.Mul(hundred).Round(2).InexactFloat64()
	ratio := change.InexactFloat64()

	switch {
	case ratio > f.settings.TrendThreshold:
		return domain.TrendUp, variation
	case ratio < -f.settings.TrendThreshold:
		return domain.TrendDown, variation
	default:
		return domain.TrendStable, variation
	}
}

func (f *Forecaster) confidence(observed int) float64 {
	if observed >= f.settings.Window {
		return f.settings.Confidence
	}
	scaled := f.settings.Confidence * float64(observed) / float64(f.settings.Window)
	return math.Round(scaled*100) / 100
}

func points(after time.Time, horizonDays int, avg, low, high decimal.Decimal) []domain.ForecastPoint {
	if horizonDays <= 0 {
		return nil
	}

	first := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location()).AddDate(0, 0, 1)
	granularity := timeseries.GranularityFor(horizonDays)

	result := make([]domain.ForecastPoint, horizonDays)
	for i := range result {
		date := first.AddDate(0, 0, i)
		result[i] = domain.ForecastPoint{
			Date:  date,
			Label: timeseries.Label(date, i, granularity),
			Value: avg,
			Min:   low,
			Max:   high,
		}
	}
	return result
}

func tail(values []decimal.Decimal, n int) []decimal.Decimal {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, values...).Div(decimal.NewFromInt(int64(len(values))))
}
