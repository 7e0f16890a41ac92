package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendUp     Trend = "HAUSSE"
	TrendDown   Trend = "BAISSE"
	TrendStable Trend = "STABLE"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type PredictionType string

const (
	PredictionCost      PredictionType = "COUT"
	PredictionPatients  PredictionType = "PATIENTS"
	PredictionOccupancy PredictionType = "OCCUPATION"
)

type ForecastPoint struct {
	Date  time.Time
	Label string // empty for sampled-out points
	Value decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// ForecastResult is produced either locally by the forecaster or decoded from the
// external prediction service.
type ForecastResult struct {
	Service           string
	PredictionType    PredictionType
	HorizonDays       int
	PredictedPoints   []ForecastPoint
	Trend             Trend
	VariationPercent  float64 // early vs recent mean change, in percent
	ConfidencePercent float64 // declared, 0-100
	MeanValue         decimal.Decimal
	MinValue          decimal.Decimal
	MaxValue          decimal.Decimal
	KeyFactors        []string
	Recommendations   []string
}

// Assessment pairs a forecast with the risk level derived from it.
type Assessment struct {
	Forecast ForecastResult
	Risk     RiskLevel
}
