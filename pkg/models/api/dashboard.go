package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bucket struct {
	Label       string          `json:"label"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

type Series struct {
	Dimension   string          `json:"dimension,omitempty"`
	Granularity string          `json:"granularity"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Total       decimal.Decimal `json:"total"`
	Buckets     []Bucket        `json:"buckets"`
}

type KPISnapshot struct {
	Totals     map[string]decimal.Decimal            `json:"totals"`
	Breakdowns map[string]map[string]decimal.Decimal `json:"breakdowns"`
}

type Overview struct {
	TotalPatients   int64            `json:"total_patients"`
	StaysInProgress int64            `json:"stays_in_progress"`
	TotalActs       int64            `json:"total_acts"`
	RevenueYear     decimal.Decimal  `json:"revenue_year"`
	RevenueMonth    decimal.Decimal  `json:"revenue_month"`
	Stays           KPISnapshot      `json:"stays"`
	Acts            KPISnapshot      `json:"acts"`
	Investments     KPISnapshot      `json:"investments"`
	ActiveByService map[string]int64 `json:"active_by_service"`
	RevenueByMonth  Series           `json:"revenue_by_month"`
}

type ForecastPoint struct {
	Date  time.Time       `json:"date"`
	Label string          `json:"label,omitempty"`
	Value decimal.Decimal `json:"value"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
}

type Forecast struct {
	Service           string          `json:"service"`
	PredictionType    string          `json:"prediction_type"`
	HorizonDays       int             `json:"horizon_days"`
	Points            []ForecastPoint `json:"points"`
	Trend             string          `json:"trend"`
	VariationPercent  float64         `json:"variation_percent"`
	ConfidencePercent float64         `json:"confidence_percent"`
	MeanValue         decimal.Decimal `json:"mean_value"`
	MinValue          decimal.Decimal `json:"min_value"`
	MaxValue          decimal.Decimal `json:"max_value"`
	KeyFactors        []string        `json:"key_factors"`
	Recommendations   []string        `json:"recommendations"`
	Risk              string          `json:"risk"`
}

type Error struct {
	Error string `json:"error"`
}

type SeriesResponse struct {
	Metric      string   `json:"metric"`
	Global      Series   `json:"global"`
	ByDimension []Series `json:"by_dimension"`
}
