package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/forecast"
	"github.com/rs/zerolog"
)

const (
	DefaultHorizonDays = 30
	DefaultHistoryDays = 90

	// Every requested day becomes a bucket or a predicted point.
	MaxHorizonDays = 365
	MaxHistoryDays = 3 * 365
)

// TooManyDaysError is returned when a requested day count exceeds its limit.
type TooManyDaysError struct {
	Name string
	Days int
	Max  int
}

func (e *TooManyDaysError) Error() string {
	return fmt.Sprintf("%s of %d days exceeds the maximum of %d", e.Name, e.Days, e.Max)
}

// CheckDays rejects day counts above max. Non-positive counts are left to the
// range validation of the series.
func CheckDays(name string, days, max int) error {
	if days > max {
		return &TooManyDaysError{Name: name, Days: days, Max: max}
	}
	return nil
}

// UnsupportedPredictionError is returned for prediction types the local
// forecaster cannot derive from entity data.
type UnsupportedPredictionError struct {
	Type domain.PredictionType
}

func (e *UnsupportedPredictionError) Error() string {
	return fmt.Sprintf("prediction type %q cannot be forecast locally", e.Type)
}

type ForecastQuery struct {
	Service     string // empty forecasts the whole hospital
	Type        domain.PredictionType
	HorizonDays int
	HistoryDays int  // observed days fed to the local forecaster
	External    bool // ask the ML service instead of forecasting locally
}

func (q ForecastQuery) withDefaults() ForecastQuery {
	if q.Type == "" {
		q.Type = domain.PredictionCost
	}
	if q.HorizonDays == 0 {
		q.HorizonDays = DefaultHorizonDays
	}
	if q.HistoryDays == 0 {
		q.HistoryDays = DefaultHistoryDays
	}
	return q
}

func (q ForecastQuery) validate() error {
	if !q.Type.Valid() {
		return &UnsupportedPredictionError{Type: q.Type}
	}
	if err := CheckDays("horizon", q.HorizonDays, MaxHorizonDays); err != nil {
		return err
	}
	return CheckDays("history", q.HistoryDays, MaxHistoryDays)
}

// Forecast predicts one service, locally or through the prediction provider,
// and classifies the risk of the result.
func (c *Controller) Forecast(ctx context.Context, query ForecastQuery) (domain.Assessment, error) {
	query = query.withDefaults()
	if err := query.validate(); err != nil {
		return domain.Assessment{}, err
	}

	if query.External {
		if c.predictions == nil {
			return domain.Assessment{}, ErrNoPredictionProvider
		}
		result, err := c.predictions.Predict(ctx, query.Service, query.Type, query.HorizonDays)
		if err != nil {
			return domain.Assessment{}, fmt.Errorf("failed to fetch prediction for %s: %w", query.Service, err)
		}
		return forecast.Assess(result)
	}

	stays, err := c.source.ListStays(ctx)
	if err != nil {
		return domain.Assessment{}, wrap("stays", err)
	}
	return c.forecastLocal(ctx, stays, query)
}

func (c *Controller) forecastLocal(
	ctx context.Context,
	stays []domain.Stay,
	query ForecastQuery,
) (domain.Assessment, error) {
	var events []domain.CostEvent
	switch query.Type {
	case domain.PredictionCost:
		events = adapters.MapStaysToCostEvents(stays)
	case domain.PredictionPatients:
		events = adapters.MapStaysToAdmissionEvents(stays)
	default:
		return domain.Assessment{}, &UnsupportedPredictionError{Type: query.Type}
	}

	if query.Service != "" {
		filtered := events[:0:0]
		for _, e := range events {
			if e.DimensionKey == query.Service {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	series, err := c.aggregator.Aggregate(events, c.historyRange(query.HistoryDays), query.HistoryDays)
	if err != nil {
		return domain.Assessment{}, err
	}
	series.DimensionFilter = query.Service

	result, err := c.forecaster.ForecastPrediction(query.Type, series, query.HorizonDays)
	if err != nil {
		return domain.Assessment{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("service", query.Service).
		Str("type", string(query.Type)).
		Str("trend", string(result.Trend)).
		Float64("variation", result.VariationPercent).
		Msg("local forecast computed")

	return forecast.Assess(result)
}

// CompareServices forecasts every service. External predictions keep the
// provider's order, local ones are sorted by service name.
func (c *Controller) CompareServices(ctx context.Context, query ForecastQuery) ([]domain.Assessment, error) {
	query = query.withDefaults()
	if err := query.validate(); err != nil {
		return nil, err
	}

	if query.External {
		if c.predictions == nil {
			return nil, ErrNoPredictionProvider
		}
		results, err := c.predictions.PredictAll(ctx, query.Type, query.HorizonDays)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch predictions: %w", err)
		}
		assessments := make([]domain.Assessment, 0, len(results))
		for _, r := range results {
			a, err := forecast.Assess(r)
			if err != nil {
				return nil, err
			}
			assessments = append(assessments, a)
		}
		return assessments, nil
	}

	stays, err := c.source.ListStays(ctx)
	if err != nil {
		return nil, wrap("stays", err)
	}
	return c.compareLocal(ctx, stays, query)
}

func (c *Controller) compareLocal(
	ctx context.Context,
	stays []domain.Stay,
	query ForecastQuery,
) ([]domain.Assessment, error) {
	assessments := make([]domain.Assessment, 0)
	for _, service := range services(stays) {
		q := query
		q.Service = service
		a, err := c.forecastLocal(ctx, stays, q)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, nil
}

func services(stays []domain.Stay) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, s := range stays {
		if s.Service == "" {
			continue
		}
		if _, ok := seen[s.Service]; ok {
			continue
		}
		seen[s.Service] = struct{}{}
		names = append(names, s.Service)
	}
	sort.Strings(names)
	return names
}
