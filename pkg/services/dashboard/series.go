package dashboard

import (
	"context"
	"fmt"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Metric selects which entity amounts feed a series.
type Metric string

const (
	MetricCosts       Metric = "costs"       // stay costs by service
	MetricAdmissions  Metric = "admissions"  // admitted stays by service
	MetricRevenue     Metric = "revenue"     // act tariffs by act type
	MetricInvestments Metric = "investments" // investment amounts by category

	MetricRevenueByService Metric = "revenue_by_service" // act tariffs by service of the stay
)

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricCosts, MetricAdmissions, MetricRevenue, MetricRevenueByService, MetricInvestments:
		return m, nil
	default:
		return "", fmt.Errorf("unknown metric %q", s)
	}
}

type SeriesResult struct {
	Global      domain.Series
	ByDimension []domain.Series
}

func (c *Controller) events(ctx context.Context, metric Metric) ([]domain.CostEvent, error) {
	switch metric {
	case MetricCosts, MetricAdmissions:
		stays, err := c.source.ListStays(ctx)
		if err != nil {
			return nil, wrap("stays", err)
		}
		if metric == MetricAdmissions {
			return adapters.MapStaysToAdmissionEvents(stays), nil
		}
		return adapters.MapStaysToCostEvents(stays), nil
	case MetricRevenue:
		acts, err := c.source.ListActs(ctx)
		if err != nil {
			return nil, wrap("acts", err)
		}
		return adapters.MapActsToCostEvents(acts), nil
	case MetricRevenueByService:
		acts, err := c.source.ListActs(ctx)
		if err != nil {
			return nil, wrap("acts", err)
		}
		stays, err := c.source.ListStays(ctx)
		if err != nil {
			return nil, wrap("stays", err)
		}
		return adapters.MapActsToServiceCostEvents(acts, stays), nil
	case MetricInvestments:
		investments, err := c.source.ListInvestments(ctx)
		if err != nil {
			return nil, wrap("investments", err)
		}
		return adapters.MapInvestmentsToCostEvents(investments), nil
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
}

// Series aggregates a metric over the last days days, globally and per dimension.
func (c *Controller) Series(ctx context.Context, metric Metric, days int) (SeriesResult, error) {
	if err := CheckDays("days", days, MaxHistoryDays); err != nil {
		return SeriesResult{}, err
	}
	events, err := c.events(ctx, metric)
	if err != nil {
		return SeriesResult{}, err
	}

	r := c.historyRange(days)
	global, err := c.aggregator.Aggregate(events, r, days)
	if err != nil {
		return SeriesResult{}, err
	}
	byDimension, err := c.aggregator.AggregateByDimension(events, r, days)
	if err != nil {
		return SeriesResult{}, err
	}

	return SeriesResult{Global: global, ByDimension: byDimension}, nil
}
