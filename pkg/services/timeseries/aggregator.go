package timeseries

import (
	"sort"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Aggregator turns cost events into bucketed series, either globally or one
// series per dimension key.
type Aggregator struct {
	bucketer Bucketer
}

func NewAggregator(bucketer Bucketer) *Aggregator {
	if bucketer == nil {
		bucketer = NewBucketer()
	}
	return &Aggregator{bucketer: bucketer}
}

func (a *Aggregator) Aggregate(
	events []domain.CostEvent,
	r domain.DateRange,
	horizonDays int,
) (domain.Series, error) {
	buckets, err := a.bucketer.Bucketize(events, r, horizonDays)
	if err != nil {
		return domain.Series{}, err
	}

	return domain.Series{
		Buckets:     buckets,
		Granularity: GranularityFor(horizonDays),
		Range:       r,
	}, nil
}

// AggregateByDimension buckets every dimension independently. The result is
// ordered by series total, largest first, with ties broken by key.
func (a *Aggregator) AggregateByDimension(
	events []domain.CostEvent,
	r domain.DateRange,
	horizonDays int,
) ([]domain.Series, error) {
	if err := ValidateRange(r, horizonDays); err != nil {
		return nil, err
	}

	groups := make(map[string][]domain.CostEvent)
	for _, event := range events {
		key := event.DimensionKey
		if key == "" {
			key = domain.UnclassifiedDimension
		}
		groups[key] = append(groups[key], event)
	}

	type ranked struct {
		series domain.Series
		total  decimal.Decimal
	}
	ranking := make([]ranked, 0, len(groups))
	for key, group := range groups {
		series, err := a.Aggregate(group, r, horizonDays)
		if err != nil {
			return nil, err
		}
		series.DimensionFilter = key
		ranking = append(ranking, ranked{series: series, total: series.Total()})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].total.Cmp(ranking[j].total); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].series.DimensionFilter < ranking[j].series.DimensionFilter
	})

	result := make([]domain.Series, len(ranking))
	for i, entry := range ranking {
		result[i] = entry.series
	}
	return result, nil
}
