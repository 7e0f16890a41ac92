package kpi

import (
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Extractors tell Summarize how to read an entity. A nil AmountOf counts
// entities only; an empty Dimension skips the breakdowns.
type Extractors[T any] struct {
	Dimension   string // service, type, category
	AmountOf    func(T) decimal.Decimal
	DimensionOf func(T) string
}

// Summarize computes count, sum and average over entities, plus per-key sums
// and counts for the extractor's dimension.
func Summarize[T any](entities []T, ex Extractors[T]) domain.KPISnapshot {
	snapshot := domain.KPISnapshot{
		Totals:     make(map[string]decimal.Decimal, 3),
		Breakdowns: make(map[string]map[string]decimal.Decimal),
	}

	breakdown := ex.Dimension != "" && ex.DimensionOf != nil
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]decimal.Decimal)
	one := decimal.NewFromInt(1)

	sum := decimal.Zero
	for _, entity := range entities {
		amount := decimal.Zero
		if ex.AmountOf != nil {
			amount = ex.AmountOf(entity)
		}
		sum = sum.Add(amount)

		if !breakdown {
			continue
		}
		key := ex.DimensionOf(entity)
		if key == "" {
			key = domain.UnclassifiedDimension
		}
		sums[key] = sums[key].Add(amount)
		counts[key] = counts[key].Add(one)
	}

	count := decimal.NewFromInt(int64(len(entities)))
	average := decimal.Zero
	if len(entities) > 0 {
		average = sum.Div(count).Round(2)
	}

	snapshot.Totals[domain.KPICount] = count
	snapshot.Totals[domain.KPISum] = sum
	snapshot.Totals[domain.KPIAverage] = average

	if breakdown {
		snapshot.Breakdowns[ex.Dimension] = sums
		snapshot.Breakdowns[domain.CountBreakdownKey(ex.Dimension)] = counts
	}

	return snapshot
}

var StaysByService = Extractors[domain.Stay]{
	Dimension:   "service",
	AmountOf:    func(s domain.Stay) decimal.Decimal { return s.TotalCost },
	DimensionOf: func(s domain.Stay) string { return s.Service },
}

var ActsByType = Extractors[domain.MedicalAct]{
	Dimension:   "type",
	AmountOf:    func(a domain.MedicalAct) decimal.Decimal { return a.Tariff },
	DimensionOf: func(a domain.MedicalAct) string { return a.Type },
}

var InvestmentsByCategory = Extractors[domain.Investment]{
	Dimension:   "category",
	AmountOf:    func(i domain.Investment) decimal.Decimal { return i.Amount },
	DimensionOf: func(i domain.Investment) string { return i.Category },
}
