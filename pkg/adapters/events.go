package adapters

import (
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// MapStaysToCostEvents dates each stay cost on its admission day, keyed by service.
func MapStaysToCostEvents(stays []domain.Stay) []domain.CostEvent {
	events := make([]domain.CostEvent, 0, len(stays))
	for _, s := range stays {
		events = append(events, domain.CostEvent{
			OccurredOn:   s.EntryDate,
			Amount:       s.TotalCost,
			DimensionKey: s.Service,
		})
	}
	return events
}

// MapStaysToAdmissionEvents counts one unit per admission, keyed by service.
func MapStaysToAdmissionEvents(stays []domain.Stay) []domain.CostEvent {
	one := decimal.NewFromInt(1)
	events := make([]domain.CostEvent, 0, len(stays))
	for _, s := range stays {
		events = append(events, domain.CostEvent{
			OccurredOn:   s.EntryDate,
			Amount:       one,
			DimensionKey: s.Service,
		})
	}
	return events
}

func MapActsToCostEvents(acts []domain.MedicalAct) []domain.CostEvent {
	events := make([]domain.CostEvent, 0, len(acts))
	for _, a := range acts {
		events = append(events, domain.CostEvent{
			OccurredOn:   a.PerformedAt,
			Amount:       a.Tariff,
			DimensionKey: a.Type,
		})
	}
	return events
}

// MapActsToServiceCostEvents keys acts by the service of their stay. Acts whose
// stay is unknown end up without a dimension.
func MapActsToServiceCostEvents(acts []domain.MedicalAct, stays []domain.Stay) []domain.CostEvent {
	services := make(map[int64]string, len(stays))
	for _, s := range stays {
		services[s.ID] = s.Service
	}

	events := make([]domain.CostEvent, 0, len(acts))
	for _, a := range acts {
		events = append(events, domain.CostEvent{
			OccurredOn:   a.PerformedAt,
			Amount:       a.Tariff,
			DimensionKey: services[a.StayID],
		})
	}
	return events
}

func MapInvestmentsToCostEvents(investments []domain.Investment) []domain.CostEvent {
	events := make([]domain.CostEvent, 0, len(investments))
	for _, i := range investments {
		events = append(events, domain.CostEvent{
			OccurredOn:   i.InvestedAt,
			Amount:       i.Amount,
			DimensionKey: i.Category,
		})
	}
	return events
}
