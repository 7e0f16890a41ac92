package commands

import (
	"context"
	"sort"

	"github.com/de-tools/hospital-atlas/pkg/artifact"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/shopspring/decimal"
)

// Session resolves what a command needs from the global flags.
type Session interface {
	Controller(ctx context.Context) (*dashboard.Controller, error)
	Profiles(ctx context.Context) ([]domain.ConnectionProfile, error)
	Sink(ctx context.Context) (artifact.Sink, error)
}

type DocumentPreviewer interface {
	Handle(doc *domain.ReportDocument) error
}

// measure formats a forecast value in the unit of its prediction type.
func measure(t domain.PredictionType, v decimal.Decimal) string {
	unit := t.Profile().Unit
	switch unit {
	case "€":
		return report.FormatMoney(v)
	case "":
		return report.FormatNumber(v, 2)
	default:
		return report.FormatNumber(v, 2) + " " + unit
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
