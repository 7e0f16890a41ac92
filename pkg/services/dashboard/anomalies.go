package dashboard

import (
	"fmt"
	"sort"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/shopspring/decimal"
)

// Overruns above this share of the allocated budget are critical.
var criticalOverrunPercent = decimal.NewFromInt(10)

var anomalyRank = map[domain.AnomalyLevel]int{
	domain.AnomalyCritical: 0,
	domain.AnomalyWarning:  1,
	domain.AnomalyInfo:     2,
}

// DetectAnomalies flags budget overruns and risky forecasts. Critical
// anomalies come first; the input order is kept within a level.
func DetectAnomalies(budgets []domain.ServiceBudget, assessments []domain.Assessment) []domain.Anomaly {
	var anomalies []domain.Anomaly

	for _, b := range budgets {
		if !b.Allocated.IsPositive() || !b.Spent.GreaterThan(b.Allocated) {
			continue
		}
		overrun := b.Variance().Div(b.Allocated).Mul(decimal.NewFromInt(100)).Round(0)
		anomaly := domain.Anomaly{
			Level:       domain.AnomalyWarning,
			Description: fmt.Sprintf("Dépassement budgétaire de %s%% en %s", overrun.String(), b.Service),
			Impact:      domain.RiskMedium,
		}
		if overrun.GreaterThan(criticalOverrunPercent) {
			anomaly.Level = domain.AnomalyCritical
			anomaly.Impact = domain.RiskHigh
		}
		anomalies = append(anomalies, anomaly)
	}

	for _, a := range assessments {
		level := domain.AnomalyInfo
		switch a.Risk {
		case domain.RiskHigh:
			level = domain.AnomalyWarning
		case domain.RiskMedium:
		default:
			continue
		}
		anomalies = append(anomalies, domain.Anomaly{
			Level: level,
			Description: fmt.Sprintf("%s prévue de %s (%s) en %s",
				a.Forecast.Trend.Attributes().Label,
				report.FormatPercent(abs(a.Forecast.VariationPercent)),
				a.Forecast.PredictionType.Profile().Label,
				a.Forecast.Service),
			Impact: a.Risk,
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalyRank[anomalies[i].Level] < anomalyRank[anomalies[j].Level]
	})
	return anomalies
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
