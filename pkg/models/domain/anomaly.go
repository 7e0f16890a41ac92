package domain

import (
	"github.com/shopspring/decimal"
)

type AnomalyLevel string

const (
	AnomalyCritical AnomalyLevel = "CRITIQUE"
	AnomalyWarning  AnomalyLevel = "ATTENTION"
	AnomalyInfo     AnomalyLevel = "INFO"
)

type Anomaly struct {
	Level       AnomalyLevel
	Description string // Dépassement budgétaire de 12% en Urgences
	Impact      RiskLevel
}

// ServiceBudget is one line of the cost breakdown report.
type ServiceBudget struct {
	Service   string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
}

// Variance is spent minus allocated; negative values are savings.
func (b ServiceBudget) Variance() decimal.Decimal {
	return b.Spent.Sub(b.Allocated)
}
