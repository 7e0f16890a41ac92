package domain

import "github.com/shopspring/decimal"

const (
	KPICount   = "count"
	KPISum     = "sum"
	KPIAverage = "average"
)

type KPISnapshot struct {
	Totals     map[string]decimal.Decimal
	Breakdowns map[string]map[string]decimal.Decimal // dimension -> key -> value
}

func (k KPISnapshot) Count() int64 {
	return k.Totals[KPICount].IntPart()
}

func (k KPISnapshot) Sum() decimal.Decimal {
	return k.Totals[KPISum]
}

func (k KPISnapshot) Average() decimal.Decimal {
	return k.Totals[KPIAverage]
}

// CountBreakdownKey names the breakdown holding per-key counts for a dimension.
func CountBreakdownKey(dimension string) string {
	return dimension + "_count"
}

// Overview is the dashboard landing snapshot.
type Overview struct {
	TotalPatients   int64
	StaysInProgress int64
	TotalActs       int64
	RevenueYear     decimal.Decimal
	RevenueMonth    decimal.Decimal
	Stays           KPISnapshot // by service
	Acts            KPISnapshot // by act type
	Investments     KPISnapshot // by category
	ActiveByService map[string]int64
	RevenueByMonth  Series
}
