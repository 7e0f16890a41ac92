package kpi

import (
	"testing"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, money(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func sampleStays() []domain.Stay {
	return []domain.Stay{
		{ID: 1, PatientID: 10, Service: "Cardiologie", Status: domain.StayInProgress, TotalCost: money("1500.00")},
		{ID: 2, PatientID: 11, Service: "Cardiologie", Status: domain.StayFinished, TotalCost: money("2500.50")},
		{ID: 3, PatientID: 10, Service: "Urgences", Status: domain.StayInProgress, TotalCost: money("300")},
		{ID: 4, PatientID: 12, Service: "", Status: domain.StayCancelled, TotalCost: money("0")},
	}
}

func TestSummarize_Stays(t *testing.T) {
	// When
	snapshot := Summarize(sampleStays(), StaysByService)

	// Then
	assert.Equal(t, int64(4), snapshot.Count())
	assertMoney(t, "4300.50", snapshot.Sum())
	assertMoney(t, "1075.13", snapshot.Average())

	sums := snapshot.Breakdowns["service"]
	require.Len(t, sums, 3)
	assertMoney(t, "4000.50", sums["Cardiologie"])
	assertMoney(t, "300", sums["Urgences"])
	assertMoney(t, "0", sums[domain.UnclassifiedDimension])

	counts := snapshot.Breakdowns[domain.CountBreakdownKey("service")]
	assertMoney(t, "2", counts["Cardiologie"])
	assertMoney(t, "1", counts[domain.UnclassifiedDimension])
}

func TestSummarize_Empty_ShouldReturnZeros(t *testing.T) {
	snapshot := Summarize([]domain.MedicalAct{}, ActsByType)

	assert.Equal(t, int64(0), snapshot.Count())
	assert.True(t, snapshot.Sum().IsZero())
	assert.True(t, snapshot.Average().IsZero())
	assert.Empty(t, snapshot.Breakdowns["type"])
}

func TestSummarize_CountOnly(t *testing.T) {
	snapshot := Summarize(sampleStays(), Extractors[domain.Stay]{})

	assert.Equal(t, int64(4), snapshot.Count())
	assert.True(t, snapshot.Sum().IsZero())
	assert.Empty(t, snapshot.Breakdowns)
}

func TestSummarize_IsIdempotent(t *testing.T) {
	stays := sampleStays()

	first := Summarize(stays, StaysByService)
	second := Summarize(stays, StaysByService)

	assert.Equal(t, first, second)
}

func TestSummarize_Investments(t *testing.T) {
	investments := []domain.Investment{
		{Category: "EQUIPEMENT", Amount: money("120000")},
		{Category: "FORMATION", Amount: money("8000")},
		{Category: "EQUIPEMENT", Amount: money("30000")},
	}

	snapshot := Summarize(investments, InvestmentsByCategory)

	assertMoney(t, "158000", snapshot.Sum())
	assertMoney(t, "52666.67", snapshot.Average())
	assertMoney(t, "150000", snapshot.Breakdowns["category"]["EQUIPEMENT"])
}

func TestOverview(t *testing.T) {
	// Given
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	acts := []domain.MedicalAct{
		{ID: 1, StayID: 1, Type: "CONSULTATION", PerformedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), Tariff: money("25")},
		{ID: 2, StayID: 1, Type: "CHIRURGIE", PerformedAt: time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC), Tariff: money("1200")},
		{ID: 3, StayID: 2, Type: "RADIOLOGIE", PerformedAt: time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC), Tariff: money("80")},
		{ID: 4, StayID: 3, Type: "LABORATOIRE", PerformedAt: time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC), Tariff: money("15")},
		{ID: 5, StayID: 3, Type: "CONSULTATION", PerformedAt: time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC), Tariff: money("25")},
	}

	// When
	overview, err := Overview(sampleStays(), acts, nil, now)

	// Then
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalPatients)
	assert.Equal(t, int64(2), overview.StaysInProgress)
	assert.Equal(t, int64(5), overview.TotalActs)
	assertMoney(t, "1225", overview.RevenueYear)
	assertMoney(t, "25", overview.RevenueMonth)
	assert.Equal(t, map[string]int64{"Cardiologie": 1, "Urgences": 1}, overview.ActiveByService)
	assert.Equal(t, int64(0), overview.Investments.Count())
	assertMoney(t, "50", overview.Acts.Breakdowns["type"]["CONSULTATION"])

	months := overview.RevenueByMonth.Buckets
	require.Len(t, months, 12)
	assert.Equal(t, domain.GranularityMonthly, overview.RevenueByMonth.Granularity)
	assert.Equal(t, "avr. 24", months[0].Label)
	assert.Equal(t, "déc. 24", months[8].Label)
	assertMoney(t, "80", months[8].Total)
	assertMoney(t, "1200", months[9].Total)
	assertMoney(t, "25", months[11].Total)
}
