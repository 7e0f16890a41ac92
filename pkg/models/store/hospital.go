package store

import (
	"time"

	"github.com/shopspring/decimal"
)

type StayRecord struct {
	ID            int64
	PatientID     int64
	ServiceName   string
	EntryDate     time.Time
	ExitDate      *time.Time
	Status        string
	AdmissionType *string
	TotalCost     decimal.NullDecimal
}

type MedicalActRecord struct {
	ID          int64
	StayID      int64
	Code        string
	Label       *string
	Type        *string
	PerformedAt time.Time
	Tariff      decimal.NullDecimal
	Physician   *string
}

type InvestmentRecord struct {
	ID         int64
	Name       string
	Category   *string
	Amount     decimal.NullDecimal
	InvestedAt time.Time
	PlannedEnd *time.Time
	Status     *string
	Supplier   *string
}
