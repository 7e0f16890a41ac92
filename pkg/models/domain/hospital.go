package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StayStatus string

const (
	StayInProgress StayStatus = "EN_COURS"
	StayFinished   StayStatus = "TERMINE"
	StayCancelled  StayStatus = "ANNULE"
)

// Stay is a patient admission ("séjour").
type Stay struct {
	ID            int64
	PatientID     int64
	Service       string // Cardiologie
	EntryDate     time.Time
	ExitDate      *time.Time
	Status        StayStatus
	AdmissionType string // URGENCE, PROGRAMME, TRANSFERT
	TotalCost     decimal.Decimal
}

// MedicalAct is a billable procedure performed during a stay ("acte médical").
type MedicalAct struct {
	ID          int64
	StayID      int64
	Code        string
	Label       string
	Type        string // CONSULTATION, CHIRURGIE, RADIOLOGIE, LABORATOIRE
	PerformedAt time.Time
	Tariff      decimal.Decimal
	Physician   string
}

type Investment struct {
	ID         int64
	Name       string
	Category   string // EQUIPEMENT, INFRASTRUCTURE, TECHNOLOGIE, FORMATION
	Amount     decimal.Decimal
	InvestedAt time.Time
	PlannedEnd *time.Time
	Status     string // PLANIFIE, EN_COURS, TERMINE, ANNULE
	Supplier   string
}
