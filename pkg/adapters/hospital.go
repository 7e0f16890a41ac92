package adapters

import (
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

func valueOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func amountOf(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func MapStoreStayRecordToDomain(record store.StayRecord) domain.Stay {
	return domain.Stay{
		ID:            record.ID,
		PatientID:     record.PatientID,
		Service:       record.ServiceName,
		EntryDate:     record.EntryDate,
		ExitDate:      record.ExitDate,
		Status:        domain.StayStatus(record.Status),
		AdmissionType: valueOr(record.AdmissionType),
		TotalCost:     amountOf(record.TotalCost),
	}
}

func MapStoreMedicalActRecordToDomain(record store.MedicalActRecord) domain.MedicalAct {
	return domain.MedicalAct{
		ID:          record.ID,
		StayID:      record.StayID,
		Code:        record.Code,
		Label:       valueOr(record.Label),
		Type:        valueOr(record.Type),
		PerformedAt: record.PerformedAt,
		Tariff:      amountOf(record.Tariff),
		Physician:   valueOr(record.Physician),
	}
}

func MapStoreInvestmentRecordToDomain(record store.InvestmentRecord) domain.Investment {
	return domain.Investment{
		ID:         record.ID,
		Name:       record.Name,
		Category:   valueOr(record.Category),
		Amount:     amountOf(record.Amount),
		InvestedAt: record.InvestedAt,
		PlannedEnd: record.PlannedEnd,
		Status:     valueOr(record.Status),
		Supplier:   valueOr(record.Supplier),
	}
}

func MapApiStayToDomain(stay api.Stay) domain.Stay {
	result := domain.Stay{
		ID:            stay.ID,
		PatientID:     stay.PatientID,
		Service:       stay.ServiceNom,
		EntryDate:     stay.DateEntree.Time,
		Status:        domain.StayStatus(stay.Statut),
		AdmissionType: stay.TypeAdmission,
		TotalCost:     amountOf(stay.CoutTotal),
	}
	if stay.DateSortie != nil && !stay.DateSortie.IsZero() {
		exit := stay.DateSortie.Time
		result.ExitDate = &exit
	}
	return result
}

func MapApiMedicalActToDomain(act api.MedicalAct) domain.MedicalAct {
	return domain.MedicalAct{
		ID:          act.ID,
		StayID:      act.SejourID,
		Code:        act.Code,
		Label:       act.Libelle,
		Type:        act.Type,
		PerformedAt: act.DateRealisation.Time,
		Tariff:      amountOf(act.Tarif),
		Physician:   act.Medecin,
	}
}

func MapApiInvestmentToDomain(investment api.Investment) domain.Investment {
	result := domain.Investment{
		ID:         investment.ID,
		Name:       investment.Nom,
		Category:   investment.Categorie,
		Amount:     amountOf(investment.Montant),
		InvestedAt: investment.DateInvestissement.Time,
		Status:     investment.Statut,
		Supplier:   investment.Fournisseur,
	}
	if investment.DateFinPrevue != nil && !investment.DateFinPrevue.IsZero() {
		end := investment.DateFinPrevue.Time
		result.PlannedEnd = &end
	}
	return result
}
