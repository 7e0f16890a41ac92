package api

import "github.com/shopspring/decimal"

// Stay mirrors SejourDTO of the dashboard API.
type Stay struct {
	ID            int64               `json:"id"`
	PatientID     int64               `json:"patientId"`
	PatientNom    string              `json:"patientNom,omitempty"`
	PatientPrenom string              `json:"patientPrenom,omitempty"`
	ServiceID     int64               `json:"serviceId"`
	ServiceNom    string              `json:"serviceNom"`
	DateEntree    LocalDateTime       `json:"dateEntree"`
	DateSortie    *LocalDateTime      `json:"dateSortie,omitempty"`
	Motif         string              `json:"motif,omitempty"`
	Diagnostic    string              `json:"diagnostic,omitempty"`
	Statut        string              `json:"statut"`
	TypeAdmission string              `json:"typeAdmission"`
	CoutTotal     decimal.NullDecimal `json:"coutTotal"`
}

// MedicalAct mirrors ActeMedicalDTO.
type MedicalAct struct {
	ID              int64               `json:"id"`
	SejourID        int64               `json:"sejourId"`
	Code            string              `json:"code"`
	Libelle         string              `json:"libelle"`
	Type            string              `json:"type"`
	DateRealisation LocalDateTime       `json:"dateRealisation"`
	Tarif           decimal.NullDecimal `json:"tarif"`
	Medecin         string              `json:"medecin,omitempty"`
	Notes           string              `json:"notes,omitempty"`
}

type Investment struct {
	ID                   int64               `json:"id"`
	Nom                  string              `json:"nom"`
	Categorie            string              `json:"categorie"`
	Description          string              `json:"description,omitempty"`
	Montant              decimal.NullDecimal `json:"montant"`
	DateInvestissement   LocalDateTime       `json:"dateInvestissement"`
	DateFinPrevue        *LocalDateTime      `json:"dateFinPrevue,omitempty"`
	Statut               string              `json:"statut"`
	Fournisseur          string              `json:"fournisseur,omitempty"`
	RetourInvestissement *float64            `json:"retourInvestissement,omitempty"`
}
