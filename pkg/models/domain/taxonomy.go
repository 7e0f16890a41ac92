package domain

import "fmt"

// RGB is a display colour shared by the dashboard badges and the printable export.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	ColorRed    = RGB{R: 200, G: 0, B: 0}
	ColorOrange = RGB{R: 200, G: 100, B: 0}
	ColorGreen  = RGB{R: 0, G: 150, B: 0}
	ColorBlue   = RGB{R: 37, G: 99, B: 235}
	ColorPurple = RGB{R: 126, G: 34, B: 206}
	ColorYellow = RGB{R: 202, G: 138, B: 4}
	ColorGray   = RGB{R: 100, G: 100, B: 100}
)

type Attributes struct {
	Label  string
	Symbol string
	Color  RGB
}

var trendAttributes = map[Trend]Attributes{
	TrendUp:     {Label: "Hausse", Symbol: "↑", Color: ColorRed},
	TrendDown:   {Label: "Baisse", Symbol: "↓", Color: ColorGreen},
	TrendStable: {Label: "Stable", Symbol: "→", Color: ColorGray},
}

var riskAttributes = map[RiskLevel]Attributes{
	RiskLow:    {Label: "Faible", Color: ColorGreen},
	RiskMedium: {Label: "Moyen", Color: ColorOrange},
	RiskHigh:   {Label: "Élevé", Color: ColorRed},
}

var statusAttributes = map[ReportStatus]Attributes{
	ReportDraft:     {Label: "Brouillon", Color: ColorGray},
	ReportPublished: {Label: "Publié", Color: ColorGreen},
	ReportArchived:  {Label: "Archivé", Color: ColorYellow},
}

var templateAttributes = map[Template]Attributes{
	TemplateCosts:       {Label: "Coûts", Color: ColorBlue},
	TemplatePredictions: {Label: "Prédictions", Color: ColorPurple},
	TemplateAnomalies:   {Label: "Anomalies", Color: ColorRed},
	TemplateCustom:      {Label: "Personnalisé", Color: ColorGray},
}

var anomalyAttributes = map[AnomalyLevel]Attributes{
	AnomalyCritical: {Label: "Critique", Color: ColorRed},
	AnomalyWarning:  {Label: "Attention", Color: ColorOrange},
	AnomalyInfo:     {Label: "Info", Color: ColorGray},
}

func lookup[K ~string](table map[K]Attributes, key K) Attributes {
	if attrs, ok := table[key]; ok {
		return attrs
	}
	return Attributes{Label: string(key), Color: ColorGray}
}

func (t Trend) Attributes() Attributes { return lookup(trendAttributes, t) }
func (r RiskLevel) Attributes() Attributes { return lookup(riskAttributes, r) }
func (s ReportStatus) Attributes() Attributes { return lookup(statusAttributes, s) }
func (t Template) Attributes() Attributes { return lookup(templateAttributes, t) }
func (l AnomalyLevel) Attributes() Attributes { return lookup(anomalyAttributes, l) }

// PredictionProfile describes how a prediction type is presented and explained.
type PredictionProfile struct {
	Label           string // Coût estimé
	Unit            string // display unit
	CSVUnit         string // unit written to machine-readable exports
	KeyFactors      []string
	Recommendations map[Trend][]string
}

var fallingRecommendations = []string{
	"Analyser les causes de la diminution",
	"Évaluer l'impact sur la qualité des soins",
	"Ajuster les ressources en conséquence",
}

var stableRecommendations = []string{
	"Maintenir la surveillance des indicateurs",
	"Continuer les bonnes pratiques actuelles",
	"Anticiper les variations saisonnières",
}

var predictionProfiles = map[PredictionType]PredictionProfile{
	PredictionCost: {
		Label:   "Coût estimé",
		Unit:    "€",
		CSVUnit: "EUR",
		KeyFactors: []string{
			"Volume d'actes médicaux",
			"Tarifs moyens des interventions",
			"Taux d'occupation des lits",
			"Coûts de personnel",
		},
		Recommendations: map[Trend][]string{
			TrendUp: {
				"Analyser les postes de dépenses en augmentation",
				"Optimiser l'utilisation des ressources",
				"Renégocier les contrats fournisseurs si nécessaire",
			},
			TrendDown:   fallingRecommendations,
			TrendStable: stableRecommendations,
		},
	},
	PredictionPatients: {
		Label:   "Nombre de patients",
		Unit:    "patients",
		CSVUnit: "patients",
		KeyFactors: []string{
			"Saisonnalité épidémiologique",
			"Capacité d'accueil du service",
			"Référencements externes",
			"Conditions météorologiques",
		},
		Recommendations: map[Trend][]string{
			TrendUp: {
				"Prévoir un renforcement du personnel",
				"Vérifier la disponibilité des équipements",
				"Optimiser les plannings d'admission",
			},
			TrendDown:   fallingRecommendations,
			TrendStable: stableRecommendations,
		},
	},
	PredictionOccupancy: {
		Label:   "Taux d'occupation",
		Unit:    "%",
		CSVUnit: "percent",
		KeyFactors: []string{
			"Durée moyenne de séjour",
			"Admissions quotidiennes",
			"Taux de sortie",
			"Transferts inter-services",
		},
		Recommendations: map[Trend][]string{
			TrendUp: {
				"Surveiller la capacité maximale",
				"Planifier des sorties anticipées si possible",
				"Préparer des solutions de débordement",
			},
			TrendDown:   fallingRecommendations,
			TrendStable: stableRecommendations,
		},
	},
}

// Profile returns the presentation profile; unknown types get an empty one.
func (p PredictionType) Profile() PredictionProfile {
	if profile, ok := predictionProfiles[p]; ok {
		return profile
	}
	return PredictionProfile{Label: string(p)}
}

func (p PredictionType) Valid() bool {
	_, ok := predictionProfiles[p]
	return ok
}
