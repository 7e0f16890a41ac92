package report

import (
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Context is everything a template needs to compile a document.
type Context struct {
	Title   string
	Period  string // MENSUEL, T1 2025
	From    time.Time
	To      time.Time
	Status  domain.ReportStatus
	Summary string
	Content Content // nil renders placeholders
}

// Content is the template-specific payload of a report.
type Content interface {
	Template() domain.Template
}

type CostsContent struct {
	Budgets []domain.ServiceBudget
}

type PredictionsContent struct {
	Assessment domain.Assessment
}

type AnomaliesContent struct {
	Anomalies []domain.Anomaly
}

// CustomContent carries sections assembled by the caller.
type CustomContent struct {
	Sections []domain.Section
}

func (CostsContent) Template() domain.Template { return domain.TemplateCosts }
func (PredictionsContent) Template() domain.Template { return domain.TemplatePredictions }
func (AnomaliesContent) Template() domain.Template { return domain.TemplateAnomalies }
func (CustomContent) Template() domain.Template { return domain.TemplateCustom }
