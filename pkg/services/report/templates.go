package report

import (
	"fmt"
	"strings"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var templateAliases = map[string]domain.Template{
	"COSTS":        domain.TemplateCosts,
	"COUTS":        domain.TemplateCosts,
	"PREDICTIONS":  domain.TemplatePredictions,
	"ANOMALIES":    domain.TemplateAnomalies,
	"CUSTOM":       domain.TemplateCustom,
	"PERSONNALISE": domain.TemplateCustom,
}

// ParseTemplate resolves a template identifier, case-insensitively.
func ParseTemplate(s string) (domain.Template, error) {
	if t, ok := templateAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", &domain.UnknownTemplateError{Template: s}
}

var statuses = map[string]domain.ReportStatus{
	"":                             "",
	string(domain.ReportDraft):     domain.ReportDraft,
	string(domain.ReportPublished): domain.ReportPublished,
	string(domain.ReportArchived):  domain.ReportArchived,
}

// ParseStatus accepts BROUILLON, PUBLIE or ARCHIVE in any case. An empty
// string leaves the status unset.
func ParseStatus(s string) (domain.ReportStatus, error) {
	status, ok := statuses[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown report status %q", s)
	}
	return status, nil
}

// ParseAmount reads a budget amount written with either decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
