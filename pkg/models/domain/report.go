package domain

import (
	"time"

	"github.com/google/uuid"
)

type Template string

const (
	TemplateCosts       Template = "COSTS"
	TemplatePredictions Template = "PREDICTIONS"
	TemplateAnomalies   Template = "ANOMALIES"
	TemplateCustom      Template = "CUSTOM"
)

type ReportStatus string

const (
	ReportDraft     ReportStatus = "BROUILLON"
	ReportPublished ReportStatus = "PUBLIE"
	ReportArchived  ReportStatus = "ARCHIVE"
)

type SectionKind string

const (
	SectionTable     SectionKind = "table"
	SectionList      SectionKind = "list"
	SectionNarrative SectionKind = "narrative"
)

// Cell keeps the machine value next to its display form: Raw goes to CSV,
// Display to the printable document.
type Cell struct {
	Raw     string // 1500.00
	Display string // 1 500,00 €
}

func TextCell(s string) Cell {
	return Cell{Raw: s, Display: s}
}

type Field struct {
	Label string
	Value Cell
}

type Table struct {
	Columns []string
	Rows    [][]Cell
}

type Section struct {
	Heading     string
	Kind        SectionKind
	Table       *Table
	Items       []Field
	Text        string
	Placeholder bool // rendered from missing data
	Primary     bool // the table exported as CSV
}

// ReportDocument represents a compiled report, immutable once built.
type ReportDocument struct {
	ID          uuid.UUID
	Template    Template
	Title       string
	BaseName    string // file name without extension
	Info        []Field
	Sections    []Section
	GeneratedAt time.Time
}

// PrimaryTable returns the section holding the document's exportable data points.
func (d *ReportDocument) PrimaryTable() *Section {
	for i := range d.Sections {
		if d.Sections[i].Primary && d.Sections[i].Table != nil {
			return &d.Sections[i]
		}
	}
	return nil
}
