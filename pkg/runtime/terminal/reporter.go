package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Reporter previews compiled report documents on the console
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const documentTemplate = `
{{.Title}} [{{.ID}}]
{{range .Info}}{{.Label}}: {{.Value.Display}}
{{end}}{{range .Sections}}
=== {{.Heading}} ===
{{if .Table}}{{join .Table.Columns}}
{{range .Table.Rows}}{{cells .}}
{{end}}{{end}}{{range .Items}}- {{.Label}}: {{.Value.Display}}
{{end}}{{if .Text}}{{.Text}}
{{end}}{{end}}`

func (c *Reporter) Handle(doc *domain.ReportDocument) error {
	funcMap := template.FuncMap{
		"join": func(columns []string) string {
			return strings.Join(columns, " | ")
		},
		"cells": func(row []domain.Cell) string {
			values := make([]string, len(row))
			for i, cell := range row {
				values[i] = cell.Display
			}
			return strings.Join(values, " | ")
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(documentTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, doc)
}
