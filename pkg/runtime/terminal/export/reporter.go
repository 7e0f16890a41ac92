package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"
)

// Field is one "label: value" line printed above a table.
type Field struct {
	Label string
	Value string
}

// View is a console table with an optional summary.
type View struct {
	Title   string
	Summary []Field
	Columns []string
	Rows    [][]string
}

type TableConfig struct {
	MinWidth int
	MaxWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MinWidth: 6,
		MaxWidth: 54,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const viewTemplate = `
{{.Title}}
{{range .Summary}}{{.Label}}: {{.Value}}
{{end}}{{if .Columns}}
{{separator}}
{{formatRow .Columns}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
{{end}}`

func (c *Reporter) Handle(view View) error {
	widths := c.widths(view)

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			var b strings.Builder
			b.WriteString("|")
			for i, w := range widths {
				cell := ""
				if i < len(cells) {
					cell = c.clip(cells[i], w)
				}
				fmt.Fprintf(&b, " %s%s |", cell, strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
			}
			return b.String()
		},
		"separator": func() string {
			var b strings.Builder
			b.WriteString("+")
			for _, w := range widths {
				b.WriteString(strings.Repeat("-", w+2))
				b.WriteString("+")
			}
			return b.String()
		},
	}

	t, err := template.New("view").Funcs(funcMap).Parse(viewTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

func (c *Reporter) widths(view View) []int {
	widths := make([]int, len(view.Columns))
	for i, col := range view.Columns {
		widths[i] = max(c.config.MinWidth, utf8.RuneCountInString(col))
	}
	for _, row := range view.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], c.config.MaxWidth)
	}
	return widths
}

func (c *Reporter) clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
