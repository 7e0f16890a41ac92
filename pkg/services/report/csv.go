package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

const csvDelimiter = ';'

// ExportCSV writes the primary table of the document, machine values only.
// Documents without a table export their info block instead.
func ExportCSV(doc *domain.ReportDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = csvDelimiter

	if err := w.WriteAll(csvRecords(doc)); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRecords(doc *domain.ReportDocument) [][]string {
	if primary := doc.PrimaryTable(); primary != nil {
		records := make([][]string, 0, len(primary.Table.Rows)+1)
		records = append(records, primary.Table.Columns)
		for _, row := range primary.Table.Rows {
			record := make([]string, len(row))
			for i, cell := range row {
				record[i] = cell.Raw
			}
			records = append(records, record)
		}
		return records
	}

	records := [][]string{{"Champ", "Valeur"}}
	for _, field := range doc.Info {
		records = append(records, []string{field.Label, field.Value.Raw})
	}
	return records
}
