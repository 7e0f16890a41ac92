package report

import (
	"fmt"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

type Format string

const (
	FormatCSV       Format = "csv"
	FormatPrintable Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatPrintable:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Export serializes a compiled document. Empty documents still produce a
// valid file.
func Export(doc *domain.ReportDocument, format Format) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nothing to export")
	}

	switch format {
	case FormatCSV:
		return ExportCSV(doc)
	case FormatPrintable:
		return ExportPDF(doc, A4())
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// FileName returns the download name of an exported document.
func FileName(doc *domain.ReportDocument, format Format) string {
	return doc.BaseName + "." + string(format)
}
