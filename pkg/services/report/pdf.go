package report

import (
	"bytes"
	"fmt"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// ExportPDF lays the document out on spec and renders it with the core
// Helvetica font, encoded as cp1252.
func ExportPDF(doc *domain.ReportDocument, spec PageSpec) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: spec.Width, Ht: spec.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(spec.Margin, spec.Margin, spec.Margin)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(spec.Brand, true)

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	spec.Measure = func(text string, fontSize float64) float64 {
		pdf.SetFont(fontFamily, "", fontSize)
		return pdf.GetStringWidth(translate(text))
	}

	for _, page := range Layout(doc, spec) {
		pdf.AddPage()
		for _, e := range page.Elements {
			draw(pdf, translate, e)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(pdf *fpdf.Fpdf, translate func(string) string, e Element) {
	switch e.Kind {
	case ElementRect:
		pdf.SetFillColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		pdf.Rect(e.X, e.Y, e.W, e.H, "F")
	case ElementLine:
		pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		pdf.Line(e.X, e.Y, e.X2, e.Y2)
	case ElementText:
		pdf.SetFont(fontFamily, e.Style, e.FontSize)
		pdf.SetTextColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		text := translate(e.Text)
		x := e.X
		switch e.Align {
		case AlignCenter:
			x -= pdf.GetStringWidth(text) / 2
		case AlignRight:
			x -= pdf.GetStringWidth(text)
		}
		pdf.Text(x, e.Y, text)
	}
}
