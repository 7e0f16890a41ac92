package report

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

const (
	ptToMM = 25.4 / 72

	brandSize    = 24
	subtitleSize = 12
	titleSize    = 18
	infoSize     = 11
	headingSize  = 12
	bodySize     = 10
	footerSize   = 9

	infoValueOffset = 50
	infoStep        = 7
	listIndent      = 5
	listStep        = 7
	narrativeStep   = 5
	cellPadding     = 2
	continuationTop = 5
)

var (
	colorBlack  = domain.RGB{}
	colorWhite  = domain.RGB{R: 255, G: 255, B: 255}
	colorInfo   = domain.RGB{R: 80, G: 80, B: 80}
	colorBody   = domain.RGB{R: 60, G: 60, B: 60}
	colorFooter = domain.RGB{R: 120, G: 120, B: 120}
	colorRule   = domain.RGB{R: 200, G: 200, B: 200}
	colorShade  = domain.RGB{R: 245, G: 245, B: 245}
)

// PageSpec describes the page geometry in millimetres.
type PageSpec struct {
	Width        float64 // 210
	Height       float64 // 297
	Margin       float64
	HeaderBand   float64
	FooterOffset float64 // footer baseline distance from the bottom edge
	RowHeight    float64
	Brand        string
	Subtitle     string
	// Measure returns the width of text at a font size. Layout estimates it
	// from the rune count when nil.
	Measure func(text string, fontSize float64) float64
}

func A4() PageSpec {
	return PageSpec{
		Width:        210,
		Height:       297,
		Margin:       20,
		HeaderBand:   40,
		FooterOffset: 20,
		RowHeight:    8,
		Brand:        "Hospital Atlas",
		Subtitle:     "Rapport Hospitalier",
	}
}

type ElementKind string

const (
	ElementText ElementKind = "text"
	ElementRect ElementKind = "rect"
	ElementLine ElementKind = "line"
)

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Element is one drawing instruction. Text is anchored on its baseline at
// (X, Y); rects span W x H from (X, Y); lines run from (X, Y) to (X2, Y2).
type Element struct {
	Kind     ElementKind
	X, Y     float64
	X2, Y2   float64
	W, H     float64
	Text     string
	FontSize float64
	Style    string // "", "B", "I"
	Align    Align
	Color    domain.RGB
}

type Page struct {
	Number   int
	Elements []Element
}

// Texts returns the text content of the page in drawing order.
func (p Page) Texts() []string {
	var texts []string
	for _, e := range p.Elements {
		if e.Kind == ElementText {
			texts = append(texts, e.Text)
		}
	}
	return texts
}

// Layout paginates a document. The first page carries the banner, title and
// info block; every page gets a footer; tables repeat their header row when
// they break across pages.
func Layout(doc *domain.ReportDocument, spec PageSpec) []Page {
	l := &layouter{spec: spec, measure: spec.Measure}
	if l.measure == nil {
		l.measure = estimateWidth
	}

	l.pages = []Page{{Number: 1}}
	l.banner()
	l.title(doc.Title)
	l.info(doc.Info)
	for _, s := range doc.Sections {
		l.section(s)
	}
	l.footers(doc.GeneratedAt)

	return l.pages
}

func estimateWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * 0.5 * ptToMM
}

type layouter struct {
	spec    PageSpec
	measure func(string, float64) float64
	pages   []Page
	y       float64
}

func (l *layouter) add(e Element) {
	page := &l.pages[len(l.pages)-1]
	page.Elements = append(page.Elements, e)
}

func (l *layouter) text(x float64, s string, size float64, style string, color domain.RGB) {
	l.add(Element{Kind: ElementText, X: x, Y: l.y, Text: s, FontSize: size, Style: style, Align: AlignLeft, Color: color})
}

func (l *layouter) rule(y float64) {
	l.add(Element{Kind: ElementLine, X: l.spec.Margin, Y: y, X2: l.spec.Width - l.spec.Margin, Y2: y, Color: colorRule})
}

func (l *layouter) contentWidth() float64 {
	return l.spec.Width - 2*l.spec.Margin
}

// bottom is the lowest baseline content may use above the footer rule.
func (l *layouter) bottom() float64 {
	return l.spec.Height - l.spec.FooterOffset - 10
}

func (l *layouter) newPage() {
	l.pages = append(l.pages, Page{Number: len(l.pages) + 1})
	l.y = l.spec.Margin + continuationTop
}

func (l *layouter) ensure(height float64) {
	if l.y+height > l.bottom() {
		l.newPage()
	}
}

func (l *layouter) banner() {
	s := l.spec
	l.add(Element{Kind: ElementRect, X: 0, Y: 0, W: s.Width, H: s.HeaderBand, Color: domain.ColorBlue})
	l.add(Element{
		Kind: ElementText, X: s.Width / 2, Y: s.HeaderBand / 2, Text: s.Brand,
		FontSize: brandSize, Style: "B", Align: AlignCenter, Color: colorWhite,
	})
	l.add(Element{
		Kind: ElementText, X: s.Width / 2, Y: s.HeaderBand * 3 / 4, Text: s.Subtitle,
		FontSize: subtitleSize, Align: AlignCenter, Color: colorWhite,
	})
	l.y = s.HeaderBand + 15
}

func (l *layouter) title(title string) {
	l.text(l.spec.Margin, l.fit(title, l.contentWidth(), titleSize), titleSize, "B", colorBlack)
	l.y += 10
	l.rule(l.y)
	l.y += 10
}

func (l *layouter) info(fields []domain.Field) {
	if len(fields) == 0 {
		return
	}
	valueWidth := l.contentWidth() - infoValueOffset
	for _, f := range fields {
		l.text(l.spec.Margin, f.Label+":", infoSize, "B", colorInfo)
		l.text(l.spec.Margin+infoValueOffset, l.fit(f.Value.Display, valueWidth, infoSize), infoSize, "", colorInfo)
		l.y += infoStep
	}
	l.y += 10
}

func (l *layouter) section(s domain.Section) {
	l.ensure(8 + l.spec.RowHeight)
	l.text(l.spec.Margin, s.Heading, headingSize, "B", colorBlack)
	l.y += 8

	switch s.Kind {
	case domain.SectionTable:
		l.table(s)
	case domain.SectionList:
		l.list(s)
	default:
		l.narrative(s)
	}
}

func (l *layouter) narrative(s domain.Section) {
	style, color := "", colorBody
	if s.Placeholder {
		style, color = "I", colorFooter
	}
	for _, line := range l.wrap(s.Text, l.contentWidth(), bodySize) {
		l.ensure(narrativeStep)
		l.text(l.spec.Margin, line, bodySize, style, color)
		l.y += narrativeStep
	}
	l.y += 10
}

func (l *layouter) list(s domain.Section) {
	x := l.spec.Margin + listIndent
	if s.Placeholder || len(s.Items) == 0 {
		l.text(x, NoData, bodySize, "I", colorFooter)
		l.y += listStep + 5
		return
	}

	for _, item := range s.Items {
		entry := item.Value.Display
		if item.Label != "" {
			entry = item.Label + " : " + entry
		}
		for i, line := range l.wrap(entry, l.contentWidth()-listIndent-4, bodySize) {
			if i == 0 {
				line = "• " + line
			} else {
				line = "  " + line
			}
			l.ensure(listStep)
			l.text(x, line, bodySize, "", colorBody)
			l.y += listStep
		}
	}
	l.y += 5
}

func (l *layouter) table(s domain.Section) {
	if s.Table == nil || len(s.Table.Columns) == 0 {
		l.narrative(domain.Section{Text: NoData, Placeholder: true})
		return
	}

	columns := s.Table.Columns
	colWidth := l.contentWidth() / float64(len(columns))
	rowHeight := l.spec.RowHeight

	l.ensure(2 * rowHeight)
	l.tableHeader(columns, colWidth)

	if len(s.Table.Rows) == 0 {
		l.text(l.spec.Margin+cellPadding, NoData, bodySize, "I", colorFooter)
		l.rule(l.y - 5 + rowHeight)
		l.y += rowHeight
	}

	for i, row := range s.Table.Rows {
		if l.y-5+rowHeight > l.bottom() {
			l.newPage()
			l.tableHeader(columns, colWidth)
		}
		for c, cell := range row {
			if c >= len(columns) {
				break
			}
			cellX := l.spec.Margin + float64(c)*colWidth
			if i%2 == 1 {
				l.add(Element{Kind: ElementRect, X: cellX, Y: l.y - 5, W: colWidth, H: rowHeight, Color: colorShade})
			}
			l.text(cellX+cellPadding, l.fit(cell.Display, colWidth-2*cellPadding, bodySize), bodySize, "", colorBlack)
		}
		l.rule(l.y - 5 + rowHeight)
		l.y += rowHeight
	}
	l.y += 7
}

func (l *layouter) tableHeader(columns []string, colWidth float64) {
	for c, column := range columns {
		cellX := l.spec.Margin + float64(c)*colWidth
		l.add(Element{Kind: ElementRect, X: cellX, Y: l.y - 5, W: colWidth, H: l.spec.RowHeight, Color: domain.ColorBlue})
		l.text(cellX+cellPadding, l.fit(column, colWidth-2*cellPadding, bodySize), bodySize, "B", colorWhite)
	}
	l.y += l.spec.RowHeight
}

func (l *layouter) footers(generatedAt time.Time) {
	s := l.spec
	footerY := s.Height - s.FooterOffset
	total := len(l.pages)

	for i := range l.pages {
		page := &l.pages[i]
		page.Elements = append(page.Elements,
			Element{Kind: ElementLine, X: s.Margin, Y: footerY - 5, X2: s.Width - s.Margin, Y2: footerY - 5, Color: colorRule},
			Element{
				Kind: ElementText, X: s.Margin, Y: footerY, Text: FormatDate(generatedAt),
				FontSize: footerSize, Style: "I", Align: AlignLeft, Color: colorFooter,
			},
			Element{
				Kind: ElementText, X: s.Width / 2, Y: footerY, Text: "Généré automatiquement par " + s.Brand,
				FontSize: footerSize, Style: "I", Align: AlignCenter, Color: colorFooter,
			},
			Element{
				Kind: ElementText, X: s.Width - s.Margin, Y: footerY, Text: fmt.Sprintf("Page %d / %d", page.Number, total),
				FontSize: footerSize, Style: "I", Align: AlignRight, Color: colorFooter,
			},
		)
	}
}

// fit truncates text with an ellipsis so that it fits width.
func (l *layouter) fit(text string, width, size float64) string {
	if l.measure(text, size) <= width {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + "..."
		if l.measure(candidate, size) <= width {
			return candidate
		}
	}
	return ""
}

// wrap breaks text on spaces into lines no wider than width. Words longer
// than a line are kept whole.
func (l *layouter) wrap(text string, width, size float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if l.measure(line+" "+word, size) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
