package report

import (
	"slices"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// NoData is rendered in place of missing content.
const NoData = "Aucune donnée"

const (
	headingSummary     = "Résumé"
	headingCosts       = "Répartition des coûts"
	headingFinancial   = "Résumé financier"
	headingForecast    = "Prévisions"
	headingSynthesis   = "Synthèse"
	headingKeyFactors  = "Facteurs clés"
	headingAdvice      = "Recommandations"
	headingAnomalies   = "Anomalies détectées"
	headingCustomBlock = "Contenu"
)

var (
	costColumns     = []string{"Service", "Budget alloué", "Dépenses", "Écart"}
	forecastColumns = []string{"Date", "Valeur", "Min", "Max", "Unité"}
	anomalyColumns  = []string{"Niveau", "Description", "Impact"}
)

func summarySection(ctx Context) domain.Section {
	if ctx.Summary == "" {
		return domain.Section{Heading: headingSummary, Kind: domain.SectionNarrative, Text: NoData, Placeholder: true}
	}
	return domain.Section{Heading: headingSummary, Kind: domain.SectionNarrative, Text: ctx.Summary}
}

func placeholderTable(heading string, columns []string) domain.Section {
	return domain.Section{
		Heading:     heading,
		Kind:        domain.SectionTable,
		Table:       &domain.Table{Columns: slices.Clone(columns)},
		Text:        NoData,
		Placeholder: true,
		Primary:     true,
	}
}

func placeholderList(heading string) domain.Section {
	return domain.Section{Heading: heading, Kind: domain.SectionList, Text: NoData, Placeholder: true}
}

func listSection(heading string, values []string) domain.Section {
	if len(values) == 0 {
		return placeholderList(heading)
	}
	items := make([]domain.Field, len(values))
	for i, v := range values {
		items[i] = domain.Field{Value: domain.TextCell(v)}
	}
	return domain.Section{Heading: heading, Kind: domain.SectionList, Items: items}
}

func moneyCell(d decimal.Decimal) domain.Cell {
	return domain.Cell{Raw: PlainDecimal(d), Display: FormatMoney(d)}
}

func buildCosts(ctx Context) []domain.Section {
	content, _ := ctx.Content.(CostsContent)
	sections := []domain.Section{summarySection(ctx)}
	if len(content.Budgets) == 0 {
		return append(sections, placeholderTable(headingCosts, costColumns), placeholderList(headingFinancial))
	}

	table := &domain.Table{Columns: slices.Clone(costColumns)}
	allocated, spent := decimal.Zero, decimal.Zero
	for _, b := range content.Budgets {
		variance := b.Variance()
		table.Rows = append(table.Rows, []domain.Cell{
			domain.TextCell(b.Service),
			moneyCell(b.Allocated),
			moneyCell(b.Spent),
			{Raw: PlainDecimal(variance), Display: FormatSignedMoney(variance)},
		})
		allocated = allocated.Add(b.Allocated)
		spent = spent.Add(b.Spent)
	}

	return append(sections,
		domain.Section{Heading: headingCosts, Kind: domain.SectionTable, Table: table, Primary: true},
		financialSummary(allocated, spent),
	)
}

func financialSummary(allocated, spent decimal.Decimal) domain.Section {
	gap := allocated.Sub(spent)
	share := decimal.Zero
	if !allocated.IsZero() {
		share = gap.Abs().Div(allocated).Mul(decimal.NewFromInt(100)).Round(2)
	}

	label := "Économies"
	if gap.IsNegative() {
		label = "Dépassement"
	}

	return domain.Section{
		Heading: headingFinancial,
		Kind:    domain.SectionList,
		Items: []domain.Field{
			{Label: "Budget total", Value: moneyCell(allocated)},
			{Label: "Dépenses totales", Value: moneyCell(spent)},
			{Label: label, Value: domain.Cell{
				Raw:     PlainDecimal(gap.Abs()),
				Display: FormatMoney(gap.Abs()) + " (" + FormatNumber(share, 2) + " %)",
			}},
		},
	}
}

func buildPredictions(ctx Context) []domain.Section {
	sections := []domain.Section{summarySection(ctx)}
	content, ok := ctx.Content.(PredictionsContent)
	if !ok {
		return append(sections,
			placeholderTable(headingForecast, forecastColumns),
			placeholderList(headingSynthesis),
			placeholderList(headingKeyFactors),
			placeholderList(headingAdvice),
		)
	}

	forecast := content.Assessment.Forecast
	profile := forecast.PredictionType.Profile()

	table := placeholderTable(headingForecast, forecastColumns)
	if len(forecast.PredictedPoints) > 0 {
		table.Text, table.Placeholder = "", false
	}
	for _, p := range forecast.PredictedPoints {
		date := FormatDate(p.Date)
		table.Table.Rows = append(table.Table.Rows, []domain.Cell{
			{Raw: date, Display: date},
			measureCell(forecast.PredictionType, p.Value),
			measureCell(forecast.PredictionType, p.Min),
			measureCell(forecast.PredictionType, p.Max),
			{Raw: profile.CSVUnit, Display: profile.Unit},
		})
	}

	trend := forecast.Trend.Attributes()
	risk := content.Assessment.Risk.Attributes()
	synthesis := domain.Section{
		Heading: headingSynthesis,
		Kind:    domain.SectionList,
		Items: []domain.Field{
			{Label: "Service", Value: domain.TextCell(forecast.Service)},
			{Label: "Indicateur", Value: domain.Cell{Raw: string(forecast.PredictionType), Display: profile.Label}},
			{Label: "Tendance", Value: domain.Cell{Raw: string(forecast.Trend), Display: trend.Label}},
			{Label: "Variation", Value: percentCell(forecast.VariationPercent)},
			{Label: "Confiance", Value: percentCell(forecast.ConfidencePercent)},
			{Label: "Valeur moyenne", Value: measureCell(forecast.PredictionType, forecast.MeanValue)},
			{Label: "Valeur min", Value: measureCell(forecast.PredictionType, forecast.MinValue)},
			{Label: "Valeur max", Value: measureCell(forecast.PredictionType, forecast.MaxValue)},
			{Label: "Niveau de risque", Value: domain.Cell{Raw: string(content.Assessment.Risk), Display: risk.Label}},
		},
	}

	return append(sections,
		table,
		synthesis,
		listSection(headingKeyFactors, forecast.KeyFactors),
		listSection(headingAdvice, forecast.Recommendations),
	)
}

func measureCell(predictionType domain.PredictionType, v decimal.Decimal) domain.Cell {
	if predictionType == domain.PredictionCost {
		return moneyCell(v)
	}
	display := FormatNumber(v, 2)
	if unit := predictionType.Profile().Unit; unit != "" {
		display += " " + unit
	}
	return domain.Cell{Raw: PlainDecimal(v), Display: display}
}

func percentCell(p float64) domain.Cell {
	return domain.Cell{Raw: PlainDecimal(decimal.NewFromFloat(p)), Display: FormatPercent(p)}
}

func buildAnomalies(ctx Context) []domain.Section {
	sections := []domain.Section{summarySection(ctx)}
	content, _ := ctx.Content.(AnomaliesContent)
	if len(content.Anomalies) == 0 {
		return append(sections, placeholderTable(headingAnomalies, anomalyColumns))
	}

	table := &domain.Table{Columns: slices.Clone(anomalyColumns)}
	for _, a := range content.Anomalies {
		table.Rows = append(table.Rows, []domain.Cell{
			{Raw: string(a.Level), Display: a.Level.Attributes().Label},
			domain.TextCell(a.Description),
			{Raw: string(a.Impact), Display: a.Impact.Attributes().Label},
		})
	}

	return append(sections, domain.Section{
		Heading: headingAnomalies,
		Kind:    domain.SectionTable,
		Table:   table,
		Primary: true,
	})
}

func buildCustom(ctx Context) []domain.Section {
	sections := []domain.Section{summarySection(ctx)}
	content, _ := ctx.Content.(CustomContent)
	if len(content.Sections) == 0 {
		return append(sections, domain.Section{
			Heading:     headingCustomBlock,
			Kind:        domain.SectionNarrative,
			Text:        NoData,
			Placeholder: true,
		})
	}

	for _, s := range content.Sections {
		sections = append(sections, cloneSection(s))
	}
	return sections
}

func cloneSection(s domain.Section) domain.Section {
	s.Items = slices.Clone(s.Items)
	if s.Table != nil {
		rows := make([][]domain.Cell, len(s.Table.Rows))
		for i, row := range s.Table.Rows {
			rows[i] = slices.Clone(row)
		}
		s.Table = &domain.Table{Columns: slices.Clone(s.Table.Columns), Rows: rows}
	}
	return s
}
