package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/de-tools/hospital-atlas/pkg/services/timeseries"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ReportRequest struct {
	Template domain.Template
	Title    string
	Period   string
	From     time.Time // zero means the first day of the current month
	To       time.Time // zero means now
	Status   domain.ReportStatus
	Summary  string

	Allocations map[string]decimal.Decimal // COSTS and ANOMALIES: budget per service
	Forecast    ForecastQuery              // PREDICTIONS
	Sections    []domain.Section           // CUSTOM
}

// Report gathers the content a template needs and compiles the document.
func (c *Controller) Report(ctx context.Context, req ReportRequest) (*domain.ReportDocument, error) {
	logger := zerolog.Ctx(ctx)

	now := c.now()
	from, to := req.From, req.To
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	}
	period := domain.DayRange(from, to)
	if err := timeseries.ValidateRange(period, 1); err != nil {
		return nil, err
	}

	rctx := report.Context{
		Title:   req.Title,
		Period:  req.Period,
		From:    from,
		To:      to,
		Status:  req.Status,
		Summary: req.Summary,
	}

	switch req.Template {
	case domain.TemplateCosts, domain.TemplateAnomalies:
		stays, err := c.source.ListStays(ctx)
		if err != nil {
			return nil, wrap("stays", err)
		}
		budgets := Budgets(stays, req.Allocations, period)

		if req.Template == domain.TemplateCosts {
			rctx.Content = report.CostsContent{Budgets: budgets}
			break
		}

		query := req.Forecast.withDefaults()
		query.External = false
		if query.Type != domain.PredictionCost && query.Type != domain.PredictionPatients {
			query.Type = domain.PredictionCost
		}
		if err := query.validate(); err != nil {
			return nil, err
		}
		assessments, err := c.compareLocal(ctx, stays, query)
		if err != nil {
			return nil, err
		}
		rctx.Content = report.AnomaliesContent{Anomalies: DetectAnomalies(budgets, assessments)}
	case domain.TemplatePredictions:
		assessment, err := c.Forecast(ctx, req.Forecast)
		if err != nil {
			return nil, err
		}
		rctx.Content = report.PredictionsContent{Assessment: assessment}
	case domain.TemplateCustom:
		if len(req.Sections) > 0 {
			rctx.Content = report.CustomContent{Sections: req.Sections}
		}
	}

	doc, err := c.compiler.Compile(req.Template, rctx)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("template", string(doc.Template)).
		Str("report_id", doc.ID.String()).
		Int("sections", len(doc.Sections)).
		Msg("report compiled")
	return doc, nil
}

// Budgets sums the cost of the stays admitted within r per service and pairs
// it with the allocated amounts. Services with an allocation but no stays are
// kept with zero spending. The result is sorted by service.
func Budgets(stays []domain.Stay, allocations map[string]decimal.Decimal, r domain.DateRange) []domain.ServiceBudget {
	spent := make(map[string]decimal.Decimal)
	for _, s := range stays {
		if !r.Contains(s.EntryDate) {
			continue
		}
		service := s.Service
		if service == "" {
			service = domain.UnclassifiedDimension
		}
		spent[service] = spent[service].Add(s.TotalCost)
	}
	for service := range allocations {
		if _, ok := spent[service]; !ok {
			spent[service] = decimal.Zero
		}
	}

	budgets := make([]domain.ServiceBudget, 0, len(spent))
	for service, amount := range spent {
		budgets = append(budgets, domain.ServiceBudget{
			Service:   service,
			Allocated: allocations[service],
			Spent:     amount,
		})
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Service < budgets[j].Service
	})
	return budgets
}
