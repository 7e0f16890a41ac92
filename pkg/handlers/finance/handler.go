package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultSeriesDays = 30

// Dashboard is the part of the dashboard controller served over HTTP.
type Dashboard interface {
	Overview(ctx context.Context) (domain.Overview, error)
	Series(ctx context.Context, metric dashboard.Metric, days int) (dashboard.SeriesResult, error)
	Forecast(ctx context.Context, query dashboard.ForecastQuery) (domain.Assessment, error)
	CompareServices(ctx context.Context, query dashboard.ForecastQuery) ([]domain.Assessment, error)
	Report(ctx context.Context, req dashboard.ReportRequest) (*domain.ReportDocument, error)
}

type Handler struct {
	dashboard Dashboard
}

func NewHandler(dashboard Dashboard) *Handler {
	return &Handler{dashboard: dashboard}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboard.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapOverviewDomainToApi(overview))
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	metric, err := dashboard.ParseMetric(withDefault(query.Get("metric"), string(dashboard.MetricCosts)))
	if err != nil {
		writeError(w, r, badRequest(err))
		return
	}
	days, err := intParam(query.Get("days"), "days", defaultSeriesDays, dashboard.MaxHistoryDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.dashboard.Series(r.Context(), metric, days)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := api.SeriesResponse{
		Metric:      string(metric),
		Global:      adapters.MapSeriesDomainToApi(result.Global),
		ByDimension: make([]api.Series, 0, len(result.ByDimension)),
	}
	for _, s := range result.ByDimension {
		response.ByDimension = append(response.ByDimension, adapters.MapSeriesDomainToApi(s))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	query, err := forecastQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	query.Service = chi.URLParam(r, "service")

	assessment, err := h.dashboard.Forecast(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapAssessmentDomainToApi(assessment))
}

func (h *Handler) CompareServices(w http.ResponseWriter, r *http.Request) {
	query, err := forecastQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	assessments, err := h.dashboard.CompareServices(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]api.Forecast, 0, len(assessments))
	for _, a := range assessments {
		response = append(response, adapters.MapAssessmentDomainToApi(a))
	}
	writeJSON(w, r, http.StatusOK, response)
}

var contentTypes = map[report.Format]string{
	report.FormatCSV:       "text/csv; charset=utf-8",
	report.FormatPrintable: "application/pdf",
}

// GetReport compiles a template and streams the export as an attachment.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	format, err := report.ParseFormat(strings.ToLower(withDefault(r.URL.Query().Get("format"), string(report.FormatPrintable))))
	if err != nil {
		writeError(w, r, badRequest(err))
		return
	}
	req, err := reportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.dashboard.Report(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	data, err := report.Export(doc, format)
	if err != nil {
		writeError(w, r, fmt.Errorf("failed to export report: %w", err))
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(doc, format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error().
			Err(err).
			Str("report_id", doc.ID.String()).
			Msg("failed to write report")
	}
}

func forecastQuery(r *http.Request) (dashboard.ForecastQuery, error) {
	query := r.URL.Query()

	horizon, err := intParam(query.Get("horizon"), "horizon", dashboard.DefaultHorizonDays, dashboard.MaxHorizonDays)
	if err != nil {
		return dashboard.ForecastQuery{}, err
	}
	history, err := intParam(query.Get("history"), "history", dashboard.DefaultHistoryDays, dashboard.MaxHistoryDays)
	if err != nil {
		return dashboard.ForecastQuery{}, err
	}
	external := false
	if v := query.Get("external"); v != "" {
		if external, err = strconv.ParseBool(v); err != nil {
			return dashboard.ForecastQuery{}, badRequest(fmt.Errorf("invalid external %q", v))
		}
	}

	return dashboard.ForecastQuery{
		Service:     query.Get("service"),
		Type:        domain.PredictionType(strings.ToUpper(query.Get("type"))),
		HorizonDays: horizon,
		HistoryDays: history,
		External:    external,
	}, nil
}

// reportRequest reads budgets as repeated budget=Service:amount parameters.
func reportRequest(r *http.Request) (dashboard.ReportRequest, error) {
	query := r.URL.Query()

	template, err := report.ParseTemplate(chi.URLParam(r, "template"))
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	status, err := report.ParseStatus(query.Get("status"))
	if err != nil {
		return dashboard.ReportRequest{}, badRequest(err)
	}
	from, err := dayParam(query.Get("from"), "from")
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	to, err := dayParam(query.Get("to"), "to")
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	allocations := make(map[string]decimal.Decimal)
	for _, budget := range query["budget"] {
		service, amount, ok := strings.Cut(budget, ":")
		if !ok || service == "" {
			return dashboard.ReportRequest{}, badRequest(fmt.Errorf("invalid budget %q: expected Service:amount", budget))
		}
		d, err := report.ParseAmount(amount)
		if err != nil {
			return dashboard.ReportRequest{}, badRequest(fmt.Errorf("invalid budget for %s: %w", service, err))
		}
		allocations[service] = d
	}

	forecast, err := forecastQuery(r)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}

	return dashboard.ReportRequest{
		Template:    template,
		Title:       query.Get("title"),
		Period:      query.Get("period"),
		From:        from,
		To:          to,
		Status:      status,
		Summary:     query.Get("summary"),
		Allocations: allocations,
		Forecast:    forecast,
	}, nil
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// intParam parses a day count in 1..max.
func intParam(v, name string, fallback, max int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, badRequest(fmt.Errorf("invalid %s %q: expected a positive number of days", name, v))
	}
	if err := dashboard.CheckDays(name, n, max); err != nil {
		return 0, badRequest(err)
	}
	return n, nil
}

func dayParam(v, name string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, badRequest(fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", name, v))
	}
	return t, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
