package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// forecastFlags are shared by the forecast and report commands.
type forecastFlags struct {
	service        string
	predictionType string
	horizon        int
	history        int
	external       bool
}

func (f *forecastFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.service, "service", "", "Service to forecast (empty for the whole hospital)")
	cmd.Flags().StringVar(&f.predictionType, "type", string(domain.PredictionCost),
		"Prediction type (COUT, PATIENTS, OCCUPATION)")
	cmd.Flags().IntVar(&f.horizon, "horizon", dashboard.DefaultHorizonDays,
		fmt.Sprintf("Days to forecast (at most %d)", dashboard.MaxHorizonDays))
	cmd.Flags().IntVar(&f.history, "history", dashboard.DefaultHistoryDays,
		fmt.Sprintf("Observed days used by the local forecaster (at most %d)", dashboard.MaxHistoryDays))
	cmd.Flags().BoolVar(&f.external, "external", false, "Use the ML prediction service instead of the local forecaster")
}

func (f *forecastFlags) validate() error {
	if err := dashboard.CheckDays("horizon", f.horizon, dashboard.MaxHorizonDays); err != nil {
		return err
	}
	return dashboard.CheckDays("history", f.history, dashboard.MaxHistoryDays)
}

func (f *forecastFlags) query() dashboard.ForecastQuery {
	return dashboard.ForecastQuery{
		Service:     f.service,
		Type:        domain.PredictionType(strings.ToUpper(f.predictionType)),
		HorizonDays: f.horizon,
		HistoryDays: f.history,
		External:    f.external,
	}
}

type ForecastCmd struct {
	forecastFlags
	all      bool
	session  Session
	reporter *export.Reporter
}

func NewForecastCmd(session Session, reporter *export.Reporter) *cobra.Command {
	fc := &ForecastCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast costs or admissions and classify the risk",
		Args:  cobra.NoArgs,
		RunE:  fc.run,
	}

	fc.register(cmd)
	cmd.Flags().BoolVar(&fc.all, "all", false, "Compare every service")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := fc.validate(); err != nil {
		return err
	}

	ctrl, err := fc.session.Controller(ctx)
	if err != nil {
		return err
	}

	if fc.all {
		assessments, err := ctrl.CompareServices(ctx, fc.query())
		if err != nil {
			return err
		}
		return fc.reporter.Handle(comparisonView(assessments))
	}

	assessment, err := ctrl.Forecast(ctx, fc.query())
	if err != nil {
		return err
	}
	return fc.reporter.Handle(assessmentView(assessment))
}

func serviceName(service string) string {
	if service == "" {
		return "Tous services"
	}
	return service
}

func trendText(t domain.Trend) string {
	attrs := t.Attributes()
	return attrs.Symbol + " " + attrs.Label
}

func assessmentView(a domain.Assessment) export.View {
	f := a.Forecast
	view := export.View{
		Title: fmt.Sprintf("Prévisions %s - %s", serviceName(f.Service), f.PredictionType.Profile().Label),
		Summary: []export.Field{
			{Label: "Tendance", Value: trendText(f.Trend)},
			{Label: "Variation", Value: report.FormatPercent(f.VariationPercent)},
			{Label: "Confiance", Value: report.FormatPercent(f.ConfidencePercent)},
			{Label: "Moyenne", Value: measure(f.PredictionType, f.MeanValue)},
			{Label: "Minimum", Value: measure(f.PredictionType, f.MinValue)},
			{Label: "Maximum", Value: measure(f.PredictionType, f.MaxValue)},
			{Label: "Risque", Value: a.Risk.Attributes().Label},
		},
		Columns: []string{"Date", "Valeur", "Min", "Max"},
	}
	for _, p := range f.PredictedPoints {
		view.Rows = append(view.Rows, []string{
			report.FormatDate(p.Date),
			measure(f.PredictionType, p.Value),
			measure(f.PredictionType, p.Min),
			measure(f.PredictionType, p.Max),
		})
	}
	return view
}

func comparisonView(assessments []domain.Assessment) export.View {
	view := export.View{
		Title:   "Comparaison des services",
		Columns: []string{"Service", "Tendance", "Variation", "Moyenne", "Risque"},
	}
	for _, a := range assessments {
		f := a.Forecast
		view.Rows = append(view.Rows, []string{
			serviceName(f.Service),
			trendText(f.Trend),
			report.FormatPercent(f.VariationPercent),
			measure(f.PredictionType, f.MeanValue),
			a.Risk.Attributes().Label,
		})
	}
	return view
}
