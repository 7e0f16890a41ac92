package commands

import (
	"fmt"
	"strconv"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/de-tools/hospital-atlas/pkg/services/timeseries"
	"github.com/spf13/cobra"
)

type SeriesCmd struct {
	metric      string
	days        int
	byDimension bool
	session     Session
	reporter    *export.Reporter
}

func NewSeriesCmd(session Session, reporter *export.Reporter) *cobra.Command {
	sc := &SeriesCmd{session: session, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Aggregate a metric into a period-bucketed series",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.metric, "metric", string(dashboard.MetricCosts),
		"Metric to aggregate (costs, admissions, revenue, revenue_by_service, investments)")
	cmd.Flags().IntVar(&sc.days, "days", 30,
		fmt.Sprintf("Number of days ending today (at most %d)", dashboard.MaxHistoryDays))
	cmd.Flags().BoolVar(&sc.byDimension, "by-dimension", false, "Show one total per service, act type or category")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	metric, err := dashboard.ParseMetric(sc.metric)
	if err != nil {
		return err
	}
	if err := dashboard.CheckDays("days", sc.days, dashboard.MaxHistoryDays); err != nil {
		return err
	}
	ctrl, err := sc.session.Controller(ctx)
	if err != nil {
		return err
	}
	result, err := ctrl.Series(ctx, metric, sc.days)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Série %s (%d jours)", metric, sc.days)
	if sc.byDimension {
		return sc.reporter.Handle(dimensionView(title, result.ByDimension))
	}
	return sc.reporter.Handle(seriesView(title, result.Global))
}

// seriesView prints one row per period of the series granularity.
func seriesView(title string, series domain.Series) export.View {
	view := export.View{
		Title: title,
		Summary: []export.Field{
			{Label: "Total", Value: report.FormatNumber(series.Total(), 2)},
			{Label: "Événements", Value: strconv.Itoa(series.Count())},
			{Label: "Granularité", Value: string(series.Granularity)},
		},
		Columns: []string{"Période", "Total", "Nombre"},
	}
	for _, b := range timeseries.Rollup(series.Buckets, series.Granularity) {
		view.Rows = append(view.Rows, []string{b.Label, report.FormatNumber(b.Total, 2), strconv.Itoa(b.Count)})
	}
	return view
}

func dimensionView(title string, series []domain.Series) export.View {
	view := export.View{
		Title:   title,
		Columns: []string{"Dimension", "Total", "Nombre"},
	}
	for _, s := range series {
		view.Rows = append(view.Rows, []string{s.DimensionFilter, report.FormatNumber(s.Total(), 2), strconv.Itoa(s.Count())})
	}
	return view
}
