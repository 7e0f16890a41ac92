package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	forecastFlags
	template  string
	format    string
	title     string
	period    string
	from      string
	to        string
	status    string
	summary   string
	budgets   map[string]string
	preview   bool
	session   Session
	previewer DocumentPreviewer
}

func NewReportCmd(session Session, previewer DocumentPreviewer) *cobra.Command {
	rc := &ReportCmd{session: session, previewer: previewer}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compile a report and export it as CSV or PDF",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.template, "template", "", "Report template (COSTS, PREDICTIONS, ANOMALIES, CUSTOM)")
	cmd.Flags().StringVar(&rc.format, "format", string(report.FormatPrintable), "Export format (csv, pdf)")
	cmd.Flags().StringVar(&rc.title, "title", "", "Report title")
	cmd.Flags().StringVar(&rc.period, "period", "", "Period label, e.g. MENSUEL or T1 2025")
	cmd.Flags().StringVar(&rc.from, "from", "", "First day covered (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Last day covered (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.status, "status", "", "Report status (BROUILLON, PUBLIE, ARCHIVE)")
	cmd.Flags().StringVar(&rc.summary, "summary", "", "Summary paragraph")
	cmd.Flags().StringToStringVar(&rc.budgets, "budget", nil, "Allocated budget per service, e.g. Cardiologie=150000")
	cmd.Flags().BoolVar(&rc.preview, "preview", true, "Print the compiled document")
	rc.register(cmd)

	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func parseDay(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", flag, value)
	}
	return t, nil
}

func parseBudgets(values map[string]string) (map[string]decimal.Decimal, error) {
	allocations := make(map[string]decimal.Decimal, len(values))
	for service, amount := range values {
		d, err := report.ParseAmount(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid budget for %s: %w", service, err)
		}
		allocations[service] = d
	}
	return allocations, nil
}

func (rc *ReportCmd) request() (dashboard.ReportRequest, error) {
	template, err := report.ParseTemplate(rc.template)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	from, err := parseDay("from", rc.from)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	to, err := parseDay("to", rc.to)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	status, err := report.ParseStatus(rc.status)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	allocations, err := parseBudgets(rc.budgets)
	if err != nil {
		return dashboard.ReportRequest{}, err
	}
	if err := rc.validate(); err != nil {
		return dashboard.ReportRequest{}, err
	}

	return dashboard.ReportRequest{
		Template:    template,
		Title:       rc.title,
		Period:      rc.period,
		From:        from,
		To:          to,
		Status:      status,
		Summary:     rc.summary,
		Allocations: allocations,
		Forecast:    rc.query(),
	}, nil
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	format, err := report.ParseFormat(strings.ToLower(rc.format))
	if err != nil {
		return err
	}
	req, err := rc.request()
	if err != nil {
		return err
	}

	ctrl, err := rc.session.Controller(ctx)
	if err != nil {
		return err
	}
	doc, err := ctrl.Report(ctx, req)
	if err != nil {
		return err
	}
	if rc.preview {
		if err := rc.previewer.Handle(doc); err != nil {
			return err
		}
	}

	data, err := report.Export(doc, format)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	sink, err := rc.session.Sink(ctx)
	if err != nil {
		return err
	}
	location, err := sink.Put(ctx, report.FileName(doc, format), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rapport exporté : %s\n", location)
	return nil
}
