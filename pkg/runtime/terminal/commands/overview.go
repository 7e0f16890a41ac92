package commands

import (
	"fmt"
	"strconv"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/hospital-atlas/pkg/services/kpi"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type OverviewCmd struct {
	session  Session
	reporter *export.Reporter
}

func NewOverviewCmd(session Session, reporter *export.Reporter) *cobra.Command {
	oc := &OverviewCmd{session: session, reporter: reporter}
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard KPIs",
		Args:  cobra.NoArgs,
		RunE:  oc.run,
	}
}

func (oc *OverviewCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ctrl, err := oc.session.Controller(ctx)
	if err != nil {
		return err
	}
	overview, err := ctrl.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute overview: %w", err)
	}

	revenue := export.View{
		Title: "Vue d'ensemble",
		Summary: []export.Field{
			{Label: "Patients", Value: strconv.FormatInt(overview.TotalPatients, 10)},
			{Label: "Séjours en cours", Value: strconv.FormatInt(overview.StaysInProgress, 10)},
			{Label: "Actes médicaux", Value: strconv.FormatInt(overview.TotalActs, 10)},
			{Label: "Revenus de l'année", Value: report.FormatMoney(overview.RevenueYear)},
			{Label: "Revenus du mois", Value: report.FormatMoney(overview.RevenueMonth)},
			{Label: "Investissements", Value: report.FormatMoney(overview.Investments.Sum())},
		},
		Columns: []string{"Mois", "Revenus", "Actes"},
	}
	for _, b := range overview.RevenueByMonth.Buckets {
		revenue.Rows = append(revenue.Rows, []string{b.Label, report.FormatMoney(b.Total), strconv.Itoa(b.Count)})
	}
	if err := oc.reporter.Handle(revenue); err != nil {
		return err
	}

	dimension := kpi.StaysByService.Dimension
	sums := overview.Stays.Breakdowns[dimension]
	counts := overview.Stays.Breakdowns[domain.CountBreakdownKey(dimension)]
	services := export.View{
		Title:   "Séjours par service",
		Columns: []string{"Service", "Séjours", "En cours", "Coût total"},
	}
	for _, service := range sortedKeys(sums) {
		services.Rows = append(services.Rows, []string{
			service,
			counts[service].String(),
			strconv.FormatInt(overview.ActiveByService[service], 10),
			report.FormatMoney(sums[service]),
		})
	}
	return oc.reporter.Handle(services)
}
