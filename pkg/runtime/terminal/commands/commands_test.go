package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/artifact"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

type stubSource struct {
	stays []domain.Stay
	acts  []domain.MedicalAct
}

func (s *stubSource) ListStays(context.Context) ([]domain.Stay, error) { return s.stays, nil }
func (s *stubSource) ListActs(context.Context) ([]domain.MedicalAct, error) { return s.acts, nil }
func (s *stubSource) ListInvestments(context.Context) ([]domain.Investment, error) {
	return nil, nil
}

type fakeSession struct {
	ctrl     *dashboard.Controller
	profiles []domain.ConnectionProfile
	sink     artifact.Sink
}

func (f *fakeSession) Controller(context.Context) (*dashboard.Controller, error) { return f.ctrl, nil }
func (f *fakeSession) Profiles(context.Context) ([]domain.ConnectionProfile, error) {
	return f.profiles, nil
}
func (f *fakeSession) Sink(context.Context) (artifact.Sink, error) { return f.sink, nil }

type recordingPreviewer struct {
	docs []*domain.ReportDocument
}

func (r *recordingPreviewer) Handle(doc *domain.ReportDocument) error {
	r.docs = append(r.docs, doc)
	return nil
}

func newSession(t *testing.T) *fakeSession {
	t.Helper()
	source := &stubSource{
		stays: []domain.Stay{
			{ID: 1, PatientID: 1, Service: "Cardiologie", EntryDate: time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC),
				Status: domain.StayInProgress, TotalCost: decimal.NewFromInt(1200)},
			{ID: 2, PatientID: 2, Service: "Urgences", EntryDate: time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
				Status: domain.StayFinished, TotalCost: decimal.NewFromInt(300)},
		},
		acts: []domain.MedicalAct{
			{StayID: 1, Type: "CHIRURGIE", PerformedAt: time.Date(2025, 1, 30, 9, 0, 0, 0, time.UTC), Tariff: decimal.NewFromInt(900)},
		},
	}
	ctrl, err := dashboard.NewController(dashboard.Options{
		Source: source,
		Now:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	return &fakeSession{
		ctrl: ctrl,
		profiles: []domain.ConnectionProfile{
			{Name: "local", Type: domain.ProfileTypeAPI, Host: "http://localhost:8085/api"},
			{Name: "warehouse", Type: domain.ProfileTypeDatabase, DatabaseURL: "postgres://atlas:secret@db:5432/hospital",
				Driver: "postgres"},
			{Name: "analytics", Type: domain.ProfileTypeDatabase, DatabaseURL: "atlas:secret@myorg-account/HOSPITAL",
				Driver: "snowflake"},
		},
		sink: artifact.NewFileSink(t.TempDir()),
	}
}

func execute(t *testing.T, cmd *cobra.Command, out *bytes.Buffer, args ...string) error {
	t.Helper()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestOverviewCmd(t *testing.T) {
	// Given
	var out bytes.Buffer
	cmd := NewOverviewCmd(newSession(t), export.NewReporter(&out))

	// When
	err := execute(t, cmd, &out)

	// Then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Patients: 2")
	assert.Contains(t, out.String(), "Séjours en cours: 1")
	assert.Contains(t, out.String(), "Revenus du mois: 900,00 €")
	assert.Contains(t, out.String(), "| Cardiologie | 1")
}

func TestSeriesCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  string
	}{
		{
			name:     "global daily series",
			args:     []string{"--days", "3"},
			contains: []string{"Total: 1 500,00", "| 30 janv.", "daily"},
		},
		{
			name:     "by dimension",
			args:     []string{"--days", "3", "--by-dimension"},
			contains: []string{"| Cardiologie | 1 200,00", "| Urgences"},
		},
		{
			name:    "unknown metric",
			args:    []string{"--metric", "beds"},
			wantErr: `unknown metric "beds"`,
		},
		{
			name:    "days above the limit",
			args:    []string{"--days", "100000"},
			wantErr: "days of 100000 days exceeds the maximum of 1095",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewSeriesCmd(newSession(t), export.NewReporter(&out))

			err := execute(t, cmd, &out, tt.args...)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestForecastCmd(t *testing.T) {
	t.Run("single service", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewForecastCmd(newSession(t), export.NewReporter(&out))

		err := execute(t, cmd, &out, "--service", "Cardiologie", "--history", "2", "--horizon", "2")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Prévisions Cardiologie - Coût estimé")
		assert.Contains(t, out.String(), "Tendance: ↓ Baisse")
		assert.Contains(t, out.String(), "Risque: Moyen")
		assert.Contains(t, out.String(), "| 01/02/2025 |")
	})

	t.Run("compare services", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewForecastCmd(newSession(t), export.NewReporter(&out))

		err := execute(t, cmd, &out, "--all", "--history", "2", "--type", "patients")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Comparaison des services")
		assert.Contains(t, out.String(), "| Cardiologie |")
		assert.Contains(t, out.String(), "patients")
	})

	t.Run("occupancy is not available locally", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewForecastCmd(newSession(t), export.NewReporter(&out))

		err := execute(t, cmd, &out, "--type", "OCCUPATION")

		var unsupported *dashboard.UnsupportedPredictionError
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("horizon above the limit", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewForecastCmd(newSession(t), export.NewReporter(&out))

		err := execute(t, cmd, &out, "--horizon", "2000000")

		var daysErr *dashboard.TooManyDaysError
		require.ErrorAs(t, err, &daysErr)
		assert.Equal(t, dashboard.MaxHorizonDays, daysErr.Max)
	})
}

func TestReportCmd(t *testing.T) {
	// Given
	session := newSession(t)
	previewer := &recordingPreviewer{}
	var out bytes.Buffer
	cmd := NewReportCmd(session, previewer)

	// When
	err := execute(t, cmd, &out,
		"--template", "couts",
		"--format", "CSV",
		"--title", "Rapport mensuel",
		"--budget", "Cardiologie=1000,Urgences=500",
	)

	// Then
	require.NoError(t, err)
	require.Len(t, previewer.docs, 1)
	assert.Equal(t, domain.TemplateCosts, previewer.docs[0].Template)

	path := filepath.Join(session.sink.(*artifact.FileSink).Dir(), "Rapport_mensuel_2025-01-31.csv")
	assert.Contains(t, out.String(), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Cardiologie;1000.00;1200.00;200.00")
}

func TestReportCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "template required", args: []string{}, wantErr: `required flag(s) "template" not set`},
		{name: "unknown template", args: []string{"--template", "budget"}, wantErr: `unknown report template "budget"`},
		{name: "bad format", args: []string{"--template", "costs", "--format", "xlsx"}, wantErr: `unsupported export format "xlsx"`},
		{name: "bad date", args: []string{"--template", "costs", "--from", "31/01/2025"}, wantErr: `invalid --from "31/01/2025": expected YYYY-MM-DD`},
		{name: "bad status", args: []string{"--template", "costs", "--status", "FINAL"}, wantErr: `unknown report status "FINAL"`},
		{name: "bad budget", args: []string{"--template", "costs", "--budget", "Urgences=abc"}, wantErr: "invalid budget for Urgences"},
		{name: "history above the limit", args: []string{"--template", "predictions", "--history", "5000"},
			wantErr: "history of 5000 days exceeds the maximum of 1095"},
		{name: "reversed range", args: []string{"--template", "costs", "--from", "2025-02-01", "--to", "2025-01-01"},
			wantErr: "start is after end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewReportCmd(newSession(t), &recordingPreviewer{})

			err := execute(t, cmd, &out, tt.args...)

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfilesCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := NewProfilesCmd(newSession(t), export.NewReporter(&out))

	err := execute(t, cmd, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "http://localhost:8085/api")
	assert.Contains(t, out.String(), "postgres://atlas:xxxxx@db:5432/hospital")
	assert.Contains(t, out.String(), "xxxxx@myorg-account/HOSPITAL")
	assert.Contains(t, out.String(), "snowflake")
	assert.NotContains(t, out.String(), "secret")
}
