package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{}

func (stubSource) ListStays(context.Context) ([]domain.Stay, error) {
	return []domain.Stay{
		{ID: 1, PatientID: 1, Service: "Cardiologie", EntryDate: time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC),
			Status: domain.StayInProgress, TotalCost: decimal.NewFromInt(1200)},
		{ID: 2, PatientID: 2, Service: "Urgences", EntryDate: time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
			Status: domain.StayFinished, TotalCost: decimal.NewFromInt(300)},
	}, nil
}

func (stubSource) ListActs(context.Context) ([]domain.MedicalAct, error) { return nil, nil }

func (stubSource) ListInvestments(context.Context) ([]domain.Investment, error) { return nil, nil }

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	ctrl, err := dashboard.NewController(dashboard.Options{
		Source: stubSource{},
		Now:    func() time.Time { return time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    Dependencies{Dashboard: ctrl},
	})
	testServer := httptest.NewServer(webAPI.Handler())
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedType   string
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "Overview",
			path:           "/api/v1/overview",
			expectedStatus: http.StatusOK,
			expectedType:   "application/json",
			check: func(t *testing.T, body []byte) {
				overview, err := unmarshal[api.Overview](body)
				require.NoError(t, err)
				assert.Equal(t, int64(1), overview.StaysInProgress)
				assert.Equal(t, int64(1), overview.ActiveByService["Cardiologie"])
			},
		},
		{
			name:           "Series",
			path:           "/api/v1/series?metric=costs&days=3",
			expectedStatus: http.StatusOK,
			expectedType:   "application/json",
			check: func(t *testing.T, body []byte) {
				series, err := unmarshal[api.SeriesResponse](body)
				require.NoError(t, err)
				assert.Len(t, series.Global.Buckets, 3)
				assert.True(t, decimal.NewFromInt(1500).Equal(series.Global.Total))
				assert.Len(t, series.ByDimension, 2)
			},
		},
		{
			name:           "Forecast",
			path:           "/api/v1/forecast/Cardiologie?history=7&horizon=5",
			expectedStatus: http.StatusOK,
			expectedType:   "application/json",
			check: func(t *testing.T, body []byte) {
				forecast, err := unmarshal[api.Forecast](body)
				require.NoError(t, err)
				assert.Equal(t, "Cardiologie", forecast.Service)
				assert.Len(t, forecast.Points, 5)
			},
		},
		{
			name:           "Compare services",
			path:           "/api/v1/forecast?history=7",
			expectedStatus: http.StatusOK,
			expectedType:   "application/json",
			check: func(t *testing.T, body []byte) {
				forecasts, err := unmarshal[[]api.Forecast](body)
				require.NoError(t, err)
				require.Len(t, forecasts, 2)
				assert.Equal(t, "Cardiologie", forecasts[0].Service)
				assert.Equal(t, "Urgences", forecasts[1].Service)
			},
		},
		{
			name:           "External forecast without prediction service",
			path:           "/api/v1/forecast/Cardiologie?external=true",
			expectedStatus: http.StatusServiceUnavailable,
			expectedType:   "application/json",
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"no external prediction provider configured"}`, string(body))
			},
		},
		{
			name:           "Costs report",
			path:           "/api/v1/reports/costs?format=csv&from=2025-01-01&to=2025-01-31&budget=Cardiologie:1000",
			expectedStatus: http.StatusOK,
			expectedType:   "text/csv; charset=utf-8",
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Cardiologie;1000.00;1200.00;200.00")
			},
		},
		{
			name:           "Unknown route",
			path:           "/api/v1/workspaces",
			expectedStatus: http.StatusNotFound,
			check:          func(*testing.T, []byte) {},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			if tc.expectedType != "" {
				assert.Equal(t, tc.expectedType, resp.Header.Get("Content-Type"))
			}

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}
}

func unmarshal[T any](data []byte) (T, error) {
	var response T
	err := json.Unmarshal(data, &response)
	return response, err
}
