package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// When
	cfg, err := LoadConfig("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Profile)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 8, cfg.Forecast.Window)
	assert.Equal(t, 0.10, cfg.Forecast.Margin)
	assert.Equal(t, "reports", cfg.Report.OutputDir)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `profile: warehouse
server:
  port: "9000"
  shutdown_timeout: 5s
forecast:
  window: 12
  margin: 0.2
report:
  s3_bucket: hospital-reports
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("HOSPITAL_ATLAS_SERVER_PORT", "9090")

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "warehouse", cfg.Profile)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 12, cfg.Forecast.Window)
	assert.Equal(t, 0.2, cfg.Forecast.Margin)
	assert.Equal(t, 0.05, cfg.Forecast.TrendThreshold)
	assert.Equal(t, "hospital-reports", cfg.Report.S3Bucket)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: a: b"), 0o644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "window", mutate: func(c *Config) { c.Forecast.Window = 0 }, wantErr: "forecast.window"},
		{name: "margin", mutate: func(c *Config) { c.Forecast.Margin = 1 }, wantErr: "forecast.margin"},
		{name: "threshold", mutate: func(c *Config) { c.Forecast.TrendThreshold = -1 }, wantErr: "forecast.trend_threshold"},
		{name: "confidence", mutate: func(c *Config) { c.Forecast.Confidence = 101 }, wantErr: "forecast.confidence"},
		{name: "port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			cfg := Config{
				Server:   ServerConfig{Port: "8080"},
				Forecast: ForecastConfig{Window: 8, Margin: 0.1, TrendThreshold: 0.05, Confidence: 85},
			}
			tt.mutate(&cfg)

			// When
			err := cfg.Validate()

			// Then
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestForecastConfig_Settings(t *testing.T) {
	settings := ForecastConfig{Window: 4, Margin: 0.15, TrendThreshold: 0.1, Confidence: 70}.Settings()

	assert.Equal(t, 4, settings.Window)
	assert.Equal(t, "0.15", settings.Margin.String())
	assert.Equal(t, 0.1, settings.TrendThreshold)
	assert.Equal(t, 70.0, settings.Confidence)
}
