package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/services/forecast"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const envPrefix = "HOSPITAL_ATLAS"

type Config struct {
	Profile      string         `mapstructure:"profile"`
	ProfilesPath string         `mapstructure:"profiles_path"`
	LogLevel     string         `mapstructure:"log_level"`
	Server       ServerConfig   `mapstructure:"server"`
	Forecast     ForecastConfig `mapstructure:"forecast"`
	Report       ReportConfig   `mapstructure:"report"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type ForecastConfig struct {
	Window         int     `mapstructure:"window"`
	Margin         float64 `mapstructure:"margin"`
	TrendThreshold float64 `mapstructure:"trend_threshold"`
	Confidence     float64 `mapstructure:"confidence"`
}

func (f ForecastConfig) Settings() forecast.Settings {
	return forecast.Settings{
		Window:         f.Window,
		Margin:         decimal.NewFromFloat(f.Margin),
		TrendThreshold: f.TrendThreshold,
		Confidence:     f.Confidence,
	}
}

// ReportConfig selects where exported documents are written. A non-empty
// bucket sends them to S3, otherwise they land in OutputDir.
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	S3Bucket  string `mapstructure:"s3_bucket"`
	S3Prefix  string `mapstructure:"s3_prefix"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", "default")
	v.SetDefault("profiles_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("forecast.window", 8)
	v.SetDefault("forecast.margin", 0.10)
	v.SetDefault("forecast.trend_threshold", 0.05)
	v.SetDefault("forecast.confidence", 85.0)
	v.SetDefault("report.output_dir", "reports")
	v.SetDefault("report.s3_bucket", "")
	v.SetDefault("report.s3_prefix", "")
}

// LoadConfig reads settings from path (optional) and HOSPITAL_ATLAS_* env vars,
// e.g. HOSPITAL_ATLAS_SERVER_PORT=9090.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Forecast.Window <= 0 {
		errs = append(errs, fmt.Errorf("forecast.window must be positive, got %d", c.Forecast.Window))
	}
	if c.Forecast.Margin < 0 || c.Forecast.Margin >= 1 {
		errs = append(errs, fmt.Errorf("forecast.margin must be in [0, 1), got %v", c.Forecast.Margin))
	}
	if c.Forecast.TrendThreshold < 0 {
		errs = append(errs, fmt.Errorf("forecast.trend_threshold must not be negative, got %v", c.Forecast.TrendThreshold))
	}
	if c.Forecast.Confidence < 0 || c.Forecast.Confidence > 100 {
		errs = append(errs, fmt.Errorf("forecast.confidence must be in [0, 100], got %v", c.Forecast.Confidence))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	return errors.Join(errs...)
}
