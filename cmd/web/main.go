package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/hospital-atlas/pkg/config"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/server"
	profilecfg "github.com/de-tools/hospital-atlas/pkg/services/config"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/de-tools/hospital-atlas/pkg/store/client"
	"github.com/de-tools/hospital-atlas/pkg/store/sql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
	profileName  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Hospital Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", "",
		"Path to the connection profiles file (default is $HOME/.hospitalcfg)")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Connection profile to serve")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if profileName != "" {
		cfg.Profile = profileName
	}
	if profilesPath != "" {
		cfg.ProfilesPath = profilesPath
	}
	if cfg.ProfilesPath == "" {
		cfg.ProfilesPath = profilecfg.DefaultPath()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := profilecfg.NewRegistry(cfg.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfg.ProfilesPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Type: `%s`", profile.Name, profile.Type)
	}

	profile, err := registry.GetProfile(ctx, cfg.Profile)
	if err != nil {
		return err
	}

	backends := dashboard.NewBackendRegistry()
	if err := backends.Register(domain.ProfileTypeAPI, client.BackendFactory); err != nil {
		return err
	}
	if err := backends.Register(domain.ProfileTypeDatabase, sql.BackendFactory); err != nil {
		return err
	}

	backend, err := backends.Create(ctx, profile)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close backend")
		}
	}()

	ctrl, err := dashboard.NewController(dashboard.Options{
		Source:      backend.Source,
		Predictions: backend.Predictions,
		Forecast:    cfg.Forecast.Settings(),
	})
	if err != nil {
		return fmt.Errorf("failed to create dashboard controller: %w", err)
	}
	logger.Info().Str("profile", profile.String()).Msg("serving profile")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: ctrl,
		},
	})
	return webAPI.Start()
}
