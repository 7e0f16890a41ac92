package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/hospital-atlas/pkg/artifact"
	"github.com/de-tools/hospital-atlas/pkg/config"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	profilecfg "github.com/de-tools/hospital-atlas/pkg/services/config"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

// globalFlags are bound to the persistent flags of the root command.
type globalFlags struct {
	configPath   string
	profilesPath string
	profile      string
	logLevel     string
}

// session opens the selected backend lazily, at most once per invocation.
type session struct {
	flags    *globalFlags
	backends dashboard.BackendRegistry

	mu      sync.Mutex
	cfg     *config.Config
	backend *dashboard.Backend
	ctrl    *dashboard.Controller
}

func newSession(flags *globalFlags, backends dashboard.BackendRegistry) *session {
	return &session{flags: flags, backends: backends}
}

// settings loads the settings file once; explicit flags override it.
func (s *session) settings() (*config.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	cfg, err := config.LoadConfig(s.flags.configPath)
	if err != nil {
		return nil, err
	}
	if s.flags.profile != "" {
		cfg.Profile = s.flags.profile
	}
	if s.flags.profilesPath != "" {
		cfg.ProfilesPath = s.flags.profilesPath
	}
	if cfg.ProfilesPath == "" {
		cfg.ProfilesPath = profilecfg.DefaultPath()
	}
	s.cfg = cfg
	return cfg, nil
}

func (s *session) registry() (profilecfg.Registry, error) {
	cfg, err := s.settings()
	if err != nil {
		return nil, err
	}
	return profilecfg.NewRegistry(cfg.ProfilesPath)
}

func (s *session) Profiles(ctx context.Context) ([]domain.ConnectionProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.registry()
	if err != nil {
		return nil, err
	}
	return registry.GetProfiles(ctx)
}

func (s *session) Controller(ctx context.Context) (*dashboard.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl != nil {
		return s.ctrl, nil
	}

	registry, err := s.registry()
	if err != nil {
		return nil, err
	}
	profile, err := registry.GetProfile(ctx, s.cfg.Profile)
	if err != nil {
		return nil, err
	}

	backend, err := s.backends.Create(ctx, profile)
	if err != nil {
		return nil, err
	}

	ctrl, err := dashboard.NewController(dashboard.Options{
		Source:      backend.Source,
		Predictions: backend.Predictions,
		Forecast:    s.cfg.Forecast.Settings(),
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("profile", profile.String()).Msg("backend opened")
	s.backend = &backend
	s.ctrl = ctrl
	return ctrl, nil
}

func (s *session) Sink(ctx context.Context) (artifact.Sink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.settings()
	if err != nil {
		return nil, err
	}
	return artifact.NewSink(ctx, cfg.Report)
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	err := s.backend.Close()
	s.backend = nil
	s.ctrl = nil
	if err != nil {
		return fmt.Errorf("failed to close backend: %w", err)
	}
	return nil
}
