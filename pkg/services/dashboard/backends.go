package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Backend is what a connection profile resolves to.
type Backend struct {
	Source      Source
	Predictions PredictionProvider // nil when the profile cannot reach the ML service
	Close       func() error
}

// BackendFactory opens the backend of one profile type
type BackendFactory func(ctx context.Context, profile domain.ConnectionProfile) (Backend, error)

// BackendRegistry manages backend factories per profile type
type BackendRegistry interface {
	// Register adds a new backend factory
	Register(profileType domain.ProfileType, factory BackendFactory) error
	// Create opens the backend matching the profile type
	Create(ctx context.Context, profile domain.ConnectionProfile) (Backend, error)
	// ListTypes returns the registered profile types
	ListTypes() []domain.ProfileType
}

type backendRegistry struct {
	mu        sync.RWMutex
	factories map[domain.ProfileType]BackendFactory
}

func NewBackendRegistry() BackendRegistry {
	return &backendRegistry{
		factories: make(map[domain.ProfileType]BackendFactory),
	}
}

func (r *backendRegistry) Register(profileType domain.ProfileType, factory BackendFactory) error {
	if profileType == "" {
		return fmt.Errorf("profile type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[profileType]; exists {
		return fmt.Errorf("profile type %q is already registered", profileType)
	}

	r.factories[profileType] = factory
	return nil
}

func (r *backendRegistry) Create(ctx context.Context, profile domain.ConnectionProfile) (Backend, error) {
	r.mu.RLock()
	factory, exists := r.factories[profile.Type]
	r.mu.RUnlock()

	if !exists {
		return Backend{}, fmt.Errorf("profile type %q is not registered", profile.Type)
	}

	backend, err := factory(ctx, profile)
	if err != nil {
		return Backend{}, fmt.Errorf("failed to open %s: %w", profile, err)
	}
	if backend.Close == nil {
		backend.Close = func() error { return nil }
	}
	return backend, nil
}

func (r *backendRegistry) ListTypes() []domain.ProfileType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]domain.ProfileType, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
