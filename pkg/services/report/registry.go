package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

// Builder lays out the body sections of one template.
type Builder func(ctx Context) []domain.Section

// Registry manages the section builders of each report template
type Registry interface {
	// Register adds a builder for a template
	Register(template domain.Template, builder Builder) error
	// Lookup returns the builder of a template or an UnknownTemplateError
	Lookup(template domain.Template) (Builder, error)
	// Templates lists registered templates in name order
	Templates() []domain.Template
}

type registry struct {
	mu       sync.RWMutex
	builders map[domain.Template]Builder
}

func NewRegistry() Registry {
	return &registry{
		builders: make(map[domain.Template]Builder),
	}
}

// DefaultRegistry holds the builders of the four built-in templates.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for template, builder := range map[domain.Template]Builder{
		domain.TemplateCosts:       buildCosts,
		domain.TemplatePredictions: buildPredictions,
		domain.TemplateAnomalies:   buildAnomalies,
		domain.TemplateCustom:      buildCustom,
	} {
		// the registry is empty, so registration cannot fail
		_ = r.Register(template, builder)
	}
	return r
}

func (r *registry) Register(template domain.Template, builder Builder) error {
	if template == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if builder == nil {
		return fmt.Errorf("builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[template]; exists {
		return fmt.Errorf("template %q is already registered", template)
	}

	r.builders[template] = builder
	return nil
}

func (r *registry) Lookup(template domain.Template) (Builder, error) {
	r.mu.RLock()
	builder, exists := r.builders[template]
	r.mu.RUnlock()

	if !exists {
		return nil, &domain.UnknownTemplateError{Template: string(template)}
	}
	return builder, nil
}

func (r *registry) Templates() []domain.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]domain.Template, 0, len(r.builders))
	for template := range r.builders {
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i] < templates[j] })
	return templates
}
