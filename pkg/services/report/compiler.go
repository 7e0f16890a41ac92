package report

import (
	"fmt"
	"regexp"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/google/uuid"
)

// unsafeName matches runs of characters that cannot appear in an exported file
// name or in a Content-Disposition filename.
var unsafeName = regexp.MustCompile(`[\s\p{Cc}/\\:*?"<>|]+`)

// Compiler assembles report documents from the templates of its registry.
type Compiler struct {
	registry Registry
	now      func() time.Time
}

// NewCompiler uses the built-in templates when registry is nil and the
// wall clock when now is nil.
func NewCompiler(registry Registry, now func() time.Time) *Compiler {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if now == nil {
		now = time.Now
	}
	return &Compiler{registry: registry, now: now}
}

func (c *Compiler) Compile(template domain.Template, ctx Context) (*domain.ReportDocument, error) {
	build, err := c.registry.Lookup(template)
	if err != nil {
		return nil, err
	}
	if ctx.Content != nil && ctx.Content.Template() != template {
		return nil, fmt.Errorf("content for template %s cannot compile a %s report", ctx.Content.Template(), template)
	}

	generatedAt := c.now()
	title := ctx.Title
	if title == "" {
		title = "Rapport " + template.Attributes().Label
	}

	return &domain.ReportDocument{
		ID:          uuid.New(),
		Template:    template,
		Title:       title,
		BaseName:    baseName(title, ctx, generatedAt),
		Info:        infoBlock(template, ctx),
		Sections:    build(ctx),
		GeneratedAt: generatedAt,
	}, nil
}

func infoBlock(template domain.Template, ctx Context) []domain.Field {
	status := ctx.Status
	if status == "" {
		status = domain.ReportDraft
	}
	period := ctx.Period
	if period == "" {
		period = missingMarker
	}

	return []domain.Field{
		{Label: "Type", Value: domain.Cell{Raw: string(template), Display: template.Attributes().Label}},
		{Label: "Période", Value: domain.TextCell(period)},
		{Label: "Date début", Value: domain.TextCell(FormatDate(ctx.From))},
		{Label: "Date fin", Value: domain.TextCell(FormatDate(ctx.To))},
		{Label: "Statut", Value: domain.Cell{Raw: string(status), Display: status.Attributes().Label}},
	}
}

// baseName names exported files: predictions_{service}_{type}_{date} for
// forecasts, the title otherwise. Each run of unsafe characters becomes one
// underscore.
func baseName(title string, ctx Context, at time.Time) string {
	day := at.Format(time.DateOnly)
	if content, ok := ctx.Content.(PredictionsContent); ok {
		forecast := content.Assessment.Forecast
		return fmt.Sprintf("predictions_%s_%s_%s",
			unsafeName.ReplaceAllString(forecast.Service, "_"), forecast.PredictionType, day)
	}
	return unsafeName.ReplaceAllString(title, "_") + "_" + day
}
