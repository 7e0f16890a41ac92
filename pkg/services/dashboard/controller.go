package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/forecast"
	"github.com/de-tools/hospital-atlas/pkg/services/kpi"
	"github.com/de-tools/hospital-atlas/pkg/services/report"
	"github.com/de-tools/hospital-atlas/pkg/services/timeseries"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Source provides the raw hospital entities, either from the dashboard REST
// API or straight from its database.
type Source interface {
	ListStays(ctx context.Context) ([]domain.Stay, error)
	ListActs(ctx context.Context) ([]domain.MedicalAct, error)
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
}

// PredictionProvider serves predictions computed by the external ML service.
type PredictionProvider interface {
	Predict(ctx context.Context, service string, predictionType domain.PredictionType, daysAhead int) (domain.ForecastResult, error)
	PredictAll(ctx context.Context, predictionType domain.PredictionType, daysAhead int) ([]domain.ForecastResult, error)
}

var ErrNoPredictionProvider = errors.New("no external prediction provider configured")

type Options struct {
	Source      Source
	Predictions PredictionProvider // optional
	Forecast    forecast.Settings
	Registry    report.Registry // nil uses the built-in templates
	Now         func() time.Time
}

type Controller struct {
	source      Source
	predictions PredictionProvider
	aggregator  *timeseries.Aggregator
	forecaster  *forecast.Forecaster
	compiler    *report.Compiler
	now         func() time.Time
}

func NewController(opts Options) (*Controller, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("dashboard controller requires a source")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		source:      opts.Source,
		predictions: opts.Predictions,
		aggregator:  timeseries.NewAggregator(nil),
		forecaster:  forecast.NewForecaster(opts.Forecast),
		compiler:    report.NewCompiler(opts.Registry, now),
		now:         now,
	}, nil
}

type entities struct {
	stays       []domain.Stay
	acts        []domain.MedicalAct
	investments []domain.Investment
}

func (c *Controller) fetchAll(ctx context.Context) (entities, error) {
	var e entities
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		e.stays, err = c.source.ListStays(gctx)
		return wrap("stays", err)
	})
	g.Go(func() (err error) {
		e.acts, err = c.source.ListActs(gctx)
		return wrap("acts", err)
	})
	g.Go(func() (err error) {
		e.investments, err = c.source.ListInvestments(gctx)
		return wrap("investments", err)
	})
	if err := g.Wait(); err != nil {
		return entities{}, err
	}
	return e, nil
}

func wrap(entity string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to list %s: %w", entity, err)
}

// Overview returns the landing KPIs as of the controller's clock.
func (c *Controller) Overview(ctx context.Context) (domain.Overview, error) {
	logger := zerolog.Ctx(ctx)

	e, err := c.fetchAll(ctx)
	if err != nil {
		return domain.Overview{}, err
	}

	overview, err := kpi.Overview(e.stays, e.acts, e.investments, c.now())
	if err != nil {
		return domain.Overview{}, err
	}

	logger.Debug().
		Int("stays", len(e.stays)).
		Int("acts", len(e.acts)).
		Int("investments", len(e.investments)).
		Msg("overview computed")
	return overview, nil
}

// historyRange covers the last days calendar days, today included.
func (c *Controller) historyRange(days int) domain.DateRange {
	now := c.now()
	return domain.DayRange(now.AddDate(0, 0, -(days - 1)), now)
}
