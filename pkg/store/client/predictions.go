package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/forecast"
)

func predictionQuery(daysAhead int, predictionType domain.PredictionType) url.Values {
	q := url.Values{}
	q.Set("daysAhead", strconv.Itoa(daysAhead))
	q.Set("predictionType", string(predictionType))
	return q
}

func toForecast(p api.PredictionResponse) domain.ForecastResult {
	result := adapters.MapApiPredictionToDomain(p)
	result.VariationPercent = forecast.BandVariationPercent(result)
	return result
}

// Predict fetches the externally computed prediction for one service.
func (c *Client) Predict(
	ctx context.Context,
	service string,
	predictionType domain.PredictionType,
	daysAhead int,
) (domain.ForecastResult, error) {
	var payload api.PredictionResponse
	path := "ml/predictions/service/" + url.PathEscape(service)
	if err := c.get(ctx, path, predictionQuery(daysAhead, predictionType), &payload); err != nil {
		return domain.ForecastResult{}, err
	}

	result := toForecast(payload)
	if result.Service == "" {
		result.Service = service
	}
	if result.PredictionType == "" {
		result.PredictionType = predictionType
	}
	return result, nil
}

func (c *Client) PredictAll(
	ctx context.Context,
	predictionType domain.PredictionType,
	daysAhead int,
) ([]domain.ForecastResult, error) {
	var payload []api.PredictionResponse
	if err := c.get(ctx, "ml/predictions/all-services", predictionQuery(daysAhead, predictionType), &payload); err != nil {
		return nil, err
	}

	results := make([]domain.ForecastResult, 0, len(payload))
	for _, p := range payload {
		results = append(results, toForecast(p))
	}
	return results, nil
}
