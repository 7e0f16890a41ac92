package client

import (
	"context"

	"github.com/de-tools/hospital-atlas/pkg/adapters"
	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
)

func (c *Client) ListStays(ctx context.Context) ([]domain.Stay, error) {
	var payload []api.Stay
	if err := c.get(ctx, "sejours", nil, &payload); err != nil {
		return nil, err
	}

	stays := make([]domain.Stay, 0, len(payload))
	for _, s := range payload {
		stays = append(stays, adapters.MapApiStayToDomain(s))
	}
	return stays, nil
}

func (c *Client) ListActs(ctx context.Context) ([]domain.MedicalAct, error) {
	var payload []api.MedicalAct
	if err := c.get(ctx, "actes", nil, &payload); err != nil {
		return nil, err
	}

	acts := make([]domain.MedicalAct, 0, len(payload))
	for _, a := range payload {
		acts = append(acts, adapters.MapApiMedicalActToDomain(a))
	}
	return acts, nil
}

func (c *Client) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	var payload []api.Investment
	if err := c.get(ctx, "investments", nil, &payload); err != nil {
		return nil, err
	}

	investments := make([]domain.Investment, 0, len(payload))
	for _, i := range payload {
		investments = append(investments, adapters.MapApiInvestmentToDomain(i))
	}
	return investments, nil
}
