// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package vehicle

import (
	"context"
	"log/slog"

	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListMakes(context context.Context) ([]*Make, error) {
	return service.repo.ListMakes(context)
}

func (service *Service) ModelsByMakeSlug(context context.Context, rawSlug string) ([]*Model, error) {
	// Tolerate "Alfa Romeo" where "alfa-romeo" is meant.
	makeSlug := slug.From(rawSlug)

	models, err := service.repo.ModelsByMakeSlug(context, makeSlug)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		// Distinguish "make unknown" from "make without models".
		return nil, apperr.NotFound("make " + makeSlug)
	}
	return models, nil
}

func (service *Service) EditionsByModel(context context.Context, modelID string) ([]*Edition, error) {
	exists, err := service.repo.ExistsAtLevel(context, LevelModel, modelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("model " + modelID)
	}
	return service.repo.EditionsByModel(context, modelID)
}

// Chain resolves the full ancestor path of one edition.
func (service *Service) Chain(context context.Context, editionID string) (*Chain, error) {
	return service.repo.AncestorChain(context, editionID)
}
