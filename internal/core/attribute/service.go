// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute

import (
	"context"
	"log/slog"
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

// Definitions returns the full attribute catalogue in display order.
func (service *Service) Definitions(context context.Context) ([]*Definition, error) {
	return service.repo.ListDefinitions(context)
}

// Index returns the catalogue keyed by code for one request's lookups.
func (service *Service) Index(context context.Context) (Index, error) {
	definitions, err := service.repo.ListDefinitions(context)
	if err != nil {
		return nil, err
	}
	return BuildIndex(definitions), nil
}
