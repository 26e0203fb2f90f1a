// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package resolution

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/override"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/apperr"
)

// Catalog supplies attribute definitions in display order.
type Catalog interface {
	Definitions(context context.Context) ([]*attribute.Definition, error)
}

// VehicleReader resolves edition ancestor chains.
type VehicleReader interface {
	AncestorChain(context context.Context, editionID string) (*vehicle.Chain, error)
}

// OverrideReader loads stored override sets per (level, entity).
type OverrideReader interface {
	Read(context context.Context, level vehicle.Level, entityID string) (*override.Set, error)
}

// Engine computes effective values with provenance. It is stateless and
// safe for concurrent use; every call reads fresh data.
type Engine struct {
	catalog   Catalog
	vehicles  VehicleReader
	overrides OverrideReader
	logger    *slog.Logger
}

func NewEngine(catalog Catalog, vehicles VehicleReader, overrides OverrideReader, logger *slog.Logger) *Engine {
	return &Engine{
		catalog:   catalog,
		vehicles:  vehicles,
		overrides: overrides,
		logger:    logger,
	}
}

// Resolve computes the effective value of every catalogue attribute for one
// edition, with display-group titles localized for lang.
func (engine *Engine) Resolve(context context.Context, editionID, lang string) (*Resolution, error) {
	return engine.resolve(context, newReadCache(engine.overrides), editionID, lang)
}

// ResolveMany resolves a batch of editions sharing one read cache, so the
// model and model-year override sets common to sibling editions load once.
func (engine *Engine) ResolveMany(context context.Context, editionIDs []string, lang string) ([]*Resolution, error) {
	cache := newReadCache(engine.overrides)

	resolutions := make([]*Resolution, 0, len(editionIDs))
	for _, editionID := range editionIDs {
		resolution, err := engine.resolve(context, cache, editionID, lang)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, resolution)
	}

	return resolutions, nil
}

// levelSet pairs an override set with the provenance label of its level.
type levelSet struct {
	set    *override.Set
	source Source
}

func (engine *Engine) resolve(context context.Context, cache *readCache, editionID, lang string) (*Resolution, error) {
	chain, err := engine.vehicles.AncestorChain(context, editionID)
	if err != nil {
		// Name the offending id so batch callers can surface it.
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
			return nil, apperr.NotFound("edition " + editionID)
		}
		return nil, err
	}

	definitions, err := engine.catalog.Definitions(context)
	if err != nil {
		return nil, err
	}

	// Load the three levels, finest first: precedence order for the walk.
	editionSet, err := cache.read(context, vehicle.LevelEdition, chain.EditionID)
	if err != nil {
		return nil, err
	}
	yearSet, err := cache.read(context, vehicle.LevelModelYear, chain.ModelYearID)
	if err != nil {
		return nil, err
	}
	modelSet, err := cache.read(context, vehicle.LevelModel, chain.ModelID)
	if err != nil {
		return nil, err
	}

	levels := []levelSet{
		{set: editionSet, source: SourceEdition},
		{set: yearSet, source: SourceModelYear},
		{set: modelSet, source: SourceModel},
	}

	attributes := make([]*ResolvedAttribute, 0, len(definitions))
	for _, definition := range definitions {
		value, source := resolveOne(definition, levels, lang)

		group := attribute.ParseDisplayGroup(definition.DisplayGroup)
		group.Title = attribute.LocalizeGroupTitle(group.Title, lang)

		attributes = append(attributes, &ResolvedAttribute{
			Code:     definition.Code,
			DataType: definition.DataType,
			Unit:     definition.Unit,
			Category: definition.Category,
			Group:    group,
			Value:    value,
			Source:   source,
		})
	}

	return &Resolution{Chain: chain, Attributes: attributes}, nil
}

// resolveOne walks the chain for a single code. The first level holding a
// present value wins.
func resolveOne(definition *attribute.Definition, levels []levelSet, lang string) (attribute.Value, Source) {
	switch definition.Representation() {

	case attribute.RepEnum:
		// Enums resolve at edition level only; no inheritance.
		if raw, ok := levels[0].set.Enums[definition.Code]; ok {
			return attribute.NewEnum(raw), levels[0].source
		}
		return attribute.Value{}, SourceUnset

	case attribute.RepNumeric:
		for _, level := range levels {
			if number, ok := level.set.Numeric[definition.Code]; ok {
				if definition.DataType == attribute.TypeInt {
					return attribute.NewInt(int64(number)), level.source
				}
				return attribute.NewDecimal(number), level.source
			}
		}
		return attribute.Value{}, SourceUnset

	case attribute.RepBoolean:
		for _, level := range levels {
			if truthy, ok := level.set.Boolean[definition.Code]; ok {
				return attribute.NewBool(truthy), level.source
			}
		}
		return attribute.Value{}, SourceUnset

	default: // RepSidecar
		for _, level := range levels {
			// A localized text entry beats the raw sidecar for this level.
			if definition.DataType == attribute.TypeText {
				if texts, ok := level.set.SidecarI18n[lang]; ok {
					if text, ok := texts[definition.Code]; ok && text != "" {
						return attribute.NewText(text), level.source
					}
				}
			}
			if row, ok := level.set.Sidecar[definition.Code]; ok && row.Value != "" {
				return sidecarValue(row), level.source
			}
		}
		return attribute.Value{}, SourceUnset
	}
}

// sidecarValue revives a typed value from its sidecar text form.
func sidecarValue(row override.SidecarRow) attribute.Value {
	switch attribute.DataType(row.DataType) {
	case attribute.TypeInt:
		if parsed, err := strconv.ParseInt(row.Value, 10, 64); err == nil {
			return attribute.NewInt(parsed)
		}
		return attribute.NewText(row.Value)
	case attribute.TypeDecimal:
		if parsed, err := strconv.ParseFloat(row.Value, 64); err == nil {
			return attribute.NewDecimal(parsed)
		}
		return attribute.NewText(row.Value)
	case attribute.TypeBoolean:
		return attribute.NewBool(row.Value == "1" || row.Value == "true")
	default:
		return attribute.NewText(row.Value)
	}
}

// readCache memoizes per-entity override reads within one resolution call,
// purely an optimization: sibling editions share model/model-year sets.
type readCache struct {
	overrides OverrideReader
	sets      map[string]*override.Set
}

func newReadCache(overrides OverrideReader) *readCache {
	return &readCache{
		overrides: overrides,
		sets:      make(map[string]*override.Set),
	}
}

func (cache *readCache) read(context context.Context, level vehicle.Level, entityID string) (*override.Set, error) {
	key := string(level) + ":" + entityID
	if set, ok := cache.sets[key]; ok {
		return set, nil
	}

	set, err := cache.overrides.Read(context, level, entityID)
	if err != nil {
		return nil, err
	}
	cache.sets[key] = set
	return set, nil
}
