// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package override

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/internal/platform/validate"
)

// Catalog is the attribute-catalogue surface the write path needs.
type Catalog interface {
	Index(context context.Context) (attribute.Index, error)
}

// EntityChecker verifies that a write targets an existing taxonomy entity.
type EntityChecker interface {
	ExistsAtLevel(context context.Context, level vehicle.Level, entityID string) (bool, error)
}

type Service struct {
	repo     Repository
	catalog  Catalog
	entities EntityChecker
	logger   *slog.Logger
}

func NewService(repo Repository, catalog Catalog, entities EntityChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		entities: entities,
		logger:   logger,
	}
}

// Replace validates, normalizes, and atomically persists a wholesale
// override write for one (level, entity).
//
// Field problems (unknown code, wrong representation, uncoercible value) are
// collected per code; the offending field is skipped and the rest of the
// write proceeds. Enum-domain violations are the exception: they abort the
// entire write before anything is persisted.
func (service *Service) Replace(context context.Context, levelRaw, entityID string, payload *ReplacePayload) (*ReplaceResult, error) {

	// ── 1. Structural Validation ─────────────────────────────────────────
	v := &validate.Validator{}
	err := v.
		OneOf("level", levelRaw, string(vehicle.LevelModel), string(vehicle.LevelModelYear), string(vehicle.LevelEdition)).
		UUID("entity_id", entityID).
		Err()
	if err != nil {
		return nil, err
	}
	level := vehicle.Level(levelRaw)

	// ── 2. Target Existence ──────────────────────────────────────────────
	exists, err := service.entities.ExistsAtLevel(context, level, entityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound(levelRaw + " " + entityID)
	}

	// ── 3. Normalization Against The Catalogue ───────────────────────────
	index, err := service.catalog.Index(context)
	if err != nil {
		return nil, err
	}

	replacement := NewReplacement()
	issues := make([]Issue, 0)

	for _, entry := range payload.Numeric {
		definition, ok := index[entry.Code]
		if !ok {
			issues = append(issues, Issue{Code: entry.Code, Message: "Unknown attribute code"})
			continue
		}
		if definition.Representation() != attribute.RepNumeric {
			issues = append(issues, Issue{Code: entry.Code, Message: "Code is not stored as a filterable numeric"})
			continue
		}

		value, err := Normalize(definition.DataType, entry.Val)
		if err != nil {
			issues = append(issues, Issue{Code: entry.Code, Message: "Value cannot be coerced to " + string(definition.DataType)})
			continue
		}
		if !value.IsSet() {
			continue
		}
		replacement.Numeric[entry.Code] = numericOf(value)
	}

	for _, entry := range payload.Boolean {
		definition, ok := index[entry.Code]
		if !ok {
			issues = append(issues, Issue{Code: entry.Code, Message: "Unknown attribute code"})
			continue
		}
		if definition.Representation() != attribute.RepBoolean {
			issues = append(issues, Issue{Code: entry.Code, Message: "Code is not stored as a filterable boolean"})
			continue
		}

		value, err := Normalize(definition.DataType, entry.Val)
		if err != nil {
			issues = append(issues, Issue{Code: entry.Code, Message: "Value cannot be coerced to boolean"})
			continue
		}
		if !value.IsSet() {
			continue
		}
		replacement.Boolean[entry.Code] = value.Bool
	}

	for code, entry := range payload.JSON.Attributes {
		definition, ok := index[code]
		if !ok {
			issues = append(issues, Issue{Code: code, Message: "Unknown attribute code"})
			continue
		}
		if definition.Representation() != attribute.RepSidecar {
			issues = append(issues, Issue{Code: code, Message: "Code is not stored in the sidecar document"})
			continue
		}

		value, err := Normalize(definition.DataType, entry.V)
		if err != nil {
			issues = append(issues, Issue{Code: code, Message: "Value cannot be coerced to " + string(definition.DataType)})
			continue
		}
		if !value.IsSet() {
			continue
		}

		unit := entry.U
		if unit == nil {
			unit = definition.Unit
		}
		replacement.Sidecar[code] = SidecarRow{
			Value:    sidecarText(value),
			DataType: string(definition.DataType),
			Unit:     unit,
		}
	}

	for language, document := range payload.JSONI18n {
		for code, text := range document.Attributes {
			definition, ok := index[code]
			if !ok {
				issues = append(issues, Issue{Code: code, Message: "Unknown attribute code"})
				continue
			}
			if definition.DataType != attribute.TypeText || definition.Representation() != attribute.RepSidecar {
				issues = append(issues, Issue{Code: code, Message: "Only sidecar text attributes can be localized"})
				continue
			}

			value, err := Normalize(attribute.TypeText, text)
			if err != nil || !value.IsSet() {
				continue
			}
			if replacement.SidecarI18n[language] == nil {
				replacement.SidecarI18n[language] = make(map[string]string)
			}
			replacement.SidecarI18n[language][code] = value.Str
		}
	}

	for code, raw := range payload.Enums {
		definition, ok := index[code]
		if !ok {
			issues = append(issues, Issue{Code: code, Message: "Unknown attribute code"})
			continue
		}
		if definition.Representation() != attribute.RepEnum {
			issues = append(issues, Issue{Code: code, Message: "Code is not an enum attribute"})
			continue
		}

		value, err := Normalize(attribute.TypeEnum, raw)
		if err != nil {
			issues = append(issues, Issue{Code: code, Message: "Enum value must be a string"})
			continue
		}
		if !value.IsSet() {
			continue
		}

		// Domain violations abort the whole write: enum state is never
		// partially applied.
		if _, allowed := definition.EnumDomain()[value.Str]; !allowed {
			return nil, apperr.ValidationError("Enum value outside its declared domain", apperr.FieldError{
				Field:   code,
				Message: value.Str + " is not an allowed value for " + code,
			})
		}
		replacement.Enums[code] = value.Str
	}

	// ── 4. Atomic Persistence ────────────────────────────────────────────
	if err := service.repo.Replace(context, level, entityID, replacement); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "overrides_replaced",
		slog.String("level", levelRaw),
		slog.String("entity_id", entityID),
		slog.Int("numeric", len(replacement.Numeric)),
		slog.Int("boolean", len(replacement.Boolean)),
		slog.Int("sidecar", len(replacement.Sidecar)),
		slog.Int("enums", len(replacement.Enums)),
		slog.Int("rejected_fields", len(issues)),
	)

	return &ReplaceResult{OK: len(issues) == 0, Errors: issues}, nil
}

// Read exposes the stored override set for one (level, entity).
func (service *Service) Read(context context.Context, levelRaw, entityID string) (*Set, error) {
	v := &validate.Validator{}
	err := v.
		OneOf("level", levelRaw, string(vehicle.LevelModel), string(vehicle.LevelModelYear), string(vehicle.LevelEdition)).
		UUID("entity_id", entityID).
		Err()
	if err != nil {
		return nil, err
	}

	return service.repo.Read(context, vehicle.Level(levelRaw), entityID)
}

// numericOf flattens an int/decimal value to the numeric storage column type.
func numericOf(value attribute.Value) float64 {
	if value.Kind == attribute.KindInt {
		return float64(value.Int)
	}
	return value.Dec
}

// sidecarText renders a normalized value into the sidecar's text column.
func sidecarText(value attribute.Value) string {
	switch value.Kind {
	case attribute.KindInt:
		return strconv.FormatInt(value.Int, 10)
	case attribute.KindDecimal:
		return strconv.FormatFloat(value.Dec, 'f', -1, 64)
	case attribute.KindBool:
		return "1"
	default:
		return value.Str
	}
}
