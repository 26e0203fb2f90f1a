// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package brochure

import (
	stdctx "context"
	"encoding/json"
	"log/slog"

	"github.com/bpetkov/modena/internal/core/compare"
	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/internal/platform/constants"
	"github.com/bpetkov/modena/internal/platform/postgres"
	"github.com/bpetkov/modena/internal/platform/validate"
	"github.com/bpetkov/modena/pkg/pagination"
	"github.com/bpetkov/modena/pkg/pointer"
	"github.com/bpetkov/modena/pkg/slice"
	"github.com/bpetkov/modena/pkg/uuidv7"
)

// SelectionExpander resolves model-year and model selections into concrete
// edition ids at write time.
type SelectionExpander interface {
	EditionIDsByModelYears(context stdctx.Context, modelYearIDs []string) ([]string, error)
	EditionIDsByModel(context stdctx.Context, modelID string) ([]string, error)
}

// Comparer produces the comparison table a brochure renders.
type Comparer interface {
	Compare(context stdctx.Context, request *compare.Request) (*compare.Result, error)
}

// EngineFactory builds a Comparer bound to the given querier. During lock it
// receives the snapshot transaction, so the captured payload reads the same
// point in time the lock commits against.
type EngineFactory func(querier postgres.BeginQuerier) Comparer

type Service struct {
	repo     Repository
	expander SelectionExpander
	live     Comparer
	factory  EngineFactory
	logger   *slog.Logger
}

func NewService(repo Repository, expander SelectionExpander, live Comparer, factory EngineFactory, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		expander: expander,
		live:     live,
		factory:  factory,
		logger:   logger,
	}
}

// Create validates the input, expands the selection to edition ids, and
// persists a new live record.
func (service *Service) Create(context stdctx.Context, input *CreateInput) (*Brochure, error) {
	v := &validate.Validator{}
	err := v.
		OneOf("kind", input.Kind, string(KindBrochure), string(KindCompareSheet)).
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		OneOf("selection_mode", input.SelectionMode, string(SelectEditions), string(SelectModelYears), string(SelectModel)).
		Err()
	if err != nil {
		return nil, err
	}

	editionIDs, err := service.expandSelection(context, SelectionMode(input.SelectionMode), &SelectionInput{
		EditionIDs:   input.EditionIDs,
		ModelYearIDs: input.ModelYearIDs,
		ModelID:      input.ModelID,
	})
	if err != nil {
		return nil, err
	}

	language := input.Language
	if language == "" {
		language = constants.DefaultLanguage
	}

	record := &Brochure{
		ID:              uuidv7.Must(),
		Kind:            Kind(input.Kind),
		Title:           input.Title,
		SelectionMode:   SelectionMode(input.SelectionMode),
		EditionIDs:      editionIDs,
		OnlyDifferences: input.OnlyDifferences,
		Language:        language,
	}

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "brochure_created",
		slog.String("brochure_id", record.ID),
		slog.String("kind", input.Kind),
		slog.Int("editions", len(editionIDs)),
	)

	return service.repo.Get(context, record.ID)
}

func (service *Service) List(context stdctx.Context, params pagination.Params) ([]*Brochure, int, error) {
	return service.repo.List(context, params)
}

func (service *Service) Get(context stdctx.Context, id string) (*Brochure, error) {
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.Get(context, id)
}

// UpdateSelection re-selects a live record. Records in the snapshot state
// reject the edit; callers must unlock first.
func (service *Service) UpdateSelection(context stdctx.Context, id string, input *SelectionInput) (*Brochure, error) {
	v := &validate.Validator{}
	err := v.
		UUID("id", id).
		OneOf("selection_mode", input.SelectionMode, string(SelectEditions), string(SelectModelYears), string(SelectModel)).
		Err()
	if err != nil {
		return nil, err
	}

	record, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	if record.IsSnapshot {
		return nil, apperr.Locked("Selection is frozen while the record is locked; unlock it first")
	}

	editionIDs, err := service.expandSelection(context, SelectionMode(input.SelectionMode), input)
	if err != nil {
		return nil, err
	}

	record.SelectionMode = SelectionMode(input.SelectionMode)
	record.EditionIDs = editionIDs
	record.OnlyDifferences = input.OnlyDifferences
	if input.Language != "" {
		record.Language = input.Language
	}

	if err := service.repo.UpdateSelection(context, record); err != nil {
		return nil, err
	}

	return service.repo.Get(context, id)
}

// Lock freezes the record: the comparison table is computed inside the lock
// transaction, persisted verbatim, and returned unchanged until unlock.
func (service *Service) Lock(context stdctx.Context, id string, lockedBy *string) (*Brochure, error) {
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		return nil, err
	}

	record, err := service.repo.Lock(context, id, lockedBy, func(computeContext stdctx.Context, querier postgres.BeginQuerier, current *Brochure) ([]byte, error) {
		result, err := service.factory(querier).Compare(computeContext, &compare.Request{
			EditionIDs:      current.EditionIDs,
			OnlyDifferences: current.OnlyDifferences,
			Language:        current.Language,
		})
		if err != nil {
			return nil, err
		}
		return json.Marshal(result)
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "brochure_locked",
		slog.String("brochure_id", id),
		slog.String("locked_by", pointer.Fallback(lockedBy, "system")),
		slog.Int("payload_bytes", len(record.Payload)),
	)

	return record, nil
}

// Unlock discards the snapshot and returns the record to the live state.
func (service *Service) Unlock(context stdctx.Context, id string) (*Brochure, error) {
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Unlock(context, id); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "brochure_unlocked", slog.String("brochure_id", id))

	return service.repo.Get(context, id)
}

// Resolve renders the record: the frozen payload byte-for-byte when locked,
// a fresh comparison against current data otherwise.
func (service *Service) Resolve(context stdctx.Context, id string) (json.RawMessage, error) {
	record, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	if record.IsSnapshot {
		return record.Payload, nil
	}

	result, err := service.live.Compare(context, &compare.Request{
		EditionIDs:      record.EditionIDs,
		OnlyDifferences: record.OnlyDifferences,
		Language:        record.Language,
	})
	if err != nil {
		return nil, err
	}

	return json.Marshal(result)
}

func (service *Service) Delete(context stdctx.Context, id string) error {
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		return err
	}
	return service.repo.SoftDelete(context, id)
}

// expandSelection turns the mode-specific input into the stored edition-id
// list. Every mode must yield at least one valid edition.
func (service *Service) expandSelection(context stdctx.Context, mode SelectionMode, input *SelectionInput) ([]string, error) {
	v := &validate.Validator{}

	switch mode {
	case SelectEditions:
		if err := v.NonEmptyUUIDs("edition_ids", input.EditionIDs).Err(); err != nil {
			return nil, err
		}
		// Duplicate ids would render duplicate comparison columns.
		deduped := make([]string, 0, len(input.EditionIDs))
		for _, editionID := range input.EditionIDs {
			if !slice.Contains(deduped, editionID) {
				deduped = append(deduped, editionID)
			}
		}
		return deduped, nil

	case SelectModelYears:
		if err := v.NonEmptyUUIDs("model_year_ids", input.ModelYearIDs).Err(); err != nil {
			return nil, err
		}
		editionIDs, err := service.expander.EditionIDsByModelYears(context, input.ModelYearIDs)
		if err != nil {
			return nil, err
		}
		if len(editionIDs) == 0 {
			return nil, apperr.Unprocessable("The selected model years have no editions")
		}
		return editionIDs, nil

	case SelectModel:
		if err := v.UUID("model_id", input.ModelID).Err(); err != nil {
			return nil, err
		}
		editionIDs, err := service.expander.EditionIDsByModel(context, input.ModelID)
		if err != nil {
			return nil, err
		}
		if len(editionIDs) == 0 {
			return nil, apperr.Unprocessable("The selected model has no editions")
		}
		return editionIDs, nil
	}

	return nil, validate.RequiredError("selection_mode", "Unknown selection mode")
}
