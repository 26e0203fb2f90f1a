// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package brochure_test

import (
	stdctx "context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/brochure"
	"github.com/bpetkov/modena/internal/core/compare"
	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/internal/platform/postgres"
	"github.com/bpetkov/modena/pkg/pagination"
)

const (
	editionA    = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be00aa1"
	editionB    = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be00bb2"
	modelGiulia = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be00c01"
)

// fakeRepo is an in-memory Repository good enough to drive the lifecycle.
type fakeRepo struct {
	records map[string]*brochure.Brochure
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*brochure.Brochure)}
}

func (repo *fakeRepo) Create(_ stdctx.Context, record *brochure.Brochure) error {
	clone := *record
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	repo.records[record.ID] = &clone
	return nil
}

func (repo *fakeRepo) List(_ stdctx.Context, _ pagination.Params) ([]*brochure.Brochure, int, error) {
	out := make([]*brochure.Brochure, 0, len(repo.records))
	for _, record := range repo.records {
		out = append(out, record)
	}
	return out, len(out), nil
}

func (repo *fakeRepo) Get(_ stdctx.Context, id string) (*brochure.Brochure, error) {
	record, ok := repo.records[id]
	if !ok {
		return nil, apperr.NotFound("brochure " + id)
	}
	clone := *record
	return &clone, nil
}

func (repo *fakeRepo) UpdateSelection(_ stdctx.Context, record *brochure.Brochure) error {
	stored, ok := repo.records[record.ID]
	if !ok {
		return apperr.NotFound("brochure " + record.ID)
	}
	stored.SelectionMode = record.SelectionMode
	stored.EditionIDs = record.EditionIDs
	stored.OnlyDifferences = record.OnlyDifferences
	stored.Language = record.Language
	return nil
}

func (repo *fakeRepo) Lock(context stdctx.Context, id string, lockedBy *string, compute brochure.ComputePayload) (*brochure.Brochure, error) {
	record, ok := repo.records[id]
	if !ok {
		return nil, apperr.NotFound("brochure " + id)
	}
	if record.IsSnapshot {
		return nil, apperr.Locked("Record is already locked; unlock it first")
	}

	payload, err := compute(context, nil, record)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.IsSnapshot = true
	record.Payload = payload
	record.LockedAt = &now
	record.LockedBy = lockedBy

	clone := *record
	return &clone, nil
}

func (repo *fakeRepo) Unlock(_ stdctx.Context, id string) error {
	record, ok := repo.records[id]
	if !ok || !record.IsSnapshot {
		return apperr.Conflict("Record is not locked")
	}
	record.IsSnapshot = false
	record.Payload = nil
	record.LockedAt = nil
	record.LockedBy = nil
	return nil
}

func (repo *fakeRepo) SoftDelete(_ stdctx.Context, id string) error {
	if _, ok := repo.records[id]; !ok {
		return apperr.NotFound("brochure " + id)
	}
	delete(repo.records, id)
	return nil
}

type fakeExpander struct {
	byModel map[string][]string
}

func (expander *fakeExpander) EditionIDsByModelYears(_ stdctx.Context, _ []string) ([]string, error) {
	return nil, nil
}

func (expander *fakeExpander) EditionIDsByModel(_ stdctx.Context, modelID string) ([]string, error) {
	return expander.byModel[modelID], nil
}

// fakeComparer stamps its current generation into every result, so tests can
// tell a frozen payload from a recomputed one.
type fakeComparer struct {
	generation string
}

func (comparer *fakeComparer) Compare(_ stdctx.Context, request *compare.Request) (*compare.Result, error) {
	editions := make([]compare.EditionMeta, 0, len(request.EditionIDs))
	for _, id := range request.EditionIDs {
		editions = append(editions, compare.EditionMeta{ID: id, EditionName: comparer.generation})
	}
	return &compare.Result{Editions: editions, Rows: []*compare.Row{}}, nil
}

func newTestService(repo *fakeRepo, expander *fakeExpander, comparer *fakeComparer) *brochure.Service {
	factory := func(_ postgres.BeginQuerier) brochure.Comparer { return comparer }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return brochure.NewService(repo, expander, comparer, factory, logger)
}

/*
TestService_Create_ExpandsModelSelection verifies model-mode selections are
stored as concrete edition ids.
*/
func TestService_Create_ExpandsModelSelection(t *testing.T) {
	repo := newFakeRepo()
	expander := &fakeExpander{byModel: map[string][]string{modelGiulia: {editionA, editionB}}}
	service := newTestService(repo, expander, &fakeComparer{generation: "v1"})

	record, err := service.Create(stdctx.Background(), &brochure.CreateInput{
		Kind:          string(brochure.KindBrochure),
		Title:         "Giulia range",
		SelectionMode: string(brochure.SelectModel),
		ModelID:       modelGiulia,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{editionA, editionB}, record.EditionIDs)
	assert.Equal(t, brochure.SelectModel, record.SelectionMode)
	assert.False(t, record.IsSnapshot)
}

/*
TestService_Create_Validation covers kind and selection-mode rejection.
*/
func TestService_Create_Validation(t *testing.T) {
	service := newTestService(newFakeRepo(), &fakeExpander{}, &fakeComparer{generation: "v1"})

	_, err := service.Create(stdctx.Background(), &brochure.CreateInput{
		Kind:          "poster",
		Title:         "Bad kind",
		SelectionMode: string(brochure.SelectEditions),
		EditionIDs:    []string{editionA},
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Create(stdctx.Background(), &brochure.CreateInput{
		Kind:          string(brochure.KindBrochure),
		Title:         "Empty selection",
		SelectionMode: string(brochure.SelectEditions),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Lock_FreezesPayload is the heart of the snapshot guarantee:
resolve after lock returns the payload captured at lock time even though the
underlying comparison has since changed, and unlock goes back to live data.
*/
func TestService_Lock_FreezesPayload(t *testing.T) {
	repo := newFakeRepo()
	comparer := &fakeComparer{generation: "v1"}
	service := newTestService(repo, &fakeExpander{}, comparer)

	record, err := service.Create(stdctx.Background(), &brochure.CreateInput{
		Kind:          string(brochure.KindCompareSheet),
		Title:         "Veloce vs Quadrifoglio",
		SelectionMode: string(brochure.SelectEditions),
		EditionIDs:    []string{editionA, editionB},
	})
	require.NoError(t, err)

	locker := "m.ivanova"
	locked, err := service.Lock(stdctx.Background(), record.ID, &locker)
	require.NoError(t, err)
	assert.True(t, locked.IsSnapshot)
	require.NotNil(t, locked.LockedBy)
	assert.Equal(t, "m.ivanova", *locked.LockedBy)

	// Underlying data moves on; the snapshot must not.
	comparer.generation = "v2"

	payload, err := service.Resolve(stdctx.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", generationOf(t, payload))

	// A second lock without unlock is rejected.
	_, err = service.Lock(stdctx.Background(), record.ID, &locker)
	require.Error(t, err)
	assert.Equal(t, "LOCKED", apperr.As(err).Code)

	// Unlock returns to live resolution.
	unlocked, err := service.Unlock(stdctx.Background(), record.ID)
	require.NoError(t, err)
	assert.False(t, unlocked.IsSnapshot)
	assert.Nil(t, unlocked.LockedAt)

	payload, err = service.Resolve(stdctx.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", generationOf(t, payload))
}

/*
TestService_UpdateSelection_RejectedWhileLocked verifies the state machine:
selection edits require the live state.
*/
func TestService_UpdateSelection_RejectedWhileLocked(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, &fakeExpander{}, &fakeComparer{generation: "v1"})

	record, err := service.Create(stdctx.Background(), &brochure.CreateInput{
		Kind:          string(brochure.KindBrochure),
		Title:         "Locked selection",
		SelectionMode: string(brochure.SelectEditions),
		EditionIDs:    []string{editionA},
	})
	require.NoError(t, err)

	_, err = service.Lock(stdctx.Background(), record.ID, nil)
	require.NoError(t, err)

	_, err = service.UpdateSelection(stdctx.Background(), record.ID, &brochure.SelectionInput{
		SelectionMode: string(brochure.SelectEditions),
		EditionIDs:    []string{editionA, editionB},
	})
	require.Error(t, err)
	assert.Equal(t, "LOCKED", apperr.As(err).Code)

	// After unlock the same edit goes through.
	_, err = service.Unlock(stdctx.Background(), record.ID)
	require.NoError(t, err)

	updated, err := service.UpdateSelection(stdctx.Background(), record.ID, &brochure.SelectionInput{
		SelectionMode: string(brochure.SelectEditions),
		EditionIDs:    []string{editionA, editionB},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{editionA, editionB}, updated.EditionIDs)
}

// generationOf digs the comparer generation marker out of a payload.
func generationOf(t *testing.T, payload []byte) string {
	t.Helper()
	result := &compare.Result{}
	require.NoError(t, json.Unmarshal(payload, result))
	require.NotEmpty(t, result.Editions)
	return result.Editions[0].EditionName
}
