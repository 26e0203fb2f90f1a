// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package override_test

import (
	stdctx "context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/override"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/pkg/pointer"
)

const editionID = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be0a111"

// fakeRepo records the last replacement it was asked to persist.
type fakeRepo struct {
	replaced *override.Replacement
	calls    int
}

func (repo *fakeRepo) Read(_ stdctx.Context, _ vehicle.Level, _ string) (*override.Set, error) {
	return override.NewSet(), nil
}

func (repo *fakeRepo) Replace(_ stdctx.Context, _ vehicle.Level, _ string, replacement *override.Replacement) error {
	repo.replaced = replacement
	repo.calls++
	return nil
}

type fakeCatalog struct {
	index attribute.Index
}

func (catalog *fakeCatalog) Index(_ stdctx.Context) (attribute.Index, error) {
	return catalog.index, nil
}

type fakeEntities struct {
	exists bool
}

func (entities *fakeEntities) ExistsAtLevel(_ stdctx.Context, _ vehicle.Level, _ string) (bool, error) {
	return entities.exists, nil
}

func testIndex() attribute.Index {
	return attribute.BuildIndex([]*attribute.Definition{
		{Code: "LENGTH", DataType: attribute.TypeDecimal, IsFilterable: true, Unit: pointer.To("mm")},
		{Code: "SEATS_COUNT", DataType: attribute.TypeInt, IsFilterable: true},
		{Code: "HAS_SUNROOF", DataType: attribute.TypeBoolean, IsFilterable: true},
		{Code: "UPHOLSTERY", DataType: attribute.TypeText},
		{Code: "DRIVE_TYPE", DataType: attribute.TypeEnum, EnumOptions: []attribute.EnumOption{
			{Value: "FWD"}, {Value: "RWD"}, {Value: "AWD_ON_DEMAND"}, {Value: "AWD_FULLTIME"},
		}},
	})
}

func newTestService(repo *fakeRepo) *override.Service {
	return override.NewService(
		repo,
		&fakeCatalog{index: testIndex()},
		&fakeEntities{exists: true},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

/*
TestService_Replace_DropsZeroValues verifies the write boundary applies the
zero-means-absent normalization before persistence.
*/
func TestService_Replace_DropsZeroValues(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	payload := &override.ReplacePayload{
		Numeric: []override.NumericEntry{
			{Code: "LENGTH", Val: float64(4500)},
			{Code: "SEATS_COUNT", Val: float64(0)},
		},
		Boolean: []override.BooleanEntry{
			{Code: "HAS_SUNROOF", Val: false},
		},
	}

	result, err := service.Replace(stdctx.Background(), "edition", editionID, payload)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Empty(t, result.Errors)

	require.NotNil(t, repo.replaced)
	assert.Equal(t, map[string]float64{"LENGTH": 4500}, repo.replaced.Numeric)
	assert.Empty(t, repo.replaced.Boolean)
}

/*
TestService_Replace_CollectsFieldIssues checks that bad fields are skipped
and reported together while the rest of the write succeeds.
*/
func TestService_Replace_CollectsFieldIssues(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	payload := &override.ReplacePayload{
		Numeric: []override.NumericEntry{
			{Code: "LENGTH", Val: "4,5"},
			{Code: "NO_SUCH_CODE", Val: float64(1)},
			{Code: "UPHOLSTERY", Val: float64(1)}, // sidecar code in the numeric map
			{Code: "SEATS_COUNT", Val: "five"},    // uncoercible
		},
	}

	result, err := service.Replace(stdctx.Background(), "edition", editionID, payload)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Len(t, result.Errors, 3)
	assert.Equal(t, 1, repo.calls, "write should still happen for the valid field")
	assert.Contains(t, repo.replaced.Numeric, "LENGTH")
}

/*
TestService_Replace_EnumViolationAbortsWrite pins the asymmetry: an enum
value outside its domain rejects the entire submission.
*/
func TestService_Replace_EnumViolationAbortsWrite(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	payload := &override.ReplacePayload{
		Numeric: []override.NumericEntry{{Code: "LENGTH", Val: float64(4500)}},
		Enums:   map[string]string{"DRIVE_TYPE": "HOVER"},
	}

	result, err := service.Replace(stdctx.Background(), "edition", editionID, payload)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, repo.calls, "nothing may be persisted on enum violation")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "DRIVE_TYPE", ae.Details[0].Field)
}

/*
TestService_Replace_ValidEnum checks in-domain enum values persist.
*/
func TestService_Replace_ValidEnum(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	payload := &override.ReplacePayload{
		Enums: map[string]string{"DRIVE_TYPE": "AWD_FULLTIME"},
	}

	result, err := service.Replace(stdctx.Background(), "edition", editionID, payload)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, map[string]string{"DRIVE_TYPE": "AWD_FULLTIME"}, repo.replaced.Enums)
}

/*
TestService_Replace_UnknownEntity checks the not-found guard.
*/
func TestService_Replace_UnknownEntity(t *testing.T) {
	repo := &fakeRepo{}
	service := override.NewService(
		repo,
		&fakeCatalog{index: testIndex()},
		&fakeEntities{exists: false},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, err := service.Replace(stdctx.Background(), "edition", editionID, &override.ReplacePayload{})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, 0, repo.calls)
}

/*
TestService_Replace_LocalizedText checks i18n sidecar entries survive only
for sidecar text codes.
*/
func TestService_Replace_LocalizedText(t *testing.T) {
	repo := &fakeRepo{}
	service := newTestService(repo)

	payload := &override.ReplacePayload{
		JSONI18n: map[string]override.SidecarI18nDocument{
			"bg": {Attributes: map[string]string{
				"UPHOLSTERY": "Кожа",
				"LENGTH":     "4500", // numeric code, not localizable
			}},
		},
	}

	result, err := service.Replace(stdctx.Background(), "edition", editionID, payload)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, map[string]string{"UPHOLSTERY": "Кожа"}, repo.replaced.SidecarI18n["bg"])
}
