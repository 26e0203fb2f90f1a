// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package resolution_test

import (
	stdctx "context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/override"
	"github.com/bpetkov/modena/internal/core/resolution"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/pkg/pointer"
)

const (
	editionA   = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be0aaa1"
	modelYear1 = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be0yyy1"
	model1     = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be0mmm1"
)

type fakeCatalog struct {
	definitions []*attribute.Definition
}

func (catalog *fakeCatalog) Definitions(_ stdctx.Context) ([]*attribute.Definition, error) {
	return catalog.definitions, nil
}

type fakeVehicles struct {
	chains map[string]*vehicle.Chain
}

func (vehicles *fakeVehicles) AncestorChain(_ stdctx.Context, editionID string) (*vehicle.Chain, error) {
	chain, ok := vehicles.chains[editionID]
	if !ok {
		return nil, apperr.NotFound("edition " + editionID)
	}
	return chain, nil
}

type fakeOverrides struct {
	sets  map[string]*override.Set
	reads int
}

func (overrides *fakeOverrides) Read(_ stdctx.Context, level vehicle.Level, entityID string) (*override.Set, error) {
	overrides.reads++
	if set, ok := overrides.sets[string(level)+":"+entityID]; ok {
		return set, nil
	}
	return override.NewSet(), nil
}

func testDefinitions() []*attribute.Definition {
	return []*attribute.Definition{
		{Code: "LENGTH", DataType: attribute.TypeDecimal, IsFilterable: true, Unit: pointer.To("mm"), DisplayGroup: "04 Dimensions"},
		{Code: "HAS_SUNROOF", DataType: attribute.TypeBoolean, IsFilterable: true, DisplayGroup: "08 Comfort"},
		{Code: "UPHOLSTERY", DataType: attribute.TypeText, DisplayGroup: "11 Interior"},
		{Code: "DRIVE_TYPE", DataType: attribute.TypeEnum, DisplayGroup: "01 Engine", EnumOptions: []attribute.EnumOption{
			{Value: "FWD"}, {Value: "AWD_FULLTIME"},
		}},
	}
}

func testChain() *vehicle.Chain {
	return &vehicle.Chain{
		EditionID:   editionA,
		EditionName: "Quadrifoglio",
		ModelYearID: modelYear1,
		Year:        2026,
		ModelID:     model1,
		ModelName:   "Giulia",
		MakeName:    "Alfa Romeo",
	}
}

func newTestEngine(overrides *fakeOverrides) *resolution.Engine {
	return resolution.NewEngine(
		&fakeCatalog{definitions: testDefinitions()},
		&fakeVehicles{chains: map[string]*vehicle.Chain{editionA: testChain()}},
		overrides,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func findAttribute(t *testing.T, res *resolution.Resolution, code string) *resolution.ResolvedAttribute {
	t.Helper()
	for _, attr := range res.Attributes {
		if attr.Code == code {
			return attr
		}
	}
	t.Fatalf("attribute %s missing from resolution", code)
	return nil
}

/*
TestEngine_Resolve_Precedence verifies the strict edition → model_year →
model inheritance order with provenance.
*/
func TestEngine_Resolve_Precedence(t *testing.T) {
	tests := []struct {
		name       string
		sets       map[string]*override.Set
		wantValue  attribute.Value
		wantSource resolution.Source
	}{
		{
			name: "model_value_inherited",
			sets: map[string]*override.Set{
				"model:" + model1: {Numeric: map[string]float64{"LENGTH": 4500}},
			},
			wantValue:  attribute.NewDecimal(4500),
			wantSource: resolution.SourceModel,
		},
		{
			name: "model_year_beats_model",
			sets: map[string]*override.Set{
				"model:" + model1:           {Numeric: map[string]float64{"LENGTH": 4500}},
				"model_year:" + modelYear1:  {Numeric: map[string]float64{"LENGTH": 4520}},
			},
			wantValue:  attribute.NewDecimal(4520),
			wantSource: resolution.SourceModelYear,
		},
		{
			name: "edition_beats_everything",
			sets: map[string]*override.Set{
				"model:" + model1:          {Numeric: map[string]float64{"LENGTH": 4500}},
				"model_year:" + modelYear1: {Numeric: map[string]float64{"LENGTH": 4520}},
				"edition:" + editionA:      {Numeric: map[string]float64{"LENGTH": 4550}},
			},
			wantValue:  attribute.NewDecimal(4550),
			wantSource: resolution.SourceEdition,
		},
		{
			name:       "no_level_set",
			sets:       map[string]*override.Set{},
			wantValue:  attribute.Value{},
			wantSource: resolution.SourceUnset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := &fakeOverrides{sets: normalizeSets(tt.sets)}
			engine := newTestEngine(overrides)

			res, err := engine.Resolve(stdctx.Background(), editionA, "en")
			require.NoError(t, err)

			length := findAttribute(t, res, "LENGTH")
			assert.True(t, length.Value.Equal(tt.wantValue))
			assert.Equal(t, tt.wantSource, length.Source)
		})
	}
}

/*
TestEngine_Resolve_EnumsEditionOnly pins that enum values never inherit
from model or model-year levels.
*/
func TestEngine_Resolve_EnumsEditionOnly(t *testing.T) {
	overrides := &fakeOverrides{sets: normalizeSets(map[string]*override.Set{
		"model:" + model1: {Enums: map[string]string{"DRIVE_TYPE": "FWD"}},
	})}
	engine := newTestEngine(overrides)

	res, err := engine.Resolve(stdctx.Background(), editionA, "en")
	require.NoError(t, err)

	drive := findAttribute(t, res, "DRIVE_TYPE")
	assert.Equal(t, resolution.SourceUnset, drive.Source)
	assert.False(t, drive.Value.IsSet())

	// The same value at edition level does resolve.
	overrides.sets = normalizeSets(map[string]*override.Set{
		"edition:" + editionA: {Enums: map[string]string{"DRIVE_TYPE": "AWD_FULLTIME"}},
	})

	res, err = engine.Resolve(stdctx.Background(), editionA, "en")
	require.NoError(t, err)

	drive = findAttribute(t, res, "DRIVE_TYPE")
	assert.Equal(t, resolution.SourceEdition, drive.Source)
	assert.True(t, drive.Value.Equal(attribute.NewEnum("AWD_FULLTIME")))
}

/*
TestEngine_Resolve_LocalizedTextPreference checks that for text attributes a
localized sidecar entry wins over the raw sidecar entry at the same level.
*/
func TestEngine_Resolve_LocalizedTextPreference(t *testing.T) {
	overrides := &fakeOverrides{sets: normalizeSets(map[string]*override.Set{
		"edition:" + editionA: {
			Sidecar: map[string]override.SidecarRow{
				"UPHOLSTERY": {Value: "Leather", DataType: "text"},
			},
			SidecarI18n: map[string]map[string]string{
				"bg": {"UPHOLSTERY": "Кожа"},
			},
		},
	})}
	engine := newTestEngine(overrides)

	bulgarian, err := engine.Resolve(stdctx.Background(), editionA, "bg")
	require.NoError(t, err)
	assert.True(t, findAttribute(t, bulgarian, "UPHOLSTERY").Value.Equal(attribute.NewText("Кожа")))

	english, err := engine.Resolve(stdctx.Background(), editionA, "en")
	require.NoError(t, err)
	assert.True(t, findAttribute(t, english, "UPHOLSTERY").Value.Equal(attribute.NewText("Leather")))
}

/*
TestEngine_Resolve_GroupLocalization checks display groups parse and localize.
*/
func TestEngine_Resolve_GroupLocalization(t *testing.T) {
	engine := newTestEngine(&fakeOverrides{sets: map[string]*override.Set{}})

	res, err := engine.Resolve(stdctx.Background(), editionA, "bg")
	require.NoError(t, err)

	length := findAttribute(t, res, "LENGTH")
	assert.Equal(t, 4, length.Group.Seq)
	assert.Equal(t, "Размери", length.Group.Title)
}

/*
TestEngine_ResolveMany_SharesReads verifies the per-call memoization: two
editions of the same model re-use the coarse-level reads.
*/
func TestEngine_ResolveMany_SharesReads(t *testing.T) {
	editionB := "0195e6a0-5f2b-7cc3-b1fa-6d5f3be0aaa2"
	chains := map[string]*vehicle.Chain{
		editionA: testChain(),
		editionB: {EditionID: editionB, EditionName: "Veloce", ModelYearID: modelYear1, Year: 2026, ModelID: model1, ModelName: "Giulia", MakeName: "Alfa Romeo"},
	}
	overrides := &fakeOverrides{sets: map[string]*override.Set{}}
	engine := resolution.NewEngine(
		&fakeCatalog{definitions: testDefinitions()},
		&fakeVehicles{chains: chains},
		overrides,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	_, err := engine.ResolveMany(stdctx.Background(), []string{editionA, editionB}, "en")
	require.NoError(t, err)

	// 2 edition reads + 1 shared model-year read + 1 shared model read.
	assert.Equal(t, 4, overrides.reads)
}

// normalizeSets fills nil maps so fakes can be written sparsely.
func normalizeSets(sparse map[string]*override.Set) map[string]*override.Set {
	full := make(map[string]*override.Set, len(sparse))
	for key, set := range sparse {
		complete := override.NewSet()
		if set.Numeric != nil {
			complete.Numeric = set.Numeric
		}
		if set.Boolean != nil {
			complete.Boolean = set.Boolean
		}
		if set.Sidecar != nil {
			complete.Sidecar = set.Sidecar
		}
		if set.SidecarI18n != nil {
			complete.SidecarI18n = set.SidecarI18n
		}
		if set.Enums != nil {
			complete.Enums = set.Enums
		}
		full[key] = complete
	}
	return full
}
