// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package compare_test

import (
	stdctx "context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/compare"
	"github.com/bpetkov/modena/internal/core/resolution"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/apperr"
)

const (
	editionA = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be00aa1"
	editionB = "0195e6a0-5f2b-7cc3-b1fa-6d5f3be00bb2"
)

// fakeResolver serves canned resolutions keyed by edition id.
type fakeResolver struct {
	resolutions map[string]*resolution.Resolution
}

func (resolver *fakeResolver) ResolveMany(_ stdctx.Context, editionIDs []string, _ string) ([]*resolution.Resolution, error) {
	out := make([]*resolution.Resolution, 0, len(editionIDs))
	for _, id := range editionIDs {
		res, ok := resolver.resolutions[id]
		if !ok {
			return nil, apperr.NotFound("edition " + id)
		}
		out = append(out, res)
	}
	return out, nil
}

// buildResolution assembles a canned resolution over a fixed catalogue walk:
// LENGTH (04 Dimensions), MAX_SPEED (05 Performance), UPHOLSTERY (11 Interior).
func buildResolution(editionID, editionName string, length, maxSpeed attribute.Value, upholstery attribute.Value) *resolution.Resolution {
	return &resolution.Resolution{
		Chain: &vehicle.Chain{
			EditionID:   editionID,
			EditionName: editionName,
			MakeName:    "Alfa Romeo",
			ModelName:   "Giulia",
			Year:        2026,
		},
		Attributes: []*resolution.ResolvedAttribute{
			{Code: "UPHOLSTERY", DataType: attribute.TypeText, Group: attribute.Group{Seq: 11, Title: "Interior"}, Value: upholstery, Source: sourceFor(upholstery)},
			{Code: "LENGTH", DataType: attribute.TypeDecimal, Group: attribute.Group{Seq: 4, Title: "Dimensions"}, Value: length, Source: sourceFor(length)},
			{Code: "MAX_SPEED", DataType: attribute.TypeInt, Group: attribute.Group{Seq: 5, Title: "Performance"}, Value: maxSpeed, Source: sourceFor(maxSpeed)},
		},
	}
}

func sourceFor(value attribute.Value) resolution.Source {
	if value.IsSet() {
		return resolution.SourceEdition
	}
	return resolution.SourceUnset
}

func newTestEngine(resolver *fakeResolver) *compare.Engine {
	return compare.NewEngine(resolver, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestEngine_Compare_UnionWithoutAllNull verifies rows appear only when at
least one edition carries a value.
*/
func TestEngine_Compare_UnionWithoutAllNull(t *testing.T) {
	resolver := &fakeResolver{resolutions: map[string]*resolution.Resolution{
		editionA: buildResolution(editionA, "Veloce", attribute.NewDecimal(4500), attribute.Value{}, attribute.Value{}),
		editionB: buildResolution(editionB, "Quadrifoglio", attribute.NewDecimal(4500), attribute.NewInt(285), attribute.Value{}),
	}}
	engine := newTestEngine(resolver)

	result, err := engine.Compare(stdctx.Background(), &compare.Request{
		EditionIDs: []string{editionA, editionB},
	})
	require.NoError(t, err)

	codes := rowCodes(result)
	assert.Equal(t, []string{"LENGTH", "MAX_SPEED"}, codes, "UPHOLSTERY is unset everywhere and must be dropped")

	// Rows carry a value entry per requested edition, null included.
	speed := result.Rows[1]
	assert.True(t, speed.Values[editionB].Equal(attribute.NewInt(285)))
	assert.False(t, speed.Values[editionA].IsSet())
}

/*
TestEngine_Compare_OnlyDifferences verifies the canonical diff filter,
including the single-present-edition exclusion.
*/
func TestEngine_Compare_OnlyDifferences(t *testing.T) {
	resolver := &fakeResolver{resolutions: map[string]*resolution.Resolution{
		// LENGTH identical (int vs decimal variants), MAX_SPEED differs,
		// UPHOLSTERY present on a single edition only.
		editionA: buildResolution(editionA, "Veloce", attribute.NewDecimal(4500), attribute.NewInt(240), attribute.NewText("Alcantara")),
		editionB: buildResolution(editionB, "Quadrifoglio", attribute.NewInt(4500), attribute.NewInt(285), attribute.Value{}),
	}}
	engine := newTestEngine(resolver)

	result, err := engine.Compare(stdctx.Background(), &compare.Request{
		EditionIDs:      []string{editionA, editionB},
		OnlyDifferences: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"MAX_SPEED"}, rowCodes(result))
}

/*
TestEngine_Compare_RowOrdering verifies the (group ordinal, code) sort.
*/
func TestEngine_Compare_RowOrdering(t *testing.T) {
	resolver := &fakeResolver{resolutions: map[string]*resolution.Resolution{
		editionA: buildResolution(editionA, "Veloce",
			attribute.NewDecimal(4500), attribute.NewInt(240), attribute.NewText("Leather")),
	}}
	engine := newTestEngine(resolver)

	result, err := engine.Compare(stdctx.Background(), &compare.Request{
		EditionIDs: []string{editionA},
	})
	require.NoError(t, err)

	// Input order is UPHOLSTERY, LENGTH, MAX_SPEED; output must sort by group.
	assert.Equal(t, []string{"LENGTH", "MAX_SPEED", "UPHOLSTERY"}, rowCodes(result))
}

/*
TestEngine_Compare_InputValidation covers empty id lists and unknown ids.
*/
func TestEngine_Compare_InputValidation(t *testing.T) {
	resolver := &fakeResolver{resolutions: map[string]*resolution.Resolution{}}
	engine := newTestEngine(resolver)

	_, err := engine.Compare(stdctx.Background(), &compare.Request{EditionIDs: nil})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = engine.Compare(stdctx.Background(), &compare.Request{EditionIDs: []string{editionA}})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Contains(t, ae.Message, editionA, "the offending id must be named")
}

func rowCodes(result *compare.Result) []string {
	codes := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		codes = append(codes, row.Code)
	}
	return codes
}
