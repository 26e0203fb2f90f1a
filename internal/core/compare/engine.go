// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package compare

import (
	"context"
	"log/slog"
	"sort"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/resolution"
	"github.com/bpetkov/modena/internal/platform/constants"
	"github.com/bpetkov/modena/internal/platform/validate"
	"github.com/bpetkov/modena/pkg/slice"
)

// Resolver is the per-edition resolution surface the engine consumes.
type Resolver interface {
	ResolveMany(context context.Context, editionIDs []string, lang string) ([]*resolution.Resolution, error)
}

// Engine assembles comparison tables. Stateless; safe for concurrent use.
type Engine struct {
	resolver Resolver
	logger   *slog.Logger
}

func NewEngine(resolver Resolver, logger *slog.Logger) *Engine {
	return &Engine{
		resolver: resolver,
		logger:   logger,
	}
}

// Compare resolves every requested edition and builds the diff table.
//
// Row rules:
//  1. A code appears only if at least one edition resolves it to a value.
//  2. With OnlyDifferences, rows whose canonical values agree across all
//     requested editions are dropped — and a row carried by a single
//     edition can never count as "different".
//  3. Rows sort by (display-group ordinal, code).
func (engine *Engine) Compare(context context.Context, request *Request) (*Result, error) {
	v := &validate.Validator{}
	if err := v.NonEmptyUUIDs("edition_ids", request.EditionIDs).Err(); err != nil {
		return nil, err
	}

	lang := request.Language
	if lang == "" {
		lang = constants.DefaultLanguage
	}

	resolutions, err := engine.resolver.ResolveMany(context, request.EditionIDs, lang)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Editions: slice.Map(resolutions, metaOf),
		Rows:     make([]*Row, 0),
	}

	// Every resolution carries the full catalogue in identical order, so the
	// first one drives the row walk.
	for position, lead := range resolutions[0].Attributes {
		values := make(map[string]attribute.Value, len(resolutions))
		presentCount := 0

		for _, res := range resolutions {
			resolved := res.Attributes[position]
			values[res.Chain.EditionID] = resolved.Value
			if resolved.Value.IsSet() {
				presentCount++
			}
		}

		// Union-without-all-null: a row nobody fills adds nothing.
		if presentCount == 0 {
			continue
		}

		if request.OnlyDifferences && !differsAcross(resolutions, position, presentCount) {
			continue
		}

		result.Rows = append(result.Rows, &Row{
			Code:     lead.Code,
			DataType: lead.DataType,
			Unit:     lead.Unit,
			Category: lead.Category,
			Group:    lead.Group,
			Values:   values,
		})
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		if result.Rows[i].Group.Seq != result.Rows[j].Group.Seq {
			return result.Rows[i].Group.Seq < result.Rows[j].Group.Seq
		}
		return result.Rows[i].Code < result.Rows[j].Code
	})

	return result, nil
}

// differsAcross reports whether a row qualifies for the difference filter:
// canonical values must disagree somewhere, and more than one edition must
// actually carry a value.
func differsAcross(resolutions []*resolution.Resolution, position, presentCount int) bool {
	if presentCount < 2 {
		return false
	}

	first := resolutions[0].Attributes[position].Value
	for _, res := range resolutions[1:] {
		if !res.Attributes[position].Value.Equal(first) {
			return true
		}
	}
	return false
}
