// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package brochure manages named edition selections and their snapshot
lifecycle.

A brochure (or compare sheet — same record, different kind) is a selection
of editions that resolves to a comparison table. While live, every resolve
recomputes against current override data. Locking freezes the table: the
exact comparison result is persisted verbatim as the payload and returned
unchanged until unlock, no matter what happens to the underlying attributes.

The two states form a strict machine:

	LIVE   --lock-->   SNAPSHOT   --unlock-->   LIVE

Selection edits are rejected in the SNAPSHOT state; callers must unlock
first.
*/
package brochure

import (
	"encoding/json"
	"time"
)

// Kind distinguishes customer brochures from internal compare sheets.
type Kind string

const (
	KindBrochure     Kind = "brochure"
	KindCompareSheet Kind = "compare_sheet"
)

// Valid reports whether the string names a known kind.
func (kind Kind) Valid() bool {
	return kind == KindBrochure || kind == KindCompareSheet
}

// SelectionMode records how the edition set was chosen.
type SelectionMode string

const (
	// SelectEditions is an explicit edition-id list.
	SelectEditions SelectionMode = "editions"
	// SelectModelYears expands to all editions of the given model years.
	SelectModelYears SelectionMode = "model_years"
	// SelectModel expands to all editions of one model.
	SelectModel SelectionMode = "model"
)

// Valid reports whether the string names a known selection mode.
func (mode SelectionMode) Valid() bool {
	switch mode {
	case SelectEditions, SelectModelYears, SelectModel:
		return true
	}
	return false
}

// Brochure is one persisted selection with its snapshot state.
//
// EditionIDs always holds the expanded selection: model-year and model
// selections are resolved to concrete edition ids at write time.
type Brochure struct {
	ID              string          `json:"id"`
	Kind            Kind            `json:"kind"`
	Title           string          `json:"title"`
	SelectionMode   SelectionMode   `json:"selection_mode"`
	EditionIDs      []string        `json:"edition_ids"`
	OnlyDifferences bool            `json:"only_differences"`
	Language        string          `json:"language"`
	IsSnapshot      bool            `json:"is_snapshot"`
	Payload         json.RawMessage `json:"-"`
	LockedAt        *time.Time      `json:"locked_at,omitempty"`
	LockedBy        *string         `json:"locked_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateInput is the wire shape for creating a brochure or compare sheet.
type CreateInput struct {
	Kind            string   `json:"kind"`
	Title           string   `json:"title"`
	SelectionMode   string   `json:"selection_mode"`
	EditionIDs      []string `json:"edition_ids"`
	ModelYearIDs    []string `json:"model_year_ids"`
	ModelID         string   `json:"model_id"`
	OnlyDifferences bool     `json:"only_differences"`
	Language        string   `json:"language"`
}

// SelectionInput is the wire shape for re-selecting a live brochure.
type SelectionInput struct {
	SelectionMode   string   `json:"selection_mode"`
	EditionIDs      []string `json:"edition_ids"`
	ModelYearIDs    []string `json:"model_year_ids"`
	ModelID         string   `json:"model_id"`
	OnlyDifferences bool     `json:"only_differences"`
	Language        string   `json:"language"`
}
