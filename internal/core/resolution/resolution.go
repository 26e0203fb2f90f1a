// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package resolution computes effective attribute values for editions.

For every catalogue attribute, the engine walks the override chain
edition → model year → model and reports both the winning value and its
provenance. Inheritance is strictly level-ordered: the finest level holding
a present value wins, and because a code can only be stored in one
representation, there is never a "most recently written wins" ambiguity.

Enums are the exception — they resolve at edition level only, with no
inheritance from coarser levels.
*/
package resolution

import (
	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/vehicle"
)

// Source names the level an effective value was inherited from.
type Source string

const (
	SourceEdition   Source = "edition"
	SourceModelYear Source = "model_year"
	SourceModel     Source = "model"
	SourceUnset     Source = "unset"
)

// ResolvedAttribute is the effective value of one attribute for one edition.
type ResolvedAttribute struct {
	Code     string             `json:"code"`
	DataType attribute.DataType `json:"data_type"`
	Unit     *string            `json:"unit"`
	Category string             `json:"category"`
	Group    attribute.Group    `json:"display_group"`
	Value    attribute.Value    `json:"value"`
	Source   Source             `json:"source"`
}

// Resolution is the full effective specification of one edition.
type Resolution struct {
	Chain      *vehicle.Chain       `json:"edition"`
	Attributes []*ResolvedAttribute `json:"attributes"`
}
