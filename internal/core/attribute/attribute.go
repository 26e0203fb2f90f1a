// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package attribute defines the technical attribute catalogue for the Modena
vehicle taxonomy.

Every attribute a vehicle can carry (dimensions, powertrain figures, safety
equipment, ...) is declared exactly once in this catalogue with a stable code,
a data type, and a display group. The catalogue also decides, permanently,
which of the three storage representations holds override values for a code:

  - Filterable numeric and boolean codes live in typed key-value rows.
  - Enum codes live in a dedicated per-level enum map.
  - Everything else lives in a per-level JSON sidecar document, optionally
    duplicated in a localized sidecar for text attributes.

A code never appears in more than one representation at the same time. The
stores trust this classification; it is enforced here and nowhere else.
*/
package attribute

import "time"

// DataType enumerates the declared value types for catalogue attributes.
type DataType string

const (
	TypeInt     DataType = "int"
	TypeDecimal DataType = "decimal"
	TypeBoolean DataType = "boolean"
	TypeText    DataType = "text"
	TypeEnum    DataType = "enum"
)

// Representation identifies which storage family holds overrides for a code.
type Representation int

const (
	// RepNumeric covers filterable int/decimal codes (typed key-value rows).
	RepNumeric Representation = iota
	// RepBoolean covers filterable boolean codes (typed key-value rows).
	RepBoolean
	// RepEnum covers enum codes (dedicated per-level enum map).
	RepEnum
	// RepSidecar covers everything else (JSON sidecar document).
	RepSidecar
)

// Definition describes one catalogue attribute.
type Definition struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	DataType     DataType  `json:"data_type"`
	Unit         *string   `json:"unit"`
	Category     string    `json:"category"`
	DisplayGroup string    `json:"display_group"`
	Label        string    `json:"label"`
	IsFilterable bool      `json:"is_filterable"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// EnumOptions holds the closed value domain for enum-typed codes,
	// in display order. Empty for every other data type.
	EnumOptions []EnumOption `json:"enum_options,omitempty"`
}

// EnumOption is one allowed value of an enum-typed attribute.
type EnumOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

// Representation returns the storage family the catalogue assigned to this code.
func (definition *Definition) Representation() Representation {
	switch definition.DataType {
	case TypeEnum:
		return RepEnum
	case TypeInt, TypeDecimal:
		if definition.IsFilterable {
			return RepNumeric
		}
		return RepSidecar
	case TypeBoolean:
		if definition.IsFilterable {
			return RepBoolean
		}
		return RepSidecar
	default:
		return RepSidecar
	}
}

// EnumDomain returns the set of allowed values for an enum-typed code.
// The returned map is nil for non-enum codes.
func (definition *Definition) EnumDomain() map[string]struct{} {
	if definition.DataType != TypeEnum {
		return nil
	}
	domain := make(map[string]struct{}, len(definition.EnumOptions))
	for _, option := range definition.EnumOptions {
		domain[option.Value] = struct{}{}
	}
	return domain
}

// Index is a code-keyed view over a definition list, built once per request.
type Index map[string]*Definition

// BuildIndex maps definitions by code for constant-time lookups.
func BuildIndex(definitions []*Definition) Index {
	index := make(Index, len(definitions))
	for _, definition := range definitions {
		index[definition.Code] = definition
	}
	return index
}
