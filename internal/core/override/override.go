// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package override persists typed attribute values per taxonomy level.

A value for one (level, entity, code) lives in exactly one of three storage
representations, decided by the attribute catalogue:

  - typed key-value rows for filterable numeric and boolean codes,
  - a dedicated enum map for enum codes,
  - a JSON sidecar (plus an optional localized sidecar) for the rest.

Writes are wholesale: one replace call supersedes the complete override set
for an entity atomically. There is no partial patch. Absence of a row means
"no override at this level" — and by business rule, a numeric zero or an
empty string is the same as absence and is never persisted.
*/
package override

// ReplacePayload is the wire shape of a wholesale override write.
//
// Values arrive untyped; coercion and the zero-means-absent normalization
// happen in the service before anything reaches storage.
type ReplacePayload struct {
	Numeric  []NumericEntry                 `json:"numeric"`
	Boolean  []BooleanEntry                 `json:"boolean"`
	JSON     SidecarDocument                `json:"json"`
	JSONI18n map[string]SidecarI18nDocument `json:"json_i18n"`
	Enums    map[string]string              `json:"enums"`
}

// NumericEntry is one typed numeric override in a write payload.
type NumericEntry struct {
	Code string `json:"code"`
	Val  any    `json:"val"`
}

// BooleanEntry is one typed boolean override in a write payload.
type BooleanEntry struct {
	Code string `json:"code"`
	Val  any    `json:"val"`
}

// SidecarDocument carries the free-form attribute map of a write payload.
type SidecarDocument struct {
	Attributes map[string]SidecarEntry `json:"attributes"`
}

// SidecarEntry is one sidecar attribute: value, declared type, unit.
type SidecarEntry struct {
	V  any     `json:"v"`
	Dt string  `json:"dt"`
	U  *string `json:"u"`
}

// SidecarI18nDocument carries localized text attributes for one language.
type SidecarI18nDocument struct {
	Attributes map[string]string `json:"attributes"`
}

// Issue is a per-field problem collected during a write. The write proceeds
// for the remaining fields; only enum-domain violations abort it entirely.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReplaceResult is the write response: ok means no field was rejected.
type ReplaceResult struct {
	OK     bool    `json:"ok"`
	Errors []Issue `json:"errors"`
}

// Replacement is the normalized, storage-ready form of a write. Every entry
// survived coercion and the zero-means-absent rule.
type Replacement struct {
	Numeric     map[string]float64
	Boolean     map[string]bool
	Sidecar     map[string]SidecarRow
	SidecarI18n map[string]map[string]string
	Enums       map[string]string
}

// NewReplacement returns an empty replacement with all maps allocated.
func NewReplacement() *Replacement {
	return &Replacement{
		Numeric:     make(map[string]float64),
		Boolean:     make(map[string]bool),
		Sidecar:     make(map[string]SidecarRow),
		SidecarI18n: make(map[string]map[string]string),
		Enums:       make(map[string]string),
	}
}

// SidecarRow is one persisted sidecar value with its typing metadata.
type SidecarRow struct {
	Value    string
	DataType string
	Unit     *string
}

// Set is the read model: every override stored for one (level, entity).
type Set struct {
	Numeric     map[string]float64
	Boolean     map[string]bool
	Sidecar     map[string]SidecarRow
	SidecarI18n map[string]map[string]string
	Enums       map[string]string
}

// NewSet returns an empty set with all maps allocated.
func NewSet() *Set {
	return &Set{
		Numeric:     make(map[string]float64),
		Boolean:     make(map[string]bool),
		Sidecar:     make(map[string]SidecarRow),
		SidecarI18n: make(map[string]map[string]string),
		Enums:       make(map[string]string),
	}
}
