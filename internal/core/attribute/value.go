// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the variants of [Value].
type Kind int

const (
	KindUnset Kind = iota
	KindInt
	KindDecimal
	KindBool
	KindText
	KindEnum
)

// Value is the tagged union carrying one typed attribute value.
//
// Only the field matching Kind is meaningful; the rest stay at their zero
// value. The zero Value is KindUnset, which serializes as JSON null.
type Value struct {
	Kind Kind
	Int  int64
	Dec  float64
	Bool bool
	Str  string
}

// Constructors for each variant.

func NewInt(v int64) Value { return Value{Kind: KindInt, Int: v} }

func NewDecimal(v float64) Value { return Value{Kind: KindDecimal, Dec: v} }

func NewBool(v bool) Value { return Value{Kind: KindBool, Bool: v} }

func NewText(v string) Value { return Value{Kind: KindText, Str: v} }

func NewEnum(v string) Value { return Value{Kind: KindEnum, Str: v} }

// IsSet reports whether the value carries a variant other than unset.
func (value Value) IsSet() bool {
	return value.Kind != KindUnset
}

// MarshalJSON renders the value as a native JSON scalar (or null when unset),
// so API clients receive `4500` and `true` rather than a wrapper object.
func (value Value) MarshalJSON() ([]byte, error) {
	switch value.Kind {
	case KindInt:
		return []byte(strconv.FormatInt(value.Int, 10)), nil
	case KindDecimal:
		return json.Marshal(value.Dec)
	case KindBool:
		return json.Marshal(value.Bool)
	case KindText, KindEnum:
		return json.Marshal(value.Str)
	default:
		return []byte("null"), nil
	}
}

// Equal compares two values canonically: numbers compare as numbers
// regardless of int/decimal variant, booleans as booleans, strings as
// strings. Unset equals only unset.
func (value Value) Equal(other Value) bool {
	if value.Kind == KindUnset || other.Kind == KindUnset {
		return value.Kind == other.Kind
	}

	if value.isNumeric() && other.isNumeric() {
		return value.asFloat() == other.asFloat()
	}

	if value.Kind == KindBool && other.Kind == KindBool {
		return value.Bool == other.Bool
	}

	if value.isString() && other.isString() {
		return value.Str == other.Str
	}

	// Mismatched families (e.g. text vs bool) are never equal.
	return false
}

func (value Value) isNumeric() bool {
	return value.Kind == KindInt || value.Kind == KindDecimal
}

func (value Value) isString() bool {
	return value.Kind == KindText || value.Kind == KindEnum
}

func (value Value) asFloat() float64 {
	if value.Kind == KindInt {
		return float64(value.Int)
	}
	return value.Dec
}
