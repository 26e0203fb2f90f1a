// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package override_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/override"
)

/*
TestNormalize_ZeroMeansAbsent pins the business rule that zero and empty
inputs normalize to no override at all.
*/
func TestNormalize_ZeroMeansAbsent(t *testing.T) {
	tests := []struct {
		name     string
		dataType attribute.DataType
		raw      any
	}{
		{"int_zero", attribute.TypeInt, float64(0)},
		{"decimal_zero", attribute.TypeDecimal, float64(0)},
		{"decimal_zero_string", attribute.TypeDecimal, "0"},
		{"boolean_false", attribute.TypeBoolean, false},
		{"boolean_zero", attribute.TypeBoolean, float64(0)},
		{"text_empty", attribute.TypeText, ""},
		{"text_whitespace", attribute.TypeText, "   "},
		{"enum_empty", attribute.TypeEnum, ""},
		{"nil_input", attribute.TypeInt, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := override.Normalize(tt.dataType, tt.raw)
			require.NoError(t, err)
			assert.False(t, value.IsSet())
		})
	}
}

/*
TestNormalize_Coercion covers type coercion of mismatched but readable input.
*/
func TestNormalize_Coercion(t *testing.T) {
	tests := []struct {
		name     string
		dataType attribute.DataType
		raw      any
		want     attribute.Value
	}{
		{"int_from_float", attribute.TypeInt, float64(4500), attribute.NewInt(4500)},
		{"int_from_string", attribute.TypeInt, "4500", attribute.NewInt(4500)},
		{"decimal_from_string", attribute.TypeDecimal, "4.5", attribute.NewDecimal(4.5)},
		{"decimal_comma_string", attribute.TypeDecimal, "4,5", attribute.NewDecimal(4.5)},
		{"bool_from_one", attribute.TypeBoolean, float64(1), attribute.NewBool(true)},
		{"bool_from_string", attribute.TypeBoolean, "true", attribute.NewBool(true)},
		{"text_trimmed", attribute.TypeText, "  Leather  ", attribute.NewText("Leather")},
		{"text_from_number", attribute.TypeText, float64(5), attribute.NewText("5")},
		{"enum_trimmed", attribute.TypeEnum, " AWD_FULLTIME ", attribute.NewEnum("AWD_FULLTIME")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := override.Normalize(tt.dataType, tt.raw)
			require.NoError(t, err)
			assert.True(t, value.Equal(tt.want))
		})
	}
}

/*
TestNormalize_Uncoercible checks that garbage input is reported, not dropped.
*/
func TestNormalize_Uncoercible(t *testing.T) {
	tests := []struct {
		name     string
		dataType attribute.DataType
		raw      any
	}{
		{"int_from_word", attribute.TypeInt, "long"},
		{"bool_from_word", attribute.TypeBoolean, "maybe"},
		{"enum_from_number", attribute.TypeEnum, float64(3)},
		{"text_from_bool", attribute.TypeText, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := override.Normalize(tt.dataType, tt.raw)
			assert.ErrorIs(t, err, override.ErrUncoercible)
		})
	}
}
