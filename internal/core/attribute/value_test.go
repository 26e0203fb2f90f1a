// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpetkov/modena/internal/core/attribute"
)

/*
TestValue_Equal verifies canonical comparison across variants: numbers
compare as numbers, mixed families never match.
*/
func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    attribute.Value
		b    attribute.Value
		want bool
	}{
		{"int_vs_int_equal", attribute.NewInt(4500), attribute.NewInt(4500), true},
		{"int_vs_decimal_equal", attribute.NewInt(4500), attribute.NewDecimal(4500.0), true},
		{"decimal_differs", attribute.NewDecimal(4.4), attribute.NewDecimal(4.5), false},
		{"bool_equal", attribute.NewBool(true), attribute.NewBool(true), true},
		{"text_equal", attribute.NewText("Leather"), attribute.NewText("Leather"), true},
		{"text_vs_enum_same_string", attribute.NewText("AWD"), attribute.NewEnum("AWD"), true},
		{"text_vs_bool", attribute.NewText("true"), attribute.NewBool(true), false},
		{"unset_vs_unset", attribute.Value{}, attribute.Value{}, true},
		{"unset_vs_int", attribute.Value{}, attribute.NewInt(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

/*
TestValue_MarshalJSON confirms values serialize as native scalars.
*/
func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value attribute.Value
		want  string
	}{
		{"int", attribute.NewInt(210), "210"},
		{"decimal", attribute.NewDecimal(4.5), "4.5"},
		{"bool", attribute.NewBool(true), "true"},
		{"text", attribute.NewText("RWD"), `"RWD"`},
		{"unset", attribute.Value{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(encoded))
		})
	}
}

/*
TestDefinition_Representation checks the permanent storage classification.
*/
func TestDefinition_Representation(t *testing.T) {
	tests := []struct {
		name       string
		dataType   attribute.DataType
		filterable bool
		want       attribute.Representation
	}{
		{"filterable_int", attribute.TypeInt, true, attribute.RepNumeric},
		{"filterable_decimal", attribute.TypeDecimal, true, attribute.RepNumeric},
		{"filterable_boolean", attribute.TypeBoolean, true, attribute.RepBoolean},
		{"non_filterable_int", attribute.TypeInt, false, attribute.RepSidecar},
		{"non_filterable_boolean", attribute.TypeBoolean, false, attribute.RepSidecar},
		{"text", attribute.TypeText, false, attribute.RepSidecar},
		{"enum", attribute.TypeEnum, false, attribute.RepEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			definition := &attribute.Definition{DataType: tt.dataType, IsFilterable: tt.filterable}
			assert.Equal(t, tt.want, definition.Representation())
		})
	}
}
