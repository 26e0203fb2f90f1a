// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpetkov/modena/internal/core/attribute"
)

/*
TestParseDisplayGroup covers ordinal-prefixed titles, the static fallback
table, and unrecognized groups sorting last.
*/
func TestParseDisplayGroup(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantSeq   int
		wantTitle string
	}{
		{"ordinal_prefix", "03 Car body", 3, "Car body"},
		{"two_digit_ordinal", "11 Interior", 11, "Interior"},
		{"fallback_table", "Engine", 1, "Engine"},
		{"unknown_title", "Hovercraft mode", 999, "Hovercraft mode"},
		{"empty_string", "", 999, "Uncategorized"},
		{"surrounding_whitespace", "  05 Performance  ", 5, "Performance"},
		{"digits_without_title", "42", 999, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := attribute.ParseDisplayGroup(tt.raw)
			assert.Equal(t, tt.wantSeq, group.Seq)
			assert.Equal(t, tt.wantTitle, group.Title)
		})
	}
}

/*
TestLocalizeGroupTitle checks bg translation and pass-through behavior.
*/
func TestLocalizeGroupTitle(t *testing.T) {
	assert.Equal(t, "Безопасност", attribute.LocalizeGroupTitle("Safety", "bg"))
	assert.Equal(t, "Safety", attribute.LocalizeGroupTitle("Safety", "en"))
	assert.Equal(t, "Hovercraft mode", attribute.LocalizeGroupTitle("Hovercraft mode", "bg"))
}
