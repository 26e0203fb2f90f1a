// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute

import (
	"strconv"
	"strings"
)

// Group is the parsed form of a display-group string such as "03 Car body".
type Group struct {
	Seq   int    `json:"seq"`
	Title string `json:"title"`
}

// unknownGroupSeq sorts unrecognized groups after every known one.
const unknownGroupSeq = 999

// fallbackGroupOrder assigns ordinals to legacy groups that predate the
// "NN Title" naming convention and carry no numeric prefix.
var fallbackGroupOrder = map[string]int{
	"Engine":         1,
	"Transmission":   2,
	"Car body":       3,
	"Dimensions":     4,
	"Performance":    5,
	"Consumption":    6,
	"Safety":         7,
	"Comfort":        8,
	"Infotainment":   9,
	"Exterior":       10,
	"Interior":       11,
	"Warranty":       12,
	"Miscellaneous":  90,
	"Uncategorized":  95,
}

// bulgarianGroupTitles translates display-group titles for the bg locale.
var bulgarianGroupTitles = map[string]string{
	"Engine":        "Двигател",
	"Transmission":  "Трансмисия",
	"Car body":      "Купе",
	"Dimensions":    "Размери",
	"Performance":   "Динамика",
	"Consumption":   "Разход",
	"Safety":        "Безопасност",
	"Comfort":       "Комфорт",
	"Infotainment":  "Мултимедия",
	"Exterior":      "Екстериор",
	"Interior":      "Интериор",
	"Warranty":      "Гаранция",
	"Miscellaneous": "Разни",
	"Uncategorized": "Некатегоризирани",
}

// ParseDisplayGroup extracts the leading ordinal and title from a raw
// display-group string.
//
// "03 Car body" parses to {3, "Car body"}. Strings without a numeric prefix
// fall back to a static ordering table; titles absent from that table get a
// high ordinal so they sort last instead of erroring.
func ParseDisplayGroup(raw string) Group {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Group{Seq: unknownGroupSeq, Title: "Uncategorized"}
	}

	// Split off a leading run of digits followed by whitespace.
	digitEnd := 0
	for digitEnd < len(trimmed) && trimmed[digitEnd] >= '0' && trimmed[digitEnd] <= '9' {
		digitEnd++
	}

	if digitEnd > 0 && digitEnd < len(trimmed) && trimmed[digitEnd] == ' ' {
		seq, err := strconv.Atoi(trimmed[:digitEnd])
		title := strings.TrimSpace(trimmed[digitEnd:])
		if err == nil && title != "" {
			return Group{Seq: seq, Title: title}
		}
	}

	if seq, ok := fallbackGroupOrder[trimmed]; ok {
		return Group{Seq: seq, Title: trimmed}
	}

	return Group{Seq: unknownGroupSeq, Title: trimmed}
}

// LocalizeGroupTitle translates a display-group title for the requested
// language. Unknown titles and unsupported languages pass through unchanged.
func LocalizeGroupTitle(title, lang string) string {
	if lang != "bg" {
		return title
	}
	if localized, ok := bulgarianGroupTitles[title]; ok {
		return localized
	}
	return title
}
