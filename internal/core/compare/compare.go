// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package compare builds diff-aware comparison tables across edition sets.

A comparison is a pure function of current override state: each requested
edition is resolved independently, rows are the union of codes carrying a
value for at least one edition, and an optional difference filter drops rows
whose canonical values match everywhere. Nothing here writes or caches.
*/
package compare

import (
	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/resolution"
)

// Request is the wire shape of a comparison call.
type Request struct {
	EditionIDs      []string `json:"edition_ids"`
	OnlyDifferences bool     `json:"only_differences"`
	Language        string   `json:"language"`
}

// EditionMeta labels one column of the comparison table.
type EditionMeta struct {
	ID          string `json:"id"`
	MakeName    string `json:"make_name"`
	ModelName   string `json:"model_name"`
	Year        int    `json:"year"`
	EditionName string `json:"edition_name"`
}

// Row is one attribute across every requested edition. Values holds an
// entry per edition id; unset values serialize as null.
type Row struct {
	Code     string                     `json:"code"`
	DataType attribute.DataType         `json:"data_type"`
	Unit     *string                    `json:"unit"`
	Category string                     `json:"category"`
	Group    attribute.Group            `json:"display_group"`
	Values   map[string]attribute.Value `json:"values"`
}

// Result is the full comparison table.
type Result struct {
	Editions []EditionMeta `json:"editions"`
	Rows     []*Row        `json:"rows"`
}

// metaOf projects a resolved chain into column labeling.
func metaOf(res *resolution.Resolution) EditionMeta {
	return EditionMeta{
		ID:          res.Chain.EditionID,
		MakeName:    res.Chain.MakeName,
		ModelName:   res.Chain.ModelName,
		Year:        res.Chain.Year,
		EditionName: res.Chain.EditionName,
	}
}
