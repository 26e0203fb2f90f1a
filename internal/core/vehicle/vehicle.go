// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

/*
Package vehicle defines the Make → Model → ModelYear → Edition taxonomy.

Hierarchy rows carry identity and parentage only; every technical attribute
lives in the override stores and is resolved against this chain. The package
exposes a read model: catalogue administration creates and edits the hierarchy
through a separate back-office system.
*/
package vehicle

import "time"

// Level names one tier of the taxonomy that can hold attribute overrides.
//
// Makes never hold overrides, so there is no LevelMake.
type Level string

const (
	LevelModel     Level = "model"
	LevelModelYear Level = "model_year"
	LevelEdition   Level = "edition"
)

// Valid reports whether the string names a known override level.
func (level Level) Valid() bool {
	switch level {
	case LevelModel, LevelModelYear, LevelEdition:
		return true
	}
	return false
}

// Make is a vehicle manufacturer.
type Make struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}

// Model is a vehicle line belonging to a make.
type Model struct {
	ID        string    `json:"id"`
	MakeID    string    `json:"make_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
}

// ModelYear is one production year of a model.
type ModelYear struct {
	ID        string    `json:"id"`
	ModelID   string    `json:"model_id"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"-"`
}

// Edition is a concrete trim/engine combination within a model year.
type Edition struct {
	ID          string    `json:"id"`
	ModelYearID string    `json:"model_year_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"-"`
}

// Chain is the resolved ancestor path of one edition, used by the resolution
// engine for override precedence and by comparison output for labeling.
type Chain struct {
	EditionID   string `json:"edition_id"`
	EditionName string `json:"edition_name"`
	ModelYearID string `json:"model_year_id"`
	Year        int    `json:"year"`
	ModelID     string `json:"model_id"`
	ModelName   string `json:"model_name"`
	MakeID      string `json:"make_id"`
	MakeName    string `json:"make_name"`
}
