// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package override

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/database/schema"
	"github.com/bpetkov/modena/internal/platform/dberr"
	"github.com/bpetkov/modena/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.BeginQuerier
}

func NewPostgresRepository(db postgres.BeginQuerier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Read loads all five override tables for one (level, entity) into a Set.
func (repository *PostgresRepository) Read(context context.Context, level vehicle.Level, entityID string) (*Set, error) {
	set := NewSet()

	// Typed numeric rows.
	nQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SpecOverrideNumeric.Code, schema.SpecOverrideNumeric.Value,
		schema.SpecOverrideNumeric.Table,
		schema.SpecOverrideNumeric.Level, schema.SpecOverrideNumeric.EntityID)

	nRows, err := repository.db.Query(context, nQuery, string(level), entityID)
	if err != nil {
		return nil, dberr.Wrap(err, "read_numeric_overrides")
	}
	defer nRows.Close()

	for nRows.Next() {
		var code string
		var value float64
		if err := nRows.Scan(&code, &value); err != nil {
			return nil, dberr.Wrap(err, "scan_numeric_override")
		}
		set.Numeric[code] = value
	}
	nRows.Close()

	// Typed boolean rows.
	bQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SpecOverrideBoolean.Code, schema.SpecOverrideBoolean.Value,
		schema.SpecOverrideBoolean.Table,
		schema.SpecOverrideBoolean.Level, schema.SpecOverrideBoolean.EntityID)

	bRows, err := repository.db.Query(context, bQuery, string(level), entityID)
	if err != nil {
		return nil, dberr.Wrap(err, "read_boolean_overrides")
	}
	defer bRows.Close()

	for bRows.Next() {
		var code string
		var value bool
		if err := bRows.Scan(&code, &value); err != nil {
			return nil, dberr.Wrap(err, "scan_boolean_override")
		}
		set.Boolean[code] = value
	}
	bRows.Close()

	// Sidecar rows.
	sQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SpecOverrideSidecar.Code, schema.SpecOverrideSidecar.Value,
		schema.SpecOverrideSidecar.DataType, schema.SpecOverrideSidecar.Unit,
		schema.SpecOverrideSidecar.Table,
		schema.SpecOverrideSidecar.Level, schema.SpecOverrideSidecar.EntityID)

	sRows, err := repository.db.Query(context, sQuery, string(level), entityID)
	if err != nil {
		return nil, dberr.Wrap(err, "read_sidecar_overrides")
	}
	defer sRows.Close()

	for sRows.Next() {
		var code string
		row := SidecarRow{}
		if err := sRows.Scan(&code, &row.Value, &row.DataType, &row.Unit); err != nil {
			return nil, dberr.Wrap(err, "scan_sidecar_override")
		}
		set.Sidecar[code] = row
	}
	sRows.Close()

	// Localized sidecar rows.
	iQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SpecOverrideSidecarI18n.Language, schema.SpecOverrideSidecarI18n.Code,
		schema.SpecOverrideSidecarI18n.Text,
		schema.SpecOverrideSidecarI18n.Table,
		schema.SpecOverrideSidecarI18n.Level, schema.SpecOverrideSidecarI18n.EntityID)

	iRows, err := repository.db.Query(context, iQuery, string(level), entityID)
	if err != nil {
		return nil, dberr.Wrap(err, "read_sidecar_i18n_overrides")
	}
	defer iRows.Close()

	for iRows.Next() {
		var language, code, text string
		if err := iRows.Scan(&language, &code, &text); err != nil {
			return nil, dberr.Wrap(err, "scan_sidecar_i18n_override")
		}
		if set.SidecarI18n[language] == nil {
			set.SidecarI18n[language] = make(map[string]string)
		}
		set.SidecarI18n[language][code] = text
	}
	iRows.Close()

	// Enum rows.
	eQuery := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SpecOverrideEnum.Code, schema.SpecOverrideEnum.Value,
		schema.SpecOverrideEnum.Table,
		schema.SpecOverrideEnum.Level, schema.SpecOverrideEnum.EntityID)

	eRows, err := repository.db.Query(context, eQuery, string(level), entityID)
	if err != nil {
		return nil, dberr.Wrap(err, "read_enum_overrides")
	}
	defer eRows.Close()

	for eRows.Next() {
		var code, value string
		if err := eRows.Scan(&code, &value); err != nil {
			return nil, dberr.Wrap(err, "scan_enum_override")
		}
		set.Enums[code] = value
	}

	return set, nil
}

// Replace clears and rewrites all five override tables for one (level,
// entity) inside a single transaction. Concurrent readers never observe a
// half-applied write.
func (repository *PostgresRepository) Replace(context context.Context, level vehicle.Level, entityID string, replacement *Replacement) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_overrides")
	}
	defer transaction.Rollback(context)

	// Clear phase: flush every representation for this entity.
	clearTargets := []struct{ table, level, entity string }{
		{schema.SpecOverrideNumeric.Table, schema.SpecOverrideNumeric.Level, schema.SpecOverrideNumeric.EntityID},
		{schema.SpecOverrideBoolean.Table, schema.SpecOverrideBoolean.Level, schema.SpecOverrideBoolean.EntityID},
		{schema.SpecOverrideSidecar.Table, schema.SpecOverrideSidecar.Level, schema.SpecOverrideSidecar.EntityID},
		{schema.SpecOverrideSidecarI18n.Table, schema.SpecOverrideSidecarI18n.Level, schema.SpecOverrideSidecarI18n.EntityID},
		{schema.SpecOverrideEnum.Table, schema.SpecOverrideEnum.Level, schema.SpecOverrideEnum.EntityID},
	}

	for _, target := range clearTargets {
		delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2",
			target.table, target.level, target.entity)
		if _, err := transaction.Exec(context, delQuery, string(level), entityID); err != nil {
			return fmt.Errorf("postgres: failed to clear %s: %w", target.table, err)
		}
	}

	// Insert phase: queue all surviving rows through one batch pipeline.
	batch := &pgx.Batch{}

	nQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, NOW())",
		schema.SpecOverrideNumeric.Table, schema.SpecOverrideNumeric.Level,
		schema.SpecOverrideNumeric.EntityID, schema.SpecOverrideNumeric.Code,
		schema.SpecOverrideNumeric.Value, schema.SpecOverrideNumeric.UpdatedAt)
	for code, value := range replacement.Numeric {
		batch.Queue(nQuery, string(level), entityID, code, value)
	}

	bQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, NOW())",
		schema.SpecOverrideBoolean.Table, schema.SpecOverrideBoolean.Level,
		schema.SpecOverrideBoolean.EntityID, schema.SpecOverrideBoolean.Code,
		schema.SpecOverrideBoolean.Value, schema.SpecOverrideBoolean.UpdatedAt)
	for code, value := range replacement.Boolean {
		batch.Queue(bQuery, string(level), entityID, code, value)
	}

	sQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, NOW())",
		schema.SpecOverrideSidecar.Table, schema.SpecOverrideSidecar.Level,
		schema.SpecOverrideSidecar.EntityID, schema.SpecOverrideSidecar.Code,
		schema.SpecOverrideSidecar.Value, schema.SpecOverrideSidecar.DataType,
		schema.SpecOverrideSidecar.Unit, schema.SpecOverrideSidecar.UpdatedAt)
	for code, row := range replacement.Sidecar {
		batch.Queue(sQuery, string(level), entityID, code, row.Value, row.DataType, row.Unit)
	}

	iQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, NOW())",
		schema.SpecOverrideSidecarI18n.Table, schema.SpecOverrideSidecarI18n.Level,
		schema.SpecOverrideSidecarI18n.EntityID, schema.SpecOverrideSidecarI18n.Language,
		schema.SpecOverrideSidecarI18n.Code, schema.SpecOverrideSidecarI18n.Text,
		schema.SpecOverrideSidecarI18n.UpdatedAt)
	for language, texts := range replacement.SidecarI18n {
		for code, text := range texts {
			batch.Queue(iQuery, string(level), entityID, language, code, text)
		}
	}

	eQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, NOW())",
		schema.SpecOverrideEnum.Table, schema.SpecOverrideEnum.Level,
		schema.SpecOverrideEnum.EntityID, schema.SpecOverrideEnum.Code,
		schema.SpecOverrideEnum.Value, schema.SpecOverrideEnum.UpdatedAt)
	for code, value := range replacement.Enums {
		batch.Queue(eQuery, string(level), entityID, code, value)
	}

	if batch.Len() > 0 {
		response := transaction.SendBatch(context, batch)
		if err := response.Close(); err != nil {
			return fmt.Errorf("postgres: failed to batch insert overrides: %w", err)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_replace_overrides")
	}

	return nil
}
