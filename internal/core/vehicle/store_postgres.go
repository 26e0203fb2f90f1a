// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package vehicle

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bpetkov/modena/internal/platform/apperr"
	"github.com/bpetkov/modena/internal/platform/database/schema"
	"github.com/bpetkov/modena/internal/platform/dberr"
	"github.com/bpetkov/modena/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListMakes(context context.Context) ([]*Make, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s IS NULL ORDER BY %s ASC`,
		schema.VehicleMake.ID, schema.VehicleMake.Name, schema.VehicleMake.Slug,
		schema.VehicleMake.Table, schema.VehicleMake.DeletedAt, schema.VehicleMake.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_makes")
	}
	defer rows.Close()

	makes := make([]*Make, 0)
	for rows.Next() {
		m := &Make{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_make")
		}
		makes = append(makes, m)
	}

	return makes, nil
}

func (repository *PostgresRepository) ModelsByMakeSlug(context context.Context, slug string) ([]*Model, error) {
	query := fmt.Sprintf(`
		SELECT m.%s, m.%s, m.%s, m.%s
		FROM %s m
		JOIN %s k ON m.%s = k.%s
		WHERE k.%s = $1 AND m.%s IS NULL AND k.%s IS NULL
		ORDER BY m.%s ASC
	`,
		schema.VehicleModel.ID, schema.VehicleModel.MakeID, schema.VehicleModel.Name, schema.VehicleModel.Slug,
		schema.VehicleModel.Table, schema.VehicleMake.Table,
		schema.VehicleModel.MakeID, schema.VehicleMake.ID,
		schema.VehicleMake.Slug, schema.VehicleModel.DeletedAt, schema.VehicleMake.DeletedAt,
		schema.VehicleModel.Name,
	)

	rows, err := repository.db.Query(context, query, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "list_models_by_make")
	}
	defer rows.Close()

	models := make([]*Model, 0)
	for rows.Next() {
		m := &Model{}
		if err := rows.Scan(&m.ID, &m.MakeID, &m.Name, &m.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_model")
		}
		models = append(models, m)
	}

	return models, nil
}

func (repository *PostgresRepository) EditionsByModel(context context.Context, modelID string) ([]*Edition, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s
		FROM %s e
		JOIN %s y ON e.%s = y.%s
		WHERE y.%s = $1 AND e.%s IS NULL AND y.%s IS NULL
		ORDER BY y.%s DESC, e.%s ASC
	`,
		schema.VehicleEdition.ID, schema.VehicleEdition.ModelYearID, schema.VehicleEdition.Name,
		schema.VehicleEdition.Table, schema.VehicleModelYear.Table,
		schema.VehicleEdition.ModelYearID, schema.VehicleModelYear.ID,
		schema.VehicleModelYear.ModelID, schema.VehicleEdition.DeletedAt, schema.VehicleModelYear.DeletedAt,
		schema.VehicleModelYear.Year, schema.VehicleEdition.Name,
	)

	rows, err := repository.db.Query(context, query, modelID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_editions_by_model")
	}
	defer rows.Close()

	editions := make([]*Edition, 0)
	for rows.Next() {
		e := &Edition{}
		if err := rows.Scan(&e.ID, &e.ModelYearID, &e.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_edition")
		}
		editions = append(editions, e)
	}

	return editions, nil
}

// AncestorChain walks edition → model year → model → make in one join.
func (repository *PostgresRepository) AncestorChain(context context.Context, editionID string) (*Chain, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, y.%s, y.%s, m.%s, m.%s, k.%s, k.%s
		FROM %s e
		JOIN %s y ON e.%s = y.%s
		JOIN %s m ON y.%s = m.%s
		JOIN %s k ON m.%s = k.%s
		WHERE e.%s = $1 AND e.%s IS NULL
	`,
		schema.VehicleEdition.ID, schema.VehicleEdition.Name,
		schema.VehicleModelYear.ID, schema.VehicleModelYear.Year,
		schema.VehicleModel.ID, schema.VehicleModel.Name,
		schema.VehicleMake.ID, schema.VehicleMake.Name,
		schema.VehicleEdition.Table,
		schema.VehicleModelYear.Table, schema.VehicleEdition.ModelYearID, schema.VehicleModelYear.ID,
		schema.VehicleModel.Table, schema.VehicleModelYear.ModelID, schema.VehicleModel.ID,
		schema.VehicleMake.Table, schema.VehicleModel.MakeID, schema.VehicleMake.ID,
		schema.VehicleEdition.ID, schema.VehicleEdition.DeletedAt,
	)

	chain := &Chain{}
	err := repository.db.QueryRow(context, query, editionID).Scan(
		&chain.EditionID, &chain.EditionName,
		&chain.ModelYearID, &chain.Year,
		&chain.ModelID, &chain.ModelName,
		&chain.MakeID, &chain.MakeName,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_ancestor_chain")
	}

	return chain, nil
}

func (repository *PostgresRepository) EditionIDsByModelYears(context context.Context, modelYearIDs []string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT e.%s
		FROM %s e
		JOIN %s y ON e.%s = y.%s
		WHERE e.%s = ANY($1) AND e.%s IS NULL
		ORDER BY y.%s DESC, e.%s ASC
	`,
		schema.VehicleEdition.ID,
		schema.VehicleEdition.Table,
		schema.VehicleModelYear.Table, schema.VehicleEdition.ModelYearID, schema.VehicleModelYear.ID,
		schema.VehicleEdition.ModelYearID, schema.VehicleEdition.DeletedAt,
		schema.VehicleModelYear.Year, schema.VehicleEdition.Name,
	)

	rows, err := repository.db.Query(context, query, modelYearIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "expand_model_year_selection")
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (repository *PostgresRepository) EditionIDsByModel(context context.Context, modelID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT e.%s
		FROM %s e
		JOIN %s y ON e.%s = y.%s
		WHERE y.%s = $1 AND e.%s IS NULL AND y.%s IS NULL
		ORDER BY y.%s DESC, e.%s ASC
	`,
		schema.VehicleEdition.ID,
		schema.VehicleEdition.Table,
		schema.VehicleModelYear.Table, schema.VehicleEdition.ModelYearID, schema.VehicleModelYear.ID,
		schema.VehicleModelYear.ModelID, schema.VehicleEdition.DeletedAt, schema.VehicleModelYear.DeletedAt,
		schema.VehicleModelYear.Year, schema.VehicleEdition.Name,
	)

	rows, err := repository.db.Query(context, query, modelID)
	if err != nil {
		return nil, dberr.Wrap(err, "expand_model_selection")
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ExistsAtLevel checks entity existence in the table backing the level.
func (repository *PostgresRepository) ExistsAtLevel(context context.Context, level Level, entityID string) (bool, error) {
	var table, idCol, deletedCol string

	switch level {
	case LevelModel:
		table, idCol, deletedCol = schema.VehicleModel.Table, schema.VehicleModel.ID, schema.VehicleModel.DeletedAt
	case LevelModelYear:
		table, idCol, deletedCol = schema.VehicleModelYear.Table, schema.VehicleModelYear.ID, schema.VehicleModelYear.DeletedAt
	case LevelEdition:
		table, idCol, deletedCol = schema.VehicleEdition.Table, schema.VehicleEdition.ID, schema.VehicleEdition.DeletedAt
	default:
		return false, apperr.ValidationError("Unknown override level")
	}

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)`,
		table, idCol, deletedCol)

	var exists bool
	if err := repository.db.QueryRow(context, query, entityID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_entity_exists")
	}

	return exists, nil
}

// scanIDs drains a single-column id result set.
func scanIDs(rows pgx.Rows) ([]string, error) {
	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_edition_id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
