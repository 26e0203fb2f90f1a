// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

package attribute

import (
	"context"
	"fmt"

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

// ListDefinitions loads every attribute definition plus its enum domain.
//
// Two ordered queries, stitched in memory; the catalogue is small (a few
// hundred rows) and read far more often than it changes.
func (repository *PostgresRepository) ListDefinitions(context context.Context) ([]*Definition, error) {
	dQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogAttributeDefinition.ID, schema.CatalogAttributeDefinition.Code,
		schema.CatalogAttributeDefinition.DataType, schema.CatalogAttributeDefinition.Unit,
		schema.CatalogAttributeDefinition.Category, schema.CatalogAttributeDefinition.DisplayGroup,
		schema.CatalogAttributeDefinition.Label, schema.CatalogAttributeDefinition.IsFilterable,
		schema.CatalogAttributeDefinition.SortOrder,
		schema.CatalogAttributeDefinition.Table,
		schema.CatalogAttributeDefinition.SortOrder, schema.CatalogAttributeDefinition.Code)

	eQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogAttributeEnumValue.DefinitionID, schema.CatalogAttributeEnumValue.Value,
		schema.CatalogAttributeEnumValue.Label, schema.CatalogAttributeEnumValue.SortOrder,
		schema.CatalogAttributeEnumValue.Table,
		schema.CatalogAttributeEnumValue.DefinitionID, schema.CatalogAttributeEnumValue.SortOrder)

	dRows, err := repository.db.Query(context, dQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attribute_definitions")
	}
	defer dRows.Close()

	definitions := make([]*Definition, 0)
	definitionMap := make(map[string]*Definition)

	for dRows.Next() {
		d := &Definition{}
		if err := dRows.Scan(&d.ID, &d.Code, &d.DataType, &d.Unit, &d.Category,
			&d.DisplayGroup, &d.Label, &d.IsFilterable, &d.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_attribute_definition")
		}
		definitions = append(definitions, d)
		definitionMap[d.ID] = d
	}
	dRows.Close()

	eRows, err := repository.db.Query(context, eQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attribute_enum_values")
	}
	defer eRows.Close()

	for eRows.Next() {
		var definitionID string
		option := EnumOption{}
		if err := eRows.Scan(&definitionID, &option.Value, &option.Label, &option.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_attribute_enum_value")
		}

		if def, ok := definitionMap[definitionID]; ok {
			def.EnumOptions = append(def.EnumOptions, option)
		}
	}

	return definitions, nil
}
