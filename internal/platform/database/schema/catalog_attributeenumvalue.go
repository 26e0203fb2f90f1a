package schema

// CatalogAttributeEnumValueTable represents the 'catalog.attributeenumvalue' table
type CatalogAttributeEnumValueTable struct {
	Table        string
	ID           string
	DefinitionID string
	Value        string
	Label        string
	SortOrder    string
	CreatedAt    string
}

// CatalogAttributeEnumValue is the schema definition for catalog.attributeenumvalue
var CatalogAttributeEnumValue = CatalogAttributeEnumValueTable{
	Table:        "catalog.attributeenumvalue",
	ID:           "id",
	DefinitionID: "definitionid",
	Value:        "value",
	Label:        "label",
	SortOrder:    "sortorder",
	CreatedAt:    "createdat",
}

func (t CatalogAttributeEnumValueTable) Columns() []string {
	return []string{t.ID, t.DefinitionID, t.Value, t.Label, t.SortOrder, t.CreatedAt}
}
