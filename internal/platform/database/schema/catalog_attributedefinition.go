package schema

// CatalogAttributeDefinitionTable represents the 'catalog.attributedefinition' table
type CatalogAttributeDefinitionTable struct {
	Table        string
	ID           string
	Code         string
	DataType     string
	Unit         string
	Category     string
	DisplayGroup string
	Label        string
	IsFilterable string
	SortOrder    string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogAttributeDefinition is the schema definition for catalog.attributedefinition
var CatalogAttributeDefinition = CatalogAttributeDefinitionTable{
	Table:        "catalog.attributedefinition",
	ID:           "id",
	Code:         "code",
	DataType:     "datatype",
	Unit:         "unit",
	Category:     "category",
	DisplayGroup: "displaygroup",
	Label:        "label",
	IsFilterable: "isfilterable",
	SortOrder:    "sortorder",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogAttributeDefinitionTable) Columns() []string {
	return []string{
		t.ID, t.Code, t.DataType, t.Unit, t.Category, t.DisplayGroup, t.Label,
		t.IsFilterable, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}
