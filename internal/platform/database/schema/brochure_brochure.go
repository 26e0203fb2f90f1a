package schema

// BrochureBrochureTable represents the 'brochure.brochure' table
type BrochureBrochureTable struct {
	Table           string
	ID              string
	Kind            string
	Title           string
	SelectionMode   string
	EditionIDs      string
	OnlyDifferences string
	Language        string
	IsSnapshot      string
	Payload         string
	LockedAt        string
	LockedBy        string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// BrochureBrochure is the schema definition for brochure.brochure
var BrochureBrochure = BrochureBrochureTable{
	Table:           "brochure.brochure",
	ID:              "id",
	Kind:            "kind",
	Title:           "title",
	SelectionMode:   "selectionmode",
	EditionIDs:      "editionids",
	OnlyDifferences: "onlydifferences",
	Language:        "language",
	IsSnapshot:      "issnapshot",
	Payload:         "payload",
	LockedAt:        "lockedat",
	LockedBy:        "lockedby",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t BrochureBrochureTable) Columns() []string {
	return []string{
		t.ID, t.Kind, t.Title, t.SelectionMode, t.EditionIDs, t.OnlyDifferences,
		t.Language, t.IsSnapshot, t.Payload, t.LockedAt, t.LockedBy,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
