package schema

// SpecOverrideSidecarI18nTable represents the 'spec.overridesidecari18n' table
type SpecOverrideSidecarI18nTable struct {
	Table     string
	Level     string
	EntityID  string
	Language  string
	Code      string
	Text      string
	UpdatedAt string
}

// SpecOverrideSidecarI18n is the schema definition for spec.overridesidecari18n
var SpecOverrideSidecarI18n = SpecOverrideSidecarI18nTable{
	Table:     "spec.overridesidecari18n",
	Level:     "entitylevel",
	EntityID:  "entityid",
	Language:  "language",
	Code:      "code",
	Text:      "text",
	UpdatedAt: "updatedat",
}

func (t SpecOverrideSidecarI18nTable) Columns() []string {
	return []string{t.Level, t.EntityID, t.Language, t.Code, t.Text, t.UpdatedAt}
}
