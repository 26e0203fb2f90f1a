package schema

// SpecOverrideBooleanTable represents the 'spec.overrideboolean' table
type SpecOverrideBooleanTable struct {
	Table     string
	Level     string
	EntityID  string
	Code      string
	Value     string
	UpdatedAt string
}

// SpecOverrideBoolean is the schema definition for spec.overrideboolean
var SpecOverrideBoolean = SpecOverrideBooleanTable{
	Table:     "spec.overrideboolean",
	Level:     "entitylevel",
	EntityID:  "entityid",
	Code:      "code",
	Value:     "value",
	UpdatedAt: "updatedat",
}

func (t SpecOverrideBooleanTable) Columns() []string {
	return []string{t.Level, t.EntityID, t.Code, t.Value, t.UpdatedAt}
}
