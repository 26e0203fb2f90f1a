package schema

// SpecOverrideEnumTable represents the 'spec.overrideenum' table
type SpecOverrideEnumTable struct {
	Table     string
	Level     string
	EntityID  string
	Code      string
	Value     string
	UpdatedAt string
}

// SpecOverrideEnum is the schema definition for spec.overrideenum
var SpecOverrideEnum = SpecOverrideEnumTable{
	Table:     "spec.overrideenum",
	Level:     "entitylevel",
	EntityID:  "entityid",
	Code:      "code",
	Value:     "value",
	UpdatedAt: "updatedat",
}

func (t SpecOverrideEnumTable) Columns() []string {
	return []string{t.Level, t.EntityID, t.Code, t.Value, t.UpdatedAt}
}
