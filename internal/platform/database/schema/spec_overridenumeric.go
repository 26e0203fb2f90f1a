package schema

// SpecOverrideNumericTable represents the 'spec.overridenumeric' table
type SpecOverrideNumericTable struct {
	Table     string
	Level     string
	EntityID  string
	Code      string
	Value     string
	UpdatedAt string
}

// SpecOverrideNumeric is the schema definition for spec.overridenumeric
var SpecOverrideNumeric = SpecOverrideNumericTable{
	Table:     "spec.overridenumeric",
	Level:     "entitylevel",
	EntityID:  "entityid",
	Code:      "code",
	Value:     "value",
	UpdatedAt: "updatedat",
}

func (t SpecOverrideNumericTable) Columns() []string {
	return []string{t.Level, t.EntityID, t.Code, t.Value, t.UpdatedAt}
}
