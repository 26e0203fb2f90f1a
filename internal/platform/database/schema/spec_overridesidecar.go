package schema

// SpecOverrideSidecarTable represents the 'spec.overridesidecar' table
type SpecOverrideSidecarTable struct {
	Table     string
	Level     string
	EntityID  string
	Code      string
	Value     string
	DataType  string
	Unit      string
	UpdatedAt string
}

// SpecOverrideSidecar is the schema definition for spec.overridesidecar
var SpecOverrideSidecar = SpecOverrideSidecarTable{
	Table:     "spec.overridesidecar",
	Level:     "entitylevel",
	EntityID:  "entityid",
	Code:      "code",
	Value:     "value",
	DataType:  "datatype",
	Unit:      "unit",
	UpdatedAt: "updatedat",
}

func (t SpecOverrideSidecarTable) Columns() []string {
	return []string{t.Level, t.EntityID, t.Code, t.Value, t.DataType, t.Unit, t.UpdatedAt}
}
