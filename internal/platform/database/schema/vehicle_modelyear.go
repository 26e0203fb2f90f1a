package schema

// VehicleModelYearTable represents the 'vehicle.modelyear' table
type VehicleModelYearTable struct {
	Table     string
	ID        string
	ModelID   string
	Year      string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// VehicleModelYear is the schema definition for vehicle.modelyear
var VehicleModelYear = VehicleModelYearTable{
	Table:     "vehicle.modelyear",
	ID:        "id",
	ModelID:   "modelid",
	Year:      "year",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t VehicleModelYearTable) Columns() []string {
	return []string{t.ID, t.ModelID, t.Year, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
