package schema

// VehicleEditionTable represents the 'vehicle.edition' table
type VehicleEditionTable struct {
	Table       string
	ID          string
	ModelYearID string
	Name        string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// VehicleEdition is the schema definition for vehicle.edition
var VehicleEdition = VehicleEditionTable{
	Table:       "vehicle.edition",
	ID:          "id",
	ModelYearID: "modelyearid",
	Name:        "name",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

func (t VehicleEditionTable) Columns() []string {
	return []string{t.ID, t.ModelYearID, t.Name, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
