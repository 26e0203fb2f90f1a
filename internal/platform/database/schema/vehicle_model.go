package schema

// VehicleModelTable represents the 'vehicle.model' table
type VehicleModelTable struct {
	Table     string
	ID        string
	MakeID    string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// VehicleModel is the schema definition for vehicle.model
var VehicleModel = VehicleModelTable{
	Table:     "vehicle.model",
	ID:        "id",
	MakeID:    "makeid",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t VehicleModelTable) Columns() []string {
	return []string{t.ID, t.MakeID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
