package schema

// VehicleMakeTable represents the 'vehicle.make' table
type VehicleMakeTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// VehicleMake is the schema definition for vehicle.make
var VehicleMake = VehicleMakeTable{
	Table:     "vehicle.make",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

func (t VehicleMakeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt, t.DeletedAt}
}
