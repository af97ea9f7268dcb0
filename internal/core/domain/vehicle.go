package domain

// Officer is the issuing officer referenced by a correction notice.
type Officer struct {
	ID              int64  `json:"officer_id" bson:"_id"`
	PersonnelNumber string `json:"personnel_number" bson:"personnel_number"`
	FirstName       string `json:"first_name" bson:"first_name"`
	LastName        string `json:"last_name" bson:"last_name"`
	Detachment      string `json:"detachment" bson:"detachment"`
}

// VehicleOwner is the registered owner of one or more vehicles.
type VehicleOwner struct {
	ID        int64  `json:"vehicle_owner_id" bson:"_id"`
	OwnerName string `json:"owner_name" bson:"owner_name"`
	Username  string `json:"username" bson:"username"`
	Address   string `json:"address" bson:"address"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state" bson:"state"`
	ZipCode   string `json:"zip_code" bson:"zip_code"`
}

// Vehicle is a registered vehicle. VIN is unique.
type Vehicle struct {
	ID              int64  `json:"vehicle_id" bson:"_id"`
	VehicleOwnerID  int64  `json:"vehicle_owner_id" bson:"vehicle_owner_id"`
	VehiclesLicence string `json:"vehicles_licence" bson:"vehicles_licence"`
	State           string `json:"state" bson:"state"`
	Colour          string `json:"colour" bson:"colour"`
	Make            string `json:"make" bson:"make"`
	VIN             string `json:"vin" bson:"vin"`
	Year            int    `json:"year" bson:"year"`
	Type            string `json:"type" bson:"type"`
}

// VehiclePatch carries a partial vehicle update.
type VehiclePatch struct {
	VehicleOwnerID  *int64
	VehiclesLicence *string
	State           *string
	Colour          *string
	Make            *string
	VIN             *string
	Year            *int
	Type            *string
}

func (p VehiclePatch) Apply(v *Vehicle) {
	setIf(&v.VehicleOwnerID, p.VehicleOwnerID)
	setIf(&v.VehiclesLicence, p.VehiclesLicence)
	setIf(&v.State, p.State)
	setIf(&v.Colour, p.Colour)
	setIf(&v.Make, p.Make)
	setIf(&v.VIN, p.VIN)
	setIf(&v.Year, p.Year)
	setIf(&v.Type, p.Type)
}
