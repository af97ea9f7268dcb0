package domain

// Driver is a person who can be issued correction notices.
type Driver struct {
	ID                  int64  `json:"driver_id" bson:"_id"`
	FirstName           string `json:"first_name" bson:"first_name"`
	LastName            string `json:"last_name" bson:"last_name"`
	Address             string `json:"address" bson:"address"`
	City                string `json:"city" bson:"city"`
	State               string `json:"state" bson:"state"`
	ZipCode             string `json:"zip_code" bson:"zip_code"`
	DriversLicence      string `json:"drivers_licence" bson:"drivers_licence"`
	DriversLicenceState string `json:"drivers_licence_state" bson:"drivers_licence_state"`
	BirthDate           Date   `json:"birth_date" bson:"birth_date"`
	Height              int    `json:"height" bson:"height"`
	Weight              int    `json:"weight" bson:"weight"`
	Eyes                string `json:"eyes" bson:"eyes"`
}

// DriverPatch carries a partial driver update; nil fields are left untouched.
type DriverPatch struct {
	FirstName           *string
	LastName            *string
	Address             *string
	City                *string
	State               *string
	ZipCode             *string
	DriversLicence      *string
	DriversLicenceState *string
	BirthDate           *Date
	Height              *int
	Weight              *int
	Eyes                *string
}

// Apply copies every set field of p onto d.
func (p DriverPatch) Apply(d *Driver) {
	setIf(&d.FirstName, p.FirstName)
	setIf(&d.LastName, p.LastName)
	setIf(&d.Address, p.Address)
	setIf(&d.City, p.City)
	setIf(&d.State, p.State)
	setIf(&d.ZipCode, p.ZipCode)
	setIf(&d.DriversLicence, p.DriversLicence)
	setIf(&d.DriversLicenceState, p.DriversLicenceState)
	setIf(&d.BirthDate, p.BirthDate)
	setIf(&d.Height, p.Height)
	setIf(&d.Weight, p.Weight)
	setIf(&d.Eyes, p.Eyes)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
