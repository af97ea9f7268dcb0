package handler

import "github.com/nysp/correction-notices/internal/core/domain"

type createDriverRequest struct {
	FirstName           string `json:"first_name"            validate:"required,max=100"`
	LastName            string `json:"last_name"             validate:"required,max=100"`
	Address             string `json:"address"               validate:"required,max=255"`
	City                string `json:"city"                  validate:"required,max=100"`
	State               string `json:"state"                 validate:"required,len=2"`
	ZipCode             string `json:"zip_code"              validate:"required,max=10"`
	DriversLicence      string `json:"drivers_licence"       validate:"required,max=19"`
	DriversLicenceState string `json:"drivers_licence_state" validate:"required,len=2"`
	BirthDate           string `json:"birth_date"            validate:"required,datetime=2006-01-02"`
	Height              int    `json:"height"                validate:"gte=0,lte=300"`
	Weight              int    `json:"weight"                validate:"gte=0,lte=500"`
	Eyes                string `json:"eyes"                  validate:"required,max=20"`
}

// updateDriverRequest is a partial update; omitted fields keep their value.
type updateDriverRequest struct {
	FirstName           *string `json:"first_name"            validate:"omitempty,max=100"`
	LastName            *string `json:"last_name"             validate:"omitempty,max=100"`
	Address             *string `json:"address"               validate:"omitempty,max=255"`
	City                *string `json:"city"                  validate:"omitempty,max=100"`
	State               *string `json:"state"                 validate:"omitempty,len=2"`
	ZipCode             *string `json:"zip_code"              validate:"omitempty,max=10"`
	DriversLicence      *string `json:"drivers_licence"       validate:"omitempty,max=19"`
	DriversLicenceState *string `json:"drivers_licence_state" validate:"omitempty,len=2"`
	BirthDate           *string `json:"birth_date"            validate:"omitempty,datetime=2006-01-02"`
	Height              *int    `json:"height"                validate:"omitempty,gte=0,lte=300"`
	Weight              *int    `json:"weight"                validate:"omitempty,gte=0,lte=500"`
	Eyes                *string `json:"eyes"                  validate:"omitempty,max=20"`
}

func (r createDriverRequest) toDomain() domain.Driver {
	return domain.Driver{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Address:             r.Address,
		City:                r.City,
		State:               r.State,
		ZipCode:             r.ZipCode,
		DriversLicence:      r.DriversLicence,
		DriversLicenceState: r.DriversLicenceState,
		BirthDate:           domain.Date(r.BirthDate),
		Height:              r.Height,
		Weight:              r.Weight,
		Eyes:                r.Eyes,
	}
}

func (r updateDriverRequest) toPatch() domain.DriverPatch {
	p := domain.DriverPatch{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Address:             r.Address,
		City:                r.City,
		State:               r.State,
		ZipCode:             r.ZipCode,
		DriversLicence:      r.DriversLicence,
		DriversLicenceState: r.DriversLicenceState,
		Height:              r.Height,
		Weight:              r.Weight,
		Eyes:                r.Eyes,
	}
	if r.BirthDate != nil {
		d := domain.Date(*r.BirthDate)
		p.BirthDate = &d
	}
	return p
}
