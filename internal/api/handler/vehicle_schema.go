package handler

import "github.com/nysp/correction-notices/internal/core/domain"

type createOfficerRequest struct {
	PersonnelNumber string `json:"personnel_number" validate:"required,max=20"`
	FirstName       string `json:"first_name"       validate:"required,max=100"`
	LastName        string `json:"last_name"        validate:"required,max=100"`
	Detachment      string `json:"detachment"       validate:"required,max=100"`
}

func (r createOfficerRequest) toDomain() domain.Officer {
	return domain.Officer{
		PersonnelNumber: r.PersonnelNumber,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Detachment:      r.Detachment,
	}
}

type createVehicleOwnerRequest struct {
	OwnerName string `json:"owner_name" validate:"required,max=255"`
	Username  string `json:"username"   validate:"required,max=32"`
	Address   string `json:"address"    validate:"required,max=255"`
	City      string `json:"city"       validate:"required,max=100"`
	State     string `json:"state"      validate:"required,len=2"`
	ZipCode   string `json:"zip_code"   validate:"required,max=10"`
}

func (r createVehicleOwnerRequest) toDomain() domain.VehicleOwner {
	return domain.VehicleOwner{
		OwnerName: r.OwnerName,
		Username:  r.Username,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
	}
}

type createVehicleRequest struct {
	VehicleOwnerID  int64  `json:"vehicle_owner_id" validate:"required,gt=0"`
	VehiclesLicence string `json:"vehicles_licence" validate:"required,max=20"`
	State           string `json:"state"            validate:"required,len=2"`
	Colour          string `json:"colour"           validate:"required,max=30"`
	Make            string `json:"make"             validate:"required,max=50"`
	VIN             string `json:"vin"              validate:"required,len=17"`
	Year            int    `json:"year"             validate:"gte=1886,lte=2100"`
	Type            string `json:"type"             validate:"required,max=50"`
}

func (r createVehicleRequest) toDomain() domain.Vehicle {
	return domain.Vehicle{
		VehicleOwnerID:  r.VehicleOwnerID,
		VehiclesLicence: r.VehiclesLicence,
		State:           r.State,
		Colour:          r.Colour,
		Make:            r.Make,
		VIN:             r.VIN,
		Year:            r.Year,
		Type:            r.Type,
	}
}

type updateVehicleRequest struct {
	VehicleOwnerID  *int64  `json:"vehicle_owner_id" validate:"omitempty,gt=0"`
	VehiclesLicence *string `json:"vehicles_licence" validate:"omitempty,max=20"`
	State           *string `json:"state"            validate:"omitempty,len=2"`
	Colour          *string `json:"colour"           validate:"omitempty,max=30"`
	Make            *string `json:"make"             validate:"omitempty,max=50"`
	VIN             *string `json:"vin"              validate:"omitempty,len=17"`
	Year            *int    `json:"year"             validate:"omitempty,gte=1886,lte=2100"`
	Type            *string `json:"type"             validate:"omitempty,max=50"`
}

func (r updateVehicleRequest) toPatch() domain.VehiclePatch {
	return domain.VehiclePatch{
		VehicleOwnerID:  r.VehicleOwnerID,
		VehiclesLicence: r.VehiclesLicence,
		State:           r.State,
		Colour:          r.Colour,
		Make:            r.Make,
		VIN:             r.VIN,
		Year:            r.Year,
		Type:            r.Type,
	}
}
