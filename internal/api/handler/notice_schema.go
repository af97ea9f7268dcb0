package handler

import "github.com/nysp/correction-notices/internal/core/domain"

type createNoticeRequest struct {
	DriverID           int64  `json:"driver_id"           validate:"required,gt=0"`
	VehicleID          int64  `json:"vehicle_id"          validate:"required,gt=0"`
	OfficerID          int64  `json:"officer_id"          validate:"required,gt=0"`
	ViolationDate      string `json:"violation_date"      validate:"required,datetime=2006-01-02"`
	ViolationTime      string `json:"violation_time"      validate:"required,timeofday"`
	Location           string `json:"location"            validate:"required,max=255"`
	District           string `json:"district"            validate:"required,max=100"`
	Warning            bool   `json:"warning"`
	RepairVehicle      bool   `json:"repair_vehicle"`
	CorrectImmediately bool   `json:"correct_immediately"`
}

func (r createNoticeRequest) toDomain() domain.CorrectionNotice {
	// ViolationTime has passed the timeofday validator.
	tod, _ := domain.ParseTimeOfDay(r.ViolationTime)
	return domain.CorrectionNotice{
		DriverID:           r.DriverID,
		VehicleID:          r.VehicleID,
		OfficerID:          r.OfficerID,
		ViolationDate:      domain.Date(r.ViolationDate),
		ViolationTime:      tod,
		Location:           r.Location,
		District:           r.District,
		Warning:            r.Warning,
		RepairVehicle:      r.RepairVehicle,
		CorrectImmediately: r.CorrectImmediately,
	}
}

type updateNoticeRequest struct {
	DriverID           *int64  `json:"driver_id"           validate:"omitempty,gt=0"`
	VehicleID          *int64  `json:"vehicle_id"          validate:"omitempty,gt=0"`
	OfficerID          *int64  `json:"officer_id"          validate:"omitempty,gt=0"`
	ViolationDate      *string `json:"violation_date"      validate:"omitempty,datetime=2006-01-02"`
	ViolationTime      *string `json:"violation_time"      validate:"omitempty,timeofday"`
	Location           *string `json:"location"            validate:"omitempty,max=255"`
	District           *string `json:"district"            validate:"omitempty,max=100"`
	Warning            *bool   `json:"warning"`
	RepairVehicle      *bool   `json:"repair_vehicle"`
	CorrectImmediately *bool   `json:"correct_immediately"`
}

func (r updateNoticeRequest) toPatch() domain.CorrectionNoticePatch {
	p := domain.CorrectionNoticePatch{
		DriverID:           r.DriverID,
		VehicleID:          r.VehicleID,
		OfficerID:          r.OfficerID,
		Location:           r.Location,
		District:           r.District,
		Warning:            r.Warning,
		RepairVehicle:      r.RepairVehicle,
		CorrectImmediately: r.CorrectImmediately,
	}
	if r.ViolationDate != nil {
		d := domain.Date(*r.ViolationDate)
		p.ViolationDate = &d
	}
	if r.ViolationTime != nil {
		tod, _ := domain.ParseTimeOfDay(*r.ViolationTime)
		p.ViolationTime = &tod
	}
	return p
}

type createNoticeViolationRequest struct {
	CorrectionNoticeID int64 `json:"correction_notice_id" validate:"required,gt=0"`
	ViolationTypeID    int64 `json:"violation_type_id"    validate:"required,gt=0"`
}

func (r createNoticeViolationRequest) toDomain() domain.NoticeViolation {
	return domain.NoticeViolation{
		CorrectionNoticeID: r.CorrectionNoticeID,
		ViolationTypeID:    r.ViolationTypeID,
	}
}
