package domain

// ViolationType is a catalogue entry describing an offence.
type ViolationType struct {
	ID            int64  `json:"violation_type_id" bson:"_id"`
	Description   string `json:"description" bson:"description"`
	ViolationCode string `json:"violation_code" bson:"violation_code"`
}

// CorrectionNotice is a notice issued to a driver for a vehicle by an officer.
type CorrectionNotice struct {
	ID                 int64     `json:"correction_notice_id" bson:"_id"`
	DriverID           int64     `json:"driver_id" bson:"driver_id"`
	VehicleID          int64     `json:"vehicle_id" bson:"vehicle_id"`
	OfficerID          int64     `json:"officer_id" bson:"officer_id"`
	ViolationDate      Date      `json:"violation_date" bson:"violation_date"`
	ViolationTime      TimeOfDay `json:"violation_time" bson:"violation_time"`
	Location           string    `json:"location" bson:"location"`
	District           string    `json:"district" bson:"district"`
	Warning            bool      `json:"warning" bson:"warning"`
	RepairVehicle      bool      `json:"repair_vehicle" bson:"repair_vehicle"`
	CorrectImmediately bool      `json:"correct_immediately" bson:"correct_immediately"`
}

// CorrectionNoticePatch carries a partial notice update.
type CorrectionNoticePatch struct {
	DriverID           *int64
	VehicleID          *int64
	OfficerID          *int64
	ViolationDate      *Date
	ViolationTime      *TimeOfDay
	Location           *string
	District           *string
	Warning            *bool
	RepairVehicle      *bool
	CorrectImmediately *bool
}

func (p CorrectionNoticePatch) Apply(n *CorrectionNotice) {
	setIf(&n.DriverID, p.DriverID)
	setIf(&n.VehicleID, p.VehicleID)
	setIf(&n.OfficerID, p.OfficerID)
	setIf(&n.ViolationDate, p.ViolationDate)
	setIf(&n.ViolationTime, p.ViolationTime)
	setIf(&n.Location, p.Location)
	setIf(&n.District, p.District)
	setIf(&n.Warning, p.Warning)
	setIf(&n.RepairVehicle, p.RepairVehicle)
	setIf(&n.CorrectImmediately, p.CorrectImmediately)
}

// NoticeViolation links a correction notice to one violation type.
type NoticeViolation struct {
	ID                 int64 `json:"notice_violation_id" bson:"_id"`
	CorrectionNoticeID int64 `json:"correction_notice_id" bson:"correction_notice_id"`
	ViolationTypeID    int64 `json:"violation_type_id" bson:"violation_type_id"`
}
