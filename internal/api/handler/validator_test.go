package handler

import (
	"strings"
	"testing"
)

func validDriverRequest() createDriverRequest {
	return createDriverRequest{
		FirstName: "Dale", LastName: "Cooper", Address: "1 Main St", City: "Albany", State: "NY",
		ZipCode: "12207", DriversLicence: "D-100", DriversLicenceState: "NY", BirthDate: "1980-04-19",
		Height: 180, Weight: 80, Eyes: "brown",
	}
}

func TestValidator_Driver(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(validDriverRequest()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	bad := validDriverRequest()
	bad.State = "NEW"
	bad.BirthDate = "19/04/1980"
	bad.FirstName = ""
	err := v.Validate(bad)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"state must be exactly 2 characters", "birth_date must be a date", "first_name is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestValidator_PartialUpdate(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(updateDriverRequest{}); err != nil {
		t.Fatalf("empty patch must validate, got %v", err)
	}
	state := "N"
	if err := v.Validate(updateDriverRequest{State: &state}); err == nil {
		t.Fatalf("expected error for one-letter state")
	}
}

func TestValidator_NoticeTimeOfDay(t *testing.T) {
	v := NewValidator()
	req := createNoticeRequest{
		DriverID: 1, VehicleID: 1, OfficerID: 1,
		ViolationDate: "2024-05-01", ViolationTime: "13:45", Location: "Route 9", District: "Troop G",
	}
	if err := v.Validate(req); err != nil {
		t.Fatalf("expected HH:MM accepted, got %v", err)
	}
	if got := req.toDomain().ViolationTime; got != "13:45:00" {
		t.Fatalf("expected normalised time, got %q", got)
	}

	req.ViolationTime = "25:00"
	if err := v.Validate(req); err == nil || !strings.Contains(err.Error(), "violation_time") {
		t.Fatalf("expected violation_time error, got %v", err)
	}
}
