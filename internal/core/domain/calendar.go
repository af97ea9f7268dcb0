package domain

import "time"

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"
)

// Date is a calendar date in DateLayout form.
type Date string

// ParseDate validates s against DateLayout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", err
	}
	return Date(s), nil
}

// TimeOfDay is a wall-clock time in TimeOfDayLayout form.
type TimeOfDay string

// ParseTimeOfDay accepts "15:04:05" or "15:04" and normalises to TimeOfDayLayout.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		var shortErr error
		if t, shortErr = time.Parse("15:04", s); shortErr != nil {
			return "", err
		}
	}
	return TimeOfDay(t.Format(TimeOfDayLayout)), nil
}
