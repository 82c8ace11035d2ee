package entities

import "time"

type OccurrenceKind string

const (
	OccurrenceKindEvent    OccurrenceKind = "event"
	OccurrenceKindBirthday OccurrenceKind = "birthday"
)

// Occurrence is a single dated calendar entry produced for display and
// query purposes. It is derived per query and never persisted.
type Occurrence struct {
	Kind         OccurrenceKind
	Date         time.Time
	SourceID     string
	Label        string
	ChurchID     string
	ResourceID   string
	DepartmentID string
	OrganID      string
	StartsAt     time.Time
	EndsAt       time.Time
	AllDay       bool
}

// IsLeapYear follows the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// BirthdayDateInYear projects a year-less (day, month) pair onto a concrete
// year at midnight UTC. A February 29 birthday has no occurrence in a
// non-leap year: the second return is false and the date must not be shifted
// to March 1.
func BirthdayDateInYear(day, month, year int) (time.Time, bool) {
	if day == 29 && month == 2 && !IsLeapYear(year) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
