package entities

import (
	"strings"
	"time"
)

// Birthday is a recurring annual date. Day and month identify the
// occurrence; the birth year is optional and only enables age display.
type Birthday struct {
	BirthdayID   string
	Name         string
	Day          int
	Month        int
	BirthYear    *int
	ChurchID     string
	Notes        string
	CreatedBy    string
	DepartmentID string
	OrganID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// leapMonthDays is the month-length reference used for validation. Month and
// day alone cannot distinguish leap status across years, so Feb 29 is a
// valid stored birthday; projection decides per target year.
var leapMonthDays = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func ValidDayMonth(day, month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= leapMonthDays[month]
}

func (b Birthday) ValidateBasics() bool {
	return strings.TrimSpace(b.Name) != "" && ValidDayMonth(b.Day, b.Month)
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NextOccurrence resolves the nearest upcoming concrete date for the
// birthday relative to referenceDate, comparing by calendar date so that a
// birthday today yields daysUntil zero. A February 29 birthday skips
// non-leap years entirely instead of shifting to March 1.
func (b Birthday) NextOccurrence(referenceDate time.Time) (time.Time, int) {
	ref := referenceDate.UTC()
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	year := refDay.Year()
	for {
		if b.Day == 29 && b.Month == 2 && !IsLeapYear(year) {
			year++
			continue
		}
		candidate := time.Date(year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
		if candidate.Before(refDay) {
			year++
			continue
		}
		daysUntil := int(candidate.Sub(refDay).Hours() / 24)
		return candidate, daysUntil
	}
}

// Age is the raw calendar-year difference, with no adjustment for whether
// the birthday has occurred yet this year. Nil when the birth year is
// unknown.
func (b Birthday) Age(referenceDate time.Time) *int {
	if b.BirthYear == nil {
		return nil
	}
	age := referenceDate.UTC().Year() - *b.BirthYear
	return &age
}
