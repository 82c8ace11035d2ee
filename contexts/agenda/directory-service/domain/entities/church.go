package entities

import (
	"strings"
	"time"
)

// Church is a congregation site. Organs and departments are the named
// groups events and birthdays can be tagged with.
type Church struct {
	ChurchID    string
	Name        string
	Address     string
	ColorCode   string
	Organs      []string
	Departments []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Church) ValidateBasics() bool {
	if strings.TrimSpace(c.Name) == "" {
		return false
	}
	if c.ColorCode != "" && !ValidColorCode(c.ColorCode) {
		return false
	}
	return true
}

// ValidColorCode accepts #RGB and #RRGGBB hex notations.
func ValidColorCode(code string) bool {
	if len(code) != 4 && len(code) != 7 {
		return false
	}
	if code[0] != '#' {
		return false
	}
	for _, r := range code[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizedName is the case-insensitive uniqueness key for church names.
func NormalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
