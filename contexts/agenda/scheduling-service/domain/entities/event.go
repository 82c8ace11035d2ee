package entities

import (
	"strings"
	"time"
)

// Event is a timed activity booked for a church, optionally holding a
// physical resource. An empty ResourceID means the church's main space.
type Event struct {
	EventID      string
	Title        string
	Description  string
	Responsible  string
	StartsAt     time.Time
	EndsAt       time.Time
	CreatedBy    string
	ChurchID     string
	ResourceID   string
	AllDay       bool
	DepartmentID string
	OrganID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidateBasics reports whether the event carries the fields every stored
// event must have. The AllDay flag is advisory and never checked; overlap
// semantics always use the stored instants.
func (e Event) ValidateBasics() bool {
	return strings.TrimSpace(e.Title) != "" &&
		strings.TrimSpace(e.ChurchID) != "" &&
		!e.StartsAt.IsZero() &&
		!e.EndsAt.IsZero() &&
		e.StartsAt.Before(e.EndsAt)
}
