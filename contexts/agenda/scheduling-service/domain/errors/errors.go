package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEventInput  = errors.New("invalid event input")
	ErrInvalidEventPeriod = errors.New("event must start before it ends")
	ErrInvalidAgendaRange = errors.New("invalid agenda range")
	ErrScheduleConflict   = errors.New("schedule conflict")
)

// ScheduleConflictError carries the colliding event so callers can surface
// its title. errors.Is(err, ErrScheduleConflict) matches it.
type ScheduleConflictError struct {
	ConflictingEventID string
	ConflictingTitle   string
}

func (e ScheduleConflictError) Error() string {
	return fmt.Sprintf("schedule conflict with event %q", e.ConflictingTitle)
}

func (e ScheduleConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
