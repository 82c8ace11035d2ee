package entities

import (
	"strings"
	"time"
)

// MainSpaceIdentity is the resource identity shared by every event that does
// not name an explicit resource. Resource ids are UUIDs, so the sentinel can
// never collide with a real one.
const MainSpaceIdentity = "__main_space__"

// IntervalsOverlap reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. An event that ends exactly when another
// starts does not overlap; back-to-back bookings are allowed. Callers are
// responsible for rejecting inverted ranges before calling this.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ResourceIdentity maps an optional resource reference to a comparable
// identity token.
func ResourceIdentity(resourceID string) string {
	if strings.TrimSpace(resourceID) == "" {
		return MainSpaceIdentity
	}
	return resourceID
}

// InConflict reports whether two events compete for the same church and
// resource identity at overlapping times. Events in different churches never
// conflict, even when resource ids coincide.
func InConflict(a, b Event) bool {
	if a.ChurchID != b.ChurchID {
		return false
	}
	if ResourceIdentity(a.ResourceID) != ResourceIdentity(b.ResourceID) {
		return false
	}
	return IntervalsOverlap(a.StartsAt, a.EndsAt, b.StartsAt, b.EndsAt)
}

// FindConflict scans existing events in source order and returns the first
// one colliding with the candidate. excludeID skips the candidate's own
// stored record when re-validating an update.
func FindConflict(candidate Event, existing []Event, excludeID string) (Event, bool) {
	for _, other := range existing {
		if excludeID != "" && other.EventID == excludeID {
			continue
		}
		if InConflict(candidate, other) {
			return other, true
		}
	}
	return Event{}, false
}
