package entities

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 10, hour, minute, 0, 0, time.UTC)
}

func TestIntervalsOverlapSymmetry(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"nested", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"partial", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"disjoint", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
		{"touching", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IntervalsOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Fatalf("overlap = %v, want %v", got, tc.want)
			}
			mirrored := IntervalsOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd)
			if mirrored != got {
				t.Fatalf("overlap is not symmetric: %v vs %v", got, mirrored)
			}
		})
	}
}

func TestResourceIdentityImplicitMainSpace(t *testing.T) {
	if ResourceIdentity("") != MainSpaceIdentity {
		t.Fatalf("empty resource id must map to the main space identity")
	}
	if ResourceIdentity("  ") != MainSpaceIdentity {
		t.Fatalf("blank resource id must map to the main space identity")
	}
	if ResourceIdentity("room-1") != "room-1" {
		t.Fatalf("explicit resource id must pass through verbatim")
	}
}

func TestFindConflictSameRoom(t *testing.T) {
	existing := Event{EventID: "a", Title: "Choir rehearsal", ChurchID: "church-1", ResourceID: "room-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}
	candidate := Event{EventID: "b", Title: "Prayer meeting", ChurchID: "church-1", ResourceID: "room-1", StartsAt: at(10, 30), EndsAt: at(11, 30)}

	other, found := FindConflict(candidate, []Event{existing}, "")
	if !found {
		t.Fatalf("expected conflict with overlapping booking of the same room")
	}
	if other.EventID != "a" {
		t.Fatalf("expected conflicting event a, got %s", other.EventID)
	}

	candidate.StartsAt = at(11, 0)
	candidate.EndsAt = at(12, 0)
	if _, found := FindConflict(candidate, []Event{existing}, ""); found {
		t.Fatalf("back-to-back bookings must not conflict")
	}
}

func TestFindConflictResourceIsolation(t *testing.T) {
	existing := Event{EventID: "a", ChurchID: "church-1", ResourceID: "room-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}
	candidate := Event{EventID: "b", ChurchID: "church-1", ResourceID: "room-2", StartsAt: at(10, 0), EndsAt: at(11, 0)}

	if _, found := FindConflict(candidate, []Event{existing}, ""); found {
		t.Fatalf("different resources in the same church must not conflict")
	}
}

func TestFindConflictImplicitSharedSpace(t *testing.T) {
	existing := Event{EventID: "a", ChurchID: "church-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}
	candidate := Event{EventID: "b", ChurchID: "church-1", StartsAt: at(10, 30), EndsAt: at(11, 30)}

	if _, found := FindConflict(candidate, []Event{existing}, ""); !found {
		t.Fatalf("two events without a resource compete for the main space")
	}
}

func TestFindConflictCrossChurch(t *testing.T) {
	existing := Event{EventID: "a", ChurchID: "church-1", ResourceID: "room-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}
	candidate := Event{EventID: "b", ChurchID: "church-2", ResourceID: "room-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}

	if _, found := FindConflict(candidate, []Event{existing}, ""); found {
		t.Fatalf("same resource id in different churches must not conflict")
	}
}

func TestFindConflictExcludesSelf(t *testing.T) {
	stored := Event{EventID: "a", ChurchID: "church-1", ResourceID: "room-1", StartsAt: at(10, 0), EndsAt: at(11, 0)}

	if _, found := FindConflict(stored, []Event{stored}, "a"); found {
		t.Fatalf("an update must not conflict with its own stored record")
	}
	if _, found := FindConflict(stored, []Event{stored}, ""); !found {
		t.Fatalf("without exclusion the stored record collides with itself")
	}
}

func TestBirthdayDateInYearLeapDay(t *testing.T) {
	if _, ok := BirthdayDateInYear(29, 2, 2023); ok {
		t.Fatalf("Feb 29 must have no occurrence in 2023")
	}
	date, ok := BirthdayDateInYear(29, 2, 2024)
	if !ok {
		t.Fatalf("Feb 29 must occur in 2024")
	}
	if date.Month() != time.February || date.Day() != 29 {
		t.Fatalf("expected 2024-02-29, got %s", date.Format("2006-01-02"))
	}
}
