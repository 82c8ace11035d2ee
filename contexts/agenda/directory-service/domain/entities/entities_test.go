package entities

import (
	"testing"
	"time"
)

func TestValidColorCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"#1a2b3c", true},
		{"#FFF", true},
		{"#ffffff", true},
		{"1a2b3c", false},
		{"#1a2b3", false},
		{"#gggggg", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidColorCode(tc.code); got != tc.want {
			t.Errorf("ValidColorCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"ana.silva@church.org.br", true},
		{"ana@example", false},
		{"@example.com", false},
		{"ana@", false},
		{"ana", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestValidResourceTypeAndRole(t *testing.T) {
	if !ValidResourceType("space") || !ValidResourceType("equipment") {
		t.Fatal("known resource types must validate")
	}
	if ValidResourceType("vehicle") {
		t.Fatal("unknown resource type must not validate")
	}
	if !ValidRole("member") || !ValidRole("leader") || !ValidRole("admin") {
		t.Fatal("known roles must validate")
	}
	if ValidRole("owner") {
		t.Fatal("unknown role must not validate")
	}
}

func TestUserBornOn(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	user := User{BirthDate: &birth}

	if !user.BornOn(15, 6) {
		t.Fatal("expected match on day and month")
	}
	if user.BornOn(15, 7) || user.BornOn(16, 6) {
		t.Fatal("mismatched day or month must not match")
	}
	if !user.BornInMonth(6) || user.BornInMonth(7) {
		t.Fatal("month membership is off")
	}

	none := User{}
	if none.BornOn(15, 6) || none.BornInMonth(6) {
		t.Fatal("users without birth date never match")
	}
}
