package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleLeader Role = "leader"
	RoleAdmin  Role = "admin"
)

func ValidRole(value string) bool {
	switch Role(value) {
	case RoleMember, RoleLeader, RoleAdmin:
		return true
	}
	return false
}

// User is a directory account. Roles are stored for the client to act
// on; the API itself enforces no authorization.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ChurchID     string
	BirthDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) ValidateBasics() bool {
	if strings.TrimSpace(u.Name) == "" {
		return false
	}
	if !ValidEmail(u.Email) {
		return false
	}
	return ValidRole(string(u.Role))
}

// BornOn reports whether the user's birth date falls on the given
// day and month. Users without a birth date never match.
func (u User) BornOn(day, month int) bool {
	if u.BirthDate == nil {
		return false
	}
	return u.BirthDate.Day() == day && int(u.BirthDate.Month()) == month
}

// BornInMonth reports whether the user's birth date falls in the month.
func (u User) BornInMonth(month int) bool {
	if u.BirthDate == nil {
		return false
	}
	return int(u.BirthDate.Month()) == month
}

// NormalizedEmail is the case-insensitive uniqueness key for accounts.
func NormalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail is a loose shape check: something, an @, a domain with a dot.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
