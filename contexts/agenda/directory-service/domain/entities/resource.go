package entities

import (
	"strings"
	"time"
)

type ResourceType string

const (
	ResourceTypeSpace     ResourceType = "space"
	ResourceTypeEquipment ResourceType = "equipment"
)

func ValidResourceType(value string) bool {
	switch ResourceType(value) {
	case ResourceTypeSpace, ResourceTypeEquipment:
		return true
	}
	return false
}

// Resource is a bookable room or piece of equipment. Events reference
// resources by id; an event without one occupies the implicit main space.
type Resource struct {
	ResourceID string
	Name       string
	Type       ResourceType
	Available  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r Resource) ValidateBasics() bool {
	return strings.TrimSpace(r.Name) != "" && ValidResourceType(string(r.Type))
}
