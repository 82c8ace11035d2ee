package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates the identifiers directory records carry for life.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
