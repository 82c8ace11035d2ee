package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates the opaque identifiers events carry for life.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
