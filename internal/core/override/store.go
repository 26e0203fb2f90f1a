package override

import (
	"context"

	"github.com/bpetkov/modena/internal/core/vehicle"
)

// Repository persists and reads the three override representations.
type Repository interface {
	// Read returns every stored override for one (level, entity).
	Read(context context.Context, level vehicle.Level, entityID string) (*Set, error)

	// Replace atomically supersedes the complete override set for one
	// (level, entity) with the given normalized replacement.
	Replace(context context.Context, level vehicle.Level, entityID string, replacement *Replacement) error
}
