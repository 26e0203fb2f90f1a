package brochure

import (
	stdctx "context"

	"github.com/bpetkov/modena/internal/platform/postgres"
	"github.com/bpetkov/modena/pkg/pagination"
)

// ComputePayload builds the snapshot payload inside the lock transaction.
// The querier it receives is transaction-bound, so every read feeding the
// payload sees one consistent point in time.
type ComputePayload func(context stdctx.Context, querier postgres.BeginQuerier, record *Brochure) ([]byte, error)

// Repository persists brochures and drives the lock/unlock lifecycle.
type Repository interface {
	Create(context stdctx.Context, record *Brochure) error
	List(context stdctx.Context, params pagination.Params) ([]*Brochure, int, error)
	Get(context stdctx.Context, id string) (*Brochure, error)

	// UpdateSelection rewrites the selection fields of a live record.
	// The snapshot-state guard lives in the service; the store just writes.
	UpdateSelection(context stdctx.Context, record *Brochure) error

	// Lock atomically computes and persists the snapshot: it locks the row,
	// rejects records already in the snapshot state, runs compute inside
	// the same transaction, stores the payload, and flips is_snapshot.
	Lock(context stdctx.Context, id string, lockedBy *string, compute ComputePayload) (*Brochure, error)

	// Unlock discards the payload and returns the record to the live state.
	Unlock(context stdctx.Context, id string) error

	SoftDelete(context stdctx.Context, id string) error
}
