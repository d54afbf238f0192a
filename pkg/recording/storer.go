package recording

import (
	"context"
	"time"
)

// Storer persists a recording. Implementations serialise Append so that
// records chain in arrival order.
type Storer interface {
	// Append chains data onto the current head and stores it.
	Append(ctx context.Context, data string, at time.Time) (*Record, error)

	// Get retrieves a record by its hash. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, hash string) (*Record, error)

	// Head returns the last record, or ErrNotFound for an empty recording.
	Head(ctx context.Context) (*Record, error)

	// List returns every record in sequence order.
	List(ctx context.Context) ([]*Record, error)

	// Len returns the number of records.
	Len(ctx context.Context) (int, error)

	// Reset discards the recording.
	Reset(ctx context.Context) error

	// Close closes the store and releases any resources.
	Close() error
}

// ErrNotFound is returned when a record doesn't exist in the store.
type ErrNotFound struct {
	Hash string
}

func (e ErrNotFound) Error() string {
	if e.Hash == "" {
		return "record not found"
	}

	return "record not found: " + e.Hash
}
