package vote

import (
	"context"

	"github.com/iudanet/muslimguide/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Store persists this device's vote choices, one VoteRecord per scope.
type Store interface {
	// Load returns the record saved under scope.
	// A scope that was never saved yields an empty record and nil error.
	Load(ctx context.Context, scope string) (models.VoteRecord, error)

	// Save replaces the record stored under scope.
	Save(ctx context.Context, scope string, record models.VoteRecord) error
}

//go:generate moq -out counter_sync_mock.go . CounterSync

// CounterSync applies signed deltas to the remote likes/dislikes counters of an item.
// Implementations must use an atomic increment on the remote side.
type CounterSync interface {
	// ApplyDelta adds delta (+1 or -1) to field of the remote item.
	// applied is false when a decrement found the counter already at zero
	// and left it unchanged.
	ApplyDelta(ctx context.Context, itemID string, field models.CounterField, delta int) (applied bool, err error)
}
