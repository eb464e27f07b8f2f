package storage

import (
	"context"

	"github.com/iudanet/muslimguide/internal/models"
)

// VoteStorage persists vote records, one per scope.
// Implements vote.Store.
type VoteStorage interface {
	// Load returns the record stored under scope, or an empty record
	Load(ctx context.Context, scope string) (models.VoteRecord, error)

	// Save replaces the record stored under scope
	Save(ctx context.Context, scope string, record models.VoteRecord) error

	// Scopes lists every scope that has a stored record
	Scopes(ctx context.Context) ([]string, error)
}
