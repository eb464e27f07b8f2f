package vote

import (
	"errors"
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
)

var (
	// ErrInvalidChoice indicates that requested choice is neither like nor dislike
	ErrInvalidChoice = errors.New("invalid vote choice: must be like or dislike")

	// ErrEmptyItemID indicates that item id is empty
	ErrEmptyItemID = errors.New("item id cannot be empty")
)

// SyncError is returned (inside Outcome) when a remote counter delta failed.
type SyncError struct {
	Err    error
	ItemID string
	Field  models.CounterField
	Delta  int
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s %+d on item %s: %v", e.Field, e.Delta, e.ItemID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
