package events

import (
	"context"
	"time"

	"github.com/iudanet/muslimguide/internal/models"
)

//go:generate moq -out publisher_mock.go . Publisher

// CounterEvent describes one applied counter delta and the resulting counters.
type CounterEvent struct {
	OccurredAt time.Time           `json:"occurred_at"`
	ListingID  string              `json:"listing_id"`
	MenuItemID string              `json:"menu_item_id,omitempty"`
	Field      models.CounterField `json:"field"`
	Delta      int                 `json:"delta"`
	Likes      int64               `json:"likes"`
	Dislikes   int64               `json:"dislikes"`
}

// Key returns the partition key: all changes of one listing and its menu keep their order.
func (e CounterEvent) Key() string {
	return e.ListingID
}

// Publisher отправляет события об изменении счетчиков
type Publisher interface {
	PublishCounter(ctx context.Context, event CounterEvent) error
	Close() error
}

// NopPublisher discards events. Used when no broker is configured.
type NopPublisher struct{}

// PublishCounter does nothing.
func (NopPublisher) PublishCounter(context.Context, CounterEvent) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
