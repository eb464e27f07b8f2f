package api

import (
	"context"
	"net/http"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/vote"
	"github.com/iudanet/muslimguide/pkg/api"
)

var (
	_ vote.CounterSync = (*ListingCounters)(nil)
	_ vote.CounterSync = (*MenuCounters)(nil)
)

// ListingCounters отправляет дельты счетчиков заведений
type ListingCounters struct {
	client *Client
}

// ListingCounters returns the counter sync for listings of any category.
func (c *Client) ListingCounters() *ListingCounters {
	return &ListingCounters{client: c}
}

// ApplyDelta atomically adds delta to field of the listing on the server.
func (lc *ListingCounters) ApplyDelta(ctx context.Context, itemID string, field models.CounterField, delta int) (bool, error) {
	path := "/api/v1/listings/" + escape(itemID) + "/counters"
	return lc.client.applyDelta(ctx, path, field, delta)
}

// MenuCounters отправляет дельты счетчиков блюд одного ресторана
type MenuCounters struct {
	client       *Client
	restaurantID string
}

// MenuCounters returns the counter sync for menu items of restaurantID.
func (c *Client) MenuCounters(restaurantID string) *MenuCounters {
	return &MenuCounters{client: c, restaurantID: restaurantID}
}

// ApplyDelta atomically adds delta to field of the menu item on the server.
func (mc *MenuCounters) ApplyDelta(ctx context.Context, itemID string, field models.CounterField, delta int) (bool, error) {
	path := "/api/v1/listings/" + escape(mc.restaurantID) + "/menu/" + escape(itemID) + "/counters"
	return mc.client.applyDelta(ctx, path, field, delta)
}

func (c *Client) applyDelta(ctx context.Context, path string, field models.CounterField, delta int) (bool, error) {
	req := api.CounterDeltaRequest{Field: field, Delta: delta}
	return c.doRequest(ctx, http.MethodPost, path, req, nil)
}
