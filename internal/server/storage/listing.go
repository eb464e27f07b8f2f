package storage

import (
	"context"

	"github.com/iudanet/muslimguide/internal/models"
)

// ListingStorage defines interface for listings and their menus
type ListingStorage interface {
	// CreateListing stores a listing together with its menu items
	// Returns ErrListingAlreadyExists if id is taken
	CreateListing(ctx context.Context, listing *models.Listing) error

	// GetListing retrieves a listing with its menu
	// Returns ErrListingNotFound if listing doesn't exist
	GetListing(ctx context.Context, id string) (*models.Listing, error)

	// ListListings returns all listings of a category without menus, ordered by name
	ListListings(ctx context.Context, category string) ([]models.Listing, error)

	// TopListings returns listings with at least one like, most liked first
	TopListings(ctx context.Context, limit int) ([]models.Listing, error)

	// TopMenuItems returns menu items with at least one like, most liked first
	TopMenuItems(ctx context.Context, limit int) ([]RankedMenuItem, error)
}

// RankedMenuItem menu item together with the name of its restaurant
type RankedMenuItem struct {
	RestaurantName string
	models.MenuItem
}

//go:generate moq -out counters_mock.go . CounterStorage

// CounterStorage defines interface for atomic like/dislike counter updates
type CounterStorage interface {
	// ApplyListingDelta atomically adds delta to field of a listing, never going below zero.
	// A decrement of a zero counter leaves it untouched and reports Applied=false.
	// Returns ErrListingNotFound if listing doesn't exist
	ApplyListingDelta(ctx context.Context, listingID string, field models.CounterField, delta int) (models.CounterUpdate, error)

	// ApplyMenuItemDelta atomically adds delta to field of a menu item, never going below zero.
	// A decrement of a zero counter leaves it untouched and reports Applied=false.
	// Returns ErrMenuItemNotFound if menu item doesn't exist
	ApplyMenuItemDelta(ctx context.Context, restaurantID, menuItemID string, field models.CounterField, delta int) (models.CounterUpdate, error)
}

// CampaignStorage defines interface for events and promotions
type CampaignStorage interface {
	// CreateCampaign stores a campaign
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error

	// ListCampaigns returns campaigns of a category ordered by start date
	ListCampaigns(ctx context.Context, category string) ([]models.Campaign, error)
}

// AnalyticsStorage defines interface for category click analytics
type AnalyticsStorage interface {
	// IncrementCategoryClick adds one click, creating the counter on first use
	IncrementCategoryClick(ctx context.Context, category string) (int64, error)

	// GetCategoryClicks returns all click counters ordered by category
	GetCategoryClicks(ctx context.Context) ([]models.CategoryClicks, error)
}
