package storage

import "errors"

// Common storage errors
var (
	// ErrListingNotFound indicates that listing was not found in storage
	ErrListingNotFound = errors.New("listing not found")

	// ErrMenuItemNotFound indicates that menu item was not found in storage
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrListingAlreadyExists indicates that listing with this id already exists
	ErrListingAlreadyExists = errors.New("listing already exists")

	// ErrCampaignAlreadyExists indicates that campaign with this id already exists
	ErrCampaignAlreadyExists = errors.New("campaign already exists")

	// ErrDeviceNotFound indicates that device was not registered
	ErrDeviceNotFound = errors.New("device not found")

	// ErrReportNotFound indicates that report was not found or belongs to another device
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidDelta indicates that counter field or delta value is not allowed
	ErrInvalidDelta = errors.New("invalid counter delta")
)
