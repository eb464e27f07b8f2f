package api

import "github.com/iudanet/muslimguide/internal/models"

// ListingsResponse список заведений категории
type ListingsResponse struct {
	Listings []models.Listing `json:"listings"`
}

// FeaturedResponse самые популярные заведения и блюда
type FeaturedResponse struct {
	Listings  []models.Listing   `json:"listings"`
	MenuItems []FeaturedMenuItem `json:"menu_items"`
}

// FeaturedMenuItem блюдо вместе с названием ресторана
type FeaturedMenuItem struct {
	RestaurantName string `json:"restaurant_name"`
	models.MenuItem
}

// CampaignsResponse список событий или промо-акций
type CampaignsResponse struct {
	Campaigns []models.Campaign `json:"campaigns"`
}

// CategoryClickResponse счетчик переходов после инкремента
type CategoryClickResponse struct {
	Category string `json:"category"`
	Clicks   int64  `json:"clicks"`
}
