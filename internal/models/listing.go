package models

import "time"

// Категории заведений
const (
	CategoryMosque     = "mosque"
	CategoryEducation  = "education"
	CategoryRestaurant = "restaurant"
	CategoryCommunity  = "community"
)

// Категории кампаний (события и промо-акции не голосуются)
const (
	CampaignEvent     = "event"
	CampaignPromotion = "promotion"
)

// ListingCategories lists every category a listing may belong to.
var ListingCategories = []string{CategoryMosque, CategoryEducation, CategoryRestaurant, CategoryCommunity}

// IsListingCategory reports whether c is a known listing category.
func IsListingCategory(c string) bool {
	for _, known := range ListingCategories {
		if known == c {
			return true
		}
	}
	return false
}

// Listing represents an establishment (mosque, school, restaurant, community group).
type Listing struct {
	CreatedAt   time.Time  `json:"created_at"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Opening     string     `json:"opening"`
	Closing     string     `json:"closing"`
	Menu        []MenuItem `json:"menu,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	ItemCounters
}

// MenuItem is a dish on a restaurant's menu. Counters live on the menu item row
// itself so they can be incremented atomically.
type MenuItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Position     int    `json:"position"`
	ItemCounters
}

// Campaign событие или промо-акция
type Campaign struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Organizer   string  `json:"organizer"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// CategoryClicks счетчик переходов в категорию с главного экрана
type CategoryClicks struct {
	Category string `json:"category"`
	Clicks   int64  `json:"clicks"`
}
