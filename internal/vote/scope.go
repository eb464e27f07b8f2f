package vote

import (
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
)

// ListingScope returns the local storage key for votes on listings of a category.
func ListingScope(category string) string {
	switch category {
	case models.CategoryMosque:
		return "masjidVotes"
	default:
		return category + "Votes"
	}
}

// MenuScope returns the local storage key for votes on one restaurant's menu.
func MenuScope(restaurantID string) string {
	return fmt.Sprintf("restaurantMenuVotes-%s", restaurantID)
}
