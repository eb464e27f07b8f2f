package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/vote"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing listing ID. Usage: guide show <id>")
	}

	listing, err := c.client.GetListing(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get listing: %w", err)
	}

	votes := c.loadVotes(ctx, vote.ListingScope(listing.Category))

	c.io.Printf("=== %s%s ===\n", listing.Name, voteMarker(votes.Get(listing.ID)))
	c.io.Printf("ID:          %s\n", listing.ID)
	c.io.Printf("Category:    %s\n", listing.Category)
	if listing.Address != "" {
		c.io.Printf("Address:     %s\n", listing.Address)
	}
	if listing.Opening != "" || listing.Closing != "" {
		c.io.Printf("Hours:       %s - %s\n", listing.Opening, listing.Closing)
	}
	if listing.Description != "" {
		c.io.Printf("Description: %s\n", listing.Description)
	}
	c.io.Printf("Location:    %.6f, %.6f\n", listing.Latitude, listing.Longitude)
	c.io.Printf("Likes:       %d\n", listing.Likes)
	c.io.Printf("Dislikes:    %d\n", listing.Dislikes)

	if len(listing.Menu) > 0 {
		c.io.Println()
		c.printMenu(ctx, listing)
	}

	return nil
}

func (c *Cli) runMenu(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing restaurant ID. Usage: guide menu <restaurantID>")
	}

	listing, err := c.client.GetListing(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get restaurant: %w", err)
	}
	if listing.Category != models.CategoryRestaurant {
		return fmt.Errorf("%s is not a restaurant", listing.Name)
	}
	if len(listing.Menu) == 0 {
		c.io.Println("Menu is empty.")
		return nil
	}

	c.printMenu(ctx, listing)
	return nil
}

func (c *Cli) printMenu(ctx context.Context, listing *models.Listing) {
	votes := c.loadVotes(ctx, vote.MenuScope(listing.ID))

	c.io.Printf("Menu of %s:\n", listing.Name)
	for i, item := range listing.Menu {
		c.io.Printf("%d. %s%s (👍 %d / 👎 %d)\n", i+1, item.Name, voteMarker(votes.Get(item.ID)), item.Likes, item.Dislikes)
		c.io.Printf("   ID: %s\n", item.ID)
		if item.Description != "" {
			c.io.Printf("   %s\n", item.Description)
		}
	}
}
