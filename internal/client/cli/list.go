package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/muslimguide/internal/validation"
	"github.com/iudanet/muslimguide/internal/vote"
)

// runList печатает заведения категории с отметкой голоса этого устройства
func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category. Usage: guide list <mosque|education|restaurant|community>")
	}
	category := args[0]
	if err := validation.ValidateListingCategory(category); err != nil {
		return err
	}

	listings, err := c.client.ListListings(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to list %s listings: %w", category, err)
	}

	c.io.Printf("=== %s listings ===\n", category)
	c.io.Println()

	if len(listings) == 0 {
		c.io.Println("No listings found.")
		return nil
	}

	votes := c.loadVotes(ctx, vote.ListingScope(category))
	for i, l := range listings {
		c.io.Printf("%d. %s%s\n", i+1, l.Name, voteMarker(votes.Get(l.ID)))
		c.io.Printf("   ID:      %s\n", l.ID)
		if l.Address != "" {
			c.io.Printf("   Address: %s\n", l.Address)
		}
		c.io.Printf("   Likes:   %d  Dislikes: %d\n", l.Likes, l.Dislikes)
		c.io.Println()
	}

	return nil
}
