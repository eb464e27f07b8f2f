package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/muslimguide/internal/validation"
)

func (c *Cli) runFeatured(ctx context.Context) error {
	featured, err := c.client.Featured(ctx)
	if err != nil {
		return fmt.Errorf("failed to get featured: %w", err)
	}

	c.io.Println("=== Featured places ===")
	if len(featured.Listings) == 0 {
		c.io.Println("No liked places yet.")
	}
	for i, l := range featured.Listings {
		c.io.Printf("%d. %s [%s] 👍 %d\n", i+1, l.Name, l.Category, l.Likes)
	}

	c.io.Println()
	c.io.Println("=== Featured dishes ===")
	if len(featured.MenuItems) == 0 {
		c.io.Println("No liked dishes yet.")
	}
	for i, item := range featured.MenuItems {
		c.io.Printf("%d. %s at %s 👍 %d\n", i+1, item.Name, item.RestaurantName, item.Likes)
	}

	return nil
}

func (c *Cli) runCampaigns(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing campaign category. Usage: guide campaigns <event|promotion>")
	}
	category := args[0]
	if err := validation.ValidateCampaignCategory(category); err != nil {
		return err
	}

	campaigns, err := c.client.Campaigns(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}

	if len(campaigns) == 0 {
		c.io.Printf("No %ss found.\n", category)
		return nil
	}

	for i, cp := range campaigns {
		c.io.Printf("%d. %s\n", i+1, cp.Title)
		c.io.Printf("   When:  %s %s - %s %s\n", cp.StartDate, cp.StartTime, cp.EndDate, cp.EndTime)
		if cp.Address != "" {
			c.io.Printf("   Where: %s\n", cp.Address)
		}
		if cp.Organizer != "" {
			c.io.Printf("   By:    %s\n", cp.Organizer)
		}
	}

	return nil
}

func (c *Cli) runClick(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing category name. Usage: guide click <category>")
	}
	name := strings.Join(args, " ")

	clicks, err := c.client.ClickCategory(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	c.io.Printf("%s: %d clicks\n", name, clicks)
	return nil
}
