package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/validation"
	"github.com/iudanet/muslimguide/internal/vote"
)

// runVote голосует за заведение или блюдо:
//
//	vote <category> <id> <like|dislike>
//	vote menu <restaurantID> <menuItemID> <like|dislike>
func (c *Cli) runVote(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "menu" {
		if len(args) != 4 {
			return fmt.Errorf("usage: guide vote menu <restaurantID> <menuItemID> <like|dislike>")
		}
		restaurantID, itemID := args[1], args[2]
		choice, err := models.ParseVoteChoice(args[3])
		if err != nil {
			return err
		}
		if _, err := c.authorize(ctx); err != nil {
			return err
		}
		return c.castVote(ctx, vote.MenuScope(restaurantID), c.client.MenuCounters(restaurantID), itemID, choice)
	}

	if len(args) != 3 {
		return fmt.Errorf("usage: guide vote <category> <id> <like|dislike>")
	}
	category, itemID := args[0], args[1]
	if err := validation.ValidateListingCategory(category); err != nil {
		return err
	}
	choice, err := models.ParseVoteChoice(args[2])
	if err != nil {
		return err
	}
	if _, err := c.authorize(ctx); err != nil {
		return err
	}

	return c.castVote(ctx, vote.ListingScope(category), c.client.ListingCounters(), itemID, choice)
}

// castVote не возвращает ошибку синхронизации: голос просто не учитывается,
// пользователь видит сообщение
func (c *Cli) castVote(ctx context.Context, scope string, counters vote.CounterSync, itemID string, choice models.VoteChoice) error {
	engine := vote.NewEngine(vote.Config{
		Lock:     c.lock,
		Scope:    scope,
		Cooldown: c.cooldown,
	}, c.store, counters, c.logger)

	outcome, err := engine.CastVote(ctx, itemID, choice)
	if err != nil {
		return err
	}

	switch outcome.Result {
	case vote.ResultApplied:
		if outcome.Choice == models.VoteNone {
			c.io.Printf("✓ Vote removed from %s\n", itemID)
		} else {
			c.io.Printf("✓ Voted %s%s for %s\n", outcome.Choice, voteMarker(outcome.Choice), itemID)
		}
	case vote.ResultRejected:
		c.io.Println("Previous vote on this item is still being processed. Try again in a moment.")
	case vote.ResultFailed:
		c.io.Printf("Vote was not recorded: %v\n", outcome.Err)
	}

	return nil
}

// runVotes печатает локальные голоса одной области или список областей
func (c *Cli) runVotes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		scopes, err := c.store.Scopes(ctx)
		if err != nil {
			return fmt.Errorf("failed to list vote scopes: %w", err)
		}
		if len(scopes) == 0 {
			c.io.Println("No votes yet.")
			return nil
		}
		for _, s := range scopes {
			c.io.Println(s)
		}
		return nil
	}

	scope := args[0]
	if models.IsListingCategory(scope) {
		scope = vote.ListingScope(scope)
	}

	record, err := c.store.Load(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to load votes: %w", err)
	}
	if len(record) == 0 {
		c.io.Printf("No votes in %s.\n", scope)
		return nil
	}

	ids := make([]string, 0, len(record))
	for id := range record {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	c.io.Printf("=== %s ===\n", scope)
	for _, id := range ids {
		c.io.Printf("%s: %s%s\n", id, record[id], voteMarker(record[id]))
	}
	return nil
}
