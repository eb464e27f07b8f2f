package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. args не содержат имени команды.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "list":
		return c.runList(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "menu":
		return c.runMenu(ctx, args)
	case "featured":
		return c.runFeatured(ctx)
	case "campaigns":
		return c.runCampaigns(ctx, args)
	case "vote":
		return c.runVote(ctx, args)
	case "votes":
		return c.runVotes(ctx, args)
	case "click":
		return c.runClick(ctx, args)
	case "report":
		if len(args) > 0 && args[0] == "delete" {
			return c.runReportDelete(ctx, args[1:])
		}
		return c.runReport(ctx, args)
	case "reports":
		return c.runReports(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
