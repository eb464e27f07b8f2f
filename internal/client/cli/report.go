package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/muslimguide/internal/client/api"
	"github.com/iudanet/muslimguide/internal/client/storage"
	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/validation"
	apidto "github.com/iudanet/muslimguide/pkg/api"
)

type reportInput struct {
	name        string
	email       string
	category    string
	other       string
	description string
}

// runReport отправляет обращение. Незаполненные флаги запрашиваются
// интерактивно, если ввод идет с терминала.
func (c *Cli) runReport(ctx context.Context, args []string) error {
	var in reportInput
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&in.name, "name", "", "Your name")
	fs.StringVar(&in.email, "email", "", "Contact email")
	fs.StringVar(&in.category, "category", "", "Report category")
	fs.StringVar(&in.other, "other", "", "Details for the Others category")
	fs.StringVar(&in.description, "description", "", "Report text")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid report arguments: %w", err)
	}

	lockedEmail, err := c.store.GetLockedEmail(ctx)
	if err != nil {
		return fmt.Errorf("failed to get locked email: %w", err)
	}

	if err := c.fill(&in.name, "name", "Name: "); err != nil {
		return err
	}

	switch {
	case lockedEmail != "" && in.email == "":
		in.email = lockedEmail
		c.io.Printf("Using email %s\n", lockedEmail)
	case lockedEmail != "" && !strings.EqualFold(in.email, lockedEmail):
		return fmt.Errorf("%w: reports from this device must use %s", storage.ErrEmailLocked, lockedEmail)
	default:
		if err := c.fill(&in.email, "email", "Email: "); err != nil {
			return err
		}
	}

	if in.category == "" && c.io.IsInteractive() {
		c.io.Println("Categories:")
		for i, cat := range reportCategoryChoices() {
			c.io.Printf("  %d. %s\n", i+1, cat)
		}
	}
	if err := c.fill(&in.category, "category", "Category: "); err != nil {
		return err
	}
	in.category = parseReportCategory(in.category)

	if in.category == models.ReportCategoryOthers && in.other == "" && c.io.IsInteractive() {
		if in.other, err = c.io.ReadInput("Please specify: "); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	if err := c.fill(&in.description, "description", "Description: "); err != nil {
		return err
	}

	report := &models.Report{
		Name:        strings.TrimSpace(in.name),
		Email:       strings.TrimSpace(in.email),
		Category:    validation.ResolveReportCategory(in.category, in.other),
		Description: in.description,
	}
	if err := validation.ValidateReport(report); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}

	if _, err := c.authorize(ctx); err != nil {
		return err
	}

	resp, err := c.client.SubmitReport(ctx, apidto.ReportRequest{
		Name:        report.Name,
		Email:       report.Email,
		Category:    report.Category,
		Description: report.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to submit report: %w", err)
	}

	if lockedEmail == "" {
		if err := c.store.LockEmail(ctx, report.Email); err != nil {
			return fmt.Errorf("report %s submitted but email was not locked: %w", resp.ID, err)
		}
	}

	createdAt := resp.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if err := c.store.SaveReport(ctx, &storage.SubmittedReport{
		CreatedAt:   createdAt,
		ID:          resp.ID,
		Category:    report.Category,
		Description: report.Description,
	}); err != nil {
		return fmt.Errorf("report %s submitted but not saved locally: %w", resp.ID, err)
	}

	c.io.Printf("✓ Report submitted: %s\n", resp.ID)
	return nil
}

// fill запрашивает значение, если оно не задано флагом
func (c *Cli) fill(value *string, flagName, prompt string) error {
	if strings.TrimSpace(*value) != "" {
		return nil
	}
	if !c.io.IsInteractive() {
		return fmt.Errorf("missing --%s", flagName)
	}

	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", flagName, err)
	}
	*value = input
	return nil
}

func reportCategoryChoices() []string {
	return append(append([]string{}, models.ReportCategories...), models.ReportCategoryOthers)
}

// parseReportCategory принимает номер категории из списка или ее название
func parseReportCategory(input string) string {
	input = strings.TrimSpace(input)
	choices := reportCategoryChoices()
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1]
	}
	return input
}

func (c *Cli) runReportDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing report ID. Usage: guide report delete <id>")
	}
	id := args[0]

	if _, err := c.authorize(ctx); err != nil {
		return err
	}

	remoteErr := c.client.DeleteReport(ctx, id)
	if remoteErr != nil && !errors.Is(remoteErr, api.ErrItemNotFound) {
		return fmt.Errorf("failed to delete report: %w", remoteErr)
	}

	// Локальную копию убираем и тогда, когда сервер ее уже не знает
	if err := c.store.DeleteReport(ctx, id); err != nil && !errors.Is(err, storage.ErrReportNotFound) {
		return fmt.Errorf("failed to delete local report: %w", err)
	}

	if err := c.releaseEmail(ctx); err != nil {
		return err
	}

	if remoteErr != nil {
		return fmt.Errorf("report %s not found", id)
	}

	c.io.Printf("✓ Report deleted: %s\n", id)
	return nil
}

// releaseEmail снимает закрепленный email, когда на устройстве не осталось отчетов
func (c *Cli) releaseEmail(ctx context.Context) error {
	reports, err := c.store.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) > 0 {
		return nil
	}
	if err := c.store.UnlockEmail(ctx); err != nil {
		return fmt.Errorf("failed to unlock email: %w", err)
	}
	return nil
}

func (c *Cli) runReports(ctx context.Context) error {
	reports, err := c.store.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		c.io.Println("No reports submitted from this device.")
		return nil
	}

	for i, r := range reports {
		c.io.Printf("%d. [%s] %s\n", i+1, r.Category, r.ID)
		c.io.Printf("   Sent: %s\n", r.CreatedAt.Format(time.RFC3339))
		c.io.Printf("   %s\n", r.Description)
	}
	return nil
}
