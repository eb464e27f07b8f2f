package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

// CreateCampaign stores a campaign
func (s *Storage) CreateCampaign(ctx context.Context, c *models.Campaign) error {
	query := `
		INSERT INTO campaigns (id, title, category, address, description, image,
			start_date, start_time, end_date, end_time, organizer, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.Category,
		c.Address,
		c.Description,
		c.Image,
		c.StartDate,
		c.StartTime,
		c.EndDate,
		c.EndTime,
		c.Organizer,
		c.Latitude,
		c.Longitude,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrCampaignAlreadyExists
		}
		return fmt.Errorf("failed to insert campaign: %w", err)
	}

	return nil
}

// ListCampaigns returns campaigns of a category ordered by start date
func (s *Storage) ListCampaigns(ctx context.Context, category string) ([]models.Campaign, error) {
	query := `
		SELECT id, title, category, address, description, image,
			start_date, start_time, end_date, end_time, organizer, latitude, longitude
		FROM campaigns
		WHERE category = ?
		ORDER BY start_date, start_time, title
	`

	rows, err := s.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Category,
			&c.Address,
			&c.Description,
			&c.Image,
			&c.StartDate,
			&c.StartTime,
			&c.EndDate,
			&c.EndTime,
			&c.Organizer,
			&c.Latitude,
			&c.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return campaigns, nil
}
