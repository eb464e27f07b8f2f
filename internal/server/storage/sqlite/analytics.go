package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/muslimguide/internal/models"
)

// IncrementCategoryClick adds one click to a category, creating the row on first click
func (s *Storage) IncrementCategoryClick(ctx context.Context, category string) (int64, error) {
	query := `
		INSERT INTO category_analytics (category, clicks)
		VALUES (?, 1)
		ON CONFLICT(category) DO UPDATE SET clicks = clicks + 1
		RETURNING clicks
	`

	var clicks int64
	if err := s.db.QueryRowContext(ctx, query, category).Scan(&clicks); err != nil {
		return 0, fmt.Errorf("failed to increment category click: %w", err)
	}

	return clicks, nil
}

// GetCategoryClicks returns click counters of all categories
func (s *Storage) GetCategoryClicks(ctx context.Context) ([]models.CategoryClicks, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT category, clicks FROM category_analytics ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category clicks: %w", err)
	}
	defer rows.Close()

	var result []models.CategoryClicks
	for rows.Next() {
		var c models.CategoryClicks
		if err := rows.Scan(&c.Category, &c.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan category clicks: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
