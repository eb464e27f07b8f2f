package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

const listingColumns = `id, name, category, address, description, image, opening, closing,
		latitude, longitude, likes, dislikes, created_at`

// CreateListing stores a listing together with its menu items in one transaction
func (s *Storage) CreateListing(ctx context.Context, listing *models.Listing) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		listing.ID,
		listing.Name,
		listing.Category,
		listing.Address,
		listing.Description,
		listing.Image,
		listing.Opening,
		listing.Closing,
		listing.Latitude,
		listing.Longitude,
		listing.Likes,
		listing.Dislikes,
		listing.CreatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrListingAlreadyExists
		}
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	menuQuery := `
		INSERT INTO menu_items (restaurant_id, id, name, description, position, likes, dislikes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, item := range listing.Menu {
		_, err = tx.ExecContext(ctx, menuQuery,
			listing.ID,
			item.ID,
			item.Name,
			item.Description,
			i,
			item.Likes,
			item.Dislikes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert menu item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit listing: %w", err)
	}

	return nil
}

// GetListing retrieves a listing with its menu ordered by position
func (s *Storage) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

	listing, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	menu, err := s.listMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.Menu = menu

	return listing, nil
}

// ListListings returns listings of a category ordered by name
func (s *Storage) ListListings(ctx context.Context, category string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE category = ? ORDER BY name, id`

	return s.queryListings(ctx, query, category)
}

// TopListings returns listings with likes > 0, most liked first
func (s *Storage) TopListings(ctx context.Context, limit int) ([]models.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE likes > 0
		ORDER BY likes DESC, name
		LIMIT ?
	`

	return s.queryListings(ctx, query, limit)
}

// TopMenuItems returns menu items with likes > 0, most liked first
func (s *Storage) TopMenuItems(ctx context.Context, limit int) ([]storage.RankedMenuItem, error) {
	query := `
		SELECT l.name, m.restaurant_id, m.id, m.name, m.description, m.position, m.likes, m.dislikes
		FROM menu_items m
		JOIN listings l ON l.id = m.restaurant_id
		WHERE m.likes > 0
		ORDER BY m.likes DESC, m.name
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top menu items: %w", err)
	}
	defer rows.Close()

	var items []storage.RankedMenuItem
	for rows.Next() {
		var item storage.RankedMenuItem
		if err := rows.Scan(
			&item.RestaurantName,
			&item.RestaurantID,
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Position,
			&item.Likes,
			&item.Dislikes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (s *Storage) listMenu(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	query := `
		SELECT restaurant_id, id, name, description, position, likes, dislikes
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	defer rows.Close()

	var menu []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.RestaurantID,
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Position,
			&item.Likes,
			&item.Dislikes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		menu = append(menu, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return menu, nil
}

func (s *Storage) queryListings(ctx context.Context, query string, args ...any) ([]models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return listings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var (
		listing   models.Listing
		createdAt int64
	)

	err := row.Scan(
		&listing.ID,
		&listing.Name,
		&listing.Category,
		&listing.Address,
		&listing.Description,
		&listing.Image,
		&listing.Opening,
		&listing.Closing,
		&listing.Latitude,
		&listing.Longitude,
		&listing.Likes,
		&listing.Dislikes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	listing.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &listing, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
