// Package seed imports listings and campaigns from a YAML catalog file.
// Import is idempotent: entries that already exist are skipped, so the same
// file can be applied on every start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/internal/validation"
)

// namespace для детерминированных id записей без явного id
var namespace = uuid.MustParse("6f1c2a9e-3d1b-4c55-9a0e-5b7d8e2f4a10")

// Catalog содержимое seed файла
type Catalog struct {
	Listings  []Listing  `yaml:"listings"`
	Campaigns []Campaign `yaml:"campaigns"`
}

// Listing заведение в seed файле
type Listing struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Category    string     `yaml:"category"`
	Address     string     `yaml:"address"`
	Description string     `yaml:"description"`
	Image       string     `yaml:"image"`
	Opening     string     `yaml:"opening"`
	Closing     string     `yaml:"closing"`
	Menu        []MenuItem `yaml:"menu"`
	Latitude    float64    `yaml:"latitude"`
	Longitude   float64    `yaml:"longitude"`
}

// MenuItem блюдо в seed файле
type MenuItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Campaign событие или промо-акция в seed файле
type Campaign struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Category    string  `yaml:"category"`
	Address     string  `yaml:"address"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
	StartDate   string  `yaml:"start_date"`
	StartTime   string  `yaml:"start_time"`
	EndDate     string  `yaml:"end_date"`
	EndTime     string  `yaml:"end_time"`
	Organizer   string  `yaml:"organizer"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
}

// Store набор хранилищ, в которые пишет импорт
type Store interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
}

// Result итог импорта
type Result struct {
	ListingsCreated  int
	ListingsSkipped  int
	CampaignsCreated int
	CampaignsSkipped int
}

// Decode reads a catalog from r.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}
	return &c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Apply writes the catalog into store, skipping entries that already exist.
func Apply(ctx context.Context, store Store, c *Catalog, logger *slog.Logger) (Result, error) {
	var res Result
	now := time.Now().UTC()

	for i, entry := range c.Listings {
		listing, err := entry.toModel(now)
		if err != nil {
			return res, fmt.Errorf("listing #%d: %w", i+1, err)
		}

		if err := store.CreateListing(ctx, listing); err != nil {
			if errors.Is(err, storage.ErrListingAlreadyExists) {
				res.ListingsSkipped++
				continue
			}
			return res, fmt.Errorf("listing %q: %w", listing.Name, err)
		}
		res.ListingsCreated++
	}

	for i, entry := range c.Campaigns {
		campaign, err := entry.toModel()
		if err != nil {
			return res, fmt.Errorf("campaign #%d: %w", i+1, err)
		}

		if err := store.CreateCampaign(ctx, campaign); err != nil {
			if errors.Is(err, storage.ErrCampaignAlreadyExists) {
				res.CampaignsSkipped++
				continue
			}
			return res, fmt.Errorf("campaign %q: %w", campaign.Title, err)
		}
		res.CampaignsCreated++
	}

	logger.Info("Seed catalog applied",
		"listings_created", res.ListingsCreated,
		"listings_skipped", res.ListingsSkipped,
		"campaigns_created", res.CampaignsCreated,
		"campaigns_skipped", res.CampaignsSkipped)

	return res, nil
}

func (l Listing) toModel(now time.Time) (*models.Listing, error) {
	if l.Name == "" {
		return nil, errors.New("name is required")
	}
	if err := validation.ValidateListingCategory(l.Category); err != nil {
		return nil, err
	}

	id := l.ID
	if id == "" {
		id = stableID(l.Category, l.Name)
	}

	listing := &models.Listing{
		ID:          id,
		Name:        l.Name,
		Category:    l.Category,
		Address:     l.Address,
		Description: l.Description,
		Image:       l.Image,
		Opening:     l.Opening,
		Closing:     l.Closing,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		CreatedAt:   now,
	}

	if len(l.Menu) > 0 && l.Category != models.CategoryRestaurant {
		return nil, fmt.Errorf("only restaurants can have a menu, got %q", l.Category)
	}

	seen := make(map[string]struct{}, len(l.Menu))
	for i, m := range l.Menu {
		if m.Name == "" {
			return nil, fmt.Errorf("menu item #%d: name is required", i+1)
		}
		itemID := m.ID
		if itemID == "" {
			itemID = stableID(id, m.Name)
		}
		if _, dup := seen[itemID]; dup {
			return nil, fmt.Errorf("duplicate menu item %q", itemID)
		}
		seen[itemID] = struct{}{}

		listing.Menu = append(listing.Menu, models.MenuItem{
			ID:           itemID,
			RestaurantID: id,
			Name:         m.Name,
			Description:  m.Description,
			Position:     i,
		})
	}

	return listing, nil
}

func (c Campaign) toModel() (*models.Campaign, error) {
	if c.Title == "" {
		return nil, errors.New("title is required")
	}
	if err := validation.ValidateCampaignCategory(c.Category); err != nil {
		return nil, err
	}

	id := c.ID
	if id == "" {
		id = stableID(c.Category, c.Title, c.StartDate)
	}

	return &models.Campaign{
		ID:          id,
		Title:       c.Title,
		Category:    c.Category,
		Address:     c.Address,
		Description: c.Description,
		Image:       c.Image,
		StartDate:   c.StartDate,
		StartTime:   c.StartTime,
		EndDate:     c.EndDate,
		EndTime:     c.EndTime,
		Organizer:   c.Organizer,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
	}, nil
}

func stableID(parts ...string) string {
	key := ""
	for _, p := range parts {
		key += p + "\x00"
	}
	return uuid.NewSHA1(namespace, []byte(key)).String()
}
