package handlers

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

var errBoom = errors.New("boom")

// mockCatalog is an in-memory implementation of the read-side storages
type mockCatalog struct {
	listings  map[string]*models.Listing
	ranked    []storage.RankedMenuItem
	campaigns []models.Campaign
	clicks    map[string]int64
	err       error
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		listings: make(map[string]*models.Listing),
		clicks:   make(map[string]int64),
	}
}

func (m *mockCatalog) CreateListing(_ context.Context, l *models.Listing) error {
	m.listings[l.ID] = l
	return nil
}

func (m *mockCatalog) GetListing(_ context.Context, id string) (*models.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	l, ok := m.listings[id]
	if !ok {
		return nil, storage.ErrListingNotFound
	}
	return l, nil
}

func (m *mockCatalog) ListListings(_ context.Context, category string) ([]models.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Listing
	for _, l := range m.listings {
		if l.Category == category {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCatalog) TopListings(_ context.Context, limit int) ([]models.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Listing
	for _, l := range m.listings {
		if l.Likes > 0 {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Likes > result[j].Likes })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockCatalog) TopMenuItems(_ context.Context, limit int) ([]storage.RankedMenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.ranked) > limit {
		return m.ranked[:limit], nil
	}
	return m.ranked, nil
}

func (m *mockCatalog) CreateCampaign(_ context.Context, c *models.Campaign) error {
	m.campaigns = append(m.campaigns, *c)
	return nil
}

func (m *mockCatalog) ListCampaigns(_ context.Context, category string) ([]models.Campaign, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Campaign
	for _, c := range m.campaigns {
		if c.Category == category {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCatalog) IncrementCategoryClick(_ context.Context, category string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.clicks[category]++
	return m.clicks[category], nil
}

func (m *mockCatalog) GetCategoryClicks(context.Context) ([]models.CategoryClicks, error) {
	var result []models.CategoryClicks
	for c, n := range m.clicks {
		result = append(result, models.CategoryClicks{Category: c, Clicks: n})
	}
	return result, nil
}

// mockReports is an in-memory implementation of ReportStorage and DeviceStorage
type mockReports struct {
	devices   map[string]*models.Device
	reports   map[string]*models.Report
	createErr error
	mu        sync.Mutex
}

func newMockReports() *mockReports {
	return &mockReports{
		devices: make(map[string]*models.Device),
		reports: make(map[string]*models.Report),
	}
}

func (m *mockReports) CreateDevice(_ context.Context, d *models.Device) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.devices[d.ID] = d
	return nil
}

func (m *mockReports) GetDevice(_ context.Context, id string) (*models.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.devices[id]
	if !ok {
		return nil, storage.ErrDeviceNotFound
	}
	return d, nil
}

func (m *mockReports) CreateReport(_ context.Context, r *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.devices[r.DeviceID]; !ok {
		return storage.ErrDeviceNotFound
	}
	m.reports[r.ID] = r
	return nil
}

func (m *mockReports) DeleteReport(_ context.Context, id, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok || r.DeviceID != deviceID {
		return storage.ErrReportNotFound
	}
	delete(m.reports, id)
	return nil
}
