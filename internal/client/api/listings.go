package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/pkg/api"
)

// ListListings возвращает заведения категории
func (c *Client) ListListings(ctx context.Context, category string) ([]models.Listing, error) {
	var resp api.ListingsResponse
	path := "/api/v1/listings?category=" + url.QueryEscape(category)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list listings request failed: %w", err)
	}
	return resp.Listings, nil
}

// GetListing возвращает заведение вместе с меню
func (c *Client) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/listings/"+escape(id), nil, &listing); err != nil {
		return nil, fmt.Errorf("get listing request failed: %w", err)
	}
	return &listing, nil
}

// Featured возвращает самые популярные заведения и блюда
func (c *Client) Featured(ctx context.Context) (*api.FeaturedResponse, error) {
	var resp api.FeaturedResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/featured", nil, &resp); err != nil {
		return nil, fmt.Errorf("featured request failed: %w", err)
	}
	return &resp, nil
}

// Campaigns возвращает события или промо-акции
func (c *Client) Campaigns(ctx context.Context, category string) ([]models.Campaign, error) {
	var resp api.CampaignsResponse
	path := "/api/v1/campaigns?category=" + url.QueryEscape(category)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("campaigns request failed: %w", err)
	}
	return resp.Campaigns, nil
}

// ClickCategory отмечает переход в категорию
func (c *Client) ClickCategory(ctx context.Context, category string) (int64, error) {
	var resp api.CategoryClickResponse
	path := "/api/v1/analytics/categories/" + escape(category) + "/click"
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return 0, fmt.Errorf("category click request failed: %w", err)
	}
	return resp.Clicks, nil
}

// SubmitReport отправляет обращение от имени устройства
func (c *Client) SubmitReport(ctx context.Context, req api.ReportRequest) (*api.ReportResponse, error) {
	var resp api.ReportResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/reports", req, &resp); err != nil {
		return nil, fmt.Errorf("submit report request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReport удаляет собственное обращение
func (c *Client) DeleteReport(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/reports/"+escape(id), nil, nil); err != nil {
		return fmt.Errorf("delete report request failed: %w", err)
	}
	return nil
}
