package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/internal/validation"
	"github.com/iudanet/muslimguide/pkg/api"
)

// Размеры подборки на главном экране
const (
	FeaturedListingsLimit  = 6
	FeaturedMenuItemsLimit = 5
)

// ListingHandler отдает каталог заведений
type ListingHandler struct {
	listings storage.ListingStorage
	responder
}

// NewListingHandler создает новый handler каталога
func NewListingHandler(logger *slog.Logger, listings storage.ListingStorage) *ListingHandler {
	return &ListingHandler{
		responder: responder{logger: logger},
		listings:  listings,
	}
}

// List обрабатывает GET /api/v1/listings?category=
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if err := validation.ValidateListingCategory(category); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	listings, err := h.listings.ListListings(ctx, category)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list listings", slog.String("category", category), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	h.sendJSON(w, api.ListingsResponse{Listings: listings}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/listings/{id}
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	listing, err := h.listings.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			h.sendError(w, "listing not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get listing", slog.String("listing_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, listing, http.StatusOK)
}

// Featured обрабатывает GET /api/v1/featured
// Самые популярные заведения и блюда, только с likes > 0
func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listings, err := h.listings.TopListings(ctx, FeaturedListingsLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get top listings", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ranked, err := h.listings.TopMenuItems(ctx, FeaturedMenuItemsLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get top menu items", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.FeaturedResponse{
		Listings:  listings,
		MenuItems: make([]api.FeaturedMenuItem, 0, len(ranked)),
	}
	if resp.Listings == nil {
		resp.Listings = []models.Listing{}
	}
	for _, item := range ranked {
		resp.MenuItems = append(resp.MenuItems, api.FeaturedMenuItem{
			RestaurantName: item.RestaurantName,
			MenuItem:       item.MenuItem,
		})
	}

	h.sendJSON(w, resp, http.StatusOK)
}
