package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/pkg/api"
)

func newListingRouter(catalog *mockCatalog) http.Handler {
	h := NewListingHandler(setupTestLogger(), catalog)
	r := chi.NewRouter()
	r.Get("/api/v1/listings", h.List)
	r.Get("/api/v1/listings/{id}", h.Get)
	r.Get("/api/v1/featured", h.Featured)
	return r
}

func TestListingHandler_List(t *testing.T) {
	catalog := newMockCatalog()
	catalog.listings["m1"] = &models.Listing{ID: "m1", Name: "B Masjid", Category: models.CategoryMosque}
	catalog.listings["m2"] = &models.Listing{ID: "m2", Name: "A Masjid", Category: models.CategoryMosque}
	catalog.listings["r1"] = &models.Listing{ID: "r1", Name: "Cafe", Category: models.CategoryRestaurant}
	router := newListingRouter(catalog)

	tests := []struct {
		name         string
		query        string
		expectedIDs  []string
		expectedCode int
	}{
		{name: "mosques", query: "?category=mosque", expectedCode: http.StatusOK, expectedIDs: []string{"m2", "m1"}},
		{name: "empty category", query: "?category=community", expectedCode: http.StatusOK, expectedIDs: []string{}},
		{name: "unknown category", query: "?category=bars", expectedCode: http.StatusBadRequest},
		{name: "missing category", query: "", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/listings"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp api.ListingsResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			ids := make([]string, 0, len(resp.Listings))
			for _, l := range resp.Listings {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestListingHandler_Get(t *testing.T) {
	catalog := newMockCatalog()
	catalog.listings["r1"] = &models.Listing{
		ID:       "r1",
		Name:     "Cafe",
		Category: models.CategoryRestaurant,
		Menu:     []models.MenuItem{{ID: "d1", RestaurantID: "r1", Name: "Soup"}},
	}
	router := newListingRouter(catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/r1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var listing models.Listing
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listing))
	assert.Equal(t, "Cafe", listing.Name)
	require.Len(t, listing.Menu, 1)
	assert.Equal(t, "Soup", listing.Menu[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings/nope", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	catalog.err = errBoom
	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings/r1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListingHandler_Featured(t *testing.T) {
	catalog := newMockCatalog()
	for i, likes := range []int64{5, 0, 9, 1, 2, 3, 4, 8} {
		id := string(rune('a' + i))
		catalog.listings[id] = &models.Listing{ID: id, Name: id, ItemCounters: models.ItemCounters{Likes: likes}}
	}
	catalog.ranked = []storage.RankedMenuItem{
		{RestaurantName: "Cafe", MenuItem: models.MenuItem{ID: "d1", Name: "Soup", ItemCounters: models.ItemCounters{Likes: 3}}},
	}
	router := newListingRouter(catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/featured", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.FeaturedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	require.Len(t, resp.Listings, FeaturedListingsLimit)
	assert.Equal(t, int64(9), resp.Listings[0].Likes)
	for _, l := range resp.Listings {
		assert.Positive(t, l.Likes)
	}

	require.Len(t, resp.MenuItems, 1)
	assert.Equal(t, "Cafe", resp.MenuItems[0].RestaurantName)
	assert.Equal(t, "Soup", resp.MenuItems[0].Name)
}

func TestListingHandler_Featured_Empty(t *testing.T) {
	router := newListingRouter(newMockCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/featured", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"listings":[],"menu_items":[]}`, w.Body.String())
}
