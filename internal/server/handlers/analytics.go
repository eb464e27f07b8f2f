package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/muslimguide/internal/metrics"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/pkg/api"
)

// maxCategoryNameLen ограничение на имя категории в аналитике
const maxCategoryNameLen = 64

// AnalyticsHandler считает переходы в категории
type AnalyticsHandler struct {
	analytics storage.AnalyticsStorage
	metrics   *metrics.ServerMetrics
	responder
}

// NewAnalyticsHandler создает новый handler аналитики. m может быть nil.
func NewAnalyticsHandler(logger *slog.Logger, analytics storage.AnalyticsStorage, m *metrics.ServerMetrics) *AnalyticsHandler {
	return &AnalyticsHandler{
		responder: responder{logger: logger},
		analytics: analytics,
		metrics:   m,
	}
}

// Click обрабатывает POST /api/v1/analytics/categories/{name}/click
func (h *AnalyticsHandler) Click(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" || len(name) > maxCategoryNameLen {
		h.sendError(w, "invalid category name", http.StatusBadRequest)
		return
	}

	clicks, err := h.analytics.IncrementCategoryClick(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to increment category click",
			slog.String("category", name),
			slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.CategoryClicks.WithLabelValues(name).Inc()
	}

	h.sendJSON(w, api.CategoryClickResponse{Category: name, Clicks: clicks}, http.StatusOK)
}
