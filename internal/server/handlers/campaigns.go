package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/internal/validation"
	"github.com/iudanet/muslimguide/pkg/api"
)

// CampaignHandler отдает события и промо-акции
type CampaignHandler struct {
	campaigns storage.CampaignStorage
	responder
}

// NewCampaignHandler создает новый handler кампаний
func NewCampaignHandler(logger *slog.Logger, campaigns storage.CampaignStorage) *CampaignHandler {
	return &CampaignHandler{
		responder: responder{logger: logger},
		campaigns: campaigns,
	}
}

// List обрабатывает GET /api/v1/campaigns?category=
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if err := validation.ValidateCampaignCategory(category); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	campaigns, err := h.campaigns.ListCampaigns(ctx, category)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list campaigns", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}

	h.sendJSON(w, api.CampaignsResponse{Campaigns: campaigns}, http.StatusOK)
}
