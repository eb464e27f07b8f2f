package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/internal/validation"
	"github.com/iudanet/muslimguide/pkg/api"
)

// ReportHandler принимает обращения пользователей
type ReportHandler struct {
	reports storage.ReportStorage
	responder
}

// NewReportHandler создает новый handler обращений
func NewReportHandler(logger *slog.Logger, reports storage.ReportStorage) *ReportHandler {
	return &ReportHandler{
		responder: responder{logger: logger},
		reports:   reports,
	}
}

// Create обрабатывает POST /api/v1/reports
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode report request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report := &models.Report{
		ID:          uuid.New().String(),
		DeviceID:    deviceID,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Category:    req.Category,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := validation.ValidateReport(report); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.reports.CreateReport(ctx, report); err != nil {
		if errors.Is(err, storage.ErrDeviceNotFound) {
			h.sendError(w, "device is not registered", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create report", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "report submitted",
		slog.String("report_id", report.ID),
		slog.String("category", report.Category))

	h.sendJSON(w, api.ReportResponse{ID: report.ID, CreatedAt: report.CreatedAt}, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/v1/reports/{id}
// Устройство может удалить только свои обращения
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID, ok := GetDeviceID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.reports.DeleteReport(ctx, id, deviceID); err != nil {
		if errors.Is(err, storage.ErrReportNotFound) {
			h.sendError(w, "report not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete report", slog.String("report_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
