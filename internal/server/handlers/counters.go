package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/muslimguide/internal/events"
	"github.com/iudanet/muslimguide/internal/metrics"
	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/pkg/api"
)

const (
	targetListing  = "listing"
	targetMenuItem = "menu_item"
)

// CounterHandler применяет дельты к счетчикам лайков и дизлайков.
// Сервер никогда не перезаписывает счетчики целиком, только +1/-1.
type CounterHandler struct {
	counters  storage.CounterStorage
	publisher events.Publisher
	metrics   *metrics.ServerMetrics
	responder
}

// NewCounterHandler создает новый handler счетчиков.
// publisher и m могут быть nil.
func NewCounterHandler(
	logger *slog.Logger,
	counters storage.CounterStorage,
	publisher events.Publisher,
	m *metrics.ServerMetrics,
) *CounterHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CounterHandler{
		responder: responder{logger: logger},
		counters:  counters,
		publisher: publisher,
		metrics:   m,
	}
}

// ApplyListingDelta обрабатывает POST /api/v1/listings/{id}/counters
func (h *CounterHandler) ApplyListingDelta(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	h.apply(w, r, targetListing, listingID, func(ctx context.Context, req api.CounterDeltaRequest) (models.CounterUpdate, error) {
		return h.counters.ApplyListingDelta(ctx, listingID, req.Field, req.Delta)
	}, events.CounterEvent{ListingID: listingID})
}

// ApplyMenuItemDelta обрабатывает POST /api/v1/listings/{id}/menu/{menuItemID}/counters
func (h *CounterHandler) ApplyMenuItemDelta(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	menuItemID := chi.URLParam(r, "menuItemID")

	h.apply(w, r, targetMenuItem, menuItemID, func(ctx context.Context, req api.CounterDeltaRequest) (models.CounterUpdate, error) {
		return h.counters.ApplyMenuItemDelta(ctx, restaurantID, menuItemID, req.Field, req.Delta)
	}, events.CounterEvent{ListingID: restaurantID, MenuItemID: menuItemID})
}

type applyFunc func(ctx context.Context, req api.CounterDeltaRequest) (models.CounterUpdate, error)

func (h *CounterHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	target, itemID string,
	fn applyFunc,
	event events.CounterEvent,
) {
	ctx := r.Context()

	var req api.CounterDeltaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode counter request", slog.Any("error", err))
		h.observeFailure(target, "bad_request")
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateDelta(req); err != nil {
		h.observeFailure(target, "bad_request")
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	update, err := fn(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) || errors.Is(err, storage.ErrMenuItemNotFound) {
			h.observeFailure(target, "not_found")
			h.sendError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to apply counter delta",
			slog.String("target", target),
			slog.String("item_id", itemID),
			slog.Any("error", err))
		h.observeFailure(target, "storage")
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !update.Applied {
		// Уменьшение нулевого счетчика: ничего не изменилось, событие не публикуем
		h.logger.DebugContext(ctx, "counter already at zero",
			slog.String("target", target),
			slog.String("item_id", itemID),
			slog.String("field", string(req.Field)))
		h.sendCounters(w, itemID, update)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveUpdate(target, string(req.Field), req.Delta, time.Since(start))
	}

	event.OccurredAt = time.Now().UTC()
	event.Field = req.Field
	event.Delta = req.Delta
	event.Likes = update.Likes
	event.Dislikes = update.Dislikes
	if err := h.publisher.PublishCounter(ctx, event); err != nil {
		// Счетчик уже изменен, поэтому ошибку публикации клиенту не возвращаем
		h.logger.WarnContext(ctx, "failed to publish counter event",
			slog.String("item_id", itemID),
			slog.Any("error", err))
		if h.metrics != nil {
			h.metrics.PublishFailures.Inc()
		}
	}

	h.logger.DebugContext(ctx, "counter updated",
		slog.String("target", target),
		slog.String("item_id", itemID),
		slog.String("field", string(req.Field)),
		slog.Int("delta", req.Delta))

	h.sendCounters(w, itemID, update)
}

func (h *CounterHandler) sendCounters(w http.ResponseWriter, itemID string, update models.CounterUpdate) {
	h.sendJSON(w, api.CounterDeltaResponse{
		ItemID:   itemID,
		Likes:    update.Likes,
		Dislikes: update.Dislikes,
		Applied:  update.Applied,
	}, http.StatusOK)
}

func (h *CounterHandler) observeFailure(target, reason string) {
	if h.metrics != nil {
		h.metrics.ObserveFailure(target, reason)
	}
}

func validateDelta(req api.CounterDeltaRequest) error {
	if !req.Field.Valid() {
		return fmt.Errorf("field must be %q or %q", models.FieldLikes, models.FieldDislikes)
	}
	if req.Delta != 1 && req.Delta != -1 {
		return fmt.Errorf("delta must be 1 or -1")
	}
	return nil
}
