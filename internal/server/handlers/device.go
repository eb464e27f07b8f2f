package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
	"github.com/iudanet/muslimguide/pkg/api"
)

// DeviceHandler выдает устройствам анонимные токены
type DeviceHandler struct {
	devices   storage.DeviceStorage
	jwtConfig JWTConfig
	responder
}

// NewDeviceHandler создает новый handler регистрации устройств
func NewDeviceHandler(logger *slog.Logger, devices storage.DeviceStorage, jwtConfig JWTConfig) *DeviceHandler {
	return &DeviceHandler{
		responder: responder{logger: logger},
		devices:   devices,
		jwtConfig: jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/devices
// Создает устройство и возвращает его токен
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	device := &models.Device{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.devices.CreateDevice(ctx, device); err != nil {
		h.logger.ErrorContext(ctx, "failed to create device", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, expiresIn, err := GenerateDeviceToken(h.jwtConfig, device.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate device token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "device registered", slog.String("device_id", device.ID))

	h.sendJSON(w, api.RegisterDeviceResponse{
		DeviceID:  device.ID,
		Token:     token,
		ExpiresIn: expiresIn,
	}, http.StatusCreated)
}
