package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/pkg/api"
)

func TestDeviceHandler_Register(t *testing.T) {
	devices := newMockReports()
	cfg := JWTConfig{Secret: []byte("secret"), TokenTTL: 24 * time.Hour}
	handler := NewDeviceHandler(setupTestLogger(), devices, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", nil)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.RegisterDeviceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.DeviceID)
	assert.Equal(t, int64(24*60*60), resp.ExpiresIn)
	assert.Contains(t, devices.devices, resp.DeviceID)

	claims, err := ValidateDeviceToken(cfg, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.DeviceID, claims.DeviceID)
}

func TestDeviceHandler_Register_StorageError(t *testing.T) {
	devices := newMockReports()
	devices.createErr = errBoom
	handler := NewDeviceHandler(setupTestLogger(), devices, JWTConfig{Secret: []byte("s"), TokenTTL: time.Hour})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", nil)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
