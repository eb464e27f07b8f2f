package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/pkg/api"
)

func withDevice(r *http.Request, deviceID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), DeviceIDKey, deviceID))
}

func newReportRouter(reports *mockReports) http.Handler {
	h := NewReportHandler(setupTestLogger(), reports)
	r := chi.NewRouter()
	r.Post("/api/v1/reports", h.Create)
	r.Delete("/api/v1/reports/{id}", h.Delete)
	return r
}

func TestReportHandler_Create(t *testing.T) {
	reports := newMockReports()
	reports.devices["dev-1"] = &models.Device{ID: "dev-1", CreatedAt: time.Now()}
	router := newReportRouter(reports)

	tests := []struct {
		name         string
		deviceID     string
		body         string
		expectedCode int
	}{
		{
			name:         "valid report",
			deviceID:     "dev-1",
			body:         `{"name":"Aisha","email":"aisha@example.com","category":"Complaints","description":"Closed on Friday"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "other category",
			deviceID:     "dev-1",
			body:         `{"name":"Aisha","email":"aisha@example.com","category":"Others: parking","description":"No parking"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid email",
			deviceID:     "dev-1",
			body:         `{"name":"Aisha","email":"aisha@","category":"Complaints","description":"x"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "blank description",
			deviceID:     "dev-1",
			body:         `{"name":"Aisha","email":"aisha@example.com","category":"Complaints","description":"   "}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown category",
			deviceID:     "dev-1",
			body:         `{"name":"Aisha","email":"aisha@example.com","category":"Spam","description":"x"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			deviceID:     "dev-1",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unregistered device",
			deviceID:     "ghost",
			body:         `{"name":"Aisha","email":"aisha@example.com","category":"Complaints","description":"x"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "no device in context",
			deviceID:     "",
			body:         `{}`,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(tt.body))
			req = withDevice(req, tt.deviceID)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedCode, w.Code, w.Body.String())
			if tt.expectedCode != http.StatusCreated {
				return
			}

			var resp api.ReportResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			require.Contains(t, reports.reports, resp.ID)
			assert.Equal(t, tt.deviceID, reports.reports[resp.ID].DeviceID)
		})
	}
}

func TestReportHandler_Delete(t *testing.T) {
	reports := newMockReports()
	reports.reports["r1"] = &models.Report{ID: "r1", DeviceID: "dev-1"}
	router := newReportRouter(reports)

	del := func(deviceID string) int {
		req := withDevice(httptest.NewRequest(http.MethodDelete, "/api/v1/reports/r1", nil), deviceID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNotFound, del("dev-2"))
	assert.Equal(t, http.StatusNoContent, del("dev-1"))
	assert.Equal(t, http.StatusNotFound, del("dev-1"))
	assert.Equal(t, http.StatusUnauthorized, del(""))
}
