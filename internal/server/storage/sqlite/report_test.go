package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

func TestDevices(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateDevice(ctx, &models.Device{ID: "dev-1", CreatedAt: created}))

	got, err := s.GetDevice(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", got.ID)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = s.GetDevice(ctx, "dev-2")
	assert.ErrorIs(t, err, storage.ErrDeviceNotFound)
}

func TestReports(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.CreateDevice(ctx, &models.Device{ID: "dev-1", CreatedAt: time.Now()}))
	require.NoError(t, s.CreateDevice(ctx, &models.Device{ID: "dev-2", CreatedAt: time.Now()}))

	report := &models.Report{
		ID:          "r1",
		DeviceID:    "dev-1",
		Name:        "Aisha",
		Email:       "aisha@example.com",
		Category:    "Complaints",
		Description: "Wrong opening hours",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateReport(ctx, report))

	// Чужое устройство не может удалить обращение
	err := s.DeleteReport(ctx, "r1", "dev-2")
	assert.ErrorIs(t, err, storage.ErrReportNotFound)

	require.NoError(t, s.DeleteReport(ctx, "r1", "dev-1"))

	err = s.DeleteReport(ctx, "r1", "dev-1")
	assert.ErrorIs(t, err, storage.ErrReportNotFound)
}

func TestCreateReport_UnknownDevice(t *testing.T) {
	s := newTestStorage(t)

	err := s.CreateReport(context.Background(), &models.Report{
		ID:        "r1",
		DeviceID:  "ghost",
		Name:      "n",
		Email:     "n@example.com",
		Category:  "Complaints",
		CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrDeviceNotFound)
}
