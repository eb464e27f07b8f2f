package storage

import (
	"context"

	"github.com/iudanet/muslimguide/internal/models"
)

// ReportStorage defines interface for user reports persistence
type ReportStorage interface {
	// CreateReport stores a new report
	CreateReport(ctx context.Context, report *models.Report) error

	// DeleteReport removes a report submitted by deviceID
	// Returns ErrReportNotFound if report doesn't exist or belongs to another device
	DeleteReport(ctx context.Context, id, deviceID string) error
}

// DeviceStorage defines interface for registered devices
type DeviceStorage interface {
	// CreateDevice stores a new device
	CreateDevice(ctx context.Context, device *models.Device) error

	// GetDevice retrieves a device by id
	// Returns ErrDeviceNotFound if device doesn't exist
	GetDevice(ctx context.Context, id string) (*models.Device, error)
}
