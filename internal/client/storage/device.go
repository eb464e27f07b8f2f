package storage

import (
	"context"
	"time"
)

// DeviceStorage stores this device's registration on the server
type DeviceStorage interface {
	// SaveDevice stores the device registration
	SaveDevice(ctx context.Context, device *DeviceData) error

	// GetDevice retrieves the device registration
	// Returns ErrDeviceNotFound if the device is not registered
	GetDevice(ctx context.Context) (*DeviceData, error)

	// DeleteDevice removes the device registration
	DeleteDevice(ctx context.Context) error
}

// DeviceData represents the device identity issued by the server
type DeviceData struct {
	DeviceID  string `json:"device_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // unix время; 0 означает бессрочный токен
}

// Expired reports whether the device token is no longer valid at now.
func (d *DeviceData) Expired(now time.Time) bool {
	return d.ExpiresAt > 0 && now.Unix() >= d.ExpiresAt
}
