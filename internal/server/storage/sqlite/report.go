package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/muslimguide/internal/models"
	"github.com/iudanet/muslimguide/internal/server/storage"
)

// CreateReport stores a new report
func (s *Storage) CreateReport(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (id, device_id, name, email, category, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		report.ID,
		report.DeviceID,
		report.Name,
		report.Email,
		report.Category,
		report.Description,
		report.CreatedAt.Unix(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrDeviceNotFound
		}
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// DeleteReport removes a report owned by deviceID
func (s *Storage) DeleteReport(ctx context.Context, id, deviceID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ? AND device_id = ?`, id, deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrReportNotFound
	}

	return nil
}

// CreateDevice stores a new device
func (s *Storage) CreateDevice(ctx context.Context, device *models.Device) error {
	query := `INSERT INTO devices (id, created_at) VALUES (?, ?)`

	if _, err := s.db.ExecContext(ctx, query, device.ID, device.CreatedAt.Unix()); err != nil {
		return fmt.Errorf("failed to insert device: %w", err)
	}

	return nil
}

// GetDevice retrieves a device by id
func (s *Storage) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	var (
		device    models.Device
		createdAt int64
	)

	err := s.db.QueryRowContext(ctx, `SELECT id, created_at FROM devices WHERE id = ?`, id).
		Scan(&device.ID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	device.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &device, nil
}
