package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/muslimguide/internal/client/storage"
)

var deviceKey = []byte("current")

// SaveDevice stores the device registration
func (s *Storage) SaveDevice(ctx context.Context, device *storage.DeviceData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		if bucket == nil {
			return fmt.Errorf("device bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(device)
		if err != nil {
			return fmt.Errorf("failed to marshal device data: %w", err)
		}

		if err := bucket.Put(deviceKey, data); err != nil {
			return fmt.Errorf("failed to save device data: %w", err)
		}

		return nil
	})
}

// GetDevice retrieves the device registration
// Returns ErrDeviceNotFound if the device is not registered
func (s *Storage) GetDevice(ctx context.Context) (*storage.DeviceData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var device *storage.DeviceData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		if bucket == nil {
			return fmt.Errorf("device bucket not found")
		}

		data := bucket.Get(deviceKey)
		if data == nil {
			return storage.ErrDeviceNotFound
		}

		device = &storage.DeviceData{}
		if err := json.Unmarshal(data, device); err != nil {
			return fmt.Errorf("failed to unmarshal device data: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return device, nil
}

// DeleteDevice removes the device registration
func (s *Storage) DeleteDevice(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevice)
		if bucket == nil {
			return fmt.Errorf("device bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(deviceKey) == nil {
			return storage.ErrDeviceNotFound
		}

		if err := bucket.Delete(deviceKey); err != nil {
			return fmt.Errorf("failed to delete device data: %w", err)
		}

		return nil
	})
}

// IsRegistered checks if the device has a stored registration
func (s *Storage) IsRegistered(ctx context.Context) (bool, error) {
	_, err := s.GetDevice(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrDeviceNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
