package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/muslimguide/internal/client/storage"
)

func (c *Cli) runRegister(ctx context.Context) error {
	device, err := c.store.GetDevice(ctx)
	switch {
	case err == nil && !device.Expired(time.Now()):
		c.io.Printf("Device already registered: %s\n", device.DeviceID)
		return nil
	case err != nil && !errors.Is(err, storage.ErrDeviceNotFound):
		return fmt.Errorf("failed to get device: %w", err)
	}

	resp, err := c.client.RegisterDevice(ctx)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	data := &storage.DeviceData{
		DeviceID: resp.DeviceID,
		Token:    resp.Token,
	}
	if resp.ExpiresIn > 0 {
		data.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	if err := c.store.SaveDevice(ctx, data); err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	c.io.Printf("✓ Device registered: %s\n", resp.DeviceID)
	return nil
}
