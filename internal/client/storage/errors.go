package storage

import "errors"

// Common client storage errors
var (
	// ErrDeviceNotFound indicates that the device has not been registered yet
	ErrDeviceNotFound = errors.New("device registration not found")

	// ErrReportNotFound indicates that report was not submitted from this device
	ErrReportNotFound = errors.New("report not found")

	// ErrEmailLocked indicates that reports must use the email of the first report
	ErrEmailLocked = errors.New("email is locked to the first report")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
