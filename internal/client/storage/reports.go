package storage

import (
	"context"
	"time"
)

// ReportStorage keeps track of reports submitted from this device
type ReportStorage interface {
	// GetLockedEmail returns the email all reports must use, or "" if none was submitted yet
	GetLockedEmail(ctx context.Context) (string, error)

	// LockEmail fixes the email for future reports.
	// Returns ErrEmailLocked if another email is already locked.
	LockEmail(ctx context.Context, email string) error

	// UnlockEmail clears the locked email so the next report may use any address
	UnlockEmail(ctx context.Context) error

	// SaveReport remembers a submitted report
	SaveReport(ctx context.Context, report *SubmittedReport) error

	// ListReports returns submitted reports, newest first
	ListReports(ctx context.Context) ([]*SubmittedReport, error)

	// DeleteReport forgets a submitted report
	// Returns ErrReportNotFound if it was not submitted from this device
	DeleteReport(ctx context.Context, id string) error
}

// SubmittedReport local copy of a report sent to the server
type SubmittedReport struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}
