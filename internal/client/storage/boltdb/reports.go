package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/muslimguide/internal/client/storage"
)

const (
	keyLockedEmail = "locked_email"
)

// GetLockedEmail returns the email locked by the first report, or "" if none
func (s *Storage) GetLockedEmail(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var email string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		email = string(bucket.Get([]byte(keyLockedEmail)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get locked email: %w", err)
	}

	return email, nil
}

// LockEmail fixes the email for future reports.
// Locking the same email again is a no-op.
func (s *Storage) LockEmail(ctx context.Context, email string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		existing := bucket.Get([]byte(keyLockedEmail))
		if existing != nil {
			if string(existing) != email {
				return storage.ErrEmailLocked
			}
			return nil
		}

		if err := bucket.Put([]byte(keyLockedEmail), []byte(email)); err != nil {
			return fmt.Errorf("failed to lock email: %w", err)
		}
		return nil
	})
}

// UnlockEmail clears the locked email. Clearing when nothing is locked is a no-op.
func (s *Storage) UnlockEmail(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Delete([]byte(keyLockedEmail)); err != nil {
			return fmt.Errorf("failed to unlock email: %w", err)
		}
		return nil
	})
}

// SaveReport remembers a submitted report
func (s *Storage) SaveReport(ctx context.Context, report *storage.SubmittedReport) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReports)
		if bucket == nil {
			return fmt.Errorf("reports bucket not found")
		}

		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		if err := bucket.Put([]byte(report.ID), data); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		return nil
	})
}

// ListReports returns submitted reports, newest first
func (s *Storage) ListReports(ctx context.Context) ([]*storage.SubmittedReport, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var reports []*storage.SubmittedReport
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReports)
		if bucket == nil {
			return fmt.Errorf("reports bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			report := &storage.SubmittedReport{}
			if err := json.Unmarshal(v, report); err != nil {
				return fmt.Errorf("failed to unmarshal report %s: %w", k, err)
			}
			reports = append(reports, report)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// DeleteReport forgets a submitted report
func (s *Storage) DeleteReport(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketReports)
		if bucket == nil {
			return fmt.Errorf("reports bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrReportNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		return nil
	})
}
