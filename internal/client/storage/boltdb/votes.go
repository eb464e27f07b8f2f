package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/muslimguide/internal/client/storage"
	"github.com/iudanet/muslimguide/internal/models"
)

// Load returns the vote record stored under scope.
// A scope that was never saved yields an empty record.
func (s *Storage) Load(ctx context.Context, scope string) (models.VoteRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	record := make(models.VoteRecord)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVotes)
		if bucket == nil {
			return fmt.Errorf("votes bucket not found")
		}

		data := bucket.Get([]byte(scope))
		if data == nil {
			// Свежая установка: голосов еще нет
			return nil
		}

		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal votes for %s: %w", scope, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// Save replaces the vote record stored under scope
func (s *Storage) Save(ctx context.Context, scope string, record models.VoteRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if scope == "" {
		return fmt.Errorf("scope cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVotes)
		if bucket == nil {
			return fmt.Errorf("votes bucket not found")
		}

		// Пустая запись удаляется целиком
		if len(record) == 0 {
			if err := bucket.Delete([]byte(scope)); err != nil {
				return fmt.Errorf("failed to delete votes for %s: %w", scope, err)
			}
			return nil
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal votes: %w", err)
		}

		if err := bucket.Put([]byte(scope), data); err != nil {
			return fmt.Errorf("failed to save votes for %s: %w", scope, err)
		}

		return nil
	})
}

// Scopes lists every scope that has a stored record
func (s *Storage) Scopes(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var scopes []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketVotes)
		if bucket == nil {
			return fmt.Errorf("votes bucket not found")
		}
		return bucket.ForEach(func(k, _ []byte) error {
			scopes = append(scopes, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return scopes, nil
}
