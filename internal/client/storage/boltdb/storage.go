package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// schemaVersion версия раскладки бакетов, хранится в metadata
const schemaVersion = "1"

var (
	bucketDevice   = []byte("device")
	bucketVotes    = []byte("votes")
	bucketReports  = []byte("reports")
	bucketMetadata = []byte("metadata")

	keySchemaVersion = []byte("schema_version")
)

// openTimeout сколько ждать файловую блокировку, если база открыта другим процессом
const openTimeout = time.Second

// Storage keeps this device's registration, vote records and submitted reports in a bbolt file.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the client database at dbPath.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database %s: %w", dbPath, err)
	}

	s := &Storage{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}

	return s, nil
}

// Close closes the database. Calling it again is a no-op.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// init создает бакеты и проверяет версию раскладки
func (s *Storage) init() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketDevice, bucketVotes, bucketReports, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMetadata)
		switch v := meta.Get(keySchemaVersion); {
		case v == nil:
			return meta.Put(keySchemaVersion, []byte(schemaVersion))
		case string(v) != schemaVersion:
			return fmt.Errorf("unsupported local schema version %q", v)
		}
		return nil
	})
}
