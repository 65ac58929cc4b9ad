package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourorg/stocksnap/internal/config"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// BoltStore is a KVStore backed by an embedded bbolt database
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
	logger *zap.Logger
}

// NewBoltStore opens (or creates) the bbolt database and its bucket
func NewBoltStore(cfg *config.BoltStorageConfig, logger *zap.Logger) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	bucket := []byte(cfg.Bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Info("Opened bolt store", zap.String("path", cfg.Path), zap.String("bucket", cfg.Bucket))

	return &BoltStore{
		db:     db,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Get returns the value stored under key
func (s *BoltStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			value = string(v)
			ok = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, ok, nil
}

// Set stores value under key
func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key
func (s *BoltStore) Remove(ctx context.Context, key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}
