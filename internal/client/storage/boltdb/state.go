package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tabdeck/tabdeck/internal/client/storage"
)

var keyOnline = []byte("online")

// SaveOnline records the connectivity mode so it survives restarts
func (s *Storage) SaveOnline(ctx context.Context, online bool) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	value := []byte("false")
	if online {
		value = []byte("true")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return fmt.Errorf("state bucket not found")
		}

		return bucket.Put(keyOnline, value)
	})

	if err != nil {
		return fmt.Errorf("failed to save online state: %w", err)
	}

	return nil
}

// GetOnline returns the last recorded connectivity mode.
// A fresh database reports offline.
func (s *Storage) GetOnline(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	var online bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return nil
		}

		online = string(bucket.Get(keyOnline)) == "true"
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to read online state: %w", err)
	}

	return online, nil
}
