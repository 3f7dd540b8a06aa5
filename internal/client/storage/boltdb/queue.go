package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/models"
)

// queueKey encodes a record id so that byte order equals numeric order and a
// bucket cursor walks records in creation order.
func queueKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// Enqueue appends a record with the next sequence id and removes superseded
// records in the same transaction.
func (s *Storage) Enqueue(ctx context.Context, record *models.MutationRecord, supersededIDs []uint64) (*models.MutationRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	stored := record.Clone()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		for _, id := range supersededIDs {
			if err := bucket.Delete(queueKey(id)); err != nil {
				return fmt.Errorf("failed to delete superseded record %d: %w", id, err)
			}
		}

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence id: %w", err)
		}
		stored.ID = id

		data, err := json.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put(queueKey(id), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return stored, nil
}

// Update rewrites an existing record in place, keeping its replay position
func (s *Storage) Update(ctx context.Context, record *models.MutationRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if bucket.Get(queueKey(record.ID)) == nil {
			return storage.ErrRecordNotFound
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put(queueKey(record.ID), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})
}

// Remove deletes a record by id
func (s *Storage) Remove(ctx context.Context, id uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		if bucket.Get(queueKey(id)) == nil {
			return storage.ErrRecordNotFound
		}

		if err := bucket.Delete(queueKey(id)); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		return nil
	})
}

// Discard deletes the given records in one transaction, ignoring missing ids
func (s *Storage) Discard(ctx context.Context, ids []uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		for _, id := range ids {
			if err := bucket.Delete(queueKey(id)); err != nil {
				return fmt.Errorf("failed to delete record %d: %w", id, err)
			}
		}

		return nil
	})
}

// List returns all pending records in id order
func (s *Storage) List(ctx context.Context) ([]*models.MutationRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.MutationRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record models.MutationRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			records = append(records, &record)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// Count returns the number of pending records
func (s *Storage) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	return count, nil
}
