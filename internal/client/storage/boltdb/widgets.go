package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/models"
)

// SaveWidget stores or updates a widget in the local replica
func (s *Storage) SaveWidget(ctx context.Context, widget *models.Widget) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(widget)
	if err != nil {
		return fmt.Errorf("failed to marshal widget: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWidgets)
		if bucket == nil {
			return fmt.Errorf("widgets bucket not found")
		}

		if err := bucket.Put([]byte(widget.ID), data); err != nil {
			return fmt.Errorf("failed to save widget: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("save widget transaction failed: %w", err)
	}

	return nil
}

// GetWidget retrieves a widget by id
func (s *Storage) GetWidget(ctx context.Context, id string) (*models.Widget, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var widget *models.Widget

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWidgets)
		if bucket == nil {
			return storage.ErrWidgetNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrWidgetNotFound
		}

		widget = &models.Widget{}
		if err := json.Unmarshal(data, widget); err != nil {
			return fmt.Errorf("failed to unmarshal widget: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return widget, nil
}

// ListWidgets returns all widgets in the local replica
func (s *Storage) ListWidgets(ctx context.Context) ([]*models.Widget, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var widgets []*models.Widget

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWidgets)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var widget models.Widget
			if err := json.Unmarshal(v, &widget); err != nil {
				return fmt.Errorf("failed to unmarshal widget: %w", err)
			}
			widgets = append(widgets, &widget)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}

	return widgets, nil
}

// DeleteWidget removes a widget by id
func (s *Storage) DeleteWidget(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWidgets)
		if bucket == nil {
			return storage.ErrWidgetNotFound
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrWidgetNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete widget: %w", err)
		}

		return nil
	})
}
