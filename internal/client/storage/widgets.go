package storage

import (
	"context"

	"github.com/tabdeck/tabdeck/internal/models"
)

//go:generate moq -out widgetstorage_mock.go . WidgetStorage

// WidgetStorage defines the local replica of the widget layout. The replica
// is what the queue validates placements against while the device is
// offline; the server copy catches up when the queue drains.
type WidgetStorage interface {
	// SaveWidget stores or updates a widget
	SaveWidget(ctx context.Context, widget *models.Widget) error

	// GetWidget retrieves a widget by id
	// Returns ErrWidgetNotFound if it does not exist
	GetWidget(ctx context.Context, id string) (*models.Widget, error)

	// ListWidgets returns all widgets in the local replica
	ListWidgets(ctx context.Context) ([]*models.Widget, error)

	// DeleteWidget removes a widget by id
	// Returns ErrWidgetNotFound if it does not exist
	DeleteWidget(ctx context.Context, id string) error
}
