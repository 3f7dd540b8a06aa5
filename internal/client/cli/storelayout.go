package cli

import (
	"context"
	"fmt"

	"github.com/tabdeck/tabdeck/internal/client/queue"
	"github.com/tabdeck/tabdeck/internal/client/storage"
	"github.com/tabdeck/tabdeck/internal/models"
)

// storeLayoutProvider serves the current grid snapshot from the local
// widget replica.
type storeLayoutProvider struct {
	widgets storage.WidgetStorage
	bounds  models.Bounds
}

// NewLayoutProvider exposes the replica-backed provider to the client
// wiring in cmd.
func NewLayoutProvider(widgets storage.WidgetStorage, bounds models.Bounds) queue.LayoutProvider {
	return newStoreLayoutProvider(widgets, bounds)
}

func newStoreLayoutProvider(widgets storage.WidgetStorage, bounds models.Bounds) *storeLayoutProvider {
	return &storeLayoutProvider{
		widgets: widgets,
		bounds:  bounds,
	}
}

func (p *storeLayoutProvider) Layout(ctx context.Context) ([]models.Widget, models.Bounds, error) {
	stored, err := p.widgets.ListWidgets(ctx)
	if err != nil {
		return nil, models.Bounds{}, fmt.Errorf("failed to list widgets: %w", err)
	}

	widgets := make([]models.Widget, 0, len(stored))
	for _, w := range stored {
		widgets = append(widgets, *w)
	}

	return widgets, p.bounds, nil
}
