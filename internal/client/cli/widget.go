package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/tabdeck/tabdeck/internal/client/queue"
	"github.com/tabdeck/tabdeck/internal/layout"
	"github.com/tabdeck/tabdeck/internal/models"
)

func (c *Cli) runAddWidget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-widget", flag.ContinueOnError)
	widgetType := fs.String("type", "", "Widget type, e.g. clock or notes")
	width := fs.Int("width", 2, "Widget width in cells")
	height := fs.Int("height", 2, "Widget height in cells")
	x := fs.Int("x", -1, "Column, auto-placed when omitted")
	y := fs.Int("y", -1, "Row, auto-placed when omitted")
	config := fs.String("config", "", "Widget config as JSON (optional)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *widgetType == "" {
		return fmt.Errorf("-type is required")
	}

	widget := models.Widget{
		CreatedAt: time.Now(),
		ID:        c.engine.NewEntityID(),
		Type:      *widgetType,
		Size:      models.Size{Width: *width, Height: *height},
	}
	if *config != "" {
		if !json.Valid([]byte(*config)) {
			return fmt.Errorf("-config must be valid JSON")
		}
		widget.Config = json.RawMessage(*config)
	}

	existing, err := c.listReplica(ctx)
	if err != nil {
		return err
	}

	if c.bounds.RowBounded() {
		capacity := c.bounds.Columns * c.bounds.Rows
		if layout.TotalArea(existing)+widget.Size.Width*widget.Size.Height > capacity {
			return fmt.Errorf("no room on the grid for a %dx%d widget", *width, *height)
		}
	}

	if *x >= 0 && *y >= 0 {
		widget.Position = models.Position{X: *x, Y: *y}

		if widget.Size.Width <= 0 || widget.Size.Height <= 0 || !layout.IsWithinBounds(widget, c.bounds) {
			return fmt.Errorf("widget %dx%d at (%d,%d) does not fit the grid: %w",
				*width, *height, *x, *y, layout.ErrInvalidGeometry)
		}
		for _, other := range existing {
			if layout.Overlaps(widget, other) {
				return fmt.Errorf("cells at (%d,%d) are taken by widget %s: %w",
					*x, *y, other.ID, queue.ErrPlacementConflict)
			}
		}
	} else {
		pos, err := layout.FindNextAvailablePosition(existing, widget.Size, c.bounds)
		if err != nil {
			return fmt.Errorf("failed to place widget: %w", err)
		}
		if pos == nil {
			return fmt.Errorf("no room on the grid for a %dx%d widget", *width, *height)
		}

		widget.Position = *pos
	}

	payload, err := json.Marshal(widget)
	if err != nil {
		return fmt.Errorf("failed to encode widget: %w", err)
	}

	_, err = c.engine.Enqueue(ctx, &models.MutationRecord{
		CreatedAt:  widget.CreatedAt,
		EntityType: models.EntityWidget,
		EntityID:   widget.ID,
		Operation:  models.OpCreate,
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to queue widget: %w", err)
	}

	if err := c.widgets.SaveWidget(ctx, &widget); err != nil {
		return fmt.Errorf("failed to store widget locally: %w", err)
	}

	fmt.Fprintf(c.out, "Placed widget %s at (%d,%d)\n", widget.ID, widget.Position.X, widget.Position.Y)

	return nil
}

func (c *Cli) runMoveWidget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("move-widget", flag.ContinueOnError)
	id := fs.String("id", "", "Widget id")
	x := fs.Int("x", -1, "Target column")
	y := fs.Int("y", -1, "Target row")
	width := fs.Int("width", 0, "New width, keeps current when omitted")
	height := fs.Int("height", 0, "New height, keeps current when omitted")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" || *x < 0 || *y < 0 {
		return fmt.Errorf("-id, -x and -y are required")
	}

	widget, err := c.widgets.GetWidget(ctx, *id)
	if err != nil {
		return fmt.Errorf("failed to load widget: %w", err)
	}

	widget.Position = models.Position{X: *x, Y: *y}
	if *width > 0 {
		widget.Size.Width = *width
	}
	if *height > 0 {
		widget.Size.Height = *height
	}

	if err := c.enqueueReorder(ctx, widget); err != nil {
		return err
	}

	if err := c.widgets.SaveWidget(ctx, widget); err != nil {
		return fmt.Errorf("failed to store widget locally: %w", err)
	}

	fmt.Fprintf(c.out, "Moved widget %s to (%d,%d)\n", widget.ID, widget.Position.X, widget.Position.Y)

	return nil
}

func (c *Cli) runRemoveWidget(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("remove-widget", flag.ContinueOnError)
	id := fs.String("id", "", "Widget id")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	_, err := c.engine.Enqueue(ctx, &models.MutationRecord{
		CreatedAt:  time.Now(),
		EntityType: models.EntityWidget,
		EntityID:   *id,
		Operation:  models.OpDelete,
	})
	if err != nil {
		return fmt.Errorf("failed to queue removal: %w", err)
	}

	if err := c.widgets.DeleteWidget(ctx, *id); err != nil {
		return fmt.Errorf("failed to remove widget locally: %w", err)
	}

	fmt.Fprintf(c.out, "Removed widget %s\n", *id)

	return nil
}

func (c *Cli) runListWidgets(ctx context.Context) error {
	widgets, err := c.widgets.ListWidgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list widgets: %w", err)
	}

	if len(widgets) == 0 {
		fmt.Fprintln(c.out, "No widgets")
		return nil
	}

	for _, w := range widgets {
		fmt.Fprintf(c.out, "%s  %-12s at (%d,%d) size %dx%d\n",
			w.ID, w.Type, w.Position.X, w.Position.Y, w.Size.Width, w.Size.Height)
	}

	return nil
}

// runCompact pulls every widget as far up as the grid allows and queues a
// reorder for each one that moved.
func (c *Cli) runCompact(ctx context.Context) error {
	existing, err := c.listReplica(ctx)
	if err != nil {
		return err
	}

	compacted, err := layout.Compact(existing, c.bounds)
	if err != nil {
		return fmt.Errorf("failed to compact layout: %w", err)
	}

	var moved []models.Widget

	for i := range compacted {
		if compacted[i].Position == existing[i].Position {
			continue
		}
		moved = append(moved, compacted[i])
	}

	// settle the replica first so every queued move validates against the
	// final layout instead of a half-moved one
	for i := range moved {
		if err := c.widgets.SaveWidget(ctx, &moved[i]); err != nil {
			return fmt.Errorf("failed to store widget locally: %w", err)
		}
	}

	for i := range moved {
		if err := c.enqueueReorder(ctx, &moved[i]); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.out, "Compacted grid, moved %d widget(s)\n", len(moved))

	return nil
}

func (c *Cli) enqueueReorder(ctx context.Context, widget *models.Widget) error {
	payload, err := json.Marshal(models.WidgetGeometry{
		Position: widget.Position,
		Size:     widget.Size,
	})
	if err != nil {
		return fmt.Errorf("failed to encode geometry: %w", err)
	}

	_, err = c.engine.Enqueue(ctx, &models.MutationRecord{
		CreatedAt:  time.Now(),
		EntityType: models.EntityWidget,
		EntityID:   widget.ID,
		Operation:  models.OpReorder,
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to queue move: %w", err)
	}

	return nil
}

func (c *Cli) listReplica(ctx context.Context) ([]models.Widget, error) {
	stored, err := c.widgets.ListWidgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}

	widgets := make([]models.Widget, 0, len(stored))
	for _, w := range stored {
		widgets = append(widgets, *w)
	}

	return widgets, nil
}
