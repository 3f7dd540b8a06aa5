package models

import (
	"encoding/json"
	"time"
)

// Position is a widget origin in grid cells.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a widget extent in grid cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds describes the grid a layout lives in. Columns is always finite;
// Rows == 0 means the grid grows downward without limit.
type Bounds struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// RowBounded reports whether the grid has a finite number of rows.
func (b Bounds) RowBounded() bool {
	return b.Rows > 0
}

// Widget is one tile on the dashboard grid.
type Widget struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Config    json.RawMessage `json:"config,omitempty"` // type-specific options, opaque to the core
	Position  Position        `json:"position"`
	Size      Size            `json:"size"`
}

// Right returns the first column to the right of the widget.
func (w Widget) Right() int {
	return w.Position.X + w.Size.Width
}

// Bottom returns the first row below the widget.
func (w Widget) Bottom() int {
	return w.Position.Y + w.Size.Height
}

// WidgetGeometry is the payload of a widget reorder mutation: the full target
// geometry, not a diff, so a coalesced record is self-contained.
type WidgetGeometry struct {
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}
