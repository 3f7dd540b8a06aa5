// Package layout implements the pure geometry of the dashboard widget grid:
// overlap and bounds tests, row-major first-fit placement, compaction and
// bounds-constraining. Functions never retain their inputs between calls;
// the live layout stays owned by the caller.
package layout

import (
	"errors"
	"sort"

	"github.com/tabdeck/tabdeck/internal/models"
)

// ErrInvalidGeometry indicates a non-positive size or an unusable grid
var ErrInvalidGeometry = errors.New("layout: invalid geometry")

// Overlaps reports whether the cell rectangles of a and b intersect on a
// nonzero area. Edge-touching widgets do not overlap.
func Overlaps(a, b models.Widget) bool {
	return a.Position.X < b.Right() &&
		b.Position.X < a.Right() &&
		a.Position.Y < b.Bottom() &&
		b.Position.Y < a.Bottom()
}

// IsWithinBounds reports whether w lies entirely inside bounds.
func IsWithinBounds(w models.Widget, bounds models.Bounds) bool {
	if w.Position.X < 0 || w.Position.Y < 0 {
		return false
	}
	if w.Right() > bounds.Columns {
		return false
	}
	if bounds.RowBounded() && w.Bottom() > bounds.Rows {
		return false
	}
	return true
}

// TotalArea returns the summed cell area of the given widgets.
func TotalArea(widgets []models.Widget) int {
	total := 0
	for _, w := range widgets {
		total += w.Size.Width * w.Size.Height
	}
	return total
}

// FindNextAvailablePosition scans candidate origins in row-major order
// (top-to-bottom, left-to-right) and returns the first position where a
// widget of the given size fits inside bounds without overlapping any of
// existing. A nil position with a nil error means no valid position exists
// anywhere within bounds; the caller decides whether to grow the grid or
// reject the placement.
func FindNextAvailablePosition(existing []models.Widget, size models.Size, bounds models.Bounds) (*models.Position, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, ErrInvalidGeometry
	}
	if bounds.Columns <= 0 {
		return nil, ErrInvalidGeometry
	}
	if size.Width > bounds.Columns {
		return nil, nil
	}
	if bounds.RowBounded() && size.Height > bounds.Rows {
		return nil, nil
	}

	// On an unbounded grid the row directly below every existing widget is
	// always free, so the scan terminates there at the latest.
	maxY := maxBottom(existing)
	if bounds.RowBounded() {
		maxY = bounds.Rows - size.Height
	}

	for y := 0; y <= maxY; y++ {
		for x := 0; x+size.Width <= bounds.Columns; x++ {
			candidate := models.Widget{
				Position: models.Position{X: x, Y: y},
				Size:     size,
			}
			if fits(candidate, existing) {
				pos := candidate.Position
				return &pos, nil
			}
		}
	}

	return nil, nil
}

// Compact re-flows widgets upward and leftward. Widgets are processed in
// row-major order of their current origins; each one moves to the first
// free position at or above its current row. When no such position exists
// the widget keeps its origin, unless an earlier placement claimed its
// cells, in which case it takes the next free position below. The input
// slice is not modified; output preserves input order.
func Compact(widgets []models.Widget, bounds models.Bounds) ([]models.Widget, error) {
	if bounds.Columns <= 0 {
		return nil, ErrInvalidGeometry
	}
	for _, w := range widgets {
		if w.Size.Width <= 0 || w.Size.Height <= 0 {
			return nil, ErrInvalidGeometry
		}
	}

	// Process order: row-major by current origin.
	order := make([]int, len(widgets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := widgets[order[a]], widgets[order[b]]
		if wa.Position.Y != wb.Position.Y {
			return wa.Position.Y < wb.Position.Y
		}
		return wa.Position.X < wb.Position.X
	})

	out := make([]models.Widget, len(widgets))
	copy(out, widgets)

	placed := make([]models.Widget, 0, len(widgets))
	for _, idx := range order {
		w := out[idx]
		pos, err := FindNextAvailablePosition(placed, w.Size, bounds)
		if err != nil {
			return nil, err
		}
		// First-fit returns the earliest free slot in scan order, so a
		// result below the widget's current row means nothing at or above
		// it is free. The widget then stays where it is instead of sinking,
		// unless its own cells were claimed by an earlier placement.
		switch {
		case pos != nil && pos.Y <= w.Position.Y:
			w.Position = *pos
		case fits(w, placed):
			// keep current origin
		case pos != nil:
			w.Position = *pos
		}
		// Remaining case is an over-full bounded grid; the widget keeps
		// its current origin rather than being dropped.
		out[idx] = w
		placed = append(placed, w)
	}

	return out, nil
}

// ConstrainToBounds clamps every widget that sticks out of bounds by
// shrinking it to the grid extent and pulling its origin back inside, then
// re-places any widget the clamping brought into collision. Widgets that
// cannot fit even after clamping are omitted from the result and returned
// separately.
func ConstrainToBounds(widgets []models.Widget, bounds models.Bounds) (kept, omitted []models.Widget, err error) {
	if bounds.Columns <= 0 {
		return nil, nil, ErrInvalidGeometry
	}
	for _, w := range widgets {
		if w.Size.Width <= 0 || w.Size.Height <= 0 {
			return nil, nil, ErrInvalidGeometry
		}
	}

	kept = make([]models.Widget, 0, len(widgets))
	for _, w := range widgets {
		if w.Size.Width > bounds.Columns {
			w.Size.Width = bounds.Columns
		}
		if bounds.RowBounded() && w.Size.Height > bounds.Rows {
			w.Size.Height = bounds.Rows
		}

		if w.Position.X < 0 {
			w.Position.X = 0
		}
		if w.Position.Y < 0 {
			w.Position.Y = 0
		}
		if w.Right() > bounds.Columns {
			w.Position.X = bounds.Columns - w.Size.Width
		}
		if bounds.RowBounded() && w.Bottom() > bounds.Rows {
			w.Position.Y = bounds.Rows - w.Size.Height
		}

		if !fits(w, kept) {
			pos, ferr := FindNextAvailablePosition(kept, w.Size, bounds)
			if ferr != nil {
				return nil, nil, ferr
			}
			if pos == nil {
				omitted = append(omitted, w)
				continue
			}
			w.Position = *pos
		}

		kept = append(kept, w)
	}

	return kept, omitted, nil
}

// fits reports whether w overlaps none of the others.
func fits(w models.Widget, others []models.Widget) bool {
	for _, o := range others {
		if Overlaps(w, o) {
			return false
		}
	}
	return true
}

// maxBottom returns the lowest occupied row edge, 0 for an empty layout.
func maxBottom(widgets []models.Widget) int {
	bottom := 0
	for _, w := range widgets {
		if b := w.Bottom(); b > bottom {
			bottom = b
		}
	}
	return bottom
}
