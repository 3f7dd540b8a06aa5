package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabdeck/tabdeck/internal/models"
)

func w(x, y, width, height int) models.Widget {
	return models.Widget{
		Position: models.Position{X: x, Y: y},
		Size:     models.Size{Width: width, Height: height},
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    models.Widget
		b    models.Widget
		want bool
	}{
		{name: "identical", a: w(0, 0, 2, 2), b: w(0, 0, 2, 2), want: true},
		{name: "partial overlap", a: w(0, 0, 2, 2), b: w(1, 1, 2, 2), want: true},
		{name: "contained", a: w(0, 0, 4, 4), b: w(1, 1, 1, 1), want: true},
		{name: "edge touching horizontally", a: w(0, 0, 2, 2), b: w(2, 0, 2, 2), want: false},
		{name: "edge touching vertically", a: w(0, 0, 2, 2), b: w(0, 2, 2, 2), want: false},
		{name: "corner touching", a: w(0, 0, 2, 2), b: w(2, 2, 2, 2), want: false},
		{name: "disjoint", a: w(0, 0, 1, 1), b: w(5, 5, 1, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestIsWithinBounds(t *testing.T) {
	bounded := models.Bounds{Columns: 4, Rows: 4}
	unbounded := models.Bounds{Columns: 4}

	tests := []struct {
		name   string
		widget models.Widget
		bounds models.Bounds
		want   bool
	}{
		{name: "fits exactly", widget: w(0, 0, 4, 4), bounds: bounded, want: true},
		{name: "inside", widget: w(1, 1, 2, 2), bounds: bounded, want: true},
		{name: "negative x", widget: w(-1, 0, 1, 1), bounds: bounded, want: false},
		{name: "negative y", widget: w(0, -1, 1, 1), bounds: bounded, want: false},
		{name: "too wide", widget: w(3, 0, 2, 1), bounds: bounded, want: false},
		{name: "too tall", widget: w(0, 3, 1, 2), bounds: bounded, want: false},
		{name: "deep on unbounded rows", widget: w(0, 100, 4, 10), bounds: unbounded, want: true},
		{name: "too wide on unbounded rows", widget: w(1, 0, 4, 1), bounds: unbounded, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinBounds(tt.widget, tt.bounds))
		})
	}
}

func TestTotalArea(t *testing.T) {
	assert.Equal(t, 0, TotalArea(nil))
	assert.Equal(t, 4, TotalArea([]models.Widget{w(0, 0, 2, 2)}))
	assert.Equal(t, 7, TotalArea([]models.Widget{w(0, 0, 2, 2), w(2, 0, 1, 3)}))
}

func TestFindNextAvailablePosition_RowMajorFirstFit(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	existing := []models.Widget{w(0, 0, 2, 2), w(2, 0, 2, 2)}

	// The top two rows are fully occupied, so a 2x2 widget lands at the
	// start of row 2.
	pos, err := FindNextAvailablePosition(existing, models.Size{Width: 2, Height: 2}, bounds)
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, models.Position{X: 0, Y: 2}, *pos)

	// A 3x3 widget has nowhere to go on this grid.
	pos, err = FindNextAvailablePosition(existing, models.Size{Width: 3, Height: 3}, bounds)
	require.NoError(t, err)
	assert.Nil(t, pos)
}

func TestFindNextAvailablePosition_EmptyLayout(t *testing.T) {
	pos, err := FindNextAvailablePosition(nil, models.Size{Width: 2, Height: 2}, models.Bounds{Columns: 4, Rows: 4})
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, models.Position{X: 0, Y: 0}, *pos)
}

func TestFindNextAvailablePosition_PrefersLeftmostInRow(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	existing := []models.Widget{w(1, 0, 2, 1)}

	// A 1x1 widget fits at (0,0), left of the existing widget.
	pos, err := FindNextAvailablePosition(existing, models.Size{Width: 1, Height: 1}, bounds)
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, models.Position{X: 0, Y: 0}, *pos)
}

func TestFindNextAvailablePosition_UnboundedGridAlwaysFits(t *testing.T) {
	bounds := models.Bounds{Columns: 2}
	existing := []models.Widget{w(0, 0, 2, 3)}

	pos, err := FindNextAvailablePosition(existing, models.Size{Width: 2, Height: 5}, bounds)
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, models.Position{X: 0, Y: 3}, *pos)
}

func TestFindNextAvailablePosition_InvalidGeometry(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}

	_, err := FindNextAvailablePosition(nil, models.Size{Width: 0, Height: 1}, bounds)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = FindNextAvailablePosition(nil, models.Size{Width: 1, Height: -1}, bounds)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = FindNextAvailablePosition(nil, models.Size{Width: 1, Height: 1}, models.Bounds{})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

// requireValidLayout asserts the core grid invariants: pairwise
// non-overlapping and within bounds.
func requireValidLayout(t *testing.T, widgets []models.Widget, bounds models.Bounds) {
	t.Helper()
	for i := range widgets {
		require.True(t, IsWithinBounds(widgets[i], bounds),
			"widget %d at %+v out of bounds", i, widgets[i].Position)
		for j := i + 1; j < len(widgets); j++ {
			require.False(t, Overlaps(widgets[i], widgets[j]),
				"widgets %d and %d overlap", i, j)
		}
	}
}

func TestCompact_PullsWidgetsUp(t *testing.T) {
	bounds := models.Bounds{Columns: 4}
	in := []models.Widget{w(0, 3, 2, 1), w(2, 5, 2, 2)}

	out, err := Compact(in, bounds)
	require.NoError(t, err)
	require.Len(t, out, 2)
	requireValidLayout(t, out, bounds)

	assert.Equal(t, models.Position{X: 0, Y: 0}, out[0].Position)
	assert.Equal(t, models.Position{X: 2, Y: 0}, out[1].Position)

	// Input stays untouched.
	assert.Equal(t, models.Position{X: 0, Y: 3}, in[0].Position)
}

func TestCompact_PreservesProcessingOrder(t *testing.T) {
	bounds := models.Bounds{Columns: 2}
	// Three full-width widgets stacked with gaps; compaction must keep
	// their vertical order while closing the gaps.
	in := []models.Widget{w(0, 4, 2, 1), w(0, 0, 2, 1), w(0, 9, 2, 1)}

	out, err := Compact(in, bounds)
	require.NoError(t, err)
	requireValidLayout(t, out, bounds)

	assert.Equal(t, 1, out[0].Position.Y)
	assert.Equal(t, 0, out[1].Position.Y)
	assert.Equal(t, 2, out[2].Position.Y)
}

func TestCompact_DoesNotGrowArea(t *testing.T) {
	bounds := models.Bounds{Columns: 6}
	in := []models.Widget{w(0, 0, 2, 2), w(4, 2, 2, 2), w(0, 7, 3, 1)}

	out, err := Compact(in, bounds)
	require.NoError(t, err)
	requireValidLayout(t, out, bounds)
	assert.Equal(t, TotalArea(in), TotalArea(out))
}

func TestCompact_AlreadyCompactIsStable(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	in := []models.Widget{w(0, 0, 2, 2), w(2, 0, 2, 2), w(0, 2, 4, 2)}

	out, err := Compact(in, bounds)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompact_NeverPushesWidgetsDown(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	// Fragmented layout with gaps above and beside each widget. Every
	// widget must end at or above its current row, never lower.
	in := []models.Widget{w(1, 0, 2, 2), w(3, 1, 1, 2), w(0, 2, 2, 2)}

	out, err := Compact(in, bounds)
	require.NoError(t, err)
	requireValidLayout(t, out, bounds)

	for i := range out {
		assert.LessOrEqual(t, out[i].Position.Y, in[i].Position.Y,
			"widget %d moved from %+v down to %+v", i, in[i].Position, out[i].Position)
	}
	assert.Equal(t, models.Position{X: 0, Y: 0}, out[0].Position)
	assert.Equal(t, models.Position{X: 2, Y: 0}, out[1].Position)
	// No free slot exists at or above row 2 for a 2x2 widget, so the
	// last one keeps its origin.
	assert.Equal(t, models.Position{X: 0, Y: 2}, out[2].Position)
}

func TestCompact_InvalidGeometry(t *testing.T) {
	_, err := Compact([]models.Widget{w(0, 0, 0, 1)}, models.Bounds{Columns: 4})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestConstrainToBounds_ClampsOversized(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	in := []models.Widget{w(0, 0, 6, 6)}

	kept, omitted, err := ConstrainToBounds(in, bounds)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Empty(t, omitted)
	assert.Equal(t, models.Size{Width: 4, Height: 4}, kept[0].Size)
	requireValidLayout(t, kept, bounds)
}

func TestConstrainToBounds_RepositionsOutOfBounds(t *testing.T) {
	bounds := models.Bounds{Columns: 4, Rows: 4}
	in := []models.Widget{w(3, 3, 2, 2), w(-1, 0, 1, 1)}

	kept, omitted, err := ConstrainToBounds(in, bounds)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Empty(t, omitted)
	requireValidLayout(t, kept, bounds)
	assert.Equal(t, models.Position{X: 2, Y: 2}, kept[0].Position)
	assert.Equal(t, models.Position{X: 0, Y: 0}, kept[1].Position)
}

func TestConstrainToBounds_OmitsWhenGridIsFull(t *testing.T) {
	bounds := models.Bounds{Columns: 2, Rows: 2}
	in := []models.Widget{w(0, 0, 2, 2), w(5, 5, 2, 2)}

	kept, omitted, err := ConstrainToBounds(in, bounds)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Len(t, omitted, 1)
	requireValidLayout(t, kept, bounds)
}

func TestConstrainToBounds_InvalidGeometry(t *testing.T) {
	_, _, err := ConstrainToBounds([]models.Widget{w(0, 0, 1, 0)}, models.Bounds{Columns: 4})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
