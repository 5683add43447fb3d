// Package render computes which grid items need widgets. Small lists are
// laid out in full; large lists only materialise the rows that intersect the
// scroll viewport plus a few rows of overscan.
package render

import "math"

// Strategy selects how a list is laid out
type Strategy int

const (
	// Flow creates a widget for every item
	Flow Strategy = iota

	// Windowed creates widgets only for visible rows
	Windowed
)

// Defaults
const (
	DefaultThreshold = 200
	DefaultOverscan  = 2
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case Flow:
		return "Flow"
	case Windowed:
		return "Windowed"
	default:
		return "Unknown"
	}
}

// ChooseStrategy returns Flow for count <= threshold and Windowed otherwise.
// A threshold below zero forces Windowed.
func ChooseStrategy(count, threshold int) Strategy {
	if threshold >= 0 && count <= threshold {
		return Flow
	}
	return Windowed
}

// Columns returns how many cells of cellWidth separated by gap fit in width.
// At least one column is always returned.
func Columns(width, cellWidth, gap float32) int {
	if cellWidth <= 0 {
		return 1
	}
	cols := int(math.Floor(float64((width + gap) / (cellWidth + gap))))
	if cols < 1 {
		return 1
	}
	return cols
}

// Rows returns the number of rows needed for count items
func Rows(count, columns int) int {
	if count <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	return (count + columns - 1) / columns
}

// Extent returns the scrollable height of rows
func Extent(rows int, cellHeight, gap float32) float32 {
	if rows <= 0 {
		return 0
	}
	return float32(rows)*cellHeight + float32(rows-1)*gap
}

// RowOffset returns the top position of row
func RowOffset(row int, cellHeight, gap float32) float32 {
	return float32(row) * (cellHeight + gap)
}

// VisibleRows returns the half-open row range [first, last) that intersects
// the viewport [offset, offset+viewport), widened by overscan rows on each
// side and clamped to [0, rows).
func VisibleRows(offset, viewport, cellHeight, gap float32, rows, overscan int) (first, last int) {
	if rows <= 0 {
		return 0, 0
	}
	pitch := cellHeight + gap
	if pitch <= 0 {
		return 0, rows
	}
	if offset < 0 {
		offset = 0
	}
	if viewport < 0 {
		viewport = 0
	}

	first = int(math.Floor(float64(offset / pitch)))
	last = int(math.Ceil(float64((offset + viewport) / pitch)))
	if last <= first {
		last = first + 1
	}

	first -= overscan
	last += overscan
	if first < 0 {
		first = 0
	}
	if last > rows {
		last = rows
	}
	if first > last {
		first = last
	}
	return first, last
}

// Viewport describes the scroll area and cell geometry
type Viewport struct {
	Width      float32
	Height     float32
	Offset     float32
	CellWidth  float32
	CellHeight float32
	Gap        float32
	Overscan   int
}

// Plan is the layout decision for one frame
type Plan struct {
	Strategy Strategy
	Columns  int
	Rows     int
	Extent   float32
	// First and Last delimit the item indexes to materialise: [First, Last)
	First int
	Last  int
}

// Len returns the number of items to materialise
func (p Plan) Len() int {
	return p.Last - p.First
}

// Contains reports whether item index i is materialised
func (p Plan) Contains(i int) bool {
	return i >= p.First && i < p.Last
}

// Position returns the top-left of item i relative to the grid origin
func (p Plan) Position(i int, v Viewport) (x, y float32) {
	cols := p.Columns
	if cols < 1 {
		cols = 1
	}
	row, col := i/cols, i%cols
	return float32(col) * (v.CellWidth + v.Gap), RowOffset(row, v.CellHeight, v.Gap)
}

// Compute builds the plan for count items
func Compute(count, threshold int, v Viewport) Plan {
	strategy := ChooseStrategy(count, threshold)
	cols := Columns(v.Width, v.CellWidth, v.Gap)
	rows := Rows(count, cols)

	plan := Plan{
		Strategy: strategy,
		Columns:  cols,
		Rows:     rows,
		Extent:   Extent(rows, v.CellHeight, v.Gap),
	}

	if strategy == Flow {
		plan.First, plan.Last = 0, count
		if count < 0 {
			plan.Last = 0
		}
		return plan
	}

	firstRow, lastRow := VisibleRows(v.Offset, v.Height, v.CellHeight, v.Gap, rows, v.Overscan)
	plan.First = firstRow * cols
	plan.Last = lastRow * cols
	if plan.Last > count {
		plan.Last = count
	}
	if plan.First > plan.Last {
		plan.First = plan.Last
	}
	return plan
}
