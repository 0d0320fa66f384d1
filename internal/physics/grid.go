package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection.
// Items are inserted by position and index, then nearby items can be queried
// through the 3x3 cell neighbourhood around a point.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding bodies so that all potential collisions are found within the
// neighbourhood. Collisions are not wrap-aware, so neither is the grid:
// positions outside the playfield clamp to the border cells.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given bounds.
func NewSpatialGrid(bounds Bounds, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{}
	g.Reset(bounds, cellSize)
	return g
}

// Reset empties the grid and re-dimensions it for new bounds or cell size.
// Cell memory is reused when the dimensions are unchanged.
func (g *SpatialGrid) Reset(bounds Bounds, cellSize float64) {
	g.cellSize = cellSize
	g.invCellSize = 1.0 / cellSize

	cols := int(math.Ceil(bounds.Width * g.invCellSize))
	rows := int(math.Ceil(bounds.Height * g.invCellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == g.cols && rows == g.rows {
		g.Clear()
		return
	}
	g.cols = cols
	g.rows = rows
	g.cells = make([]gridCell, cols*rows)
}

// CellSize returns the edge length of a cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighbourhood
// around the given position. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// First returns the lowest item index near (x, y) for which match returns
// true, or -1. Cells are visited in grid order, so the lowest index is
// tracked explicitly to keep list order as the tie-break.
func (g *SpatialGrid) First(x, y float64, match func(index int) bool) int {
	best := -1
	g.QueryAround(x, y, func(index int) bool {
		if best != -1 && index >= best {
			return false
		}
		if match(index) {
			best = index
		}
		return false
	})
	return best
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to the valid range so off-screen positions land in border cells.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
