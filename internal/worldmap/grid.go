package worldmap

// CellGrid stores the square world grid as one contiguous cell arena.
// Cell coordinates are centered: (0, 0) is the middle of the grid and both
// axes run from -Half() to +Half() inclusive. The extra margin cell on each
// side guarantees every queryable world position has two valid neighbors
// per axis.
type CellGrid struct {
	side     int
	half     int
	cellSize float64
	cells    []Cell
}

func newCellGrid(worldExtent int, cellSize float64) *CellGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	half := int(float64(worldExtent)/cellSize) + 1
	if half < 1 {
		half = 1
	}
	side := 2*half + 1
	return &CellGrid{
		side:     side,
		half:     half,
		cellSize: cellSize,
		cells:    make([]Cell, side*side),
	}
}

// Side returns the number of cells per axis.
func (g *CellGrid) Side() int { return g.side }

// Half returns the maximum absolute cell coordinate.
func (g *CellGrid) Half() int { return g.half }

// CellSize returns the world-units-per-cell scale.
func (g *CellGrid) CellSize() float64 { return g.cellSize }

// Cells exposes the backing arena in row-major order.
func (g *CellGrid) Cells() []Cell { return g.cells }

// Index returns the arena index for centered cell coordinates.
func (g *CellGrid) Index(cx, cy int) int {
	return (cy+g.half)*g.side + (cx + g.half)
}

// InBounds reports whether centered cell coordinates lie on the grid.
func (g *CellGrid) InBounds(cx, cy int) bool {
	return cx >= -g.half && cx <= g.half && cy >= -g.half && cy <= g.half
}

// At returns a mutable view of the cell at centered coordinates. Callers
// must check InBounds first; out-of-range coordinates are a programmer
// error.
func (g *CellGrid) At(cx, cy int) *Cell {
	return &g.cells[g.Index(cx, cy)]
}

// AtClamped returns the cell at the given coordinates, clamping them onto
// the grid. Used by the sampler so positions on the world rim still resolve
// to four corners.
func (g *CellGrid) AtClamped(cx, cy int) *Cell {
	if cx < -g.half {
		cx = -g.half
	} else if cx > g.half {
		cx = g.half
	}
	if cy < -g.half {
		cy = -g.half
	} else if cy > g.half {
		cy = g.half
	}
	return &g.cells[g.Index(cx, cy)]
}

// onBorder reports whether the coordinates lie on one of the four grid
// edges.
func (g *CellGrid) onBorder(cx, cy int) bool {
	return cx == -g.half || cx == g.half || cy == -g.half || cy == g.half
}
