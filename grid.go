package scatter

import "math"

// spatialGrid indexes accepted points by uniform cells so that conflict
// queries touch a constant number of cells instead of every accepted point.
//
// Cell size is minDist/sqrt(2), the largest size at which two points closer
// than minDist must fall in the same cell or an adjacent one. The grid is
// insert-only; it lives for one generation run and is then discarded.
type spatialGrid struct {
	bounds     Rect
	cellSize   float64
	cols, rows int
	cells      [][]Point
}

func newSpatialGrid(bounds Rect, minDist float64) *spatialGrid {
	cellSize := minDist / math.Sqrt2
	cols := int(math.Ceil(bounds.Width() / cellSize))
	rows := int(math.Ceil(bounds.Height() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &spatialGrid{
		bounds:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]Point, cols*rows),
	}
}

// insert places p into the cell covering its coordinates.
// p is assumed to lie within the grid's bounds.
func (g *spatialGrid) insert(p Point) {
	i := g.cellIndex(p)
	g.cells[i] = append(g.cells[i], p)
}

func (g *spatialGrid) cellIndex(p Point) int {
	gx := int((p.X - g.bounds.MinX) / g.cellSize)
	gy := int((p.Y - g.bounds.MinY) / g.cellSize)
	if gx < 0 {
		gx = 0
	}
	if gx >= g.cols {
		gx = g.cols - 1
	}
	if gy < 0 {
		gy = 0
	}
	if gy >= g.rows {
		gy = g.rows - 1
	}
	return gy*g.cols + gx
}

// hasNeighborWithin reports whether any inserted point lies within minDist
// of p. A point at exactly minDist counts as a neighbor. Only the cells
// whose index range covers the 2*minDist square centered on p are scanned,
// clamped to the grid bounds.
func (g *spatialGrid) hasNeighborWithin(p Point, minDist, minDistSq float64) bool {
	minX := int(math.Floor(math.Max(0, (p.X-minDist-g.bounds.MinX)/g.cellSize)))
	maxX := int(math.Ceil(math.Min(float64(g.cols-1), (p.X+minDist-g.bounds.MinX)/g.cellSize)))
	minY := int(math.Floor(math.Max(0, (p.Y-minDist-g.bounds.MinY)/g.cellSize)))
	maxY := int(math.Ceil(math.Min(float64(g.rows-1), (p.Y+minDist-g.bounds.MinY)/g.cellSize)))

	for gy := minY; gy <= maxY; gy++ {
		for gx := minX; gx <= maxX; gx++ {
			for _, q := range g.cells[gy*g.cols+gx] {
				if p.DistanceSq(q) <= minDistSq {
					return true
				}
			}
		}
	}
	return false
}
