package scatter

import "math"

// Rect is a rectangular domain [MinX, MaxX) x [MinY, MaxY).
// The minimum edges are inclusive and the maximum edges exclusive, so
// adjacent rects tile the plane without sharing boundary points.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// R is a convenience function to create a Rect.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Diagonal returns the length of the rect's diagonal.
// No two points inside the rect can be farther apart than this.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Contains reports whether p lies inside the rect, honoring the half-open
// edge convention.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Valid reports whether the rect has finite coordinates and positive extent
// on both axes.
func (r Rect) Valid() bool {
	for _, v := range [4]float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.MaxX > r.MinX && r.MaxY > r.MinY
}
