package scatter

import (
	"math"

	"github.com/gogpu/scatter/internal/geom"
)

// Ring is a closed polygon ring. The closing edge from the last vertex back
// to the first is implied; the first vertex is not repeated at the end.
//
// Predicates assume the ring is simple (non-self-intersecting) unless noted;
// IsSimple checks that assumption. Rings with fewer than 3 vertices are
// degenerate and predicates on them return zero values.
type Ring []Point

func gpt(p Point) geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

func (r Ring) geomPoints() []geom.Point {
	out := make([]geom.Point, len(r))
	for i, p := range r {
		out[i] = gpt(p)
	}
	return out
}

// Area returns the signed area enclosed by the ring using the shoelace
// formula: positive for counter-clockwise winding in a Y-up frame (negative
// in gg's Y-down frame), negative for the opposite winding.
func (r Ring) Area() float64 {
	if len(r) < 3 {
		return 0
	}
	var area float64
	for i := range r {
		j := (i + 1) % len(r)
		area += r[i].Cross(r[j])
	}
	return area / 2
}

// AbsArea returns the unsigned area enclosed by the ring.
func (r Ring) AbsArea() float64 {
	return math.Abs(r.Area())
}

// Perimeter returns the total edge length of the ring, closing edge
// included.
func (r Ring) Perimeter() float64 {
	var sum float64
	for i := range r {
		sum += r[i].Distance(r[(i+1)%len(r)])
	}
	return sum
}

// Centroid returns the area centroid of the ring. For degenerate rings with
// near-zero area it falls back to the vertex mean.
func (r Ring) Centroid() Point {
	if len(r) == 0 {
		return Point{}
	}
	area := r.Area()
	if math.Abs(area) < 1e-12 {
		var sum Point
		for _, p := range r {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(r)))
	}
	var cx, cy float64
	for i := range r {
		j := (i + 1) % len(r)
		cross := r[i].Cross(r[j])
		cx += (r[i].X + r[j].X) * cross
		cy += (r[i].Y + r[j].Y) * cross
	}
	return Pt(cx/(6*area), cy/(6*area))
}

// Bounds returns the axis-aligned bounding rect of the ring's vertices.
func (r Ring) Bounds() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	b := Rect{MinX: r[0].X, MinY: r[0].Y, MaxX: r[0].X, MaxY: r[0].Y}
	for _, p := range r[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Circularity returns 4*pi*area/perimeter^2, the isoperimetric quotient:
// 1 for a circle, approaching 0 for elongated or crinkly shapes.
func (r Ring) Circularity() float64 {
	p := r.Perimeter()
	if p == 0 {
		return 0
	}
	return 4 * math.Pi * r.AbsArea() / (p * p)
}

// IsConvex reports whether the ring is convex. Collinear vertices are
// allowed; windings in either direction are accepted.
func (r Ring) IsConvex() bool {
	if len(r) < 3 {
		return false
	}
	sign := 0
	for i := range r {
		a := r[i]
		b := r[(i+1)%len(r)]
		c := r[(i+2)%len(r)]
		cross := geom.Orient(gpt(a), gpt(b), gpt(c))
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// IsSimple reports whether no two non-adjacent edges of the ring intersect.
// Runs in O(n^2); intended for validation, not per-frame use.
func (r Ring) IsSimple() bool {
	n := len(r)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := gpt(r[i])
		a2 := gpt(r[(i+1)%n])
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex, including the first-last pair.
			if (j+1)%n == i || (i+1)%n == j {
				continue
			}
			if geom.SegmentsIntersect(a1, a2, gpt(r[j]), gpt(r[(j+1)%n])) {
				return false
			}
		}
	}
	return true
}

// Contains reports whether p lies strictly inside the ring, using an
// even-odd ray cast. Points exactly on an edge may report either way.
func (r Ring) Contains(p Point) bool {
	n := len(r)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsRing reports whether inner lies entirely inside r: every vertex of
// inner is inside r and no edges of the two rings cross.
func (r Ring) ContainsRing(inner Ring) bool {
	if len(r) < 3 || len(inner) < 3 {
		return false
	}
	for _, p := range inner {
		if !r.Contains(p) {
			return false
		}
	}
	return !r.edgesIntersect(inner)
}

// Intersects reports whether the two rings share any area or boundary:
// their edges cross, or one ring contains the other.
func (r Ring) Intersects(other Ring) bool {
	if len(r) < 3 || len(other) < 3 {
		return false
	}
	if r.edgesIntersect(other) {
		return true
	}
	return r.Contains(other[0]) || other.Contains(r[0])
}

func (r Ring) edgesIntersect(other Ring) bool {
	n, m := len(r), len(other)
	for i := 0; i < n; i++ {
		a1 := gpt(r[i])
		a2 := gpt(r[(i+1)%n])
		for j := 0; j < m; j++ {
			if geom.SegmentsIntersect(a1, a2, gpt(other[j]), gpt(other[(j+1)%m])) {
				return true
			}
		}
	}
	return false
}

// Distance returns the minimum distance between the boundaries of two rings,
// or 0 if they intersect or one contains the other.
func (r Ring) Distance(other Ring) float64 {
	if len(r) == 0 || len(other) == 0 {
		return 0
	}
	if r.Intersects(other) {
		return 0
	}
	best := math.Inf(1)
	minVertexToEdges := func(a, b Ring) {
		n := len(b)
		for _, p := range a {
			for j := 0; j < n; j++ {
				d := geom.PointSegmentDistSq(gpt(p), gpt(b[j]), gpt(b[(j+1)%n]))
				if d < best {
					best = d
				}
			}
		}
	}
	minVertexToEdges(r, other)
	minVertexToEdges(other, r)
	return math.Sqrt(best)
}
