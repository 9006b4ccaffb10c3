// Package geom holds low-level segment and polyline helpers shared by the
// scatter shape utilities.
package geom

// Point is a 2D coordinate pair. The root package converts to and from its
// own Point type at call sites.
type Point struct {
	X, Y float64
}

// Orient returns the signed area of triangle a-b-c, doubled.
// Positive when c lies to the left of a->b, negative to the right,
// zero when collinear.
func Orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether p, already known to be collinear with a-b,
// lies within the segment's bounding box.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments a-b and c-d share any point,
// including endpoint touches and collinear overlap.
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	if ((o1 > 0) != (o2 > 0)) && ((o3 > 0) != (o4 > 0)) && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}

	// Collinear and endpoint cases.
	if o1 == 0 && onSegment(a, b, c) {
		return true
	}
	if o2 == 0 && onSegment(a, b, d) {
		return true
	}
	if o3 == 0 && onSegment(c, d, a) {
		return true
	}
	if o4 == 0 && onSegment(c, d, b) {
		return true
	}
	return false
}

// PointSegmentDistSq returns the squared distance from p to segment a-b.
func PointSegmentDistSq(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx := a.X + t*dx - p.X
	cy := a.Y + t*dy - p.Y
	return cx*cx + cy*cy
}

// TriangleArea returns the (unsigned) area of triangle a-b-c.
func TriangleArea(a, b, c Point) float64 {
	area := Orient(a, b, c) / 2
	if area < 0 {
		return -area
	}
	return area
}
