package scatter

import (
	"math"

	"github.com/gogpu/scatter/internal/geom"
)

// Simplify reduces the vertex count of a ring using the Douglas-Peucker
// algorithm: vertices within tolerance of the simplified edges are dropped,
// vertices farther away survive. The ring is split at its first vertex and
// the vertex farthest from it, so those two always survive.
//
// Rings with 3 or fewer vertices, or a non-positive tolerance, are returned
// as an unmodified copy.
func Simplify(r Ring, tolerance float64) Ring {
	if len(r) <= 3 || tolerance <= 0 {
		return append(Ring(nil), r...)
	}

	// Douglas-Peucker needs fixed endpoints; a closed ring has none, so
	// split it into two open chains at the two mutually farthest anchors.
	far := 0
	farDist := 0.0
	for i, p := range r {
		if d := p.DistanceSq(r[0]); d > farDist {
			farDist = d
			far = i
		}
	}

	tolSq := tolerance * tolerance
	first := douglasPeucker(r[:far+1], tolSq)
	second := douglasPeucker(append(append(Ring(nil), r[far:]...), r[0]), tolSq)

	out := append(Ring(nil), first[:len(first)-1]...)
	out = append(out, second[:len(second)-1]...)
	return out
}

// douglasPeucker simplifies an open polyline, always keeping both endpoints.
func douglasPeucker(pts Ring, tolSq float64) Ring {
	if len(pts) < 3 {
		return append(Ring(nil), pts...)
	}
	last := len(pts) - 1
	a, b := gpt(pts[0]), gpt(pts[last])
	idx := 0
	maxDistSq := 0.0
	for i := 1; i < last; i++ {
		if d := geom.PointSegmentDistSq(gpt(pts[i]), a, b); d > maxDistSq {
			maxDistSq = d
			idx = i
		}
	}
	if maxDistSq <= tolSq {
		return Ring{pts[0], pts[last]}
	}
	left := douglasPeucker(pts[:idx+1], tolSq)
	right := douglasPeucker(pts[idx:], tolSq)
	return append(left[:len(left)-1], right...)
}

// SimplifyVW reduces the vertex count of a ring using the Visvalingam-Whyatt
// algorithm: the vertex spanning the smallest triangle with its neighbors is
// removed repeatedly until every remaining vertex spans at least
// tolerance squared (the distance tolerance converted to an area tolerance).
// At least 3 vertices are always kept.
func SimplifyVW(r Ring, tolerance float64) Ring {
	if len(r) <= 3 || tolerance <= 0 {
		return append(Ring(nil), r...)
	}
	areaTol := tolerance * tolerance
	out := append(Ring(nil), r...)
	for len(out) > 3 {
		minIdx := -1
		minArea := math.Inf(1)
		n := len(out)
		for i := 0; i < n; i++ {
			a := out[(i+n-1)%n]
			b := out[i]
			c := out[(i+1)%n]
			if area := geom.TriangleArea(gpt(a), gpt(b), gpt(c)); area < minArea {
				minArea = area
				minIdx = i
			}
		}
		if minArea >= areaTol {
			break
		}
		out = append(out[:minIdx], out[minIdx+1:]...)
	}
	return out
}
