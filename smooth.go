package scatter

import (
	"math"

	"github.com/gogpu/scatter/internal/geom"
)

// Chaikin smooths a ring by iterated corner cutting. ratio in (0, 1] sets
// how far along each edge the cuts land: 1 cuts approximately at the edge
// midpoints (classic Chaikin), smaller values cut closer to the corners. Each
// iteration doubles the vertex count; values beyond ~10 iterations have no
// visible effect.
func Chaikin(r Ring, ratio float64, iterations int) Ring {
	if len(r) < 3 || iterations < 1 {
		return append(Ring(nil), r...)
	}
	ratio = math.Max(ratio, 0.0001)
	ratio = math.Min(ratio, 0.9999)
	cut := ratio / 2 // constrain to (0, 0.5]

	out := append(Ring(nil), r...)
	for it := 0; it < iterations; it++ {
		next := make(Ring, 0, 2*len(out))
		for i := range out {
			a := out[i]
			b := out[(i+1)%len(out)]
			next = append(next, a.Lerp(b, cut), a.Lerp(b, 1-cut))
		}
		out = next
	}
	return out
}

// cornerArcSegments is the number of segments approximating each rounded
// corner's arc.
const cornerArcSegments = 4

// RoundCorners rounds each corner of a ring by substituting an arc for the
// corner vertex. extent runs from 0 (no rounding) to 1 (maximum rounding);
// each corner is rounded in proportion to the shorter of its two adjacent
// edges. Values above 1 are accepted but can produce self-intersections.
func RoundCorners(r Ring, extent float64) Ring {
	if len(r) < 3 || extent <= 0 {
		return append(Ring(nil), r...)
	}

	n := len(r)
	out := make(Ring, 0, n*(cornerArcSegments+1))
	for i := 0; i < n; i++ {
		prev := r[(i+n-1)%n]
		v := r[i]
		next := r[(i+1)%n]

		cut := 0.5 * extent * math.Min(v.Distance(prev), v.Distance(next))
		p1 := v.Add(prev.Sub(v).Normalize().Mul(cut))
		p2 := v.Add(next.Sub(v).Normalize().Mul(cut))

		// Approximate the corner arc with a quadratic Bezier whose
		// control point is the original corner.
		for s := 0; s <= cornerArcSegments; s++ {
			t := float64(s) / cornerArcSegments
			out = append(out, quadBezierPoint(p1, v, p2, t))
		}
	}
	return out
}

// quadBezierPoint evaluates the quadratic Bezier with endpoints p0, p2 and
// control point c at parameter t.
func quadBezierPoint(p0, c, p2 Point, t float64) Point {
	u := 1 - t
	return p0.Mul(u * u).Add(c.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// Bounds on the uniform resampling performed by SmoothGaussian. The floor
// keeps tiny rings representable; the cap bounds work on huge perimeters
// with small sigma.
const (
	gaussianMinSamples = 8
	gaussianMaxSamples = 4096
)

// SmoothGaussian smooths a ring by resampling its boundary at uniform arc
// length and convolving the vertex coordinates with a cyclic Gaussian
// kernel. sigma is the kernel's standard deviation in coordinate units;
// larger values morph the input more. The output vertex count depends on
// the ring's perimeter and sigma, not on the input vertex count.
func SmoothGaussian(r Ring, sigma float64) Ring {
	if len(r) < 3 || sigma <= 0 {
		return append(Ring(nil), r...)
	}

	perimeter := r.Perimeter()
	if perimeter == 0 {
		return append(Ring(nil), r...)
	}

	// Sample at roughly half-sigma spacing so the kernel is well resolved.
	n := int(math.Ceil(perimeter / (sigma / 2)))
	if n < gaussianMinSamples {
		n = gaussianMinSamples
	}
	if n > gaussianMaxSamples {
		n = gaussianMaxSamples
	}

	resampled := geom.Resample(r.geomPoints(), n)
	if resampled == nil {
		return append(Ring(nil), r...)
	}

	sampleSigma := sigma * float64(n) / perimeter
	kernel := geom.GaussianKernel(sampleSigma)
	radius := len(kernel) / 2

	out := make(Ring, n)
	for i := 0; i < n; i++ {
		var x, y float64
		for k, w := range kernel {
			j := ((i+k-radius)%n + n) % n
			x += resampled[j].X * w
			y += resampled[j].Y * w
		}
		out[i] = Pt(x, y)
	}
	return out
}
