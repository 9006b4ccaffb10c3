package geom

import "math"

// Resample returns n points spaced at uniform arc length along the closed
// polyline ring (the closing edge from the last point back to the first is
// implied). The first output point coincides with ring[0]. Returns nil when
// the ring is degenerate (fewer than 3 points or zero perimeter).
func Resample(ring []Point, n int) []Point {
	if len(ring) < 3 || n < 3 {
		return nil
	}

	perimeter := 0.0
	for i := range ring {
		j := (i + 1) % len(ring)
		perimeter += math.Hypot(ring[j].X-ring[i].X, ring[j].Y-ring[i].Y)
	}
	if perimeter == 0 {
		return nil
	}

	out := make([]Point, 0, n)
	step := perimeter / float64(n)
	target := 0.0 // arc length of the next sample
	walked := 0.0

	for i := 0; i < len(ring) && len(out) < n; i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		edge := math.Hypot(b.X-a.X, b.Y-a.Y)
		for target <= walked+edge && len(out) < n {
			t := 0.0
			if edge > 0 {
				t = (target - walked) / edge
			}
			out = append(out, Point{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
			})
			target += step
		}
		walked += edge
	}

	// Roundoff in the arc-length walk can leave the final sample unemitted.
	for len(out) < n {
		out = append(out, ring[0])
	}
	return out
}

// GaussianKernel returns a normalized discrete Gaussian kernel with the
// given standard deviation in sample units. The kernel covers [-r, r] with
// r = ceil(3*sigma), so its length is always odd.
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	r := int(math.Ceil(3 * sigma))
	if r < 1 {
		r = 1
	}
	k := make([]float64, 2*r+1)
	sum := 0.0
	for i := -r; i <= r; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		k[i+r] = w
		sum += w
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}
