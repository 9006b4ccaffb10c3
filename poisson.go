package scatter

import "math"

// DefaultRejectionLimit is the number of candidate attempts made around each
// active point when the caller passes a rejection limit below 1. Bridson's
// paper suggests 30.
const DefaultRejectionLimit = 30

// samplerOptions holds optional configuration for Sampler creation.
type samplerOptions struct {
	src Source
}

// SamplerOption configures a Sampler during creation.
type SamplerOption func(*samplerOptions)

// WithSeed seeds the sampler's random stream. Two samplers built from the
// same seed produce identical point sequences for identical Generate calls.
func WithSeed(seed uint64) SamplerOption {
	return func(o *samplerOptions) {
		o.src = NewSource(seed)
	}
}

// WithSource supplies a custom random stream, for callers that manage their
// own generators (e.g. one split stream per worker). The sampler draws from
// it sequentially and exclusively for the lifetime of the Sampler.
func WithSource(src Source) SamplerOption {
	return func(o *samplerOptions) {
		o.src = src
	}
}

// Sampler generates Poisson-disk point sets: points tightly packed within a
// rectangular domain, but no two closer than a minimum distance. It
// implements the dart-throwing algorithm from Bridson, "Fast Poisson Disk
// Sampling in Arbitrary Dimensions" (SIGGRAPH 2007).
//
// A Sampler owns a single random stream and is not safe for concurrent use.
// All other state is scoped to one Generate call, so a Sampler may be reused
// across calls, and independent Samplers may run concurrently.
type Sampler struct {
	src Source
}

// NewSampler creates a Sampler. Without options the random stream is seeded
// from the wall clock; pass WithSeed for reproducible output.
func NewSampler(opts ...SamplerOption) *Sampler {
	var o samplerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = NewSource(timeSeed())
	}
	return &Sampler{src: o.src}
}

// Generate fills bounds with points separated by more than minDist and
// returns them in acceptance order, seed point first. rejectionLimit caps
// the candidate attempts per active point; values below 1 fall back to
// DefaultRejectionLimit.
//
// Invalid input (a degenerate or non-finite bounds, or minDist <= 0) yields
// nil rather than an error: the sampler has no I/O and no partial-failure
// modes, so malformed geometry is treated as a caller error with a defined
// degenerate result.
//
// The returned slice is freshly allocated; subsequent calls never alias it.
func (s *Sampler) Generate(bounds Rect, minDist float64, rejectionLimit int) []Point {
	if !bounds.Valid() || minDist <= 0 {
		return nil
	}
	if rejectionLimit < 1 {
		rejectionLimit = DefaultRejectionLimit
	}

	minDistSq := minDist * minDist
	grid := newSpatialGrid(bounds, minDist)

	points := make([]Point, 0, 64)
	active := make([]Point, 0, 64)

	accept := func(p Point) {
		points = append(points, p)
		active = append(active, p)
		grid.insert(p)
	}

	accept(Pt(
		s.uniform(bounds.MinX, bounds.MaxX),
		s.uniform(bounds.MinY, bounds.MaxY),
	))

	for len(active) > 0 {
		i := int(s.uniform(0, float64(len(active))))
		if i >= len(active) {
			// Float64 scaling can round up to the slice length.
			i = len(active) - 1
		}
		p := active[i]
		// The active list is unordered: swap-with-last removal is O(1).
		active[i] = active[len(active)-1]
		active = active[:len(active)-1]

		// Try up to rejectionLimit candidates in the annulus between
		// minDist and 2*minDist around p. Every valid candidate is
		// accepted; p itself is never re-added.
		for k := 0; k < rejectionLimit; k++ {
			c := s.annulusPoint(p, minDist, 2*minDist)
			if bounds.Contains(c) && !grid.hasNeighborWithin(c, minDist, minDistSq) {
				accept(c)
			}
		}
	}

	Logger().Debug("poisson generation complete",
		"points", len(points),
		"gridCols", grid.cols,
		"gridRows", grid.rows,
		"minDist", minDist)

	return points
}

// uniform returns a uniform value in [min, max).
func (s *Sampler) uniform(min, max float64) float64 {
	return min + (max-min)*s.src.Float64()
}

// annulusPoint picks a point uniformly distributed over angle and radius in
// the annulus between rmin and rmax around p.
func (s *Sampler) annulusPoint(p Point, rmin, rmax float64) Point {
	a := s.uniform(0, 2*math.Pi)
	r := s.uniform(rmin, rmax)
	return Pt(p.X+r*math.Cos(a), p.Y+r*math.Sin(a))
}

// Poisson is a one-shot convenience wrapper: it builds a Sampler seeded with
// seed and runs a single Generate.
func Poisson(bounds Rect, minDist float64, rejectionLimit int, seed uint64) []Point {
	return NewSampler(WithSeed(seed)).Generate(bounds, minDist, rejectionLimit)
}
