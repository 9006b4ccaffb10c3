package scatter

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random values in [0, 1).
// Every random draw in one Generate call comes from a single Source, so a
// whole run is reproducible from the stream alone. Implementations need not
// be safe for concurrent use; a Sampler never shares its Source.
type Source interface {
	Float64() float64
}

// NewSource returns a Source seeded with the given value, backed by a PCG
// generator. Two Sources built from the same seed produce identical streams.
func NewSource(seed uint64) Source {
	// The second PCG word acts as a stream selector. Deriving it from the
	// seed keeps the one-seed contract: same seed, same stream.
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// timeSeed returns a wall-clock seed for callers that did not provide one.
func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
