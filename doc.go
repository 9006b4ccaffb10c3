// Package scatter generates Poisson-disk point sets and provides small
// polygon utilities for 2D procedural and creative-coding work.
//
// # Overview
//
// The heart of the package is a Poisson-disk sampler implementing Bridson's
// dart-throwing algorithm: it fills a rectangular domain with points that are
// tightly packed but never closer to each other than a minimum distance,
// producing the even "blue noise" distribution used for stippling, object
// placement, and mesh seeding.
//
// # Quick Start
//
//	import "github.com/gogpu/scatter"
//
//	// One-shot, seeded for reproducibility:
//	points := scatter.Poisson(scatter.R(0, 0, 100, 100), 5, 30, 42)
//
//	// Or keep a sampler around:
//	s := scatter.NewSampler(scatter.WithSeed(42))
//	points = s.Generate(scatter.R(0, 0, 100, 100), 5, 30)
//
// The returned points are in acceptance order with the seed point first.
// Identical parameters and seed always reproduce the identical sequence.
//
// # Shape Utilities
//
// Beyond sampling, the package carries a closed polygon [Ring] type with
// closed-form predicates (area, centroid, convexity, containment) and a few
// vertex-level morphology operations: Chaikin corner cutting, corner
// rounding, Gaussian smoothing, and Douglas-Peucker / Visvalingam-Whyatt
// simplification. These operate on plain vertex slices; rendering the
// results is left to a graphics library such as github.com/gogpu/gg (see
// cmd/scatterdemo).
//
// # Coordinate System
//
// Domains are half-open rects [MinX, MaxX) x [MinY, MaxY) with X increasing
// right and Y increasing down, matching gg. Angles are in radians.
//
// # Concurrency
//
// A Sampler owns a single random stream and is not safe for concurrent use.
// Independent samplings can run concurrently on independently seeded
// Sampler instances; they share no state.
package scatter

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
