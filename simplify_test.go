package scatter

import (
	"math"
	"testing"
)

// squareWithMidpoints is a 10x10 square with a redundant collinear vertex on
// each edge.
func squareWithMidpoints() Ring {
	return Ring{
		Pt(0, 0), Pt(5, 0),
		Pt(10, 0), Pt(10, 5),
		Pt(10, 10), Pt(5, 10),
		Pt(0, 10), Pt(0, 5),
	}
}

func TestSimplifyRemovesCollinear(t *testing.T) {
	got := Simplify(squareWithMidpoints(), 0.5)
	if len(got) != 4 {
		t.Fatalf("Simplify kept %d vertices, want 4: %v", len(got), got)
	}
	if math.Abs(got.AbsArea()-100) > 1e-9 {
		t.Errorf("simplified area = %v, want 100", got.AbsArea())
	}
}

func TestSimplifyKeepsSignificantDetail(t *testing.T) {
	// A vertex displaced beyond the tolerance must survive.
	ring := Ring{
		Pt(0, 0), Pt(5, 2),
		Pt(10, 0), Pt(10, 10), Pt(0, 10),
	}
	got := Simplify(ring, 0.5)
	found := false
	for _, p := range got {
		if p == Pt(5, 2) {
			found = true
		}
	}
	if !found {
		t.Errorf("Simplify dropped a vertex %v beyond tolerance: %v", Pt(5, 2), got)
	}

	if got := Simplify(ring, 3); len(got) >= len(ring) {
		t.Errorf("larger tolerance kept %d of %d vertices", len(got), len(ring))
	}
}

func TestSimplifySmallInputsUnchanged(t *testing.T) {
	tri := Ring{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	got := Simplify(tri, 10)
	if len(got) != 3 {
		t.Fatalf("triangle simplified to %d vertices", len(got))
	}
	// The result is a copy, not the input slice.
	got[0] = Pt(-1, -1)
	if tri[0] != Pt(0, 0) {
		t.Error("Simplify aliased its input")
	}
}

func TestSimplifyVW(t *testing.T) {
	got := SimplifyVW(squareWithMidpoints(), 1)
	if len(got) != 4 {
		t.Fatalf("SimplifyVW kept %d vertices, want 4: %v", len(got), got)
	}
	if math.Abs(got.AbsArea()-100) > 1e-9 {
		t.Errorf("simplified area = %v, want 100", got.AbsArea())
	}

	// A huge tolerance still leaves a valid ring of 3 vertices.
	if got := SimplifyVW(squareWithMidpoints(), 1000); len(got) != 3 {
		t.Errorf("huge tolerance kept %d vertices, want 3", len(got))
	}

	// Zero tolerance is a no-op copy.
	if got := SimplifyVW(squareWithMidpoints(), 0); len(got) != 8 {
		t.Errorf("zero tolerance kept %d vertices, want 8", len(got))
	}
}
