package scatter

import "testing"

// within reports whether every vertex of r lies inside b, inflated by eps.
func within(r Ring, b Rect, eps float64) bool {
	for _, p := range r {
		if p.X < b.MinX-eps || p.X > b.MaxX+eps || p.Y < b.MinY-eps || p.Y > b.MaxY+eps {
			return false
		}
	}
	return true
}

func TestChaikin(t *testing.T) {
	sq := square(0, 0, 10)

	one := Chaikin(sq, 1, 1)
	if len(one) != 8 {
		t.Fatalf("one iteration produced %d vertices, want 8", len(one))
	}
	two := Chaikin(sq, 1, 2)
	if len(two) != 16 {
		t.Fatalf("two iterations produced %d vertices, want 16", len(two))
	}

	// Cutting a convex ring stays inside its bounds and loses area.
	if !within(two, sq.Bounds(), 0) {
		t.Error("Chaikin output escaped the input bounds")
	}
	if a := two.AbsArea(); a >= 100 || a <= 0 {
		t.Errorf("Chaikin area = %v, want in (0, 100)", a)
	}

	if got := Chaikin(sq, 1, 0); len(got) != 4 {
		t.Errorf("zero iterations produced %d vertices, want 4", len(got))
	}
}

func TestRoundCorners(t *testing.T) {
	sq := square(0, 0, 10)

	got := RoundCorners(sq, 0.5)
	if len(got) != 4*(cornerArcSegments+1) {
		t.Fatalf("RoundCorners produced %d vertices, want %d", len(got), 4*(cornerArcSegments+1))
	}
	if !within(got, sq.Bounds(), 1e-9) {
		t.Error("RoundCorners output escaped the input bounds")
	}
	if a := got.AbsArea(); a >= 100 || a <= 0 {
		t.Errorf("rounded area = %v, want in (0, 100)", a)
	}
	if !got.IsSimple() {
		t.Error("rounded ring self-intersects")
	}

	if got := RoundCorners(sq, 0); len(got) != 4 {
		t.Errorf("zero extent produced %d vertices, want 4", len(got))
	}
}

func TestSmoothGaussian(t *testing.T) {
	sq := square(0, 0, 10)

	got := SmoothGaussian(sq, 1)
	if len(got) < gaussianMinSamples || len(got) > gaussianMaxSamples {
		t.Fatalf("SmoothGaussian produced %d vertices", len(got))
	}
	// Convolution takes convex combinations of boundary points, so the
	// output of a convex input cannot escape its bounds.
	if !within(got, sq.Bounds(), 1e-9) {
		t.Error("SmoothGaussian output escaped the input bounds")
	}
	if a := got.AbsArea(); a >= 100 || a <= 0 {
		t.Errorf("smoothed area = %v, want in (0, 100)", a)
	}

	// Larger sigma smooths more: the result is rounder.
	mild := SmoothGaussian(sq, 0.5)
	heavy := SmoothGaussian(sq, 2)
	if heavy.Circularity() <= mild.Circularity() {
		t.Errorf("circularity did not increase with sigma: %v vs %v",
			mild.Circularity(), heavy.Circularity())
	}

	if got := SmoothGaussian(sq, 0); len(got) != 4 {
		t.Errorf("zero sigma produced %d vertices, want 4", len(got))
	}
}

func TestSmoothGaussianDegenerate(t *testing.T) {
	// A zero-perimeter ring cannot be resampled; it comes back unchanged.
	r := Ring{Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	got := SmoothGaussian(r, 1)
	if len(got) != 3 {
		t.Fatalf("degenerate ring produced %d vertices, want 3", len(got))
	}
}

func TestQuadBezierPoint(t *testing.T) {
	p0, c, p2 := Pt(0, 0), Pt(5, 10), Pt(10, 0)
	if got := quadBezierPoint(p0, c, p2, 0); got != p0 {
		t.Errorf("t=0: got %v, want %v", got, p0)
	}
	if got := quadBezierPoint(p0, c, p2, 1); got != p2 {
		t.Errorf("t=1: got %v, want %v", got, p2)
	}
	mid := quadBezierPoint(p0, c, p2, 0.5)
	if !mid.Approx(Pt(5, 5), 1e-12) {
		t.Errorf("t=0.5: got %v, want (5, 5)", mid)
	}
}
