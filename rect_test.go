package scatter

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(5, 5), true},
		{"min corner inclusive", Pt(0, 0), true},
		{"max corner exclusive", Pt(10, 10), false},
		{"max x exclusive", Pt(10, 5), false},
		{"max y exclusive", Pt(5, 10), false},
		{"below min", Pt(-0.1, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectValid(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", R(0, 0, 10, 10), true},
		{"negative coords", R(-10, -10, -5, -5), true},
		{"zero width", R(5, 0, 5, 10), false},
		{"inverted x", R(10, 0, 0, 10), false},
		{"inverted y", R(0, 10, 10, 0), false},
		{"nan", Rect{MinX: math.NaN(), MaxX: 10, MaxY: 10}, false},
		{"inf", Rect{MaxX: math.Inf(1), MaxY: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("Valid(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectMeasures(t *testing.T) {
	r := R(1, 2, 4, 6)
	if got := r.Width(); got != 3 {
		t.Errorf("Width = %v, want 3", got)
	}
	if got := r.Height(); got != 4 {
		t.Errorf("Height = %v, want 4", got)
	}
	if got := r.Diagonal(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Diagonal = %v, want 5", got)
	}
}
