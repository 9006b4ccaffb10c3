package scatter

import "testing"

// BenchmarkGenerate benchmarks full sampling runs at various domain sizes.
func BenchmarkGenerate(b *testing.B) {
	sizes := []struct {
		name    string
		side    float64
		minDist float64
	}{
		{"100x100_d5", 100, 5},
		{"250x250_d5", 250, 5},
		{"500x500_d10", 500, 10},
		{"1000x1000_d10", 1000, 10},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			s := NewSampler(WithSeed(1))
			bounds := R(0, 0, size.side, size.side)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Generate(bounds, size.minDist, 30)
			}
		})
	}
}

// BenchmarkSmoothGaussian benchmarks Gaussian ring smoothing at a fixed
// perimeter across kernel widths.
func BenchmarkSmoothGaussian(b *testing.B) {
	sq := square(0, 0, 100)
	sigmas := []struct {
		name  string
		sigma float64
	}{
		{"sigma1", 1},
		{"sigma5", 5},
	}

	for _, s := range sigmas {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				SmoothGaussian(sq, s.sigma)
			}
		})
	}
}
