// Command scatterdemo renders a Poisson-disk stipple pattern with the gg
// graphics library.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"

	"github.com/gogpu/scatter"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		minDist = flag.Float64("mindist", 12, "minimum distance between points")
		seed    = flag.Uint64("seed", 42, "random seed")
		output  = flag.String("output", "scatter.png", "output file")
	)
	flag.Parse()

	bounds := scatter.R(0, 0, float64(*width), float64(*height))
	points := scatter.Poisson(bounds, *minDist, 30, *seed)

	dc := gg.NewContext(*width, *height)

	// Dark background
	dc.SetRGB(0.08, 0.09, 0.12)
	dc.DrawRectangle(0, 0, float64(*width), float64(*height))
	_ = dc.Fill()

	// Stipple dots, tinted by acceptance order
	for i, p := range points {
		t := float64(i) / float64(len(points))
		dc.SetRGB(0.35+0.55*t, 0.75-0.35*t, 0.9-0.5*t)
		dc.DrawCircle(p.X, p.Y, *minDist*0.3)
		_ = dc.Fill()
	}

	// Overlay a Chaikin-smoothed frame to show the shape utilities
	margin := 4 * *minDist
	frame := scatter.Ring{
		scatter.Pt(margin, margin),
		scatter.Pt(float64(*width)-margin, margin),
		scatter.Pt(float64(*width)-margin, float64(*height)-margin),
		scatter.Pt(margin, float64(*height)-margin),
	}
	smoothed := scatter.Chaikin(frame, 1, 4)

	dc.SetRGBA(1, 1, 1, 0.5)
	dc.SetLineWidth(2)
	for i, p := range smoothed {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
	_ = dc.Stroke()

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Stipple saved to %s (%d points)\n", *output, len(points))
}
