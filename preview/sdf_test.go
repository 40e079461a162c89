package preview

import (
	"math"
	"testing"

	"github.com/gogpu/bind/layout"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		name string
		sdf  float64
		want float64
	}{
		{"fully inside", -2.0, 1.0},
		{"fully outside", 2.0, 0.0},
		{"at edge", 0.0, 0.5},
		{"at inner limit", -aaWidth, 1.0},
		{"at outer limit", aaWidth, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverage(tt.sdf); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("coverage(%f) = %f, want %f", tt.sdf, got, tt.want)
			}
		})
	}
}

func TestCoverageMonotonic(t *testing.T) {
	prev := 1.0
	for sdf := -1.5; sdf <= 1.5; sdf += 0.01 {
		curr := coverage(sdf)
		if curr > prev+1e-10 {
			t.Fatalf("coverage increased at sdf=%f: %f > %f", sdf, curr, prev)
		}
		prev = curr
	}
}

func TestCircleCoverage(t *testing.T) {
	if got := circleCoverage(50, 50, 50, 50, 20); got != 1 {
		t.Errorf("center = %f, want 1", got)
	}
	if got := circleCoverage(72, 50, 50, 50, 20); got != 0 {
		t.Errorf("outside = %f, want 0", got)
	}
	if got := circleCoverage(70, 50, 50, 50, 20); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("on circle = %f, want 0.5", got)
	}
}

func TestRRectCoverage(t *testing.T) {
	box := layout.BoundingBox{X: 0, Y: 0, Width: 40, Height: 20}
	radius := layout.CornerRadius{TopLeft: 10}

	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"center", 20, 10, 1},
		{"rounded corner", 0.5, 0.5, 0},
		{"square corner", 39.5 - aaWidth, 0.5 + aaWidth, 1},
		{"outside", 45, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rrectCoverage(tt.px, tt.py, box, radius); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("rrectCoverage(%v, %v) = %f, want %f", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestRRectRadiusClamped(t *testing.T) {
	box := layout.BoundingBox{Width: 20, Height: 20}
	huge := layout.CornerRadius{TopLeft: 100, TopRight: 100, BottomRight: 100, BottomLeft: 100}
	// Clamped to a circle of radius 10.
	if got := rrectCoverage(10, 10, box, huge); got != 1 {
		t.Errorf("center = %f, want 1", got)
	}
	if got := rrectCoverage(1, 1, box, huge); got != 0 {
		t.Errorf("corner = %f, want 0", got)
	}
}
