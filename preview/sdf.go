package preview

import (
	"math"

	"github.com/gogpu/bind/layout"
)

// aaWidth controls the smoothstep transition width in pixels.
const aaWidth = 0.7

// circleCoverage returns the anti-aliased coverage of the pixel centered at
// (px, py) by a filled circle.
func circleCoverage(px, py, cx, cy, radius float64) float64 {
	return coverage(math.Hypot(px-cx, py-cy) - radius)
}

// rrectCoverage returns the anti-aliased coverage of the pixel centered at
// (px, py) by a rounded box. Each quadrant uses its own corner radius.
func rrectCoverage(px, py float64, box layout.BoundingBox, r layout.CornerRadius) float64 {
	halfW, halfH := box.Width/2, box.Height/2
	cx, cy := box.X+halfW, box.Y+halfH

	var radius float64
	switch {
	case px < cx && py < cy:
		radius = r.TopLeft
	case px >= cx && py < cy:
		radius = r.TopRight
	case px >= cx:
		radius = r.BottomRight
	default:
		radius = r.BottomLeft
	}
	radius = math.Max(0, math.Min(radius, math.Min(halfW, halfH)))
	return coverage(sdfRRect(px, py, cx, cy, halfW, halfH, radius))
}

// sdfRRect computes the signed distance from a point to a rounded
// rectangle. Negative values are inside.
func sdfRRect(px, py, cx, cy, halfW, halfH, radius float64) float64 {
	dx := math.Abs(px-cx) - halfW + radius
	dy := math.Abs(py-cy) - halfH + radius

	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside - radius
}

// coverage maps a signed distance to [0, 1] with a Hermite smoothstep:
// 1 at or below -aaWidth, 0 at or above +aaWidth.
func coverage(sdf float64) float64 {
	if sdf >= aaWidth {
		return 0
	}
	if sdf <= -aaWidth {
		return 1
	}
	t := (sdf + aaWidth) / (2 * aaWidth)
	return 1 - t*t*(3-2*t)
}
