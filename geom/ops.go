package geom

import (
	"math"

	"github.com/gogpu/gfx"
)

// BoundingBox returns the bounds of the flattened path. An empty path has
// an empty rectangle at the origin.
func (p *Path) BoundingBox() gfx.Rect {
	return PolygonBounds(p.Flatten(DefaultTolerance))
}

// PolygonBounds returns the bounds of all points in polys.
func PolygonBounds(polys []Polygon) gfx.Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, poly := range polys {
		for _, pt := range poly {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if first {
		return gfx.Rect{}
	}
	return gfx.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Area returns the absolute enclosed area of the path. Overlapping
// subpaths of the same orientation are counted once per subpath, so the
// result is exact for simple outlines and for Combine results.
func (p *Path) Area() float64 {
	return math.Abs(PolygonsArea(p.Flatten(DefaultTolerance)))
}

// PolygonsArea returns the summed signed area of polys.
func PolygonsArea(polys []Polygon) float64 {
	var a float64
	for _, poly := range polys {
		a += poly.Area()
	}
	return a
}

// Contains reports whether pt is inside the path under the non-zero
// winding rule.
func (p *Path) Contains(pt gfx.Point) bool {
	return Winding(p.Flatten(DefaultTolerance), pt) != 0
}

// Winding returns the winding number of pt relative to polys, using a
// horizontal ray to the right.
func Winding(polys []Polygon, pt gfx.Point) int {
	var w int
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			w += lineWinding(poly[i], poly[(i+1)%n], pt)
		}
	}
	return w
}

func lineWinding(p0, p1, pt gfx.Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive when pt is left of the line p0-p1 in a y-up sense.
func isLeft(p0, p1, pt gfx.Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}
