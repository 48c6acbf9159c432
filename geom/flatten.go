package geom

import (
	"math"

	"github.com/gogpu/gfx"
)

// Polygon is a closed polyline. The closing edge from the last point back
// to the first is implicit.
type Polygon []gfx.Point

// Area returns the signed shoelace area of the polygon.
func (poly Polygon) Area() float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		p0, p1 := poly[i], poly[(i+1)%n]
		a += p0.X*p1.Y - p1.X*p0.Y
	}
	return a / 2
}

// Reversed returns the polygon with its vertex order reversed.
func (poly Polygon) Reversed() Polygon {
	r := make(Polygon, len(poly))
	for i, pt := range poly {
		r[len(poly)-1-i] = pt
	}
	return r
}

// maxFlattenDepth bounds the recursive subdivision of one curve.
const maxFlattenDepth = 16

// Flatten converts the path into polygons, one per subpath. Curves are
// subdivided until they are within tolerance of their chords. Open
// subpaths are closed implicitly, as for filling. Subpaths with fewer
// than three distinct points are dropped.
func (p *Path) Flatten(tolerance float64) []Polygon {
	if p.Empty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	var (
		polys   []Polygon
		cur     Polygon
		current gfx.Point
	)
	emit := func(pt gfx.Point) {
		if n := len(cur); n > 0 && cur[n-1] == pt {
			return
		}
		cur = append(cur, pt)
	}
	finish := func() {
		if n := len(cur); n > 1 && cur[0] == cur[n-1] {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			finish()
			emit(e.Point)
			current = e.Point
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolSq, 0, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolSq, 0, emit)
			current = e.Point
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			finish()
		}
	}
	finish()
	return polys
}

func flattenQuad(p0, p1, p2 gfx.Point, tolSq float64, depth int, fn func(gfx.Point)) {
	// Distance from the control point to the chord midpoint.
	mid := p0.Lerp(p2, 0.5)
	if depth >= maxFlattenDepth || p1.Sub(mid).LengthSquared() <= tolSq*4 {
		fn(p2)
		return
	}
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	m := a.Lerp(b, 0.5)
	flattenQuad(p0, a, m, tolSq, depth+1, fn)
	flattenQuad(m, b, p2, tolSq, depth+1, fn)
}

func flattenCubic(p0, p1, p2, p3 gfx.Point, tolSq float64, depth int, fn func(gfx.Point)) {
	if depth >= maxFlattenDepth || cubicFlatness(p0, p1, p2, p3) <= tolSq*16 {
		fn(p3)
		return
	}
	// de Casteljau split at t = 0.5.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	m := p012.Lerp(p123, 0.5)
	flattenCubic(p0, p01, p012, m, tolSq, depth+1, fn)
	flattenCubic(m, p123, p23, p3, tolSq, depth+1, fn)
}

// cubicFlatness returns an upper bound of 16 times the squared distance
// between the curve and its chord.
func cubicFlatness(p0, p1, p2, p3 gfx.Point) float64 {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - 2*p3.X - p0.X
	vy := 3*p2.Y - 2*p3.Y - p0.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}
