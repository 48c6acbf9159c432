package geom

import (
	"math"

	"github.com/gogpu/gfx"
)

// DefaultMiterLimit is the ratio of miter length to half the stroke width
// above which a miter join falls back to a bevel.
const DefaultMiterLimit = 10.0

// Stroke returns the fill outline of stroking the path with the given
// width, using miter joins. Every subpath is treated as closed.
func (p *Path) Stroke(width float64) []Polygon {
	return StrokePolygons(p.Flatten(DefaultTolerance), width, DefaultMiterLimit)
}

// StrokePolygons outlines the edges of closed polygons. The result is a
// set of overlapping positive pieces, one quad per edge and one wedge per
// join, intended for non-zero filling.
func StrokePolygons(polys []Polygon, width, miterLimit float64) []Polygon {
	if width <= 0 {
		return nil
	}
	hw := width / 2
	var out []Polygon
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0, p1, p2 := poly[i], poly[(i+1)%n], poly[(i+2)%n]
			d1 := p1.Sub(p0)
			if d1.LengthSquared() == 0 {
				continue
			}
			n1 := d1.Perp().Normalize().Mul(hw)
			out = append(out, positive(Polygon{p0.Add(n1), p1.Add(n1), p1.Sub(n1), p0.Sub(n1)}))

			d2 := p2.Sub(p1)
			if d2.LengthSquared() == 0 {
				continue
			}
			if j := join(p1, d1, d2, hw, miterLimit); j != nil {
				out = append(out, j)
			}
		}
	}
	return out
}

// join returns the wedge filling the gap on the outer side of the corner
// at v between edge directions d1 and d2.
func join(v, d1, d2 gfx.Point, hw, miterLimit float64) Polygon {
	cross := d1.Cross(d2)
	if math.Abs(cross) <= 1e-12*d1.Length()*d2.Length() {
		return nil
	}
	s := -1.0
	if cross < 0 {
		s = 1
	}
	u1 := d1.Perp().Normalize()
	u2 := d2.Perp().Normalize()
	a := v.Add(u1.Mul(s * hw))
	b := v.Add(u2.Mul(s * hw))

	cosHalf := math.Sqrt((1 + u1.Dot(u2)) / 2)
	if cosHalf > 0 && 1/cosHalf <= miterLimit {
		m := v.Add(u1.Add(u2).Normalize().Mul(s * hw / cosHalf))
		return positive(Polygon{v, a, m, b})
	}
	return positive(Polygon{v, a, b})
}

func positive(poly Polygon) Polygon {
	if poly.Area() < 0 {
		return poly.Reversed()
	}
	return poly
}
