package geom

import "github.com/gogpu/gfx"

// Element is a single element of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point gfx.Point
}

func (MoveTo) isElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point gfx.Point
}

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control gfx.Point
	Point   gfx.Point
}

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 gfx.Point
	Control2 gfx.Point
	Point    gfx.Point
}

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Path is a vector path. The zero value is an empty path ready to use.
type Path struct {
	elements []Element
	start    gfx.Point
	current  gfx.Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]Element, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := gfx.Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := gfx.Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	pt := gfx.Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: gfx.Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := gfx.Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: gfx.Pt(c1x, c1y),
		Control2: gfx.Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath with a line to its start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []Element {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() gfx.Point {
	return p.current
}

// Append adds all elements of q to p.
func (p *Path) Append(q *Path) {
	if q.Empty() {
		return
	}
	p.elements = append(p.elements, q.elements...)
	p.start = q.start
	p.current = q.current
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m gfx.Matrix) *Path {
	result := NewPath()
	if p == nil {
		return result
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	if p == nil {
		return result
	}
	result.elements = make([]Element, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// FromPolygons builds a path of closed line subpaths.
func FromPolygons(polys []Polygon) *Path {
	p := NewPath()
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		p.MoveTo(poly[0].X, poly[0].Y)
		for _, pt := range poly[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}
