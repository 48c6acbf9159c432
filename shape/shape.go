package shape

import (
	"fmt"
	"math"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/geom"
)

// Kind tags the primitive a shape was built from.
type Kind int

const (
	KindRectangle Kind = iota
	KindRoundedRectangle
	// KindCombined is the result of a Combine declaration.
	KindCombined
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindRoundedRectangle:
		return "RoundedRectangle"
	case KindCombined:
		return "Combined"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a fill and stroke painted geometry with a local transform.
type Shape struct {
	kind        Kind
	path        *geom.Path
	rotation    float64
	anchor      gfx.Point
	offset      gfx.Point
	fill        gfx.Color
	stroke      gfx.Color
	strokeWidth float64
	combined    bool
}

func newShape(kind Kind, p *geom.Path) *Shape {
	return &Shape{
		kind:        kind,
		path:        p,
		fill:        gfx.White,
		stroke:      gfx.Black,
		strokeWidth: 1,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NewRectangle creates an axis-aligned rectangle.
func NewRectangle(x, y, w, h float64) (*Shape, error) {
	if !finite(x, y, w, h) {
		return nil, ErrInvalidGeometry
	}
	return newShape(KindRectangle, geom.Rectangle(x, y, w, h)), nil
}

// NewRoundedRectangle creates a rectangle with elliptical corners of radii
// rx and ry.
func NewRoundedRectangle(x, y, w, h, rx, ry float64) (*Shape, error) {
	if !finite(x, y, w, h, rx, ry) {
		return nil, ErrInvalidGeometry
	}
	return newShape(KindRoundedRectangle, geom.RoundedRectangle(x, y, w, h, rx, ry)), nil
}

// Kind returns the primitive kind.
func (s *Shape) Kind() Kind { return s.kind }

// Geometry returns the untransformed geometry. It must not be modified.
func (s *Shape) Geometry() *geom.Path { return s.path }

// FillColor returns the fill color.
func (s *Shape) FillColor() gfx.Color { return s.fill }

// SetFillColor sets the fill color.
func (s *Shape) SetFillColor(c gfx.Color) { s.fill = c }

// StrokeColor returns the stroke color.
func (s *Shape) StrokeColor() gfx.Color { return s.stroke }

// SetStrokeColor sets the stroke color.
func (s *Shape) SetStrokeColor(c gfx.Color) { s.stroke = c }

// StrokeWidth returns the stroke width.
func (s *Shape) StrokeWidth() float64 { return s.strokeWidth }

// SetStrokeWidth sets the stroke width. Negative widths are stored as 0.
func (s *Shape) SetStrokeWidth(w float64) {
	s.strokeWidth = math.Max(w, 0)
}

// Offset returns the translation applied after rotation.
func (s *Shape) Offset() gfx.Point { return s.offset }

// SetOffset sets the translation applied after rotation.
func (s *Shape) SetOffset(x, y float64) { s.offset = gfx.Pt(x, y) }

// Rotation returns the rotation in degrees and its anchor.
func (s *Shape) Rotation() (float64, gfx.Point) { return s.rotation, s.anchor }

// SetRotation rotates the shape by deg degrees around (ax, ay), relative to
// the top-left corner of the untransformed bounds.
func (s *Shape) SetRotation(deg, ax, ay float64) {
	s.rotation = deg
	s.anchor = gfx.Pt(ax, ay)
}

// IsCombined reports whether the shape was consumed by a Combine
// declaration.
func (s *Shape) IsCombined() bool { return s.combined }

func (s *Shape) setCombined() { s.combined = true }

// Transform returns the local transform: rotation around the anchor, then
// the offset.
func (s *Shape) Transform() gfx.Matrix {
	m := gfx.Translate(s.offset.X, s.offset.Y)
	if s.rotation != 0 {
		b := s.path.BoundingBox()
		m = m.Multiply(gfx.RotateAround(s.rotation, b.X+s.anchor.X, b.Y+s.anchor.Y))
	}
	return m
}

// Bounds returns the bounds of the transformed geometry, excluding the
// stroke.
func (s *Shape) Bounds() gfx.Rect {
	return s.path.Transform(s.Transform()).BoundingBox()
}

// Contains reports whether pt, in the coordinate space the shape is drawn
// in, lies inside the fill.
func (s *Shape) Contains(pt gfx.Point) bool {
	m := s.Transform()
	if !m.IsInvertible() {
		return false
	}
	return s.path.Contains(m.Invert().TransformPoint(pt))
}

// Clone returns a deep copy of s. The copy is not marked combined.
func (s *Shape) Clone() *Shape {
	c := *s
	c.path = s.path.Clone()
	c.combined = false
	return &c
}

// CombineWith folds other into the geometry of s. Both shapes are placed by
// their own transforms; the transform of s is then baked into the result
// and reset, so later modifiers apply to the combined geometry. A nil other
// is a union with an empty shape and leaves s unchanged. An operand with no
// area fails with ErrDegenerateGeometry and leaves s unchanged.
func (s *Shape) CombineWith(other *Shape, op geom.Op) error {
	s.kind = KindCombined
	if other == nil {
		return nil
	}
	operand := other.path.Transform(other.Transform())
	if operand.Area() == 0 {
		return fmt.Errorf("%w: operand has no area", ErrDegenerateGeometry)
	}
	s.path = geom.Combine(s.path.Transform(s.Transform()), operand, op)
	s.rotation, s.anchor, s.offset = 0, gfx.Point{}, gfx.Point{}
	return nil
}
