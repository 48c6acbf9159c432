package gfx

import "math"

// singularEpsilon is the smallest determinant treated as invertible.
const singularEpsilon = 1e-10

// Matrix is an affine transform of the y-down pixel plane. A point maps as
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// so C and F hold the translation. The zero Matrix collapses every point to
// the origin; use Identity for "no transform".
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform that stretches by x horizontally and y
// vertically about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation by angle radians about the origin. With y
// pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateDegrees is Rotate with the angle in degrees. Quarter turns are
// exact, so axis-aligned rectangles stay axis-aligned.
func RotateDegrees(deg float64) Matrix {
	switch math.Mod(deg, 360) {
	case 0:
		return Identity()
	case 90, -270:
		return Matrix{A: 0, B: -1, D: 1, E: 0}
	case 180, -180:
		return Matrix{A: -1, B: 0, D: 0, E: -1}
	case 270, -90:
		return Matrix{A: 0, B: 1, D: -1, E: 0}
	}
	return Rotate(deg * math.Pi / 180)
}

// RotateAround returns a rotation by deg degrees about (x, y).
func RotateAround(deg, x, y float64) Matrix {
	return Translate(x, y).Multiply(RotateDegrees(deg)).Multiply(Translate(-x, -y))
}

// Multiply composes two transforms. The result maps a point through o
// and then through m.
func (m Matrix) Multiply(o Matrix) Matrix {
	var r Matrix
	r.A = m.A*o.A + m.B*o.D
	r.B = m.A*o.B + m.B*o.E
	r.D = m.D*o.A + m.E*o.D
	r.E = m.D*o.B + m.E*o.E
	r.C = m.A*o.C + m.B*o.F + m.C
	r.F = m.D*o.C + m.E*o.F + m.F
	return r
}

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	v := m.TransformVector(p)
	return Point{X: v.X + m.C, Y: v.Y + m.F}
}

// TransformVector maps the direction p, ignoring translation.
func (m Matrix) TransformVector(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y, Y: m.D*p.X + m.E*p.Y}
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := [...]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
	lo := Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range corners {
		p := m.TransformPoint(c)
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// Determinant is the area scale factor of the transform; negative values
// mean it mirrors.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsInvertible reports whether the transform has an inverse.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Determinant()) >= singularEpsilon
}

// Invert returns the transform that undoes m. A singular m has no inverse
// and yields Identity.
func (m Matrix) Invert() Matrix {
	if !m.IsInvertible() {
		return Identity()
	}
	k := 1 / m.Determinant()
	return Matrix{
		A: m.E * k, B: -m.B * k, C: (m.B*m.F - m.C*m.E) * k,
		D: -m.D * k, E: m.A * k, F: (m.C*m.D - m.A*m.F) * k,
	}
}

// IsIdentity reports whether m leaves points unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only moves points.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// AllowsAxisAlignedClip reports whether a rectangular clip can be applied
// without a layer: no rotation or shear and no translation.
func (m Matrix) AllowsAxisAlignedClip() bool {
	return m.B == 0 && m.D == 0 && m.C == 0 && m.F == 0
}

// Aff3 returns the matrix in the element order used by
// golang.org/x/image/math/f64.Aff3.
func (m Matrix) Aff3() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}
