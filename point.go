package gfx

import (
	"image"
	"math"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < 1e-12 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Rect is a floating-point rectangle in origin/size form.
type Rect struct {
	X, Y, W, H float64
}

// RectF creates a Rect.
func RectF(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns X+W.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns Y+H.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and s. The result is empty when they
// do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math.Max(r.X, s.X)
	y0 := math.Max(r.Y, s.Y)
	x1 := math.Min(r.Right(), s.Right())
	y1 := math.Min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.Right(), s.Right())
	y1 := math.Max(r.Bottom(), s.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ImageRect returns the integer pixel rectangle covering r.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// IntRect is an integer rectangle in origin/size form, used for bitmap
// source and destination regions.
type IntRect struct {
	X, Y, W, H int
}

// IRect creates an IntRect.
func IRect(x, y, w, h int) IntRect {
	return IntRect{X: x, Y: y, W: w, H: h}
}

// Rect converts r to a floating-point rectangle.
func (r IntRect) Rect() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Image converts r to an image.Rectangle.
func (r IntRect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// SameSize reports whether r and s have equal width and height.
func (r IntRect) SameSize(s IntRect) bool {
	return r.W == s.W && r.H == s.H
}

// Empty reports whether the rectangle has no area.
func (r IntRect) Empty() bool { return r.W <= 0 || r.H <= 0 }
