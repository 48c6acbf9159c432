package geom

import "math"

// kappa is the cubic Bezier control distance for a quarter ellipse.
const kappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Rectangle returns a closed rectangle path. The outline runs
// (x,y) → (x+w,y) → (x+w,y+h) → (x,y+h); a negative size is normalized.
func Rectangle(x, y, w, h float64) *Path {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle with elliptical corners of radii
// rx and ry. Radii are clamped to half the width and height; zero radii
// produce a plain rectangle.
func RoundedRectangle(x, y, w, h, rx, ry float64) *Path {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	rx = math.Min(math.Abs(rx), w/2)
	ry = math.Min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		return Rectangle(x, y, w, h)
	}
	ox, oy := rx*kappa, ry*kappa
	r, b := x+w, y+h

	p := NewPath()
	p.MoveTo(x+rx, y)
	p.LineTo(r-rx, y)
	p.CubicTo(r-rx+ox, y, r, y+ry-oy, r, y+ry)
	p.LineTo(r, b-ry)
	p.CubicTo(r, b-ry+oy, r-rx+ox, b, r-rx, b)
	p.LineTo(x+rx, b)
	p.CubicTo(x+rx-ox, b, x, b-ry+oy, x, b-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-oy, x+rx-ox, y, x+rx, y)
	p.Close()
	return p
}
