package shape

import "github.com/gogpu/gfx"

// Set is the arena of shapes built from one section, in declaration
// order. The zero value is an empty set.
type Set struct {
	shapes []*Shape
}

// Len returns the number of shapes.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.shapes)
}

// At returns the i-th shape.
func (s *Set) At(i int) *Shape { return s.shapes[i] }

// Drawable returns the shapes that are not combined, in order.
func (s *Set) Drawable() []*Shape {
	if s == nil {
		return nil
	}
	out := make([]*Shape, 0, len(s.shapes))
	for _, sh := range s.shapes {
		if !sh.combined {
			out = append(out, sh)
		}
	}
	return out
}

// Contains reports whether any drawable shape contains pt.
func (s *Set) Contains(pt gfx.Point) bool {
	for _, sh := range s.Drawable() {
		if sh.Contains(pt) {
			return true
		}
	}
	return false
}

// Extent returns the largest right and bottom edges of the drawable
// shapes, never less than zero.
func (s *Set) Extent() (right, bottom float64) {
	for _, sh := range s.Drawable() {
		b := sh.Bounds()
		right = max(right, b.Right())
		bottom = max(bottom, b.Bottom())
	}
	return right, bottom
}
