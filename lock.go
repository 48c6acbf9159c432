package gfx

import "image"

// LockMode selects the access granted by LockBits.
type LockMode uint8

const (
	// LockRead grants shared read access. Any number of read locks may be
	// held at once.
	LockRead LockMode = iota
	// LockWrite grants exclusive read-write access.
	LockWrite
)

// BitmapData is a locked view of a surface region. Pix starts at the first
// byte of Rect.Min and rows are Stride bytes apart.
type BitmapData struct {
	Rect   image.Rectangle
	Stride int
	Pix    []uint8
	Mode   LockMode

	surface    *Surface
	generation uint64
}

// Surface returns the surface this data was locked from.
func (d *BitmapData) Surface() *Surface { return d.surface }

// LockBits locks the region r of the surface. A write lock is exclusive;
// read locks are shared but exclude a writer.
func (s *Surface) LockBits(r image.Rectangle, mode LockMode) (*BitmapData, error) {
	if r.Empty() || !r.In(s.Bounds()) {
		return nil, ErrLockOutOfBounds
	}
	if s.writer != nil || (mode == LockWrite && s.readers > 0) {
		return nil, ErrSurfaceLocked
	}
	off := r.Min.Y*s.Stride() + r.Min.X*4
	d := &BitmapData{
		Rect:       r,
		Stride:     s.Stride(),
		Pix:        s.data[off:],
		Mode:       mode,
		surface:    s,
		generation: s.generation,
	}
	if mode == LockWrite {
		s.writer = d
	} else {
		s.readers++
	}
	return d, nil
}

// UnlockBits releases a lock obtained from LockBits. Data locked before a
// resize is already released by the resize and reports ErrStaleSurface.
func (s *Surface) UnlockBits(d *BitmapData) error {
	if d == nil || d.surface != s || d.Pix == nil {
		return ErrNotLocked
	}
	if d.generation != s.generation {
		return ErrStaleSurface
	}
	switch d.Mode {
	case LockWrite:
		if s.writer != d {
			return ErrNotLocked
		}
		s.writer = nil
	default:
		if s.readers == 0 {
			return ErrNotLocked
		}
		s.readers--
	}
	d.Pix = nil
	return nil
}

// Locked reports whether any lock is held on the surface.
func (s *Surface) Locked() bool {
	return s.writer != nil || s.readers > 0
}
