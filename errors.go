package gfx

import "errors"

// Sentinel errors for the gfx package.
var (
	// ErrInvalidSize is returned when a surface is created or resized with a
	// non-positive dimension.
	ErrInvalidSize = errors.New("gfx: surface dimensions must be positive")

	// ErrSurfaceLocked is returned when a lock is requested on a surface that
	// already holds an incompatible lock.
	ErrSurfaceLocked = errors.New("gfx: surface is locked")

	// ErrNotLocked is returned by UnlockBits for data that is not the
	// surface's current lock.
	ErrNotLocked = errors.New("gfx: surface is not locked by this data")

	// ErrStaleSurface is returned when a handle created for an earlier
	// generation of a surface is used after the surface was resized.
	ErrStaleSurface = errors.New("gfx: surface was resized")

	// ErrLockOutOfBounds is returned when a lock rectangle is not contained
	// in the surface.
	ErrLockOutOfBounds = errors.New("gfx: lock rectangle out of bounds")
)
