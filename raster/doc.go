// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster is the immediate-mode renderer of gfx.
//
// A Graphics context keeps the logical transform and smoothing mode
// and nothing else. Every call rasterizes and composites straight into the
// bound surface before returning, so pixels written by Graphics are
// visible to any other reader as soon as the call ends.
//
// A Graphics is bound to one generation of its surface. After the surface
// is resized every call fails with gfx.ErrStaleSurface and a new context
// must be created.
package raster
