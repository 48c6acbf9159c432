// Package gfx provides the primitives shared by the gfx rendering packages:
// affine matrices, points and rectangles, 8-bit ARGB colors and the
// premultiplied BGRA pixel surface that every renderer draws into.
//
// # Architecture
//
// A single [Surface] is the only source of truth for pixel content. Two
// renderers write into it:
//
//   - raster: an immediate-mode rasterizer. Every call commits straight to
//     the surface and the context never caches pixels.
//   - target: a retained vector and text render target. Draws go to a back
//     buffer that is committed to the surface when the session ends.
//
// The canvas package interleaves both on one surface and owns the hand-off
// between them. The shape package builds the vector geometry drawn by the
// canvas from declarative configuration text.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel corner, X grows right, Y grows down.
// Rows are stored top-down.
//
// # Logging
//
// gfx is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] logger.
package gfx

// Version is the current version of the library.
const Version = "0.3.0"
