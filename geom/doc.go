// Package geom implements the vector geometry drawn by the gfx renderers:
// paths made of lines and Bezier curves, flattening into polygons, bounds,
// hit testing, area, stroke outlining and boolean combination.
//
// All coordinates are in a y-down space. A polygon whose shoelace area is
// positive has its interior on the side of Point.Perp of each edge
// direction; Combine always produces polygons in that orientation, with
// holes running the opposite way.
package geom

// DefaultTolerance is the maximum distance between a curve and its
// flattened polyline, in path units.
const DefaultTolerance = 0.05
