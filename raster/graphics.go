// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/geom"
	"github.com/gogpu/gfx/internal/coverage"
)

// Graphics is an immediate-mode drawing context over a surface.
type Graphics struct {
	surface    *gfx.Surface
	generation uint64
	transform  gfx.Matrix
	smoothing  bool
}

// New creates a context bound to the current generation of s, with an
// identity transform and smoothing enabled.
func New(s *gfx.Surface) *Graphics {
	return &Graphics{
		surface:    s,
		generation: s.Generation(),
		transform:  gfx.Identity(),
		smoothing:  true,
	}
}

// Surface returns the bound surface.
func (g *Graphics) Surface() *gfx.Surface { return g.surface }

// Transform returns the current transform.
func (g *Graphics) Transform() gfx.Matrix { return g.transform }

// SetTransform replaces the current transform.
func (g *Graphics) SetTransform(m gfx.Matrix) { g.transform = m }

// ResetTransform sets the identity transform.
func (g *Graphics) ResetTransform() { g.transform = gfx.Identity() }

// PrependTransform makes m act before the current transform.
func (g *Graphics) PrependTransform(m gfx.Matrix) {
	g.transform = g.transform.Multiply(m)
}

// Smoothing reports whether anti-aliasing is enabled.
func (g *Graphics) Smoothing() bool { return g.smoothing }

// SetSmoothing enables or disables anti-aliasing of edges and smooth
// interpolation of scaled images.
func (g *Graphics) SetSmoothing(on bool) { g.smoothing = on }

func (g *Graphics) check() error {
	if g.surface.Generation() != g.generation {
		return gfx.ErrStaleSurface
	}
	if g.surface.Locked() {
		return gfx.ErrSurfaceLocked
	}
	return nil
}

// Clear overwrites the whole surface with c. The transform does not apply.
func (g *Graphics) Clear(c gfx.Color) error {
	if err := g.check(); err != nil {
		return err
	}
	coverage.Clear(g.surface, g.surface.Bounds(), c.Premul())
	return nil
}

// FillRectangle fills r, transformed by the current transform, with c.
func (g *Graphics) FillRectangle(r gfx.Rect, c gfx.Color) error {
	return g.FillPath(geom.Rectangle(r.X, r.Y, r.W, r.H), c)
}

// FillPath fills p, transformed by the current transform, with c using the
// non-zero rule.
func (g *Graphics) FillPath(p *geom.Path, c gfx.Color) error {
	if err := g.check(); err != nil {
		return err
	}
	polys := p.Transform(g.transform).Flatten(geom.DefaultTolerance)
	coverage.Fill(g.surface, polys, g.surface.Bounds(), g.smoothing, c.Premul(), nil)
	return nil
}

// DrawImage draws the src region of img into the dst rectangle, both in
// pixels, mapped through the current transform. Scaled images use
// Catmull-Rom interpolation when smoothing is on and approximate bilinear
// interpolation otherwise.
func (g *Graphics) DrawImage(img image.Image, dst, src gfx.IntRect) error {
	if err := g.check(); err != nil {
		return err
	}
	if dst.Empty() || src.Empty() {
		return nil
	}
	sr := src.Image().Add(img.Bounds().Min)
	m := g.transform.
		Multiply(gfx.Translate(float64(dst.X), float64(dst.Y))).
		Multiply(gfx.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))).
		Multiply(gfx.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))

	if m.IsTranslation() && dst.SameSize(src) && isInteger(m.C) && isInteger(m.F) {
		dp := image.Pt(int(m.C)+sr.Min.X, int(m.F)+sr.Min.Y)
		draw.Draw(g.surface, image.Rectangle{Min: dp, Max: dp.Add(sr.Size())}, img, sr.Min, draw.Over)
		return nil
	}

	var interp draw.Transformer = draw.ApproxBiLinear
	if g.smoothing {
		interp = draw.CatmullRom
	}
	interp.Transform(g.surface, f64.Aff3(m.Aff3()), img, sr, draw.Over, nil)
	return nil
}

func isInteger(v float64) bool {
	return v == float64(int(v))
}
