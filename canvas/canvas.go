// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"log/slog"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/raster"
	"github.com/gogpu/gfx/target"
)

// State tells which renderer currently owns the surface.
type State uint8

const (
	// StateIdle means no vector session is open; raster draws go straight
	// to the surface.
	StateIdle State = iota
	// StateTargetActive means a vector session is open and holds
	// uncommitted pixels.
	StateTargetActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTargetActive:
		return "TargetActive"
	default:
		return "Unknown"
	}
}

// Canvas draws onto a premultiplied BGRA surface. A Canvas is owned by a
// single goroutine.
type Canvas struct {
	env *Environment
	log *slog.Logger

	surface  *gfx.Surface
	graphics *raster.Graphics
	target   *target.Target

	// axisAlignedClip is derived from the transform each time it is
	// pushed to the target.
	axisAlignedClip bool

	antiAlias     bool
	textAntiAlias bool
	accurateText  bool

	pixels  *gfx.BitmapData
	texture gpucontext.Texture
	texW    int
	texH    int
}

// New creates a canvas without a surface. Call Resize before drawing. A
// nil env selects a default environment.
func New(env *Environment) *Canvas {
	if env == nil {
		env = NewEnvironment()
	}
	return &Canvas{
		env:       env,
		log:       env.Logger(),
		antiAlias: true,
	}
}

// Environment returns the environment the canvas was created with.
func (c *Canvas) Environment() *Environment { return c.env }

// Surface returns the backing surface, or nil before the first Resize.
func (c *Canvas) Surface() *gfx.Surface { return c.surface }

// Width returns the surface width.
func (c *Canvas) Width() int {
	if c.surface == nil {
		return 0
	}
	return c.surface.Width()
}

// Height returns the surface height.
func (c *Canvas) Height() int {
	if c.surface == nil {
		return 0
	}
	return c.surface.Height()
}

// State reports whether a vector session is open.
func (c *Canvas) State() State {
	if c.target != nil {
		return StateTargetActive
	}
	return StateIdle
}

// Resize replaces the surface with a transparent one of w by h pixels.
// Any open session and pixel access end, and the transform is reset.
func (c *Canvas) Resize(w, h int) error {
	c.endTargetDraw()
	if c.surface == nil {
		if w <= 0 || h <= 0 {
			return gfx.ErrInvalidSize
		}
		c.surface = gfx.NewSurface(w, h)
	} else if err := c.surface.Resize(w, h); err != nil {
		return err
	}
	c.pixels = nil
	c.graphics = raster.New(c.surface)
	c.graphics.SetSmoothing(c.antiAlias)
	c.log.Debug("canvas: resize", "width", w, "height", h)
	return nil
}

// BeginDraw opens a frame.
func (c *Canvas) BeginDraw() error {
	if c.surface == nil {
		return ErrNotSized
	}
	return nil
}

// EndDraw closes the frame, committing any open vector session.
func (c *Canvas) EndDraw() {
	c.endTargetDraw()
}

// beginTargetDraw opens a vector session if none is open and pushes the
// canvas state into it.
func (c *Canvas) beginTargetDraw() bool {
	if c.target != nil {
		return true
	}
	if c.surface == nil {
		return false
	}
	if c.surface.Locked() {
		c.skip("begin target draw", gfx.ErrSurfaceLocked)
		return false
	}
	t := target.New(c.surface)
	if err := t.BeginDraw(); err != nil {
		c.skip("begin target draw", err)
		return false
	}
	c.target = t
	c.applyAntiAliasing()
	c.applyTextAntiAliasing()
	c.updateTargetTransform()
	return true
}

func (c *Canvas) endTargetDraw() {
	if c.target == nil {
		return
	}
	if err := c.target.EndDraw(); err != nil {
		c.skip("end target draw", err)
	}
	c.target = nil
}

func (c *Canvas) skip(op string, err error) {
	c.log.Debug("canvas: draw skipped", "op", op, "err", err)
}

func (c *Canvas) updateTargetTransform() {
	m := c.graphics.Transform()
	c.target.SetTransform(m)
	c.axisAlignedClip = m.AllowsAxisAlignedClip()
}

func (c *Canvas) transformChanged() {
	if c.target != nil {
		c.updateTargetTransform()
	}
}

// Transform returns the current transform.
func (c *Canvas) Transform() gfx.Matrix {
	if c.graphics == nil {
		return gfx.Identity()
	}
	return c.graphics.Transform()
}

// SetTransform replaces the transform. Before the first Resize it has no
// effect.
func (c *Canvas) SetTransform(m gfx.Matrix) {
	if c.graphics == nil {
		return
	}
	c.graphics.SetTransform(m)
	c.transformChanged()
}

// ResetTransform sets the identity transform.
func (c *Canvas) ResetTransform() {
	if c.graphics == nil {
		return
	}
	c.graphics.ResetTransform()
	c.transformChanged()
}

// RotateTransform makes subsequent draws translate by (dx, dy), rotate by
// angle degrees and translate by (x, y), in that order, before the
// current transform. RotateTransform(a, cx, cy, -cx, -cy) rotates around
// (cx, cy).
func (c *Canvas) RotateTransform(angle, x, y, dx, dy float64) {
	if c.graphics == nil {
		return
	}
	c.graphics.PrependTransform(gfx.Translate(x, y))
	c.graphics.PrependTransform(gfx.RotateDegrees(angle))
	c.graphics.PrependTransform(gfx.Translate(dx, dy))
	c.transformChanged()
}

// SetAntiAliasing enables smooth edges for geometry and smooth
// interpolation for scaled bitmaps.
func (c *Canvas) SetAntiAliasing(enable bool) {
	c.antiAlias = enable
	if c.graphics != nil {
		c.graphics.SetSmoothing(enable)
	}
	if c.target != nil {
		c.applyAntiAliasing()
	}
}

func (c *Canvas) applyAntiAliasing() {
	mode := target.AntialiasAliased
	if c.antiAlias {
		mode = target.AntialiasPerPrimitive
	}
	c.target.SetAntialiasMode(mode)
}

// SetTextAntiAliasing enables grayscale anti-aliasing for text.
func (c *Canvas) SetTextAntiAliasing(enable bool) {
	c.textAntiAlias = enable
	if c.target != nil {
		c.applyTextAntiAliasing()
	}
}

func (c *Canvas) applyTextAntiAliasing() {
	mode := target.TextAntialiasAliased
	if c.textAntiAlias {
		mode = target.TextAntialiasGrayscale
	}
	c.target.SetTextAntialiasMode(mode)
}

// SetAccurateText disables the offsets that place text where the classic
// GDI text renderer would.
func (c *Canvas) SetAccurateText(accurate bool) { c.accurateText = accurate }

// Clear fills the surface with col, through the current clip when a
// vector session is open.
func (c *Canvas) Clear(col gfx.Color) {
	switch {
	case c.target != nil:
		if err := c.target.Clear(col); err != nil {
			c.skip("clear", err)
		}
	case c.graphics != nil:
		if err := c.graphics.Clear(col); err != nil {
			c.skip("clear", err)
		}
	}
}

// FillRectangle fills r with col.
func (c *Canvas) FillRectangle(r gfx.Rect, col gfx.Color) {
	if c.graphics == nil {
		return
	}
	if c.target == nil {
		if err := c.graphics.FillRectangle(r, col); err != nil {
			c.skip("fill rectangle", err)
		}
		return
	}
	brush, err := c.target.CreateSolidBrush(col)
	if err != nil {
		c.skip("fill rectangle", err)
		return
	}
	if err := c.target.FillRectangle(r, brush); err != nil {
		c.skip("fill rectangle", err)
	}
}

// IsTransparentPixel reports whether the pixel at (x, y) has zero alpha.
// Coordinates outside the canvas report false.
func (c *Canvas) IsTransparentPixel(x, y int) bool {
	if c.surface == nil || x < 0 || y < 0 || x >= c.surface.Width() || y >= c.surface.Height() {
		return false
	}
	c.endTargetDraw()
	return c.surface.IsTransparent(x, y)
}

// BeginPixelAccess ends any vector session and locks the whole surface
// for writing. Draws are skipped until EndPixelAccess.
func (c *Canvas) BeginPixelAccess() (*gfx.BitmapData, error) {
	if c.surface == nil {
		return nil, ErrNotSized
	}
	if c.pixels != nil {
		return nil, ErrPixelAccess
	}
	c.endTargetDraw()
	d, err := c.surface.LockBits(c.surface.Bounds(), gfx.LockWrite)
	if err != nil {
		return nil, err
	}
	c.pixels = d
	return d, nil
}

// EndPixelAccess releases the lock taken by BeginPixelAccess.
func (c *Canvas) EndPixelAccess() error {
	if c.pixels == nil {
		return ErrPixelAccess
	}
	d := c.pixels
	c.pixels = nil
	return c.surface.UnlockBits(d)
}
