// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/shape"
)

// DrawGeometry draws sh offset by (x, y) in the current transform: the
// fill when its color is not transparent, then the stroke when its color
// is not transparent and its width is positive. The shape's own transform
// applies first. The canvas transform is unchanged afterward.
func (c *Canvas) DrawGeometry(sh *shape.Shape, x, y int) {
	if sh == nil || !c.beginTargetDraw() {
		return
	}
	world := c.target.Transform()
	defer c.target.SetTransform(world)
	c.target.SetTransform(gfx.Translate(float64(x), float64(y)).Multiply(world).Multiply(sh.Transform()))

	brush, err := c.target.CreateSolidBrush(sh.FillColor())
	if err != nil {
		c.skip("draw geometry", err)
		return
	}
	if sh.FillColor().A > 0 {
		if err := c.target.FillGeometry(sh.Geometry(), brush); err != nil {
			c.skip("draw geometry", err)
		}
	}
	brush.SetColor(sh.StrokeColor())
	if sh.StrokeColor().A > 0 && sh.StrokeWidth() > 0 {
		if err := c.target.DrawGeometry(sh.Geometry(), brush, sh.StrokeWidth()); err != nil {
			c.skip("draw geometry", err)
		}
	}
}
