// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/target"
)

// DrawBitmap draws the src region of img into dst. Scaled draws always
// use the raster context, ending any vector session first, so scaled
// bitmaps are interpolated the same way whatever was drawn before.
func (c *Canvas) DrawBitmap(img *gfx.Surface, dst, src gfx.IntRect) {
	if c.graphics == nil || img == nil {
		return
	}
	if !dst.SameSize(src) {
		c.endTargetDraw()
	}
	if c.target == nil {
		if err := c.graphics.DrawImage(img, dst, src); err != nil {
			c.skip("draw bitmap", err)
		}
		return
	}

	err := withSharedBitmap(c.target, img, img.Bounds(), func(bm *target.Bitmap) error {
		return c.target.DrawBitmap(bm, dst.Rect(), 1, src.Rect())
	})
	if err != nil {
		c.skip("draw bitmap", err)
	}
}

// DrawMaskedBitmap paints img through the alpha channel of mask. The
// srcBitmap region of img is stretched over dst, and the src region of
// mask is stretched over dst as the coverage.
func (c *Canvas) DrawMaskedBitmap(img, mask *gfx.Surface, dst, src, srcBitmap gfx.IntRect) {
	if img == nil || mask == nil || srcBitmap.Empty() || !c.beginTargetDraw() {
		return
	}
	err := withSharedBitmap(c.target, img, srcBitmap.Image(), func(bm *target.Bitmap) error {
		m := gfx.Translate(float64(dst.X), float64(dst.Y)).
			Multiply(gfx.Scale(float64(dst.W)/float64(srcBitmap.W), float64(dst.H)/float64(srcBitmap.H)))
		brush, err := c.target.CreateBitmapBrush(bm, m)
		if err != nil {
			return err
		}
		return withSharedBitmap(c.target, mask, mask.Bounds(), func(mbm *target.Bitmap) error {
			// Opacity masks need aliased mode.
			prev := c.target.AntialiasMode()
			c.target.SetAntialiasMode(target.AntialiasAliased)
			defer c.target.SetAntialiasMode(prev)
			return c.target.FillOpacityMask(mbm, brush, dst.Rect(), src.Rect())
		})
	})
	if err != nil {
		c.skip("draw masked bitmap", err)
	}
}

// withSharedBitmap read-locks region r of img and wraps it as a bitmap of
// t for the duration of fn.
func withSharedBitmap(t *target.Target, img *gfx.Surface, r image.Rectangle, fn func(*target.Bitmap) error) error {
	d, err := img.LockBits(r, gfx.LockRead)
	if err != nil {
		return err
	}
	defer func() {
		_ = img.UnlockBits(d)
	}()
	bm, err := t.CreateSharedBitmap(d)
	if err != nil {
		return err
	}
	return fn(bm)
}
