// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

type textureDestroyer interface {
	Destroy()
}

// Present ends any vector session and draws the surface at (x, y) through
// dc. The GPU texture is created on first use and on size changes, and
// updated in place otherwise. Texture data is RGBA, premultiplied.
func (c *Canvas) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if dc == nil {
		return ErrNoDrawContext
	}
	if c.surface == nil {
		return ErrNotSized
	}
	c.endTargetDraw()

	w, h := c.surface.Width(), c.surface.Height()
	data := c.surface.ToImage().Pix

	if c.texture != nil && (c.texW != w || c.texH != h) {
		if d, ok := c.texture.(textureDestroyer); ok {
			d.Destroy()
		}
		c.texture = nil
	}

	if c.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return fmt.Errorf("canvas: draw context has no texture creator")
		}
		tex, err := creator.NewTextureFromRGBA(w, h, data)
		if err != nil {
			return fmt.Errorf("canvas: create texture: %w", err)
		}
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		c.texture, c.texW, c.texH = tex, w, h
	} else if u, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(data); err != nil {
			return fmt.Errorf("canvas: update texture: %w", err)
		}
	}

	return dc.DrawTexture(c.texture, x, y)
}
