// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/text"
)

// TextFormat is what the canvas needs from a text format. *text.Format
// implements it.
type TextFormat interface {
	ApplyInlineCase(s string) string
	CreateLayout(s string, w, h float64, gdiEmulation, inline bool) (*text.Layout, error)
	Metrics(s string, gdiEmulation bool, maxWidth float64) text.TextMetrics
	FontSize() float64
	HorizontalAlignment() text.HorizontalAlignment
	VerticalAlignment() text.VerticalAlignment
	Trimming() bool
}

var _ TextFormat = (*text.Format)(nil)

// DrawText draws str in box r with color col. With inline the format's
// inline color ranges apply.
func (c *Canvas) DrawText(str string, format TextFormat, r gfx.Rect, col gfx.Color, inline bool) {
	if !c.beginTargetDraw() {
		return
	}
	brush, err := c.target.CreateSolidBrush(col)
	if err != nil {
		c.skip("draw text", err)
		return
	}
	s := format.ApplyInlineCase(str)
	layout, err := format.CreateLayout(s, r.W, r.H, !c.accurateText && c.textAntiAlias, inline)
	if err != nil {
		c.skip("draw text", err)
		return
	}
	origin := textOrigin(format, layout, r, c.accurateText)

	if format.Trimming() {
		if c.axisAlignedClip {
			err = c.target.PushAxisAlignedClip(r)
		} else {
			err = c.target.PushLayer(r)
		}
		if err != nil {
			c.skip("draw text", err)
			return
		}
	}

	if err := c.target.DrawTextLayout(origin, layout, brush); err != nil {
		c.skip("draw text", err)
	}

	if format.Trimming() {
		if c.axisAlignedClip {
			err = c.target.PopAxisAlignedClip()
		} else {
			err = c.target.PopLayer()
		}
		if err != nil {
			c.skip("draw text", err)
		}
	}
}

// textOrigin returns the layout origin for box r. Unless accurate, left
// and right aligned text moves inward by a sixth of the font size, and
// the origin moves up by the line gap the layout reserves.
func textOrigin(format TextFormat, layout *text.Layout, r gfx.Rect, accurate bool) gfx.Point {
	x := r.X
	if !accurate {
		offset := format.FontSize() / 6
		switch format.HorizontalAlignment() {
		case text.AlignLeft:
			x += offset
		case text.AlignRight:
			x -= offset
		}
	}

	y := r.Y - layout.LineGap()
	switch format.VerticalAlignment() {
	case text.AlignBottom:
		y -= layout.ExtraHeight()
	case text.AlignMiddle:
		y -= layout.ExtraHeight() / 2
	}
	return gfx.Pt(x, y)
}

// MeasureText returns the size of str laid out on unbounded lines.
func (c *Canvas) MeasureText(str string, format TextFormat) text.TextMetrics {
	return format.Metrics(format.ApplyInlineCase(str), !c.accurateText, 0)
}

// MeasureTextLines returns the size and line count of str wrapped at
// maxWidth. A non-zero height is padded by one pixel; a zero height
// reports no lines.
func (c *Canvas) MeasureTextLines(str string, format TextFormat, maxWidth float64) text.TextMetrics {
	m := format.Metrics(format.ApplyInlineCase(str), !c.accurateText, maxWidth)
	if m.Height > 0 {
		m.Height++
	} else {
		m.Lines = 0
	}
	return m
}
