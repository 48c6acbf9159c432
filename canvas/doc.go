// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas composites text, bitmaps and vector shapes onto one
// shared pixel surface using two renderers: the immediate-mode raster
// context and the retained vector target.
//
// The canvas owns a single logical transform, kept by the raster context
// and mirrored into the vector target whenever a session is open. Vector
// sessions open lazily on the first text, geometry or masked bitmap draw
// and close before any raster draw that the vector session would
// overwrite, before direct pixel access and at EndDraw:
//
//	env := canvas.NewEnvironment()
//	c := canvas.New(env)
//	if err := c.Resize(200, 100); err != nil {
//		return err
//	}
//	c.BeginDraw()
//	c.Clear(gfx.Transparent)
//	c.DrawText("Hello", env.NewFormat(text.WithSize(14)), gfx.RectF(0, 0, 200, 100), gfx.White, false)
//	c.EndDraw()
//
// Drawing never returns renderer errors. A draw that cannot be performed
// is skipped and reported at debug level to the environment logger.
package canvas
