// Package coverage turns device-space polygons into alpha masks and
// composites solid colors and images through them. Both renderers draw
// through this package, so equal calls produce equal pixels.
package coverage

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/gfx/geom"
)

// aliasThreshold is the coverage at or above which a pixel counts as
// inside when anti-aliasing is off.
const aliasThreshold = 128

// Mask rasterizes polys under the non-zero rule into an alpha mask whose
// bounds equal the part of r covered by the polygons' bounds. It returns
// nil when nothing is covered.
func Mask(polys []geom.Polygon, r image.Rectangle, antialias bool) *image.Alpha {
	r = r.Intersect(geom.PolygonBounds(polys).ImageRect())
	if r.Empty() {
		return nil
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, pt := range poly[1:] {
			z.LineTo(float32(pt.X)-ox, float32(pt.Y)-oy)
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(r)
	z.Draw(mask, r, image.Opaque, image.Point{})
	if !antialias {
		Threshold(mask)
	}
	return mask
}

// Threshold converts mask coverage to fully on or off in place.
func Threshold(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= aliasThreshold {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}

// Intersect multiplies mask by clip in place. Pixels of mask outside
// clip's bounds become zero. A nil clip leaves mask unchanged.
func Intersect(mask, clip *image.Alpha) {
	if mask == nil || clip == nil {
		return
	}
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := mask.PixOffset(x, y)
			if mask.Pix[i] == 0 {
				continue
			}
			var c uint8
			if (image.Point{X: x, Y: y}).In(clip.Rect) {
				c = clip.Pix[clip.PixOffset(x, y)]
			}
			mask.Pix[i] = uint8((uint32(mask.Pix[i])*uint32(c) + 127) / 255)
		}
	}
}

// FillColor composites the premultiplied color c over dst through mask.
// A nil mask draws nothing.
func FillColor(dst draw.Image, mask *image.Alpha, c color.RGBA) {
	if mask == nil || c.A == 0 {
		return
	}
	r := mask.Bounds()
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, r.Min, draw.Over)
}

// FillImage composites src over dst through mask. src is sampled at the
// same coordinates as dst.
func FillImage(dst draw.Image, mask *image.Alpha, src image.Image) {
	if mask == nil {
		return
	}
	r := mask.Bounds()
	draw.DrawMask(dst, r, src, r.Min, mask, r.Min, draw.Over)
}

// Fill rasterizes polys within clip and composites c through the result,
// additionally masked by layer when it is non-nil.
func Fill(dst draw.Image, polys []geom.Polygon, clip image.Rectangle, antialias bool, c color.RGBA, layer *image.Alpha) {
	mask := Mask(polys, clip.Intersect(dst.Bounds()), antialias)
	Intersect(mask, layer)
	FillColor(dst, mask, c)
}

// Clear overwrites every pixel of dst inside clip with c, without
// blending.
func Clear(dst draw.Image, clip image.Rectangle, c color.RGBA) {
	draw.Draw(dst, clip.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
