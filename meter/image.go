package meter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Formats accepted by ImageName and MaskImageName.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
)

// Image draws the bitmap named by ImageName, scaled to the meter box. With
// MaskImageName the bitmap is painted through the mask's alpha channel.
type Image struct {
	base
	img  *gfx.Surface
	mask *gfx.Surface
	// crop is the region of img drawn, the whole image unless ImageCrop
	// is set.
	crop gfx.IntRect
}

func newImage(ctx Context, name string, sec config.Section) (*Image, error) {
	m := &Image{}
	m.readOptions(name, sec)
	file := sec.ReadString("ImageName")
	if file == "" {
		return m, nil
	}
	img, err := loadImage(ctx.Dir, file)
	if err != nil {
		return nil, fmt.Errorf("meter: [%s]: %w", name, err)
	}
	m.img = img
	m.crop = gfx.IRect(0, 0, img.Width(), img.Height())
	if crop := config.Tokenize2(sec.ReadString("ImageCrop"), ',', true); len(crop) >= 4 {
		r := gfx.IRect(
			config.ParseInt(crop[0], 0), config.ParseInt(crop[1], 0),
			config.ParseInt(crop[2], 0), config.ParseInt(crop[3], 0),
		).Image().Intersect(img.Bounds())
		if !r.Empty() {
			m.crop = gfx.IRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		}
	}
	if maskFile := sec.ReadString("MaskImageName"); maskFile != "" {
		mask, err := loadImage(ctx.Dir, maskFile)
		if err != nil {
			return nil, fmt.Errorf("meter: [%s]: %w", name, err)
		}
		m.mask = mask
	}
	if !m.wDefined {
		m.w = m.crop.W
	}
	if !m.hDefined {
		m.h = m.crop.H
	}
	return m, nil
}

func loadImage(dir, file string) (*gfx.Surface, error) {
	if !filepath.IsAbs(file) && dir != "" {
		file = filepath.Join(dir, file)
	}
	f, err := os.Open(file) //nolint:gosec // skin-provided path
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return gfx.NewSurfaceFromImage(img), nil
}

// Draw draws the image.
func (m *Image) Draw(c *canvas.Canvas) {
	if !m.draw(c) || m.img == nil {
		return
	}
	dst := m.Bounds()
	if m.mask != nil {
		c.DrawMaskedBitmap(m.img, m.mask, dst, gfx.IRect(0, 0, m.mask.Width(), m.mask.Height()), m.crop)
		return
	}
	c.DrawBitmap(m.img, dst, m.crop)
}

// HitTest reports whether (x, y) hits an opaque image pixel.
func (m *Image) HitTest(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	if m.img == nil || m.w == 0 || m.h == 0 {
		return true
	}
	sx := m.crop.X + (x-m.x)*m.crop.W/m.w
	sy := m.crop.Y + (y-m.y)*m.crop.H/m.h
	return !m.img.IsTransparent(sx, sy)
}
