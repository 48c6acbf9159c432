package gfx

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// Surface is a CPU-addressable pixel buffer in premultiplied BGRA format,
// 4 bytes per pixel, rows stored top-down. It implements draw.Image, so the
// standard and x/image drawing packages can composite into it directly.
//
// A Surface is owned by a single goroutine; it performs no locking of its own
// beyond the bookkeeping of LockBits.
type Surface struct {
	width  int
	height int
	data   []uint8

	// generation increments on every Resize. Renderer handles record the
	// generation they were created for and refuse to draw after a resize.
	generation uint64

	readers int
	writer  *BitmapData
}

// NewSurface creates a transparent surface. Non-positive dimensions produce
// an empty surface that every pixel query treats as out of range.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.alloc(width, height)
	return s
}

// NewSurfaceFromImage converts img into a new surface.
func NewSurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}

func (s *Surface) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.data = make([]uint8, width*height*4)
}

// Resize discards the current buffer and allocates a transparent one of
// exactly width*height*4 bytes. Handles bound to the old buffer become stale.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	s.alloc(width, height)
	s.generation++
	s.readers = 0
	s.writer = nil
	return nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int { return s.width }

// Height returns the height of the surface.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int { return s.width * 4 }

// Data returns the raw pixel data (premultiplied BGRA).
func (s *Surface) Data() []uint8 { return s.data }

// Generation returns the resize generation of the buffer.
func (s *Surface) Generation() uint64 { return s.generation }

// Format returns the pixel format of the buffer.
func (s *Surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// PixelAt returns the premultiplied color at (x, y). The second result is
// false when (x, y) is outside the surface.
func (s *Surface) PixelAt(x, y int) (color.RGBA, bool) {
	if !s.inBounds(x, y) {
		return color.RGBA{}, false
	}
	i := (y*s.width + x) * 4
	return color.RGBA{B: s.data[i], G: s.data[i+1], R: s.data[i+2], A: s.data[i+3]}, true
}

// IsTransparent reports whether the pixel at (x, y) has zero alpha.
// Coordinates outside the surface are reported as transparent.
func (s *Surface) IsTransparent(x, y int) bool {
	if !s.inBounds(x, y) {
		return true
	}
	return s.data[(y*s.width+x)*4+3] == 0
}

// SetRGBA stores a premultiplied color. Out-of-bounds writes are ignored.
func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	if !s.inBounds(x, y) {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.B
	s.data[i+1] = c.G
	s.data[i+2] = c.R
	s.data[i+3] = c.A
}

// Clear fills every pixel with the premultiplied form of c.
func (s *Surface) Clear(c Color) {
	p := c.Premul()
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = p.B
		s.data[i+1] = p.G
		s.data[i+2] = p.R
		s.data[i+3] = p.A
	}
}

// CopyFrom copies the pixels of src into s. Both must have the same size;
// otherwise nothing is copied and false is returned.
func (s *Surface) CopyFrom(src *Surface) bool {
	if src.width != s.width || src.height != s.height {
		return false
	}
	copy(s.data, src.data)
	return true
}

// Clone returns an independent copy of the surface.
func (s *Surface) Clone() *Surface {
	c := NewSurface(s.width, s.height)
	copy(c.data, s.data)
	return c
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	c, _ := s.PixelAt(x, y)
	return c
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// ToImage converts the surface to an image.RGBA (also premultiplied).
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for i := 0; i < len(s.data); i += 4 {
		img.Pix[i+0] = s.data[i+2]
		img.Pix[i+1] = s.data[i+1]
		img.Pix[i+2] = s.data[i+0]
		img.Pix[i+3] = s.data[i+3]
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.ToImage())
}
