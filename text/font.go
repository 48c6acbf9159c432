package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/geom"
	"github.com/gogpu/gfx/internal/cache"
)

// Font is a parsed font. It is safe for concurrent use.
type Font struct {
	name   string
	sfnt   *opentype.Font
	shaper *gotext.Font
	glyphs *cache.Cache[glyphKey, *geom.Path]
}

// ParseFont parses TTF or OTF data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	name, _ := sf.Name(nil, sfnt.NameIDFamily)
	return &Font{
		name:   name,
		sfnt:   sf,
		shaper: face.Font,
		glyphs: cache.New[glyphKey, *geom.Path](glyphCacheSize),
	}, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return ParseFont(data)
}

// Name returns the font family name.
func (f *Font) Name() string { return f.name }

// Metrics holds vertical font metrics in pixels at a given size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64
	// LineGap is the recommended extra space between lines.
	LineGap float64
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Metrics returns the vertical metrics at size pixels per em.
func (f *Font) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, ppem(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	asc := fixedToFloat(m.Ascent)
	desc := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - asc - desc
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: asc, Descent: desc, LineGap: gap}
}

// glyphKey identifies a glyph outline at one size.
type glyphKey struct {
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// glyphCacheSize bounds the outlines kept per font.
const glyphCacheSize = 1024

// appendGlyph appends the outline of glyph gid at size to p with its
// origin at (x, y). The outline is y-down like the rest of gfx.
func (f *Font) appendGlyph(p *geom.Path, buf *sfnt.Buffer, gid sfnt.GlyphIndex, size, x, y float64) {
	outline := f.glyphs.GetOrCreate(glyphKey{gid: gid, ppem: ppem(size)}, func() *geom.Path {
		return f.loadGlyph(buf, gid, size)
	})
	if outline.Empty() {
		return
	}
	p.Append(outline.Transform(gfx.Translate(x, y)))
}

// loadGlyph converts the outline of gid to a path at the origin. Glyphs
// that fail to load have an empty outline.
func (f *Font) loadGlyph(buf *sfnt.Buffer, gid sfnt.GlyphIndex, size float64) *geom.Path {
	p := geom.NewPath()
	segs, err := f.sfnt.LoadGlyph(buf, gid, ppem(size), nil)
	if err != nil {
		return p
	}
	pt := func(v fixed.Point26_6) (float64, float64) {
		return fixedToFloat(v.X), fixedToFloat(v.Y)
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			ex, ey := pt(s.Args[1])
			p.QuadTo(cx, cy, ex, ey)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
		}
	}
	if open {
		p.Close()
	}
	return p
}
