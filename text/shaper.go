package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a shaped glyph positioned relative to the start of its run.
type Glyph struct {
	ID uint16
	// Cluster is the index of the first rune the glyph was shaped from.
	Cluster int
	// X and Y are the pen position plus the shaping offset. Y is y-down.
	X, Y float64
	// Advance is the horizontal advance to the next glyph.
	Advance float64
}

// Shaper shapes runs of text with HarfBuzz. It is safe for concurrent use.
type Shaper struct {
	// HarfbuzzShaper keeps a mutable buffer, so each call borrows one.
	pool sync.Pool
	lang language.Language
}

// NewShaper creates a shaper for the given BCP 47 language tag. An empty
// tag selects "en".
func NewShaper(lang string) *Shaper {
	if lang == "" {
		lang = "en"
	}
	return &Shaper{
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		lang: language.NewLanguage(lang),
	}
}

var defaultShaper = NewShaper("")

// Shape shapes runes[start:end] with f at size pixels per em. Cluster
// indices refer to runes. The returned width is the total advance.
func (s *Shaper) Shape(f *Font, size float64, runes []rune, start, end int) ([]Glyph, float64) {
	if f == nil || start >= end {
		return nil, 0
	}
	if s == nil {
		s = defaultShaper
	}
	// font.Face caches per call state and must not be shared.
	face := gotext.NewFace(f.shaper)
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      ppem(size),
		Script:    detectScript(runes[start:end]),
		Language:  s.lang,
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // OpenType glyph ids are 16 bit
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
		}
		x += glyphs[i].Advance
	}
	return glyphs, x
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
