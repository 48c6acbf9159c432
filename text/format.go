package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/gfx"
)

// HorizontalAlignment positions lines within the layout width.
type HorizontalAlignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft HorizontalAlignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAlignment positions the block of lines within the layout height.
type VerticalAlignment int

const (
	// AlignTop places the first line at the top (default).
	AlignTop VerticalAlignment = iota
	// AlignMiddle centers the block vertically.
	AlignMiddle
	// AlignBottom places the last line at the bottom.
	AlignBottom
)

// String returns the string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Center"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// Case is a case transformation applied to strings before layout.
type Case int

const (
	CaseNone Case = iota
	CaseUpper
	CaseLower
	// CaseProper capitalizes the first letter of each word.
	CaseProper
)

const unknownStr = "Unknown"

// ColorRange colors Length runes starting at rune Start. Later ranges
// override earlier ones where they overlap.
type ColorRange struct {
	Start, Length int
	Color         gfx.Color
}

// Format describes how strings are laid out: font, size, alignment,
// trimming, case and inline colors. A Format is immutable after creation
// and safe for concurrent use.
type Format struct {
	fonts    *Collection
	shaper   *Shaper
	family   string
	size     float64
	style    Style
	halign   HorizontalAlignment
	valign   VerticalAlignment
	trimming bool
	wrap     bool
	textCase Case
	colors   []ColorRange
}

// FormatOption configures a Format.
type FormatOption func(*Format)

// WithFamily selects the font family.
func WithFamily(family string) FormatOption {
	return func(f *Format) {
		f.family = family
	}
}

// WithSize sets the font size in pixels. Non-positive sizes are ignored.
func WithSize(size float64) FormatOption {
	return func(f *Format) {
		if size > 0 {
			f.size = size
		}
	}
}

// WithBold selects the bold face.
func WithBold(bold bool) FormatOption {
	return func(f *Format) {
		f.setStyle(StyleBold, bold)
	}
}

// WithItalic selects the italic face.
func WithItalic(italic bool) FormatOption {
	return func(f *Format) {
		f.setStyle(StyleItalic, italic)
	}
}

// WithAlignment sets horizontal and vertical alignment.
func WithAlignment(h HorizontalAlignment, v VerticalAlignment) FormatOption {
	return func(f *Format) {
		f.halign = h
		f.valign = v
	}
}

// WithTrimming clips drawn text to its layout box.
func WithTrimming(trim bool) FormatOption {
	return func(f *Format) {
		f.trimming = trim
	}
}

// WithWordWrap wraps lines at the layout width.
func WithWordWrap(wrap bool) FormatOption {
	return func(f *Format) {
		f.wrap = wrap
	}
}

// WithCase sets the case transformation.
func WithCase(c Case) FormatOption {
	return func(f *Format) {
		f.textCase = c
	}
}

// WithInlineColor adds an inline color range.
func WithInlineColor(start, length int, c gfx.Color) FormatOption {
	return func(f *Format) {
		if length > 0 && start >= 0 {
			f.colors = append(f.colors, ColorRange{Start: start, Length: length, Color: c})
		}
	}
}

// WithShaper sets the shaper. A nil shaper selects the package default.
func WithShaper(s *Shaper) FormatOption {
	return func(f *Format) {
		f.shaper = s
	}
}

// DefaultSize is the font size of a Format without WithSize.
const DefaultSize = 10.0

// NewFormat creates a Format backed by fonts. A nil collection selects
// DefaultCollection.
func NewFormat(fonts *Collection, opts ...FormatOption) *Format {
	if fonts == nil {
		fonts = DefaultCollection()
	}
	f := &Format{
		fonts:  fonts,
		family: DefaultFamily,
		size:   DefaultSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// With returns a copy of f with opts applied.
func (f *Format) With(opts ...FormatOption) *Format {
	c := *f
	c.colors = append([]ColorRange(nil), f.colors...)
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

func (f *Format) setStyle(s Style, on bool) {
	if on {
		f.style |= s
	} else {
		f.style &^= s
	}
}

// Family returns the requested font family name.
func (f *Format) Family() string { return f.family }

// FontSize returns the font size in pixels.
func (f *Format) FontSize() float64 { return f.size }

// HorizontalAlignment returns the horizontal alignment.
func (f *Format) HorizontalAlignment() HorizontalAlignment { return f.halign }

// VerticalAlignment returns the vertical alignment.
func (f *Format) VerticalAlignment() VerticalAlignment { return f.valign }

// Trimming reports whether drawn text is clipped to its box.
func (f *Format) Trimming() bool { return f.trimming }

// WordWrap reports whether CreateLayout wraps at the box width.
func (f *Format) WordWrap() bool { return f.wrap }

// Font returns the resolved font, or nil when the collection is empty.
func (f *Format) Font() *Font {
	return f.fonts.Lookup(f.family, f.style)
}

// ApplyInlineCase returns s with the case transformation applied.
func (f *Format) ApplyInlineCase(s string) string {
	switch f.textCase {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseProper:
		return cases.Title(language.Und, cases.NoLower).String(s)
	default:
		return s
	}
}

// CreateLayout lays out s in a box of w by h pixels. Lines wrap at w when
// word wrapping is on and w > 0. With gdiEmulation the layout reserves the
// font line gap above the first line, see Layout.LineGap. With inline the
// format's color ranges are applied to the glyph runs.
func (f *Format) CreateLayout(s string, w, h float64, gdiEmulation, inline bool) (*Layout, error) {
	font := f.Font()
	if font == nil {
		return nil, ErrNoFont
	}
	maxWidth := 0.0
	if f.wrap {
		maxWidth = w
	}
	l := newLayout(f.shaper, font, f.size, s, maxWidth, gdiEmulation)
	l.align(f.halign, f.valign, w, h)
	if inline {
		l.colors = f.colors
	}
	return l, nil
}

// TextMetrics is the measured size of a string.
type TextMetrics struct {
	Width, Height float64
	Lines         int
}

// Metrics measures s. Lines wrap at maxWidth when it is positive. With
// gdiEmulation the height includes ExtraHeight. The empty string measures
// zero by zero with no lines.
func (f *Format) Metrics(s string, gdiEmulation bool, maxWidth float64) TextMetrics {
	font := f.Font()
	if font == nil || s == "" {
		return TextMetrics{}
	}
	l := newLayout(f.shaper, font, f.size, s, maxWidth, gdiEmulation)
	return TextMetrics{Width: l.width, Height: l.Height(), Lines: len(l.lines)}
}
