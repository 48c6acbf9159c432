// Package text provides the fonts, shaping and layout used by the gfx
// canvas to draw and measure strings.
//
// The pipeline has three parts:
//
//   - Font: a parsed TTF/OTF font. Shaping uses go-text/typesetting
//     (HarfBuzz); outlines and vertical metrics use golang.org/x/image/font/sfnt.
//   - Format: family, size, style, alignment, trimming, case and inline
//     colors. A Format measures strings and creates layouts.
//   - Layout: shaped, wrapped and aligned lines whose glyph outlines can be
//     filled by a render target.
//
// # Example usage
//
//	fonts := text.DefaultCollection()
//	f := text.NewFormat(fonts,
//	    text.WithSize(14),
//	    text.WithAlignment(text.AlignCenter, text.AlignMiddle),
//	)
//	w, h, lines := f.Measure("Hello", true, 0, false)
//
// # GDI compatibility
//
// Widget skins were authored against a renderer that pads text boxes by
// the font line gap. Measure and CreateLayout take a gdiEmulation flag that
// adds the same padding; LineGap and ExtraHeight report it so a caller can
// shift the drawing origin by the matching amount.
package text
