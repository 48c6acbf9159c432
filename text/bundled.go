package text

import (
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Families of the bundled Latin Modern faces.
const (
	LatinModernRoman = "Latin Modern Roman"
	LatinModernSans  = "Latin Modern Sans"
)

type bundledFace struct {
	family string
	style  Style
	data   []byte
}

var bundled = []bundledFace{
	{DefaultFamily, StyleRegular, goregular.TTF},
	{DefaultFamily, StyleBold, gobold.TTF},
	{DefaultFamily, StyleItalic, goitalic.TTF},
	{DefaultFamily, StyleBold | StyleItalic, gobolditalic.TTF},

	{LatinModernRoman, StyleRegular, lmroman10regular.TTF},
	{LatinModernRoman, StyleBold, lmroman10bold.TTF},
	{LatinModernRoman, StyleItalic, lmroman10italic.TTF},
	{LatinModernRoman, StyleBold | StyleItalic, lmroman10bolditalic.TTF},

	// The sans family has no bold oblique face; Lookup falls back to bold.
	{LatinModernSans, StyleRegular, lmsans10regular.TTF},
	{LatinModernSans, StyleBold, lmsans10bold.TTF},
	{LatinModernSans, StyleItalic, lmsans10oblique.TTF},
}
