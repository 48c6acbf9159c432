package text

import (
	"math"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/geom"
	"github.com/gogpu/gfx/target"
)

// Line is one laid-out line.
type Line struct {
	// Start and End are the rune range of the line, End exclusive.
	Start, End int
	// Glyphs are positioned relative to the line origin.
	Glyphs []Glyph
	// Width is the advance of the line without trailing spaces.
	Width float64
	// X and Baseline place the line origin within the layout.
	X, Baseline float64
}

// Layout is shaped and positioned text. It implements target.TextLayout.
// A Layout is not safe for concurrent use.
type Layout struct {
	font    *Font
	size    float64
	metrics Metrics
	lines   []Line
	width   float64
	gdi     bool
	colors  []ColorRange
	runs    []target.GlyphRun
	built   bool
}

func newLayout(s *Shaper, f *Font, size float64, str string, maxWidth float64, gdi bool) *Layout {
	l := &Layout{font: f, size: size, metrics: f.Metrics(size), gdi: gdi}
	if str == "" {
		return l
	}
	runes := []rune(str)
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' {
			continue
		}
		end := i
		if end > start && runes[end-1] == '\r' {
			end--
		}
		l.addParagraph(s, runes, start, end, maxWidth)
		start = i + 1
	}
	for _, line := range l.lines {
		l.width = math.Max(l.width, line.Width)
	}
	return l
}

// addParagraph shapes runes[start:end] and breaks it into lines at spaces
// when maxWidth is positive.
func (l *Layout) addParagraph(s *Shaper, runes []rune, start, end int, maxWidth float64) {
	glyphs, _ := s.Shape(l.font, l.size, runes, start, end)
	if len(glyphs) == 0 {
		l.lines = append(l.lines, Line{Start: start, End: end})
		return
	}
	first := len(l.lines)
	lineStart := 0
	brk := -1
	for i := 0; i < len(glyphs); i++ {
		g := glyphs[i]
		if isSpace(runes, g.Cluster) {
			brk = i
			continue
		}
		if maxWidth > 0 && brk >= 0 && g.X+g.Advance-glyphs[lineStart].X > maxWidth {
			l.lines = append(l.lines, l.makeLine(runes, glyphs[lineStart:brk+1], start, end))
			lineStart = brk + 1
			brk = -1
		}
	}
	l.lines = append(l.lines, l.makeLine(runes, glyphs[lineStart:], start, end))
	// Rune ranges follow glyph clusters; fix up the paragraph ends.
	for i := first; i < len(l.lines)-1; i++ {
		l.lines[i].End = l.lines[i+1].Start
	}
	l.lines[first].Start = start
	l.lines[len(l.lines)-1].End = end
}

func (l *Layout) makeLine(runes []rune, glyphs []Glyph, start, end int) Line {
	line := Line{Start: start, End: end}
	if len(glyphs) == 0 {
		return line
	}
	line.Start = glyphs[0].Cluster
	x0 := glyphs[0].X
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		g.X -= x0
		out[i] = g
		if !isSpace(runes, g.Cluster) {
			line.Width = g.X + g.Advance
		}
	}
	line.Glyphs = out
	return line
}

func isSpace(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	switch runes[i] {
	case ' ', '\t', 0x3000:
		return true
	}
	return false
}

// align positions lines within a w by h box. A non-positive width aligns
// against the widest line.
func (l *Layout) align(h HorizontalAlignment, v VerticalAlignment, w, boxH float64) {
	if w <= 0 {
		w = l.width
	}
	top := 0.0
	if l.gdi {
		top = l.metrics.LineGap
	}
	block := float64(len(l.lines)) * l.metrics.LineHeight()
	switch v {
	case AlignMiddle:
		top += (boxH - block) / 2
	case AlignBottom:
		top += boxH - block
	}
	for i := range l.lines {
		line := &l.lines[i]
		switch h {
		case AlignCenter:
			line.X = (w - line.Width) / 2
		case AlignRight:
			line.X = w - line.Width
		default:
			line.X = 0
		}
		line.Baseline = top + float64(i)*l.metrics.LineHeight() + l.metrics.Ascent
	}
}

// Lines returns the laid-out lines.
func (l *Layout) Lines() []Line { return l.lines }

// LineCount returns the number of lines. Empty text has none.
func (l *Layout) LineCount() int { return len(l.lines) }

// Width returns the advance of the widest line.
func (l *Layout) Width() float64 { return l.width }

// Height returns the height of all lines plus ExtraHeight.
func (l *Layout) Height() float64 {
	if len(l.lines) == 0 {
		return 0
	}
	return float64(len(l.lines))*l.metrics.LineHeight() + l.ExtraHeight()
}

// Metrics returns the font metrics of the layout.
func (l *Layout) Metrics() Metrics { return l.metrics }

// LineGap is the padding reserved above the first line. Drawing at
// y - LineGap puts the top of the text at y.
func (l *Layout) LineGap() float64 {
	if !l.gdi {
		return 0
	}
	return l.metrics.LineGap
}

// ExtraHeight is the space GDI-compatible measurement adds below the text.
// Bottom aligned text is drawn ExtraHeight higher, centered text half of
// that.
func (l *Layout) ExtraHeight() float64 {
	if !l.gdi {
		return 0
	}
	return l.metrics.LineGap
}

// GlyphRuns returns the glyph outlines grouped by color. The first run uses
// the brush passed to the target; inline colors follow in range order.
func (l *Layout) GlyphRuns() []target.GlyphRun {
	if l.built {
		return l.runs
	}
	l.built = true
	var buf sfnt.Buffer
	paths := make([]*geom.Path, len(l.colors)+1)
	for _, line := range l.lines {
		for _, g := range line.Glyphs {
			k := l.colorIndex(g.Cluster)
			if paths[k] == nil {
				paths[k] = geom.NewPath()
			}
			l.font.appendGlyph(paths[k], &buf, sfnt.GlyphIndex(g.ID), l.size, line.X+g.X, line.Baseline+g.Y)
		}
	}
	for k, p := range paths {
		if p.Empty() {
			continue
		}
		run := target.GlyphRun{Outline: p}
		if k > 0 {
			run.Color = l.colors[k-1].Color
			run.HasColor = true
		}
		l.runs = append(l.runs, run)
	}
	return l.runs
}

// colorIndex returns 0 for the default brush or 1+i for colors[i].
func (l *Layout) colorIndex(cluster int) int {
	for i := len(l.colors) - 1; i >= 0; i-- {
		c := l.colors[i]
		if cluster >= c.Start && cluster < c.Start+c.Length {
			return i + 1
		}
	}
	return 0
}

// Bounds returns the box covered by the lines in layout coordinates.
func (l *Layout) Bounds() gfx.Rect {
	if len(l.lines) == 0 {
		return gfx.Rect{}
	}
	first, last := l.lines[0], l.lines[len(l.lines)-1]
	minX := first.X
	for _, line := range l.lines {
		minX = math.Min(minX, line.X)
	}
	top := first.Baseline - l.metrics.Ascent
	bottom := last.Baseline + l.metrics.Descent + l.metrics.LineGap
	return gfx.Rect{X: minX, Y: top, W: l.width, H: bottom - top}
}
