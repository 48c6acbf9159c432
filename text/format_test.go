package text

import (
	"math"
	"testing"

	"github.com/gogpu/gfx"
)

func TestApplyInlineCase(t *testing.T) {
	tests := []struct {
		c    Case
		in   string
		want string
	}{
		{CaseNone, "Hello World", "Hello World"},
		{CaseUpper, "Hello World", "HELLO WORLD"},
		{CaseLower, "Hello World", "hello world"},
		{CaseProper, "hello world", "Hello World"},
		{CaseUpper, "", ""},
	}
	for _, tt := range tests {
		f := NewFormat(nil, WithCase(tt.c))
		if got := f.ApplyInlineCase(tt.in); got != tt.want {
			t.Errorf("case %d: ApplyInlineCase(%q) = %q, want %q", tt.c, tt.in, got, tt.want)
		}
	}
}

func TestFormatOptions(t *testing.T) {
	f := NewFormat(nil,
		WithFamily("Go"),
		WithSize(24),
		WithSize(-1),
		WithBold(true),
		WithAlignment(AlignRight, AlignBottom),
		WithTrimming(true),
		WithWordWrap(true),
	)
	if f.FontSize() != 24 {
		t.Errorf("FontSize() = %v, want 24", f.FontSize())
	}
	if f.HorizontalAlignment() != AlignRight || f.VerticalAlignment() != AlignBottom {
		t.Errorf("alignment = %v/%v, want Right/Bottom", f.HorizontalAlignment(), f.VerticalAlignment())
	}
	if !f.Trimming() || !f.WordWrap() {
		t.Error("trimming and word wrap should be on")
	}
	if f.Font() != DefaultCollection().Lookup("Go", StyleBold) {
		t.Error("bold format should resolve the bold face")
	}
	g := f.With(WithBold(false))
	if g.Font() != DefaultCollection().Lookup("Go", StyleRegular) {
		t.Error("With(WithBold(false)) should resolve the regular face")
	}
	if f.Font() == g.Font() {
		t.Error("With should not modify the original format")
	}
	if NewFormat(nil).FontSize() != DefaultSize {
		t.Errorf("default size = %v, want %v", NewFormat(nil).FontSize(), DefaultSize)
	}
}

func TestMetricsEmpty(t *testing.T) {
	f := NewFormat(nil)
	for _, gdi := range []bool{false, true} {
		m := f.Metrics("", gdi, 100)
		if m != (TextMetrics{}) {
			t.Errorf("Metrics(\"\", %v) = %+v, want zero", gdi, m)
		}
	}
	l, err := f.CreateLayout("", 100, 100, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if l.LineCount() != 0 || l.Height() != 0 || len(l.GlyphRuns()) != 0 {
		t.Errorf("empty layout: lines=%d height=%v runs=%d", l.LineCount(), l.Height(), len(l.GlyphRuns()))
	}
}

func TestMetricsLines(t *testing.T) {
	f := NewFormat(nil, WithSize(12))
	lh := f.Font().Metrics(12).LineHeight()
	tests := []struct {
		in    string
		lines int
	}{
		{"abc", 1},
		{"abc\ndef", 2},
		{"abc\r\ndef", 2},
		{"abc\n\ndef", 3},
		{"abc\n", 2},
	}
	for _, tt := range tests {
		m := f.Metrics(tt.in, false, 0)
		if m.Lines != tt.lines {
			t.Errorf("Metrics(%q).Lines = %d, want %d", tt.in, m.Lines, tt.lines)
		}
		if want := float64(tt.lines) * lh; math.Abs(m.Height-want) > 1e-9 {
			t.Errorf("Metrics(%q).Height = %v, want %v", tt.in, m.Height, want)
		}
	}
}

func TestMetricsWrap(t *testing.T) {
	f := NewFormat(nil, WithSize(12))
	word := f.Metrics("aaaa", false, 0).Width
	str := "aaaa aaaa aaaa"
	if m := f.Metrics(str, false, 0); m.Lines != 1 {
		t.Errorf("unwrapped lines = %d, want 1", m.Lines)
	}
	m := f.Metrics(str, false, word+1)
	if m.Lines != 3 {
		t.Errorf("wrapped lines = %d, want 3", m.Lines)
	}
	if math.Abs(m.Width-word) > 1e-6 {
		t.Errorf("wrapped width = %v, want %v", m.Width, word)
	}
	// A single word wider than the box is not broken.
	if m := f.Metrics("aaaaaaaa", false, word); m.Lines != 1 {
		t.Errorf("long word lines = %d, want 1", m.Lines)
	}
}

func TestMetricsGDIEmulation(t *testing.T) {
	f := NewFormat(nil, WithSize(14))
	plain := f.Metrics("Text", false, 0)
	gdi := f.Metrics("Text", true, 0)
	l, err := f.CreateLayout("Text", 0, 0, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := gdi.Height - plain.Height; math.Abs(got-l.ExtraHeight()) > 1e-9 {
		t.Errorf("GDI height pad = %v, want ExtraHeight %v", got, l.ExtraHeight())
	}
	if l.LineGap() != f.Font().Metrics(14).LineGap {
		t.Errorf("LineGap() = %v, want font line gap", l.LineGap())
	}
	plainLayout, _ := f.CreateLayout("Text", 0, 0, false, false)
	if plainLayout.LineGap() != 0 || plainLayout.ExtraHeight() != 0 {
		t.Error("layout without GDI emulation should have no padding")
	}
	if d := l.Lines()[0].Baseline - plainLayout.Lines()[0].Baseline; math.Abs(d-l.LineGap()) > 1e-9 {
		t.Errorf("GDI baseline shift = %v, want %v", d, l.LineGap())
	}
}

func TestLayoutAlignment(t *testing.T) {
	const w, h = 200.0, 100.0
	tests := []struct {
		h HorizontalAlignment
		v VerticalAlignment
	}{
		{AlignLeft, AlignTop},
		{AlignCenter, AlignMiddle},
		{AlignRight, AlignBottom},
	}
	for _, tt := range tests {
		f := NewFormat(nil, WithSize(16), WithAlignment(tt.h, tt.v))
		l, err := f.CreateLayout("Middle", w, h, false, false)
		if err != nil {
			t.Fatal(err)
		}
		line := l.Lines()[0]
		m := l.Metrics()
		var wantX, wantTop float64
		switch tt.h {
		case AlignCenter:
			wantX = (w - line.Width) / 2
		case AlignRight:
			wantX = w - line.Width
		}
		switch tt.v {
		case AlignMiddle:
			wantTop = (h - m.LineHeight()) / 2
		case AlignBottom:
			wantTop = h - m.LineHeight()
		}
		if math.Abs(line.X-wantX) > 1e-9 {
			t.Errorf("%v/%v: X = %v, want %v", tt.h, tt.v, line.X, wantX)
		}
		if got := line.Baseline - m.Ascent; math.Abs(got-wantTop) > 1e-9 {
			t.Errorf("%v/%v: top = %v, want %v", tt.h, tt.v, got, wantTop)
		}
	}
}

func TestLayoutWrapRespectsFormat(t *testing.T) {
	str := "one two three four"
	nowrap, _ := NewFormat(nil).CreateLayout(str, 1, 100, false, false)
	if nowrap.LineCount() != 1 {
		t.Errorf("without word wrap lines = %d, want 1", nowrap.LineCount())
	}
	wrapped, _ := NewFormat(nil, WithWordWrap(true)).CreateLayout(str, 1, 100, false, false)
	if wrapped.LineCount() != 4 {
		t.Errorf("with word wrap lines = %d, want 4", wrapped.LineCount())
	}
	lines := wrapped.Lines()
	if lines[0].Start != 0 || lines[len(lines)-1].End != len([]rune(str)) {
		t.Errorf("line ranges = [%d, %d), want [0, %d)", lines[0].Start, lines[len(lines)-1].End, len(str))
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].Start != lines[i-1].End {
			t.Errorf("line %d starts at %d, previous ends at %d", i, lines[i].Start, lines[i-1].End)
		}
	}
}

func TestGlyphRuns(t *testing.T) {
	red := gfx.RGB(255, 0, 0)
	f := NewFormat(nil, WithSize(20), WithInlineColor(2, 2, red))

	l, err := f.CreateLayout("abcdef", 0, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	runs := l.GlyphRuns()
	if len(runs) != 1 || runs[0].HasColor {
		t.Fatalf("without inline formatting got %d runs, want 1 plain run", len(runs))
	}
	bb := runs[0].Outline.BoundingBox()
	if bb.X < -1 || bb.Right() > l.Width()+1 || bb.Y < 0 || bb.Bottom() > l.Height()+1 {
		t.Errorf("outline bounds %+v escape layout %vx%v", bb, l.Width(), l.Height())
	}

	l, _ = f.CreateLayout("abcdef", 0, 0, false, true)
	runs = l.GlyphRuns()
	if len(runs) != 2 {
		t.Fatalf("with inline formatting got %d runs, want 2", len(runs))
	}
	if runs[0].HasColor || !runs[1].HasColor || runs[1].Color != red {
		t.Errorf("runs = %+v, want plain then red", runs)
	}
	if &l.GlyphRuns()[0] != &runs[0] {
		t.Error("GlyphRuns should be computed once")
	}
}

func TestCreateLayoutNoFont(t *testing.T) {
	f := NewFormat(NewCollection())
	if _, err := f.CreateLayout("x", 10, 10, false, false); err != ErrNoFont {
		t.Errorf("CreateLayout error = %v, want ErrNoFont", err)
	}
	if m := f.Metrics("x", false, 0); m != (TextMetrics{}) {
		t.Errorf("Metrics without font = %+v, want zero", m)
	}
}
