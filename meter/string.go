package meter

import (
	"strings"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
	"github.com/gogpu/gfx/text"
)

// String draws the Text key with a text format read from the section.
type String struct {
	base
	text     string
	color    gfx.Color
	format   *text.Format
	inline   bool
	accurate bool
	textAA   bool
}

func newString(ctx Context, name string, sec config.Section) *String {
	m := &String{}
	m.readOptions(name, sec)
	m.text = sec.ReadString("Text")
	m.color = config.ParseColor(sec.ReadString("FontColor"), gfx.Black)
	m.inline = sec.ReadString("InlineSetting") != ""
	m.accurate = config.ParseInt(sec.ReadString("AccurateText"), 0) != 0
	m.textAA = m.aa

	h, v := parseAlign(sec.ReadString("StringAlign"))
	opts := []text.FormatOption{
		text.WithAlignment(h, v),
		text.WithSize(config.ParseFloat(sec.ReadString("FontSize"), text.DefaultSize)),
		text.WithTrimming(config.ParseInt(sec.ReadString("ClipString"), 0) != 0),
		text.WithWordWrap(config.ParseInt(sec.ReadString("ClipString"), 0) == 2),
		text.WithCase(parseCase(sec.ReadString("StringCase"))),
	}
	if face := sec.ReadString("FontFace"); face != "" {
		opts = append(opts, text.WithFamily(face))
	}
	style := strings.ToLower(sec.ReadString("StringStyle"))
	opts = append(opts,
		text.WithBold(strings.Contains(style, "bold")),
		text.WithItalic(strings.Contains(style, "italic")),
	)
	if m.inline {
		opts = append(opts, inlineColors(sec.ReadString("InlineSetting"), sec.ReadString("InlinePattern"), m.text)...)
	}
	m.format = ctx.Env.NewFormat(opts...)
	return m
}

// parseAlign reads alignments such as "Right", "CenterCenter" and
// "LeftBottom". The vertical part defaults to top.
func parseAlign(s string) (text.HorizontalAlignment, text.VerticalAlignment) {
	s = strings.ToLower(strings.TrimSpace(s))
	h := text.AlignLeft
	switch {
	case strings.HasPrefix(s, "center"):
		h, s = text.AlignCenter, s[len("center"):]
	case strings.HasPrefix(s, "right"):
		h, s = text.AlignRight, s[len("right"):]
	case strings.HasPrefix(s, "left"):
		s = s[len("left"):]
	}
	v := text.AlignTop
	switch s {
	case "center":
		v = text.AlignMiddle
	case "bottom":
		v = text.AlignBottom
	}
	return h, v
}

func parseCase(s string) text.Case {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return text.CaseUpper
	case "lower":
		return text.CaseLower
	case "proper":
		return text.CaseProper
	default:
		return text.CaseNone
	}
}

// inlineColors reads InlineSetting = "Color | R,G,B[,A]" and colors every
// occurrence of InlinePattern in str. Only literal patterns are matched.
func inlineColors(setting, pattern, str string) []text.FormatOption {
	args := config.Tokenize(setting, "|")
	if len(args) < 2 || !strings.EqualFold(args[0], "Color") || pattern == "" {
		return nil
	}
	c := config.ParseColor(args[1], gfx.Black)
	runes := []rune(str)
	pat := []rune(pattern)
	var opts []text.FormatOption
	for i := 0; i+len(pat) <= len(runes); i++ {
		if string(runes[i:i+len(pat)]) == pattern {
			opts = append(opts, text.WithInlineColor(i, len(pat), c))
			i += len(pat) - 1
		}
	}
	return opts
}

// Text returns the string drawn by the meter.
func (m *String) Text() string { return m.text }

// Format returns the text format.
func (m *String) Format() *text.Format { return m.format }

// Measure sizes a meter without fixed W or H from its text.
func (m *String) Measure(c *canvas.Canvas) {
	if m.wDefined && m.hDefined {
		return
	}
	c.SetAccurateText(m.accurate)
	var tm text.TextMetrics
	if m.wDefined && m.format.WordWrap() {
		tm = c.MeasureTextLines(m.text, m.format, float64(m.w))
	} else {
		tm = c.MeasureText(m.text, m.format)
	}
	if !m.wDefined {
		m.w = int(tm.Width + 0.5)
	}
	if !m.hDefined {
		m.h = int(tm.Height + 0.5)
	}
}

// Draw draws the text in the meter box.
func (m *String) Draw(c *canvas.Canvas) {
	if !m.draw(c) {
		return
	}
	c.SetAccurateText(m.accurate)
	c.SetTextAntiAliasing(m.textAA)
	c.DrawText(m.text, m.format, m.Bounds().Rect(), m.color, m.inline)
}

// HitTest reports whether (x, y) lies in the meter box.
func (m *String) HitTest(x, y int) bool { return m.inBounds(x, y) }
