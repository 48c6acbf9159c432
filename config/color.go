package config

import (
	"strconv"
	"strings"

	"github.com/gogpu/gfx"
)

// ParseColor parses "R,G,B[,A]" with decimal (or formula) components, or
// hexadecimal "RRGGBB[AA]". Components are clamped to 0..255. Malformed
// values return def.
func ParseColor(s string, def gfx.Color) gfx.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if !strings.ContainsRune(s, ',') {
		return parseHexColor(s, def)
	}
	parts := Tokenize2(s, ',', true)
	if len(parts) < 3 || len(parts) > 4 {
		return def
	}
	var c [4]uint8
	c[3] = 255
	for i, p := range parts {
		v, ok := parseNumber(p)
		if !ok {
			return def
		}
		c[i] = clampByte(v)
	}
	return gfx.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func parseHexColor(s string, def gfx.Color) gfx.Color {
	if len(s) != 6 && len(s) != 8 {
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return gfx.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

func clampByte(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
