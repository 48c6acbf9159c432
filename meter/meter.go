package meter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
)

// Meter is one drawable element of a skin.
type Meter interface {
	// Name returns the section name.
	Name() string
	// Bounds returns the position and size in skin pixels.
	Bounds() gfx.IntRect
	// Draw draws the meter. Hidden meters draw nothing.
	Draw(c *canvas.Canvas)
	// HitTest reports whether (x, y), in skin pixels, hits the meter.
	HitTest(x, y int) bool
}

// Context carries what a meter needs to read its options.
type Context struct {
	Env *canvas.Environment
	Log *slog.Logger
	// Dir resolves relative file names, such as image paths.
	Dir string
}

func (ctx Context) logger() *slog.Logger { return gfx.LoggerOr(ctx.Log) }

// New creates the meter described by sec. The kind comes from the Meter
// key.
func New(ctx Context, name string, sec config.Section) (Meter, error) {
	if ctx.Env == nil {
		ctx.Env = canvas.NewEnvironment()
	}
	kind := strings.TrimSpace(sec.ReadString("Meter"))
	switch {
	case strings.EqualFold(kind, "Shape"):
		return newShape(ctx, name, sec), nil
	case strings.EqualFold(kind, "String"):
		return newString(ctx, name, sec), nil
	case strings.EqualFold(kind, "Image"):
		return newImage(ctx, name, sec)
	default:
		return nil, fmt.Errorf("%w: %q in [%s]", ErrUnknownMeter, kind, name)
	}
}

// base holds the options common to every meter.
type base struct {
	name     string
	x, y     int
	w, h     int
	wDefined bool
	hDefined bool
	hidden   bool
	solid    gfx.Color
	aa       bool
}

func (b *base) readOptions(name string, sec config.Section) {
	b.name = name
	b.x = config.ParseInt(sec.ReadString("X"), 0)
	b.y = config.ParseInt(sec.ReadString("Y"), 0)
	if v := sec.ReadString("W"); v != "" {
		b.w, b.wDefined = max(config.ParseInt(v, 0), 0), true
	}
	if v := sec.ReadString("H"); v != "" {
		b.h, b.hDefined = max(config.ParseInt(v, 0), 0), true
	}
	b.hidden = config.ParseInt(sec.ReadString("Hidden"), 0) != 0
	b.solid = config.ParseColor(sec.ReadString("SolidColor"), gfx.Transparent)
	b.aa = config.ParseInt(sec.ReadString("AntiAlias"), 0) != 0
}

func (b *base) Name() string { return b.name }

func (b *base) Bounds() gfx.IntRect { return gfx.IRect(b.x, b.y, b.w, b.h) }

// draw prepares c for the meter and fills its background. It reports
// false for hidden meters.
func (b *base) draw(c *canvas.Canvas) bool {
	if b.hidden {
		return false
	}
	c.SetAntiAliasing(b.aa)
	if b.solid.A > 0 {
		c.FillRectangle(b.Bounds().Rect(), b.solid)
	}
	return true
}

func (b *base) inBounds(x, y int) bool {
	return !b.hidden && x >= b.x && y >= b.y && x < b.x+b.w && y < b.y+b.h
}
