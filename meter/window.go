package meter

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
)

// WindowSection holds the skin-wide options Width, Height and
// SolidColor.
const WindowSection = "Skin"

// Window is the set of meters of one skin drawn on one canvas.
type Window struct {
	log        *slog.Logger
	canvas     *canvas.Canvas
	meters     []Meter
	background gfx.Color
	width      int
	height     int
	fixedW     bool
	fixedH     bool
}

// Option configures Load.
type Option func(*Context)

// WithEnvironment sets the rendering environment.
func WithEnvironment(env *canvas.Environment) Option {
	return func(ctx *Context) { ctx.Env = env }
}

// WithLogger sets the logger for parse problems and skipped meters.
func WithLogger(l *slog.Logger) Option {
	return func(ctx *Context) { ctx.Log = l }
}

// WithDir sets the directory relative file names resolve against.
func WithDir(dir string) Option {
	return func(ctx *Context) { ctx.Dir = dir }
}

// Load creates the meters of skin in file order. Sections that fail to
// load are logged and skipped; if no meter loads the joined errors are
// returned with ErrNoMeters.
func Load(skin *config.Skin, opts ...Option) (*Window, error) {
	ctx := Context{}
	for _, opt := range opts {
		opt(&ctx)
	}
	if ctx.Env == nil {
		ctx.Env = canvas.NewEnvironment(canvas.WithLogger(ctx.Log))
	}
	w := &Window{log: ctx.logger(), canvas: canvas.New(ctx.Env)}

	sec := skin.Section(WindowSection)
	w.background = config.ParseColor(sec.ReadString("SolidColor"), gfx.Transparent)
	if v := sec.ReadString("Width"); v != "" {
		w.width, w.fixedW = config.ParseInt(v, 0), true
	}
	if v := sec.ReadString("Height"); v != "" {
		w.height, w.fixedH = config.ParseInt(v, 0), true
	}

	var errs []error
	for _, name := range skin.Sections() {
		s := skin.Section(name)
		if s.ReadString("Meter") == "" {
			continue
		}
		m, err := New(ctx, name, s)
		if err != nil {
			w.log.Error("meter: skipped", "section", name, "err", err)
			errs = append(errs, err)
			continue
		}
		if sm, ok := m.(interface{ Measure(*canvas.Canvas) }); ok {
			sm.Measure(w.canvas)
		}
		w.meters = append(w.meters, m)
	}
	if len(w.meters) == 0 {
		return nil, errors.Join(append([]error{ErrNoMeters}, errs...)...)
	}

	for _, m := range w.meters {
		b := m.Bounds()
		if !w.fixedW {
			w.width = max(w.width, b.X+b.W)
		}
		if !w.fixedH {
			w.height = max(w.height, b.Y+b.H)
		}
	}
	w.width, w.height = max(w.width, 1), max(w.height, 1)
	w.log.Debug("meter: loaded", "meters", len(w.meters), "width", w.width, "height", w.height)
	return w, nil
}

// Meters returns the meters in drawing order.
func (w *Window) Meters() []Meter { return w.meters }

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Canvas returns the canvas the window draws on.
func (w *Window) Canvas() *canvas.Canvas { return w.canvas }

// Render draws every meter and returns the surface. The surface is reused
// by the next Render.
func (w *Window) Render() (*gfx.Surface, error) {
	c := w.canvas
	if c.Width() != w.width || c.Height() != w.height {
		if err := c.Resize(w.width, w.height); err != nil {
			return nil, err
		}
	}
	if err := c.BeginDraw(); err != nil {
		return nil, err
	}
	c.ResetTransform()
	c.Clear(w.background)
	for _, m := range w.meters {
		m.Draw(c)
	}
	c.EndDraw()
	return c.Surface(), nil
}

// HitTest returns the topmost meter at (x, y) whose pixel there is not
// transparent, or nil.
func (w *Window) HitTest(x, y int) Meter {
	if w.canvas.Surface() != nil && w.canvas.IsTransparentPixel(x, y) {
		return nil
	}
	for i := len(w.meters) - 1; i >= 0; i-- {
		if w.meters[i].HitTest(x, y) {
			return w.meters[i]
		}
	}
	return nil
}
