package meter

import (
	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
	"github.com/gogpu/gfx/shape"
)

// Shape draws the shapes declared by the Shape, Shape2, ... keys.
type Shape struct {
	base
	shapes *shape.Set
	result shape.Result
}

func newShape(ctx Context, name string, sec config.Section) *Shape {
	m := &Shape{}
	m.readOptions(name, sec)
	opts := []shape.Option{shape.WithLogger(ctx.logger().With("meter", name))}
	if m.wDefined {
		opts = append(opts, shape.WithWidth(m.w))
	}
	if m.hDefined {
		opts = append(opts, shape.WithHeight(m.h))
	}
	m.result = shape.NewBuilder(opts...).Build(sec)
	m.shapes = m.result.Shapes
	m.w, m.h = m.result.Width, m.result.Height
	return m
}

// Shapes returns the built shapes.
func (m *Shape) Shapes() *shape.Set { return m.shapes }

// Result returns the outcome of parsing the shape keys.
func (m *Shape) Result() shape.Result { return m.result }

// Draw draws every shape that is not combined into another.
func (m *Shape) Draw(c *canvas.Canvas) {
	if !m.draw(c) {
		return
	}
	for _, sh := range m.shapes.Drawable() {
		c.DrawGeometry(sh, m.x, m.y)
	}
}

// HitTest reports whether a drawn shape contains (x, y).
func (m *Shape) HitTest(x, y int) bool {
	if m.hidden {
		return false
	}
	return m.shapes.Contains(gfx.Pt(float64(x-m.x), float64(y-m.y)))
}
