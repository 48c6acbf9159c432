package shape

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/config"
)

// recordHandler captures log records for assertions.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h *recordHandler) WithGroup(string) slog.Handler            { return h }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

// count returns how many records have the level and message.
func (h *recordHandler) count(level slog.Level, msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level && r.Message == msg {
			n++
		}
	}
	return n
}

func build(t *testing.T, sec config.MapSection, opts ...Option) (Result, *recordHandler) {
	t.Helper()
	h := &recordHandler{}
	opts = append([]Option{WithLogger(slog.New(h))}, opts...)
	return NewBuilder(opts...).Build(sec), h
}

func TestBuildBoundsTracking(t *testing.T) {
	tests := []struct {
		name  string
		sec   config.MapSection
		w, h  int
		count int
	}{
		{"single", config.MapSection{"Shape": "Rectangle 0,0,10,20"}, 10, 20, 1},
		{"max of several", config.MapSection{
			"Shape":  "Rectangle 5,5,10,10",
			"Shape2": "Rectangle 0,30,4,4",
			"Shape3": "Rectangle(40,0,2,2)",
		}, 42, 34, 3},
		{"offset moves bounds", config.MapSection{"Shape": "Rectangle 0,0,10,10 | Offset 5,7"}, 15, 17, 1},
		{"formulas", config.MapSection{"Shape": "Rectangle 0,0,(5*4),(100/4)"}, 20, 25, 1},
		{"rounded", config.MapSection{"Shape": "Rectangle 2,3,10,10,4"}, 12, 13, 1},
		{"empty section", config.MapSection{}, 0, 0, 0},
		{"stops at gap", config.MapSection{"Shape": "Rectangle 0,0,1,1", "Shape3": "Rectangle 0,0,99,99"}, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := build(t, tt.sec)
			if res.Width != tt.w || res.Height != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", res.Width, res.Height, tt.w, tt.h)
			}
			if res.Shapes.Len() != tt.count {
				t.Errorf("Len() = %d, want %d", res.Shapes.Len(), tt.count)
			}
			if res.Errors != 0 {
				t.Errorf("Errors = %d, want 0", res.Errors)
			}
		})
	}
}

func TestBuildFixedSize(t *testing.T) {
	sec := config.MapSection{"Shape": "Rectangle 0,0,50,60"}
	res, _ := build(t, sec, WithWidth(5))
	if res.Width != 5 || res.Height != 60 {
		t.Errorf("size = %dx%d, want fixed width 5 and height 60", res.Width, res.Height)
	}
	res, _ = build(t, sec, WithWidth(100), WithHeight(100))
	if res.Width != 100 || res.Height != 100 {
		t.Errorf("size = %dx%d, want 100x100", res.Width, res.Height)
	}
}

func combinedArea(t *testing.T, op string) float64 {
	t.Helper()
	res, h := build(t, config.MapSection{
		"Shape":  "Rectangle 100,100,1,1",
		"Shape2": "Rectangle 0,0,10,10",
		"Shape3": "Rectangle 5,5,10,10",
		"Shape4": "Combine Shape2 | " + op + " Shape3",
	})
	if res.Errors != 0 {
		t.Fatalf("%s: %d errors: %v", op, res.Errors, h.records)
	}
	node := res.Shapes.At(3)
	if node.Kind() != KindCombined {
		t.Fatalf("%s: node kind = %v", op, node.Kind())
	}
	if !res.Shapes.At(1).IsCombined() || !res.Shapes.At(2).IsCombined() || res.Shapes.At(0).IsCombined() {
		t.Errorf("%s: combined marks wrong", op)
	}
	return node.Geometry().Area()
}

func TestBuildCombineAreas(t *testing.T) {
	const a2, a3 = 100.0, 100.0
	union := combinedArea(t, "Union")
	inter := combinedArea(t, "Intersect")
	xor := combinedArea(t, "Xor")
	exclude := combinedArea(t, "Exclude")
	if union < max(a2, a3) {
		t.Errorf("union area %v < max operand area", union)
	}
	if inter > min(a2, a3) {
		t.Errorf("intersect area %v > min operand area", inter)
	}
	if !approx(xor, union-inter, 1e-6) {
		t.Errorf("xor area %v, want union-intersect %v", xor, union-inter)
	}
	if !approx(exclude, a2-inter, 1e-6) {
		t.Errorf("exclude area %v, want parent minus overlap %v", exclude, a2-inter)
	}
}

func TestBuildExcludeIsParentMinusOperand(t *testing.T) {
	res, _ := build(t, config.MapSection{
		"Shape":  "Rectangle 0,0,10,10",
		"Shape2": "Rectangle 5,0,10,10",
		"Shape3": "Combine Shape | Exclude Shape2",
	})
	if !res.Shapes.Contains(gfx.Pt(2, 5)) {
		t.Error("parent-only region should remain")
	}
	if res.Shapes.Contains(gfx.Pt(7, 5)) || res.Shapes.Contains(gfx.Pt(12, 5)) {
		t.Error("operand region should be removed and the operand not drawn")
	}
}

func TestBuildSelfReference(t *testing.T) {
	res, h := build(t, config.MapSection{
		"Shape":  "Rectangle 0,0,10,10",
		"Shape2": "Combine Shape2 | Union Shape",
	})
	if n := h.count(slog.LevelError, "cannot combine with"); n != 1 {
		t.Errorf("got %d self-reference errors, want 1", n)
	}
	if res.Shapes.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (no node for the self-reference)", res.Shapes.Len())
	}
	if res.Shapes.At(0).IsCombined() {
		t.Error("Shape should not be marked combined")
	}
}

func TestBuildOperandErrors(t *testing.T) {
	tests := []struct {
		name    string
		operand string
		msg     string
	}{
		{"out of range", "Union Shape9", "definition contains invalid shape identifier"},
		{"self", "Union Shape3", "cannot combine with"},
		{"bad op", "Merge Shape2", "definition contains invalid combine"},
		{"degenerate", "Union Shape4", "could not combine with"},
		{"not a shape", "Union Foo", "definition contains invalid shape identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, h := build(t, config.MapSection{
				"Shape":  "Rectangle 0,0,10,10",
				"Shape2": "Rectangle 5,5,10,10",
				"Shape3": "Combine Shape | Union Shape2 | " + tt.operand + " | FillColor 0,255,0",
				"Shape4": "Rectangle 0,0,0,10",
			})
			if n := h.count(slog.LevelError, tt.msg); n != 1 {
				t.Errorf("got %d %q errors, want 1", n, tt.msg)
			}
			node := res.Shapes.At(2)
			if got := node.Geometry().Area(); !approx(got, 100, 1e-9) {
				t.Errorf("node area = %v, want the parent clone (100)", got)
			}
			if node.FillColor() != gfx.White {
				t.Error("modifiers of an abandoned combine should not apply")
			}
			if !res.Shapes.At(0).IsCombined() {
				t.Error("parent should stay marked combined")
			}
			if res.Shapes.At(1).IsCombined() {
				t.Error("operands of an abandoned combine should not be marked")
			}
		})
	}
}

func TestBuildCombineReferences(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		res, _ := build(t, config.MapSection{
			"Shape":  "Combine Shape2 | Union Shape3",
			"Shape2": "Rectangle 0,0,10,10",
			"Shape3": "Rectangle 10,0,10,10",
		})
		if res.Errors != 0 || !approx(res.Shapes.At(0).Geometry().Area(), 200, 1e-6) {
			t.Errorf("errors %d area %v, want 0 and 200", res.Errors, res.Shapes.At(0).Geometry().Area())
		}
		if d := res.Shapes.Drawable(); len(d) != 1 || d[0] != res.Shapes.At(0) {
			t.Errorf("drawable = %d shapes, want only the combined node", len(d))
		}
		if res.Width != 20 || res.Height != 10 {
			t.Errorf("size = %dx%d, want 20x10", res.Width, res.Height)
		}
	})
	t.Run("chained", func(t *testing.T) {
		res, _ := build(t, config.MapSection{
			"Shape":  "Rectangle 0,0,10,10",
			"Shape2": "Rectangle 10,0,10,10",
			"Shape3": "Combine Shape | Union Shape2",
			"Shape4": "Rectangle 5,0,10,10",
			"Shape5": "Combine Shape3 | Exclude Shape4",
		})
		if res.Errors != 0 {
			t.Fatalf("Errors = %d", res.Errors)
		}
		if got := res.Shapes.At(4).Geometry().Area(); !approx(got, 100, 1e-6) {
			t.Errorf("chained area = %v, want 100", got)
		}
		if d := res.Shapes.Drawable(); len(d) != 1 {
			t.Errorf("drawable = %d shapes, want 1", len(d))
		}
	})
	t.Run("later combine is unbuilt", func(t *testing.T) {
		res, h := build(t, config.MapSection{
			"Shape":  "Rectangle 0,0,10,10",
			"Shape2": "Combine Shape3",
			"Shape3": "Combine Shape",
		})
		if n := h.count(slog.LevelError, "definition contains invalid shape reference"); n != 1 {
			t.Errorf("got %d reference errors, want 1", n)
		}
		if res.Shapes.Len() != 2 {
			t.Errorf("Len() = %d, want 2", res.Shapes.Len())
		}
	})
	t.Run("zero operands clone", func(t *testing.T) {
		res, _ := build(t, config.MapSection{
			"Shape":  "Rectangle 0,0,10,10 | FillColor 255,0,0",
			"Shape2": "Combine Shape | Offset 20,0",
		})
		node := res.Shapes.At(1)
		if node.Kind() != KindCombined || node.FillColor() != gfx.RGB(255, 0, 0) {
			t.Errorf("clone kind %v fill %v", node.Kind(), node.FillColor())
		}
		if res.Width != 30 {
			t.Errorf("Width = %d, want 30 from the offset clone only", res.Width)
		}
	})
}

func TestBuildPrimitiveFailureStopsScan(t *testing.T) {
	res, h := build(t, config.MapSection{
		"Shape":  "Rectangle 0,0,10,10",
		"Shape2": "Combine Shape",
		"Shape3": "Rectangle 1,2",
		"Shape4": "Rectangle 0,0,50,50",
		"Shape5": "Combine Shape4",
	})
	if n := h.count(slog.LevelError, "Rectangle has too few parameters"); n != 1 {
		t.Errorf("got %d too-few errors, want 1", n)
	}
	if res.Shapes.Len() != 2 {
		t.Errorf("Len() = %d, want Shape and its earlier Combine", res.Shapes.Len())
	}
	if res.Width != 10 {
		t.Errorf("Width = %d, want 10", res.Width)
	}

	_, h = build(t, config.MapSection{"Shape": "Circle 1,2,3"})
	if n := h.count(slog.LevelError, "Invalid shape"); n != 1 {
		t.Errorf("got %d invalid shape errors, want 1", n)
	}
}

func TestBuildModifiers(t *testing.T) {
	res, h := build(t, config.MapSection{
		"Shape": "Rectangle 0,0,10,10 | fillcolor 255,0,0,128 | StrokeColor 00FF00 | StrokeWidth 3 | Rotate 90,5,5 | Bogus 1",
	})
	s := res.Shapes.At(0)
	if s.FillColor() != gfx.ARGB(128, 255, 0, 0) {
		t.Errorf("fill = %v", s.FillColor())
	}
	if s.StrokeColor() != gfx.RGB(0, 255, 0) {
		t.Errorf("stroke = %v", s.StrokeColor())
	}
	if s.StrokeWidth() != 3 {
		t.Errorf("stroke width = %v", s.StrokeWidth())
	}
	if deg, anchor := s.Rotation(); deg != 90 || anchor != gfx.Pt(5, 5) {
		t.Errorf("rotation = %v around %v", deg, anchor)
	}
	if n := h.count(slog.LevelError, "Invalid shape modifier"); n != 1 {
		t.Errorf("got %d invalid modifier errors, want 1", n)
	}

	res, h = build(t, config.MapSection{"Shape": "Rectangle 0,0,10,10 | Offset 5 | Rotate | Rotate 30,1"})
	if n := h.count(slog.LevelError, "Offset has too few parameters"); n != 1 {
		t.Errorf("got %d offset errors, want 1", n)
	}
	if n := h.count(slog.LevelWarn, "Rotate has too few parameters"); n != 1 {
		t.Errorf("got %d rotate warnings, want 1", n)
	}
	if deg, anchor := res.Shapes.At(0).Rotation(); deg != 30 || anchor != (gfx.Point{}) {
		t.Errorf("Rotate 30,1 = %v around %v, want 30 around the default anchor", deg, anchor)
	}
}

func TestBuildNegativeStrokeWidth(t *testing.T) {
	res, h := build(t, config.MapSection{"Shape": "Rectangle 0,0,10,10 | StrokeWidth -5"})
	if got := res.Shapes.At(0).StrokeWidth(); got != 0 {
		t.Errorf("StrokeWidth = %v, want 0", got)
	}
	if n := h.count(slog.LevelWarn, "StrokeWidth must not be negative"); n != 1 {
		t.Errorf("got %d warnings, want exactly 1", n)
	}
	if res.Warnings != 1 || res.Errors != 0 {
		t.Errorf("Warnings = %d Errors = %d, want 1 and 0", res.Warnings, res.Errors)
	}
}

func TestBuildExtend(t *testing.T) {
	res, h := build(t, config.MapSection{
		"Shape":  "Rectangle 0,0,10,10 | Extend Style, Empty",
		"Style":  "FillColor 255,0,0 | Extend Nested",
		"Nested": "StrokeWidth 7",
	})
	s := res.Shapes.At(0)
	if s.FillColor() != gfx.RGB(255, 0, 0) {
		t.Errorf("extended fill = %v, want red", s.FillColor())
	}
	if s.StrokeWidth() != 1 {
		t.Errorf("stroke width = %v, nested Extend should not apply", s.StrokeWidth())
	}
	if n := h.count(slog.LevelError, "Extend cannot be used recursively"); n != 1 {
		t.Errorf("got %d recursion errors, want 1", n)
	}
}
