package geom

import (
	"testing"

	"github.com/gogpu/gfx"
)

func TestStrokeSquare(t *testing.T) {
	polys := Rectangle(0, 0, 10, 10).Stroke(2)
	tests := []struct {
		pt   gfx.Point
		want bool
	}{
		{gfx.Pt(5, 0.5), true},
		{gfx.Pt(5, -0.5), true},
		{gfx.Pt(10.9, 5), true},
		{gfx.Pt(-0.9, -0.9), true}, // miter corner
		{gfx.Pt(5, 5), false},
		{gfx.Pt(5, -1.5), false},
	}
	for _, tt := range tests {
		if got := Winding(polys, tt.pt) != 0; got != tt.want {
			t.Errorf("stroke covers %v = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestStrokePiecesPositive(t *testing.T) {
	for _, p := range RoundedRectangle(0, 0, 30, 20, 6, 6).Stroke(3) {
		if p.Area() < 0 {
			t.Fatalf("piece %v has negative orientation", p)
		}
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	if got := Rectangle(0, 0, 10, 10).Stroke(0); got != nil {
		t.Errorf("Stroke(0) = %v, want nil", got)
	}
}

func TestStrokeSharpCornerBevels(t *testing.T) {
	// A very thin triangle has a tip sharper than the miter limit.
	tri := Polygon{gfx.Pt(0, 0), gfx.Pt(100, 1), gfx.Pt(0, 2)}
	polys := StrokePolygons([]Polygon{tri}, 2, DefaultMiterLimit)
	bb := PolygonBounds(polys)
	if bb.Right() > 110 {
		t.Errorf("tip extends to %v, want a bevel near 101", bb.Right())
	}
}
