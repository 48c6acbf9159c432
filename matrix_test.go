package gfx

import (
	"math"
	"testing"
)

func approxPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate after scale: the point is scaled first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(12, 2); !approxPoint(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestRotateDegreesExact(t *testing.T) {
	tests := []struct {
		deg  float64
		in   Point
		want Point
	}{
		{0, Pt(1, 0), Pt(1, 0)},
		{90, Pt(1, 0), Pt(0, 1)},
		{180, Pt(1, 0), Pt(-1, 0)},
		{270, Pt(1, 0), Pt(0, -1)},
		{-90, Pt(1, 0), Pt(0, -1)},
		{45, Pt(1, 0), Pt(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, tt := range tests {
		got := RotateDegrees(tt.deg).TransformPoint(tt.in)
		if !approxPoint(got, tt.want) {
			t.Errorf("RotateDegrees(%v) * %v = %v, want %v", tt.deg, tt.in, got, tt.want)
		}
	}
	m := RotateDegrees(90)
	if m.A != 0 || m.E != 0 {
		t.Errorf("RotateDegrees(90) should be exact, got %+v", m)
	}
}

func TestRotateAround(t *testing.T) {
	m := RotateAround(90, 5, 5)
	if got := m.TransformPoint(Pt(5, 5)); !approxPoint(got, Pt(5, 5)) {
		t.Errorf("anchor moved to %v", got)
	}
	if got := m.TransformPoint(Pt(10, 5)); !approxPoint(got, Pt(5, 10)) {
		t.Errorf("RotateAround(90) * (10,5) = %v, want (5,10)", got)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(RotateDegrees(30)).Multiply(Scale(2, 0.5))
	p := Pt(7, -2)
	got := m.Invert().TransformPoint(m.TransformPoint(p))
	if !approxPoint(got, p) {
		t.Errorf("Invert round trip = %v, want %v", got, p)
	}
	if !(Matrix{}).Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestAllowsAxisAlignedClip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale", Scale(2, 3), true},
		{"translation", Translate(1, 0), false},
		{"rotation", RotateDegrees(30), false},
		{"shear", Matrix{A: 1, B: 0.5, E: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.AllowsAxisAlignedClip(); got != tt.want {
				t.Errorf("AllowsAxisAlignedClip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformRect(t *testing.T) {
	r := RotateDegrees(90).TransformRect(RectF(0, 0, 10, 20))
	want := RectF(-20, 0, 20, 10)
	if math.Abs(r.X-want.X) > 1e-9 || math.Abs(r.W-want.W) > 1e-9 || math.Abs(r.H-want.H) > 1e-9 {
		t.Errorf("TransformRect = %+v, want %+v", r, want)
	}
}
