package coverage

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gfx/geom"
)

func rectPolys(x, y, w, h float64) []geom.Polygon {
	return geom.Rectangle(x, y, w, h).Flatten(geom.DefaultTolerance)
}

func TestMaskPixelAligned(t *testing.T) {
	m := Mask(rectPolys(2, 2, 4, 4), image.Rect(0, 0, 10, 10), true)
	if m == nil {
		t.Fatal("Mask() = nil")
	}
	if m.Bounds() != image.Rect(2, 2, 6, 6) {
		t.Errorf("Bounds() = %v, want (2,2)-(6,6)", m.Bounds())
	}
	for _, a := range m.Pix {
		if a != 0xff {
			t.Fatalf("pixel-aligned coverage = %d, want 255", a)
		}
	}
}

func TestMaskAliased(t *testing.T) {
	// Covers the left three quarters of pixel 2 and a quarter of pixel 5.
	polys := rectPolys(2.25, 0, 3, 1)
	aa := Mask(polys, image.Rect(0, 0, 10, 1), true)
	if got := aa.AlphaAt(2, 0).A; got == 0 || got == 0xff {
		t.Errorf("anti-aliased edge coverage = %d, want partial", got)
	}
	hard := Mask(polys, image.Rect(0, 0, 10, 1), false)
	tests := []struct {
		x    int
		want uint8
	}{
		{2, 0xff},
		{3, 0xff},
		{5, 0},
	}
	for _, tt := range tests {
		if got := hard.AlphaAt(tt.x, 0).A; got != tt.want {
			t.Errorf("aliased coverage at %d = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestMaskOutsideClip(t *testing.T) {
	if m := Mask(rectPolys(20, 20, 5, 5), image.Rect(0, 0, 10, 10), true); m != nil {
		t.Errorf("Mask() outside clip = %v, want nil", m.Bounds())
	}
}

func TestIntersect(t *testing.T) {
	m := Mask(rectPolys(0, 0, 4, 1), image.Rect(0, 0, 4, 1), true)
	clip := image.NewAlpha(image.Rect(0, 0, 2, 1))
	clip.Pix[0] = 0xff
	clip.Pix[1] = 0x80
	Intersect(m, clip)
	want := []uint8{0xff, 0x80, 0, 0}
	for i, w := range want {
		if m.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, m.Pix[i], w)
		}
	}
}

func TestFillColorOver(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Clear(dst, dst.Bounds(), color.RGBA{B: 255, A: 255})
	Fill(dst, rectPolys(1, 1, 2, 2), dst.Bounds(), true, color.RGBA{R: 128, A: 128}, nil)

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("outside pixel = %v", got)
	}
	got := dst.RGBAAt(1, 1)
	if got.R != 128 || got.A != 255 || got.B < 126 || got.B > 128 {
		t.Errorf("blended pixel = %v, want R=128 B~127 A=255", got)
	}
}

func TestClearRespectsClip(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Clear(dst, image.Rect(1, 1, 3, 3), color.RGBA{G: 255, A: 255})
	if dst.RGBAAt(0, 0).A != 0 || dst.RGBAAt(2, 2).G != 255 {
		t.Error("Clear() did not honor the clip rectangle")
	}
}
