package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gfx"
)

const testSkin = `
[Skin]
SolidColor = "0,0,0,255"

[Box]
Meter = "Shape"
X = 2
Y = 2
Shape = "Rectangle 0,0,20,10 | FillColor 255,0,0"
`

func writeSkin(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "box.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := gfx.Logger()
	t.Cleanup(func() { gfx.SetLogger(prev) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		skin string
		want string
	}{
		{"clock.toml", "clock.png"},
		{"skins/clock.toml", "skins/clock.png"},
		{"clock", "clock.png"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.skin); got != tt.want {
			t.Errorf("defaultOutput(%q) = %q, want %q", tt.skin, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	skin := writeSkin(t, testSkin)
	out := filepath.Join(filepath.Dir(skin), "out.png")

	stdout, err := run(t, "render", skin, "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Rendered 1 meters at 22x12") {
		t.Errorf("unexpected output %q", stdout)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 22 || b.Dy() != 12 {
		t.Fatalf("image size %dx%d, want 22x12", b.Dx(), b.Dy())
	}
	r, g, _, a := img.At(10, 6).RGBA()
	if r>>8 != 255 || g != 0 || a>>8 != 255 {
		t.Errorf("pixel (10,6) = %v, want opaque red", img.At(10, 6))
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	skin := writeSkin(t, testSkin)
	if _, err := run(t, "render", skin); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(defaultOutput(skin)); err != nil {
		t.Errorf("default output not written: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"missing skin", []string{"render", filepath.Join(dir, "missing.toml")}},
		{"no meters", []string{"render", writeSkin(t, "[Skin]\nWidth = 10\n")}},
		{"no arguments", []string{"render"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInfoCommand(t *testing.T) {
	stdout, err := run(t, "info", writeSkin(t, testSkin))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"22x12", "Box", "Shape", "2,2 20x10"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("info output missing %q:\n%s", want, stdout)
		}
	}
}

func TestHitCommand(t *testing.T) {
	skin := writeSkin(t, testSkin)
	tests := []struct {
		x, y string
		want string
	}{
		{"10", "6", "Box (Shape)"},
		{"0", "0", "no meter at 0,0"},
	}
	for _, tt := range tests {
		stdout, err := run(t, "hit", skin, tt.x, tt.y)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout, tt.want) {
			t.Errorf("hit %s,%s = %q, want %q", tt.x, tt.y, stdout, tt.want)
		}
	}
	if _, err := run(t, "hit", skin, "x", "1"); err == nil {
		t.Error("non-numeric coordinate should fail")
	}
}
