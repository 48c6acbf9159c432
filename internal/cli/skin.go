package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/config"
	"github.com/gogpu/gfx/meter"
)

// skinOptions are the flags shared by commands that load a skin.
type skinOptions struct {
	lang string
}

// loadWindow reads the skin at path and creates its meters. Image names
// in the skin resolve against the skin's directory.
func loadWindow(logger *log.Logger, path string, opts skinOptions) (*meter.Window, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}
	skin, err := config.LoadSkin(path)
	if err != nil {
		return nil, err
	}
	sl := installLogger(logger)
	env := canvas.NewEnvironment(canvas.WithLogger(sl), canvas.WithLanguage(opts.lang))
	return meter.Load(skin,
		meter.WithEnvironment(env),
		meter.WithLogger(sl),
		meter.WithDir(filepath.Dir(path)),
	)
}

// meterKind names the kind of m as written in the Meter key.
func meterKind(m meter.Meter) string {
	switch m.(type) {
	case *meter.Shape:
		return "Shape"
	case *meter.String:
		return "String"
	case *meter.Image:
		return "Image"
	default:
		return fmt.Sprintf("%T", m)
	}
}
