package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	skinOptions
	output string
	watch  bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render SKIN",
		Short: "Render a skin to a PNG image",
		Long: `Render a skin to a PNG image.

The output defaults to the skin file name with a .png extension. With
--watch the skin is rendered again every time the file is written, until
the command is interrupted.`,
		Example: `  gfxskin render ~/skins/clock.toml
  gfxskin render clock.toml -o out/clock.png --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = defaultOutput(args[0])
			}
			if opts.watch {
				return watchSkin(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "render again when the skin changes")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "BCP 47 language used for text shaping and case mapping")

	return cmd
}

// defaultOutput replaces the extension of the skin path with .png.
func defaultOutput(skin string) string {
	return strings.TrimSuffix(skin, filepath.Ext(skin)) + ".png"
}

func runRender(ctx context.Context, w io.Writer, path string, opts renderOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	win, err := loadWindow(logger, path, opts.skinOptions)
	if err != nil {
		return err
	}
	surf, err := win.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	out, err := homedir.Expand(opts.output)
	if err != nil {
		return fmt.Errorf("expand %s: %w", opts.output, err)
	}
	if err := surf.SavePNG(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	width, height := win.Size()
	prog.done("Render complete")
	printSuccess(w, "Rendered %d meters at %dx%d", len(win.Meters()), width, height)
	printFile(w, out)
	return nil
}
