package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the gfxskin CLI until the command finishes or ctx is
// cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "gfxskin",
		Short:        "gfxskin renders skin files",
		Long:         `gfxskin loads a TOML skin of shape, string and image meters and renders it to a PNG image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gfxskin %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newHitCmd())

	return root
}
