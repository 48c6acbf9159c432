package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHitCmd() *cobra.Command {
	var opts skinOptions

	cmd := &cobra.Command{
		Use:   "hit SKIN X Y",
		Short: "Report the meter under a point of the rendered skin",
		Long: `Report the meter under a point of the rendered skin.

A point over a transparent pixel hits nothing, even inside a meter's
bounds.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}
			win, err := loadWindow(loggerFromContext(cmd.Context()), args[0], opts)
			if err != nil {
				return err
			}
			if _, err := win.Render(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if m := win.HitTest(x, y); m != nil {
				printSuccess(w, "%s (%s)", m.Name(), meterKind(m))
			} else {
				printWarning(w, "no meter at %d,%d", x, y)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.lang, "lang", "", "BCP 47 language used for text shaping and case mapping")
	return cmd
}
