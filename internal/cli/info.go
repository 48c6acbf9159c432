package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/gfx/meter"
)

func newInfoCmd() *cobra.Command {
	var opts skinOptions

	cmd := &cobra.Command{
		Use:   "info SKIN",
		Short: "List the meters of a skin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			win, err := loadWindow(loggerFromContext(cmd.Context()), args[0], opts)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), win)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.lang, "lang", "", "BCP 47 language used for text shaping and case mapping")
	return cmd
}

func printInfo(w io.Writer, win *meter.Window) {
	width, height := win.Size()
	printKeyValue(w, "Size", fmt.Sprintf("%dx%d", width, height))
	printKeyValue(w, "Meters", strconv.Itoa(len(win.Meters())))
	for _, m := range win.Meters() {
		b := m.Bounds()
		_, _ = fmt.Fprintln(w)
		printTitle(w, m.Name())
		printKeyValue(w, "Kind", meterKind(m))
		printKeyValue(w, "Bounds", fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.W, b.H))
		switch m := m.(type) {
		case *meter.Shape:
			res := m.Result()
			printKeyValue(w, "Shapes", styleNumber.Render(strconv.Itoa(m.Shapes().Len())))
			if res.Errors > 0 || res.Warnings > 0 {
				printWarning(w, "%d errors, %d warnings", res.Errors, res.Warnings)
			}
		case *meter.String:
			printKeyValue(w, "Text", strconv.Quote(m.Text()))
		}
	}
}
