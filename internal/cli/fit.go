package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/schedule"
	"github.com/matzehuels/chartkit/pkg/textfit"
)

type fitOptions struct {
	width  float64
	height float64
	size   float64
}

// fitCommand creates the fit command for trying out text fitting.
func (c *CLI) fitCommand() *cobra.Command {
	opts := fitOptions{width: 200, height: 50, size: 12}

	cmd := &cobra.Command{
		Use:   "fit [text]",
		Short: "Fit text into a box",
		Long: `Fit text into a width x height box.

The text is measured with the built-in Go Regular face at --size and scaled
the way gauge text is: one pass, then one follow-up pass once the first
scale has been applied. The card font size a number card would pick for the
same box is printed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "available width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "available height in pixels")
	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "font size in pixels")

	return cmd
}

func runFit(ctx context.Context, w io.Writer, text string, opts fitOptions) error {
	logger := loggerFromContext(ctx)

	el, err := textfit.NewTextElement(text, opts.size)
	if err != nil {
		return err
	}
	available := textfit.Size{Width: opts.width, Height: opts.height}
	unscaled := el.Measure()

	sched := schedule.NewManual(time.Now())
	fitter := textfit.NewFitter(el, sched, textfit.WithLogger(logger))
	first := fitter.Fit(available)
	sched.Settle(0, time.Second)

	fontSize, ok := textfit.FitFontSize(unscaled, available, opts.size)

	printKeyValue(w, "text", fmt.Sprintf("%q", text))
	printKeyValue(w, "measured", formatSize(unscaled))
	printKeyValue(w, "available", formatSize(available))
	if first.Deferred {
		printError(w, "text has no extent, nothing to fit")
		return nil
	}
	printKeyValue(w, "scale", StyleNumber.Render(fmt.Sprintf("%g", fitter.Scale())))
	printKeyValue(w, "passes", fmt.Sprint(fitter.Passes()))
	printKeyValue(w, "fitted", formatSize(el.Measure()))
	if ok {
		printKeyValue(w, "card font", StyleNumber.Render(fmt.Sprintf("%gpx", fontSize)))
	}
	return nil
}

func formatSize(s textfit.Size) string {
	return fmt.Sprintf("%.1f x %.1f", s.Width, s.Height)
}
