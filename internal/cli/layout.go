package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/config"
	"github.com/matzehuels/chartkit/pkg/schedule"
	"github.com/matzehuels/chartkit/pkg/sink"
)

// settleSlack is added to the count duration when waiting for charts to
// finish text fitting and counting.
const settleSlack = time.Second

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

type layoutOptions struct {
	output  string
	compact bool
	settle  bool
	watch   bool
}

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOptions{settle: true}

	cmd := &cobra.Command{
		Use:   "layout [charts.toml]",
		Short: "Compute chart layouts from a definition file",
		Long: `Compute chart layouts from a TOML definition file.

Every [[gauge]], [[card]] and [[pie]] in the file is laid out and the result
is written as JSON. Text fitting and card counts run to completion on a
virtual clock first, so the output shows the settled state. Use --settle=false
to export the layout as it is right after the update instead.

Use -o - to write to stdout. With --watch the layout is recomputed every
time the definition file changes, until interrupted.

YAML definitions (.yaml, .yml) are accepted as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return c.watchLayout(cmd.Context(), args[0], opts, cmd.OutOrStdout())
			}
			return c.runLayout(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "write compact JSON")
	cmd.Flags().BoolVar(&opts.settle, "settle", opts.settle, "run text fitting and counts to completion")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "recompute whenever the definition file changes")

	return cmd
}

// runLayout loads the definitions, lays out every chart and writes the JSON.
func (c *CLI) runLayout(ctx context.Context, input string, opts layoutOptions, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := config.Load(input)
	if err != nil {
		return err
	}

	doc, err := buildDocument(f, logger, opts.settle)
	if err != nil {
		return fmt.Errorf("lay out %s: %w", input, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	jsonOpts := []sink.JSONOption{
		sink.WithJSONVersion(buildinfo.Short()),
		sink.WithJSONLocale(f.Locale),
	}
	if opts.compact {
		jsonOpts = append(jsonOpts, sink.WithJSONCompact())
	}
	data, err := sink.RenderJSON(doc, jsonOpts...)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	prog.done(fmt.Sprintf("Laid out %d charts", doc.Len()))

	if opts.output == "-" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess(stdout, "Layout complete")
	printFile(stdout, outputPath)
	printNextStep(stdout, "Preview counts", appName+" count --to <value>")
	return nil
}

// watchLayout runs the layout once and again after every change to input.
// Failed runs are reported and watching continues.
func (c *CLI) watchLayout(ctx context.Context, input string, opts layoutOptions, stdout io.Writer) error {
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory.
	target := filepath.Clean(input)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", input, err)
	}

	relayout := func() {
		if err := c.runLayout(ctx, input, opts, stdout); err != nil {
			printError(stdout, "%v", err)
		}
	}
	relayout()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("definition file changed", "path", ev.Name, "op", ev.Op.String())
			debounce = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-debounce:
			debounce = nil
			relayout()
		}
	}
}

// buildDocument creates every chart in f on a virtual clock, updates it once
// and collects the layouts. With settle set, deferred text fitting and count
// animations run before the layouts are read.
func buildDocument(f *config.File, logger *log.Logger, settle bool) (sink.Document, error) {
	var doc sink.Document

	common, err := f.Options(logger)
	if err != nil {
		return doc, err
	}
	sched := schedule.NewManual(time.Now())

	gauges := make([]*chart.LinearGauge, 0, len(f.Gauges))
	for _, def := range f.Gauges {
		opts, err := def.Options()
		if err != nil {
			return doc, err
		}
		g, err := chart.NewLinearGauge(sched, slices.Concat(common, opts)...)
		if err != nil {
			return doc, fmt.Errorf("%s: %w", def.Name, err)
		}
		g.Update(def.Input())
		gauges = append(gauges, g)
	}

	cards := make([]*chart.NumberCard, 0, len(f.Cards))
	for _, def := range f.Cards {
		opts, err := def.Options()
		if err != nil {
			return doc, err
		}
		card, err := chart.NewNumberCard(sched, slices.Concat(common, opts)...)
		if err != nil {
			return doc, fmt.Errorf("%s: %w", def.Name, err)
		}
		defer card.Close()
		card.Update(def.Input())
		cards = append(cards, card)
	}

	if settle && !sched.Settle(0, f.Duration.Duration+settleSlack) {
		logger.Warn("charts still updating after settle limit", "frames", sched.PendingFrames(), "timers", sched.PendingTimers())
	}

	for i, g := range gauges {
		doc.AddGauge(f.Gauges[i].Name, g.Layout())
	}
	for i, card := range cards {
		doc.AddCard(f.Cards[i].Name, card.Layout())
	}
	for _, def := range f.Pies {
		opts, err := def.Options()
		if err != nil {
			return doc, err
		}
		doc.AddPie(def.Name, chart.NewPieChart(slices.Concat(common, opts)...).Update(def.Input()))
	}

	logger.Debug("charts laid out", "gauges", len(doc.Gauges), "cards", len(doc.Cards), "pies", len(doc.Pies), "settled", settle)
	return doc, nil
}
