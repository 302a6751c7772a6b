package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/chartkit/pkg/animate"
	"github.com/matzehuels/chartkit/pkg/color"
	"github.com/matzehuels/chartkit/pkg/format"
	"github.com/matzehuels/chartkit/pkg/schedule"
)

type countOptions struct {
	from      float64
	to        float64
	step      float64
	precision int
	duration  time.Duration
	label     string
	scheme    string
	locale    string
	plain     bool
}

// countCommand creates the count command that plays a number card count.
func (c *CLI) countCommand() *cobra.Command {
	opts := countOptions{
		step:      10,
		precision: -1,
		duration:  animate.DefaultDuration,
		label:     "Value",
		scheme:    "cool",
		locale:    format.DefaultLocale,
	}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Play a number card count in the terminal",
		Long: `Play a number card count animation in the terminal.

The value counts from --from to --to with an exponential ease-out over
--duration. Intermediate values keep the target's precision; the last frame
shows the value formatted for --locale.

Keys: r replays, up/down change the target by --step and count from the
value currently shown, q quits.

With --plain the count runs on a virtual 60 fps clock and every frame is
printed on its own line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.plain {
				return runCountPlain(cmd.OutOrStdout(), opts)
			}
			return c.runCount(cmd.Context(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.from, "from", opts.from, "start value")
	cmd.Flags().Float64Var(&opts.to, "to", opts.to, "target value")
	cmd.Flags().Float64Var(&opts.step, "step", opts.step, "target change per up/down key")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimals shown while counting (-1: from the target)")
	cmd.Flags().DurationVar(&opts.duration, "duration", opts.duration, "count duration")
	cmd.Flags().StringVar(&opts.label, "label", opts.label, "card label")
	cmd.Flags().StringVar(&opts.scheme, "scheme", opts.scheme, "color scheme for the card")
	cmd.Flags().StringVar(&opts.locale, "locale", opts.locale, "locale for the final value")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print frames instead of running the interactive view")

	return cmd
}

// runCount drives an Animator from a real frame loop and renders its ticks
// with bubbletea.
func (c *CLI) runCount(ctx context.Context, opts countOptions) error {
	logger := loggerFromContext(ctx)

	fm, err := format.NewFormatter(opts.locale)
	if err != nil {
		return err
	}
	hex, err := cardColor(opts.scheme, opts.label)
	if err != nil {
		return err
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	loop := schedule.NewLoop()
	anim := animate.NewAnimator(loop, animate.WithDuration(opts.duration))
	defer anim.Cancel()

	var program *tea.Program
	start := countStarter(loop, anim, opts.precision, logger, func(msg tea.Msg) { program.Send(msg) })

	m := countModel{
		label:     format.TrimLabel(opts.label, 55),
		color:     lipgloss.Color(hex),
		formatter: fm,
		precision: opts.precision,
		from:      opts.from,
		target:    opts.to,
		step:      opts.step,
		text:      fm.Fixed(opts.from, countPrecision(opts.precision, opts.to)),
		start:     start,
		current:   anim.Value,
	}
	program = tea.NewProgram(m, tea.WithContext(gctx))

	g.Go(func() error {
		if err := loop.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer stop() // the view is gone, stop the frame loop
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("count view: %w", err)
		}
		return nil
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// runCountPlain prints every frame of a count run on a virtual clock.
func runCountPlain(w io.Writer, opts countOptions) error {
	fm, err := format.NewFormatter(opts.locale)
	if err != nil {
		return err
	}

	sched := schedule.NewManual(time.Now())
	precision := countPrecision(opts.precision, opts.to)
	animate.Count(sched, opts.from, opts.to, precision, opts.duration, func(t animate.Tick) {
		text := fm.Fixed(t.Value, precision)
		if t.Finished {
			text = fm.Format(t.Value)
		}
		fmt.Fprintf(w, "%7s  %s\n", t.Progress.Round(time.Millisecond), text)
	})
	if !sched.Settle(0, opts.duration+settleSlack) {
		return fmt.Errorf("count did not finish within %s", opts.duration+settleSlack)
	}
	return nil
}

// countStarter returns the function the view calls to (re)start a count.
// The count starts on the loop goroutine, where frame callbacks run, so the
// superseded count cannot deliver a tick after the new one started.
func countStarter(loop *schedule.Loop, anim *animate.Animator, precision int, logger *log.Logger, send func(tea.Msg)) func(from, to float64) {
	return func(from, to float64) {
		loop.Post(func() {
			h := anim.Start(from, to, precision, func(t animate.Tick) {
				send(countTickMsg{Tick: t, target: to})
			})
			logger.Debug("count started", "id", h.ID(), "from", from, "to", to, "precision", h.Precision())
		})
	}
}

// countPrecision returns precision, or the precision of to when it is negative.
func countPrecision(precision int, to float64) int {
	if precision < 0 {
		return animate.Precision(to)
	}
	return precision
}

// cardColor resolves the color a card labelled label gets from scheme.
func cardColor(scheme, label string) (string, error) {
	s, err := color.Lookup(scheme)
	if err != nil {
		return "", err
	}
	return color.Resolve(s.WithKind(color.Ordinal), []string{label}, nil, label), nil
}

// =============================================================================
// countModel - bubbletea view of a running count
// =============================================================================

type countTickMsg struct {
	animate.Tick
	target float64
}

type countModel struct {
	label     string
	color     lipgloss.Color
	formatter *format.Formatter
	precision int
	from      float64
	target    float64
	step      float64
	text      string
	finished  bool

	start   func(from, to float64)
	current func() float64
}

// Init starts the first count.
func (m countModel) Init() tea.Cmd {
	return func() tea.Msg {
		m.start(m.from, m.target)
		return nil
	}
}

// Update handles keys and count ticks. Ticks for a target other than the
// current one belong to a superseded count and are ignored.
func (m countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.finished = false
			return m, m.restart(m.from, m.target)
		case "up", "k", "+":
			m.target += m.step
			m.finished = false
			return m, m.restart(m.current(), m.target)
		case "down", "j", "-":
			m.target -= m.step
			m.finished = false
			return m, m.restart(m.current(), m.target)
		}
	case countTickMsg:
		if msg.target != m.target {
			return m, nil // stale tick from a superseded count
		}
		m.finished = msg.Finished
		if msg.Finished {
			m.text = m.formatter.Format(msg.Value)
		} else {
			m.text = m.formatter.Fixed(msg.Value, countPrecision(m.precision, msg.target))
		}
	}
	return m, nil
}

// restart returns a command that starts a count from from to to.
func (m countModel) restart(from, to float64) tea.Cmd {
	return func() tea.Msg {
		m.start(from, to)
		return nil
	}
}

// View renders the card, the count status and the key help.
func (m countModel) View() string {
	var b strings.Builder

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.color).
		Padding(1, 4).
		Width(32)
	value := lipgloss.NewStyle().Bold(true).Foreground(m.color).Render(m.text)
	b.WriteString(card.Render(value + "\n" + StyleDim.Render(m.label)))
	b.WriteString("\n")

	status := StyleNumber.Render("counting")
	if m.finished {
		status = styleIconSuccess.Render(iconSuccess + " done")
	}
	b.WriteString("  " + status + "\n\n")
	b.WriteString(StyleDim.Render("  r replay  ↑/↓ target ±" + m.formatter.Format(m.step) + "  q quit"))
	b.WriteString("\n")
	return b.String()
}
