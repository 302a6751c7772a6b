// Package cli implements the chartkit command-line interface.
//
// Commands:
//   - layout: compute chart geometry from a TOML definition file and export it as JSON
//   - count: play a number card's count animation in the terminal
//   - fit: fit a string into a box the way gauge and card text is fitted
//   - schemes: list the built-in color schemes
//
// All commands accept --verbose (-v) for debug logging. The logger travels
// through the command's context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
)

const appName = "chartkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "chartkit computes chart layouts and animations",
		Long: `chartkit lays out linear gauges, number cards and pie charts, fits their
text and plays their count animations. Layouts are exported as JSON for
external renderers.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.fitCommand())
	root.AddCommand(c.schemesCommand())
	root.AddCommand(c.completionCommand())

	return root
}
