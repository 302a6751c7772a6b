package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/color"
)

// schemesCommand creates the schemes command listing color schemes.
func (c *CLI) schemesCommand() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "schemes [name]",
		Short: "List color schemes",
		Long: `List the built-in color schemes.

With a scheme name, print its colors. With --keys, also show the color each
key resolves to: by position for ordinal schemes, by value for linear and
quantile schemes.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return color.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listSchemes(cmd.OutOrStdout())
			}
			return showScheme(cmd.OutOrStdout(), args[0], keys)
		},
	}

	cmd.Flags().StringSliceVar(&keys, "keys", nil, "keys to resolve against the scheme")

	return cmd
}

func listSchemes(w io.Writer) error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, name := range color.Names() {
		s, err := color.Lookup(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{name, string(s.Kind), swatches(s.Colors)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Scheme", "Kind", "Colors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func showScheme(w io.Writer, name string, keys []string) error {
	s, err := color.Lookup(name)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, StyleTitle.Render(s.Name)+" "+StyleDim.Render(string(s.Kind)))
	for i, c := range s.Colors {
		printKeyValue(w, fmt.Sprint(i), swatch(c))
	}

	if len(keys) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	enc := color.NewEncoder(s, keys)
	for _, k := range keys {
		printKeyValue(w, k, swatch(enc.Resolve(k)))
	}
	return nil
}
