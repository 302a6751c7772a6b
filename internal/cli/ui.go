package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // primary
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorBlue  = lipgloss.Color("75")  // commands
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // keys
	colorDim   = lipgloss.Color("240") // muted
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	swatchBlock = "██"
)

// =============================================================================
// Output
// =============================================================================

// printSuccess prints a line prefixed with the success icon.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printError prints a line prefixed with the error icon.
func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printFile prints an indented arrow pointing at a written file.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a styled key and its value on one line.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// swatch renders a block in color c followed by its hex code.
func swatch(c string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(swatchBlock) + " " + StyleDim.Render(c)
}

// swatches renders each color as a block, without labels.
func swatches(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(swatchBlock))
	}
	return b.String()
}
