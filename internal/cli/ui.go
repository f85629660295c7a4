package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/viv/pkg/io"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleTiled    = lipgloss.NewStyle().Foreground(colorGreen)
	styleFloating = lipgloss.NewStyle().Foreground(colorYellow)
	styleHidden   = lipgloss.NewStyle().Foreground(colorDim)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Geometry Tables
// =============================================================================

// formatBox renders a box in X11 geometry notation, e.g. "1152x1080+0+0".
func formatBox(b io.Box) string {
	return strconv.Itoa(b.Width) + "x" + strconv.Itoa(b.Height) + signed(b.X) + signed(b.Y)
}

func signed(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

// viewState describes how the layout treats a view.
func viewState(v io.View) string {
	switch {
	case !v.Mapped:
		return "unmapped"
	case v.Floating:
		return "floating"
	default:
		return "tiled"
	}
}

// layoutLabel formats the active layout, e.g. "split (split 0.60)".
func layoutLabel(l *io.Layout) string {
	if l == nil {
		return "none"
	}
	if l.Name == l.Algorithm {
		return fmt.Sprintf("%s %.2f", l.Name, l.Parameter)
	}
	return fmt.Sprintf("%s (%s %.2f)", l.Name, l.Algorithm, l.Parameter)
}

// renderWorkspace renders one workspace as a heading and a geometry table.
func renderWorkspace(ws io.Workspace) string {
	output := ws.Output
	if output == "" {
		output = "hidden"
	}
	heading := StyleTitle.Render(ws.Name) + " " +
		StyleDim.Render(output+" · "+layoutLabel(ws.Layout))

	if len(ws.Views) == 0 {
		return heading + "\n" + StyleDim.Render("  no views")
	}

	rows := make([][]string, len(ws.Views))
	for i, v := range ws.Views {
		rows[i] = []string{strconv.Itoa(i), v.Title, v.Type, viewState(v), formatBox(v.Current), formatBox(v.Target)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "View", "Type", "State", "Current", "Target").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col != 3 {
				return lipgloss.NewStyle()
			}
			switch viewState(ws.Views[row]) {
			case "tiled":
				return styleTiled
			case "floating":
				return styleFloating
			}
			return styleHidden
		})

	return heading + "\n" + t.Render()
}

// renderSnapshot renders every workspace in s.
func renderSnapshot(s io.Snapshot) string {
	var out string
	for i, ws := range s.Workspaces {
		if i > 0 {
			out += "\n\n"
		}
		out += renderWorkspace(ws)
	}
	return out
}
