package lint

import "github.com/charmbracelet/lipgloss"

// Lipgloss degrades these colours to what the terminal supports.
var (
	locationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle   = locationStyle
	caretStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	cleanStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	linterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// severityStyles colours the severity label of an issue.
var severityStyles = map[string]lipgloss.Style{
	SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	SeverityWarning: caretStyle,
}

// paint renders text with style when colours are on and returns it
// untouched otherwise.
func paint(style lipgloss.Style, text string, on bool) string {
	if !on {
		return text
	}
	return style.Render(text)
}

// severityLabel returns "error: " or "warning: ", or "" for informational
// issues.
func severityLabel(severity string, on bool) string {
	style, ok := severityStyles[severity]
	if !ok {
		return ""
	}
	return paint(style, severity+":", on) + " "
}
