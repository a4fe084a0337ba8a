package diagram

import "github.com/charmbracelet/lipgloss"

// Terminal styles for command output
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#444466"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusFail = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))
)

// Status renders a pass/fail line
func Status(ok bool, msg string) string {
	if ok {
		return StatusOK.Render("✓ " + msg)
	}
	return StatusFail.Render("✗ " + msg)
}

// KeyValue renders "label: value" with the label muted
func KeyValue(label, value string) string {
	return Label.Render(label+":") + " " + Value.Render(value)
}
