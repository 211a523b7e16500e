package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Border  lipgloss.Color
	Banner  lipgloss.Style
	Input   lipgloss.Style
	Focused lipgloss.Style
	Dim     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Border:  lipgloss.Color("63"),
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:    "Dracula",
		Border:  lipgloss.Color("62"),                                 // Purple
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // White
		Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeOrder fixes the cycling order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
