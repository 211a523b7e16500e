package tui

import (
	"strings"

	"github.com/akyairhashvil/bannerdown/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m TimerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	lines := m.font.Render(m.display)

	// The banner plus margins and the input box reservation must fit the
	// frame; otherwise the frame degrades to blank instead of clipping.
	contentHeight := len(lines) + config.MarginLines + config.InputBoxHeight
	if contentHeight > m.height {
		return ""
	}
	for _, line := range lines {
		if ansi.StringWidth(line) > m.width {
			return ""
		}
	}

	blank := m.height - contentHeight
	top := blank / 2
	bot := blank / 2
	if m.mode == modeEditing {
		bot -= config.InputBoxHeight
		if bot < 0 {
			bot = 0
		}
	}

	bannerBlock := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(CurrentTheme.Banner.Render(strings.Join(lines, "\n")))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(bannerBlock)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\n", bot))
	if m.mode == modeEditing {
		b.WriteString(m.renderInputBox())
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m TimerModel) renderInputBox() string {
	box := CurrentTheme.Input
	inner := m.width - lipgloss.Width(box.Render(""))
	if inner < 1 {
		inner = 1
	}
	return box.Width(inner).Render(m.input.View())
}

func (m TimerModel) renderHelp() string {
	help := "[e]Edit|[r]Reset|[s]Stop|[t]Theme|[q]Quit"
	if m.mode == modeEditing {
		help = "[Enter]Start|[Esc]Cancel"
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Dim.Render(help))
}
