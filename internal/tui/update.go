package tui

import (
	"time"

	"github.com/akyairhashvil/bannerdown/internal/duration"
	tea "github.com/charmbracelet/bubbletea"
)

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeEditing {
			return m.handleEditingKey(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m TimerModel) handleNormalKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch msg.String() {
	case "e":
		m.mode = modeEditing
		m.input.Reset()
		return m, m.input.Focus()
	case "r":
		m.pendingReset = true
	case "s":
		m.configured = 0
		m.display = zeroDisplay
		m.pendingReset = true
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(ThemeOrder)
		SetTheme(ThemeOrder[m.themeIdx])
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m TimerModel) handleEditingKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput(), nil
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TimerModel) submitInput() TimerModel {
	d, ok := duration.Parse(m.input.Value())
	if !ok {
		// Invalid input stays in the buffer so it can be corrected.
		return m
	}
	m.configured = d
	m.input.Reset()
	m.input.Blur()
	m.pendingReset = true
	m.mode = modeNormal
	return m
}

func (m TimerModel) handleTick(TickMsg) (TimerModel, tea.Cmd) {
	if m.pendingReset {
		// Only place the start instant is re-armed outside expiry.
		m.pendingReset = false
		m.start = time.Now()
		m.target = m.configured
	}
	if m.target == 0 {
		// Nothing counts down from zero.
		return m, tickCmd()
	}
	elapsed := time.Since(m.start)
	if elapsed >= m.target {
		// The countdown cycles: restart from the full target instead
		// of stopping at zero.
		m.start = time.Now()
		elapsed = 0
	}
	m.display = duration.Format(m.target - elapsed)
	return m, tickCmd()
}
