package tui

import (
	"time"

	"github.com/akyairhashvil/bannerdown/internal/banner"
	"github.com/akyairhashvil/bannerdown/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode defines whether keystrokes are commands or edit-buffer input.
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditing
)

const zeroDisplay = "00:00"

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// TimerModel is the root bubbletea model: a repeating countdown rendered as
// banner text, with an edit mode for entering a new duration.
type TimerModel struct {
	mode         inputMode
	configured   time.Duration // last submitted duration
	display      string        // remaining-time text shown in the banner
	input        textinput.Model
	pendingReset bool // re-arm the deadline from configured on next tick

	// Deadline pair, owned by the tick handler. Kept separate from
	// configured so re-arming resets the start instant without losing
	// the configured target.
	start  time.Time
	target time.Duration

	font     banner.Font
	themeIdx int
	width    int
	height   int
}

func NewTimerModel(font banner.Font) TimerModel {
	ti := textinput.New()
	ti.Placeholder = config.InputPlaceholder
	ti.Width = 20
	return TimerModel{
		mode:    modeNormal,
		display: zeroDisplay,
		input:   ti,
		font:    font,
	}
}

func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}
