package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/bannerdown/internal/banner"
	"github.com/akyairhashvil/bannerdown/internal/config"
	"github.com/akyairhashvil/bannerdown/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "%s must be run in a terminal\n", config.AppName)
		os.Exit(1)
	}

	model := tui.NewTimerModel(banner.BlockFont{})

	// Bubbletea owns raw mode and the alternate screen; it restores the
	// terminal on both the clean and the error path.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
