package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kutsal/dayscore/internal/tracker"
	"github.com/kutsal/dayscore/internal/tui"
)

func main() {
	session := tracker.NewSession(time.Now())

	app := tui.NewApp(session)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
