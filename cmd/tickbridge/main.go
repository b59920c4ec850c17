package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tickbridge/internal/adapters/ticktick"
	"tickbridge/internal/adapters/tui"
	"tickbridge/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	method, err := cfg.Method()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := ticktick.NewClient(cfg, ticktick.WithBaseURLs(cfg.OpenBaseURL, cfg.SessionBaseURL))
	gateway := ticktick.NewRepository(client, method)

	app := tui.NewApp(gateway)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
