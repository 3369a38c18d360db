package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fabiotcs/apptributario-sub000/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: taxopt-tui <company-file> [rules-file]")
		os.Exit(1)
	}
	configPath := os.Args[1]

	rulesPath := ""
	if len(os.Args) > 2 {
		rulesPath = os.Args[2]
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Error: company file not found: %s\n", configPath)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(configPath, rulesPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
