package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"locator/internal/adapters/tui"
	"locator/internal/bootstrap"
	"locator/internal/config"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the YAML config file")
	debugFlag := flag.Bool("debug", false, "log diagnostics to stderr")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	svc := bootstrap.New(cfg, bootstrap.Logger(*debugFlag))

	// Create and run TUI app
	app := tui.NewApp(svc.Index, svc.Launcher, tui.WithQuitOnLaunch(true))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
