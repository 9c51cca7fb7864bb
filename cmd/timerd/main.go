package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/timerd/internal/history"
	"github.com/sandeepkv93/timerd/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	var log *history.Log
	if l, err := history.Open(cfg.HistoryDBPath); err != nil {
		fmt.Fprintf(os.Stderr, "timerd: history log disabled: %v\n", err)
	} else {
		log = l
		defer log.Close()
	}

	model := update.NewModelWithConfig(cfg, log, update.ExecDesktopNotifier{})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "timerd failed: %v\n", err)
		os.Exit(1)
	}
}
