package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akshathkulkarni/StudyTimeTracker/internal"
	"github.com/akshathkulkarni/StudyTimeTracker/internal/config"
	"github.com/akshathkulkarni/StudyTimeTracker/internal/store"
	"github.com/charmbracelet/bubbletea"
)

func main() {
	base, err := config.BaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(filepath.Join(base, config.FileName), base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := store.New(cfg.DatabasePath)
	if err := st.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := internal.NewModel(st, cfg.Categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				p.Send(internal.MsgTick{})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
