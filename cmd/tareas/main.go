package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/tareas/internal/config"
	"github.com/sandeepkv93/tareas/internal/export"
	"github.com/sandeepkv93/tareas/internal/store"
	"github.com/sandeepkv93/tareas/internal/update"
)

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tareas failed: %v\n", err)
		os.Exit(1)
	}
	cfg = config.FromEnv(cfg)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "tareas",
	})

	st := store.New(cfg.DataFile, logger)
	st.Load()
	ex := export.New(cfg.ExportDir)

	program := tea.NewProgram(update.NewModel(st, ex))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tareas failed: %v\n", err)
		os.Exit(1)
	}
}
