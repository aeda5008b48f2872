package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/config"
	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/tui"
)

var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Tune levels interactively",
	Long:  "Open an interactive tuner that regenerates the theme as levels, harmony and seed change",
	Args:  cobra.NoArgs,
	Run:   runTune,
}

func init() {
	addThemeFlags(tuneCmd)
	tuneCmd.SetHelpTemplate(leafHelpTemplate)
}

func runTune(cmd *cobra.Command, args []string) {
	opts := themeOptions(cmd, "")

	final, err := tea.NewProgram(tui.NewModel(opts, config.DefaultStore()), tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatalf("Error running tuner: %v", err)
	}
	if m, ok := final.(tui.Model); ok {
		d := m.Theme()
		log.Infof("Last theme: %s seed %s", d.Mode, d.Seed)
	}
}
