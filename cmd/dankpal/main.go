package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/config"
	"github.com/AvengeMedia/dankpalette/internal/log"
)

var Version = "dev"

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:     "dankpal",
	Short:   "Generate light and dark color themes from a seed",
	Long:    "dankpal synthesizes paired light and dark UI color themes in OKLCH from a seed color or string, a harmony mode and saturation, contrast and brightness levels.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		level := cfg.Log.Level
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		if !log.SetLevel(level) {
			log.Warnf("Unknown log level %q, keeping info", level)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.SetHelpTemplate(groupHelpTemplate)
	rootCmd.AddCommand(generateCmd, scoreCmd, bestCmd, dank16Cmd, tuneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
