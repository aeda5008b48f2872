package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/score"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Generate many seeds and keep the best theme",
	Long:  "Generate a theme for each of N seeds in parallel, score them and print the best one",
	Args:  cobra.NoArgs,
	Run:   runBest,
}

func init() {
	addThemeFlags(bestCmd)
	bestCmd.Flags().IntP("count", "n", 16, "Number of seeds to try")
	bestCmd.Flags().IntP("workers", "j", 0, "Parallel workers (0 uses GOMAXPROCS)")
	bestCmd.Flags().StringP("format", "f", "", "Output format: text, json or env")
	bestCmd.Flags().Bool("all", false, "List the score of every candidate")
	bestCmd.SetHelpTemplate(leafHelpTemplate)
}

func runBest(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	workers, _ := cmd.Flags().GetInt("workers")
	listAll, _ := cmd.Flags().GetBool("all")
	if count <= 0 {
		log.Fatalf("Count must be positive")
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}

	base := themeOptions(cmd, "")
	prefix := base.Seed
	if !cmd.Flags().Changed("seed") && cfg.Seed == "" {
		prefix = uuid.NewString()[:8]
	}
	seeds := make([]string, count)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("%s-%d", prefix, i)
	}

	best, all, ok := score.BestOfSeeds(base, seeds, cfg.Score, workers)
	if !ok {
		log.Fatalf("No candidates generated")
	}

	if listAll {
		for _, c := range all {
			marker := " "
			if c.Theme.Seed == best.Theme.Seed {
				marker = "*"
			}
			fmt.Fprintf(os.Stderr, "%s %-40s %.3f  %d issues\n", marker, c.Theme.Seed, c.Result.Score, len(c.Result.Issues))
		}
	}

	log.Infof("Best seed %s scored %.3f with %d issues", best.Theme.Seed, best.Result.Score, len(best.Result.Issues))
	if err := writeTheme(os.Stdout, best.Theme, format); err != nil {
		log.Fatalf("Error writing theme: %v", err)
	}
}
