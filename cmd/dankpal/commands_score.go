package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpalette/internal/log"
	"github.com/AvengeMedia/dankpalette/internal/score"
	"github.com/AvengeMedia/dankpalette/internal/theme"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a generated theme",
	Long:  "Generate a theme and report hard-reject issues and the weighted soft score for both modes",
	Args:  cobra.NoArgs,
	Run:   runScore,
}

func init() {
	addThemeFlags(scoreCmd)
	scoreCmd.Flags().Bool("json", false, "Output the result as JSON")
	scoreCmd.SetHelpTemplate(leafHelpTemplate)
}

func runScore(cmd *cobra.Command, args []string) {
	d := theme.Generate(themeOptions(cmd, ""))
	res := score.EvaluateDual(d, cfg.Score)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(struct {
			Theme  theme.DualTheme `json:"theme"`
			Result score.Result    `json:"result"`
		}{d, res}, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	printResult(d, res)
}

func printResult(d theme.DualTheme, res score.Result) {
	fmt.Printf("mode %s, seed %s\n", d.Mode, d.Seed)
	fmt.Printf("score %.3f\n", res.Score)
	c := res.Components
	fmt.Printf("  contrast       %.3f\n", c.Contrast)
	fmt.Printf("  harmony        %.3f\n", c.Harmony)
	fmt.Printf("  chroma balance %.3f\n", c.ChromaBalance)
	fmt.Printf("  usability      %.3f\n", c.Usability)
	fmt.Printf("  aesthetic      %.3f\n", c.Aesthetic)

	if !res.Rejected() {
		fmt.Println("no issues")
		return
	}
	fmt.Printf("%d issues:\n", len(res.Issues))
	for _, i := range res.Issues {
		fmt.Printf("  %s\n", i)
	}
}
