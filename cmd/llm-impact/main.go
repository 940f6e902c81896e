// Command llm-impact estimates the environmental impact of AI-model
// inference calls: CO2 emissions, energy consumption, and water usage from
// token counts and a provider/model selection.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llm-impact",
	Short: "Estimate the environmental impact of LLM inference calls",
	Long: "Estimate CO2 emissions, energy consumption, and water usage of\n" +
		"AI-model inference calls from token counts, using static per-provider\n" +
		"factor tables (no network access, no live measurement).",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
