package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/llm-impact/emissions"
)

var (
	flagProvider   string
	flagModel      string
	flagInput      int64
	flagOutput     int64
	flagCacheWrite int64
	flagCacheRead  int64
	flagReasoning  bool
	flagRegion     string
	flagJSON       bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the impact of a single inference call",
	RunE:  runEstimate,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all providers at the same token counts",
	RunE:  runCompare,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank providers by CO2 efficiency",
	RunE:  runRank,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the supported models of a provider",
	RunE:  runModels,
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the supported providers",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, p := range emissions.SupportedProviders() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&flagProvider, "provider", "p", "claude", "Provider identifier")
	estimateCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model identifier (required)")
	estimateCmd.Flags().Int64VarP(&flagInput, "input", "i", 0, "Input token count")
	estimateCmd.Flags().Int64VarP(&flagOutput, "output", "o", 0, "Output token count")
	estimateCmd.Flags().Int64Var(&flagCacheWrite, "cache-write", 0, "Cache-creation token count")
	estimateCmd.Flags().Int64Var(&flagCacheRead, "cache-read", 0, "Cache-read token count")
	estimateCmd.Flags().BoolVar(&flagReasoning, "reasoning", false, "Enable reasoning mode")
	estimateCmd.Flags().StringVar(&flagRegion, "region", "", "Provider region (default: provider's default region)")
	estimateCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of text")
	_ = estimateCmd.MarkFlagRequired("model")

	for _, cmd := range []*cobra.Command{compareCmd, rankCmd} {
		cmd.Flags().Int64VarP(&flagInput, "input", "i", 1000, "Input token count")
		cmd.Flags().Int64VarP(&flagOutput, "output", "o", 500, "Output token count")
	}
	compareCmd.Flags().BoolVar(&flagReasoning, "reasoning", false, "Enable reasoning mode")

	modelsCmd.Flags().StringVarP(&flagProvider, "provider", "p", "claude", "Provider identifier")

	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(estimateCmd, compareCmd, rankCmd, modelsCmd, providersCmd)
}

func newEngine() (*emissions.Engine, error) {
	return emissions.NewEngine(newLogger())
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	cfg := emissions.EmissionConfig{
		Provider:     emissions.Provider(flagProvider),
		Model:        flagModel,
		InputTokens:  flagInput,
		OutputTokens: flagOutput,
		Reasoning:    flagReasoning,
		Region:       flagRegion,
	}
	if cmd.Flags().Changed("cache-write") {
		cfg.CacheCreationTokens = &flagCacheWrite
	}
	if cmd.Flags().Changed("cache-read") {
		cfg.CacheReadTokens = &flagCacheRead
	}

	result, err := engine.CalculateImpact(cfg)
	if err != nil {
		return err
	}

	if flagJSON {
		data, err := emissions.MarshalResult(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), emissions.Format(result))
	return nil
}

func runCompare(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	results, err := engine.CompareProviders(flagInput, flagOutput, flagReasoning)
	if err != nil {
		return err
	}

	agg := emissions.Aggregate(results)
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), emissions.Format(r))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Combined: %.4f g CO2 across %d calls\n", agg.CO2Grams, agg.Calls)
	return nil
}

func runRank(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	ranked, err := engine.RankByEfficiency(flagInput, flagOutput)
	if err != nil {
		return err
	}

	for i, r := range ranked {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %-8s %-20s %.6f g CO2 (efficiency %.2f)\n",
			i+1, r.Provider, r.Model, r.CO2Grams, r.Efficiency)
	}
	return nil
}

func runModels(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	provider := emissions.Provider(flagProvider)
	models, err := engine.SupportedModels(provider)
	if err != nil {
		return err
	}

	for _, model := range models {
		spec, err := engine.GetModelInfo(provider, model)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s %.4g J/token  %s\n", spec.Name, spec.EnergyPerToken, spec.Architecture)
	}
	return nil
}
