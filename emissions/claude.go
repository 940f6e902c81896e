package emissions

import (
	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

// claudeCalculator models the claude-like cost profile: input and output
// tokens weighted equally, with explicit cache-operation modeling.
type claudeCalculator struct {
	providerCalculator
}

func newClaudeCalculator(cat *catalog.Client, logger zerolog.Logger) *claudeCalculator {
	return &claudeCalculator{newProviderCalculator(cat, ProviderClaude, logger)}
}

// CalculateEmissions computes the impact of one claude-like inference call.
//
// Cache-creation tokens cost more than regular tokens (full recomputation
// plus storage overhead); cache-read tokens cost far less (bandwidth-bound
// retrieval, no forward pass). The reasoning multiplier applies to the
// compute-heavy portion only: cache-read energy is exempt, since reasoning
// affects computation, not cached retrieval.
func (c *claudeCalculator) CalculateEmissions(cfg EmissionConfig) (EmissionResult, error) {
	if err := validateTokens(cfg); err != nil {
		return EmissionResult{}, err
	}
	spec, err := c.ModelInfo(cfg.Model)
	if err != nil {
		return EmissionResult{}, err
	}
	factor, region := c.resolveRegion(cfg.Region)

	baseJoules := float64(cfg.InputTokens+cfg.OutputTokens) * spec.EnergyPerToken
	cacheWriteJoules := float64(optionalTokens(cfg.CacheCreationTokens)) * spec.EnergyPerToken * c.infra.CacheWriteMultiplier
	cacheReadJoules := float64(optionalTokens(cfg.CacheReadTokens)) * spec.EnergyPerToken * c.infra.CacheReadMultiplier

	computeJoules := baseJoules + cacheWriteJoules
	if cfg.Reasoning {
		computeJoules *= c.infra.ReasoningMultiplier
	}

	return c.buildResult(cfg, computeJoules+cacheReadJoules, factor, region), nil
}
