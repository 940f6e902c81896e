package emissions

import (
	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

// openaiCalculator models the openai-like cost profile: output tokens carry a
// materially higher multiplier than input tokens, reflecting
// memory-bandwidth-bound decode cost. No cache-token modeling.
type openaiCalculator struct {
	providerCalculator
}

func newOpenAICalculator(cat *catalog.Client, logger zerolog.Logger) *openaiCalculator {
	return &openaiCalculator{newProviderCalculator(cat, ProviderOpenAI, logger)}
}

// CalculateEmissions computes the impact of one openai-like inference call.
//
// Models flagged with built-in reasoning already encode the reasoning cost in
// their energy-per-token figure and must not receive the generic reasoning
// multiplier a second time. Cache token counts are validated and echoed but
// contribute no energy: this provider does not model cache operations.
func (c *openaiCalculator) CalculateEmissions(cfg EmissionConfig) (EmissionResult, error) {
	if err := validateTokens(cfg); err != nil {
		return EmissionResult{}, err
	}
	spec, err := c.ModelInfo(cfg.Model)
	if err != nil {
		return EmissionResult{}, err
	}
	factor, region := c.resolveRegion(cfg.Region)

	weightedTokens := float64(cfg.InputTokens) + float64(cfg.OutputTokens)*c.infra.OutputMultiplier
	joules := weightedTokens * spec.EnergyPerToken

	if cfg.Reasoning && !spec.BuiltinReasoning {
		joules *= c.infra.ReasoningMultiplier
	}

	return c.buildResult(cfg, joules, factor, region), nil
}
