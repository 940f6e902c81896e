package emissions

import (
	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

// geminiCalculator models the gemini-like cost profile: input and output
// tokens weighted equally, with a hardware-efficiency bonus for
// specialized-accelerator inference.
type geminiCalculator struct {
	providerCalculator
}

func newGeminiCalculator(cat *catalog.Client, logger zerolog.Logger) *geminiCalculator {
	return &geminiCalculator{newProviderCalculator(cat, ProviderGemini, logger)}
}

// CalculateEmissions computes the impact of one gemini-like inference call.
// The hardware-efficiency bonus applies to all computed energy.
func (c *geminiCalculator) CalculateEmissions(cfg EmissionConfig) (EmissionResult, error) {
	if err := validateTokens(cfg); err != nil {
		return EmissionResult{}, err
	}
	spec, err := c.ModelInfo(cfg.Model)
	if err != nil {
		return EmissionResult{}, err
	}
	factor, region := c.resolveRegion(cfg.Region)

	joules := float64(cfg.InputTokens+cfg.OutputTokens) * spec.EnergyPerToken
	if cfg.Reasoning {
		joules *= c.infra.ReasoningMultiplier
	}
	joules *= c.infra.HardwareEfficiency

	return c.buildResult(cfg, joules, factor, region), nil
}
