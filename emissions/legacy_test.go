package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculateClaudeImpact_MatchesGeneralPath verifies the compatibility
// contract: the legacy claude-only entry point must produce numerically
// identical figures to the multi-provider path for equivalent inputs.
func TestCalculateClaudeImpact_MatchesGeneralPath(t *testing.T) {
	tests := []struct {
		name string
		opts *ClaudeOptions
	}{
		{name: "no options"},
		{
			name: "cache and reasoning",
			opts: &ClaudeOptions{
				CacheCreationTokens: int64Ptr(250),
				CacheReadTokens:     int64Ptr(4000),
				Reasoning:           true,
			},
		},
		{
			name: "explicit region",
			opts: &ClaudeOptions{Region: "eu-central-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legacy, err := CalculateClaudeImpact("claude-sonnet-4-5", 1000, 500, tt.opts)
			require.NoError(t, err)

			cfg := EmissionConfig{
				Provider:     ProviderClaude,
				Model:        "claude-sonnet-4-5",
				InputTokens:  1000,
				OutputTokens: 500,
			}
			if tt.opts != nil {
				cfg.CacheCreationTokens = tt.opts.CacheCreationTokens
				cfg.CacheReadTokens = tt.opts.CacheReadTokens
				cfg.Reasoning = tt.opts.Reasoning
				cfg.Region = tt.opts.Region
			}
			general, err := CalculateImpact(cfg)
			require.NoError(t, err)

			assert.Equal(t, general.CO2Grams, legacy.CO2Grams)
			assert.Equal(t, general.EnergyWh, legacy.EnergyWh)
			assert.Equal(t, general.WaterLiters, legacy.WaterLiters)
			assert.Equal(t, general.Region, legacy.Region)
			assert.Equal(t, general.Provider, legacy.Provider)
		})
	}
}

func TestCalculateClaudeImpact_UnknownModel(t *testing.T) {
	_, err := CalculateClaudeImpact("not-a-real-model", 100, 50, nil)
	require.Error(t, err)

	var unknownModel *UnknownModelError
	require.ErrorAs(t, err, &unknownModel)
}
