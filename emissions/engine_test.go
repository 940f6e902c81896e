package emissions

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_UnknownProvider(t *testing.T) {
	_, err := CalculateImpact(EmissionConfig{
		Provider:    Provider("not-a-provider"),
		Model:       "whatever",
		InputTokens: 100,
	})
	require.Error(t, err)

	var unknown *UnknownProviderError
	require.True(t, errors.As(err, &unknown))
	assert.EqualValues(t, "not-a-provider", unknown.Provider)
	assert.Contains(t, err.Error(), "not-a-provider")
}

func TestEngine_SupportedProviders(t *testing.T) {
	providers := SupportedProviders()
	assert.Equal(t, []string{"claude", "gemini", "openai"}, providers)
}

func TestEngine_SupportedModels(t *testing.T) {
	models, err := SupportedModels(ProviderClaude)
	require.NoError(t, err)
	assert.Contains(t, models, "claude-sonnet-4-5")
	assert.Contains(t, models, "claude-opus-4-5")
	assert.Contains(t, models, "claude-haiku-4-5")

	_, err = SupportedModels(Provider("nope"))
	require.Error(t, err)
}

func TestEngine_CalculateBatch_PreservesOrder(t *testing.T) {
	cfgs := []EmissionConfig{
		{Provider: ProviderOpenAI, Model: "gpt-4o-mini", InputTokens: 10, OutputTokens: 5},
		{Provider: ProviderClaude, Model: "claude-haiku-4-5", InputTokens: 20, OutputTokens: 10},
		{Provider: ProviderGemini, Model: "gemini-2.0-flash", InputTokens: 30, OutputTokens: 15},
	}

	results, err := CalculateBatch(cfgs)
	require.NoError(t, err)
	require.Len(t, results, len(cfgs))

	for i, cfg := range cfgs {
		assert.Equal(t, cfg.Model, results[i].Model)
		assert.Equal(t, cfg.Provider, results[i].Provider)
		assert.Equal(t, cfg.InputTokens, results[i].InputTokens)
	}
}

func TestEngine_CalculateBatch_EmptyInput(t *testing.T) {
	results, err := CalculateBatch(nil)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

// TestEngine_CalculateBatch_AbortsOnFirstError verifies that a failing entry
// fails the whole batch with no partial results.
func TestEngine_CalculateBatch_AbortsOnFirstError(t *testing.T) {
	cfgs := []EmissionConfig{
		{Provider: ProviderClaude, Model: "claude-sonnet-4-5", InputTokens: 10},
		{Provider: ProviderClaude, Model: "not-a-real-model", InputTokens: 10},
		{Provider: ProviderClaude, Model: "claude-sonnet-4-5", InputTokens: 10},
	}

	results, err := CalculateBatch(cfgs)
	require.Error(t, err)
	assert.Nil(t, results)

	var unknownModel *UnknownModelError
	assert.True(t, errors.As(err, &unknownModel))
}

// TestEngine_Monotonicity verifies that increasing any token count never
// decreases CO2 or energy, across every supported (provider, model) pair.
func TestEngine_Monotonicity(t *testing.T) {
	engine, err := NewEngine(zerolog.Nop())
	require.NoError(t, err)

	base := EmissionConfig{
		InputTokens:         1000,
		OutputTokens:        500,
		CacheCreationTokens: int64Ptr(100),
		CacheReadTokens:     int64Ptr(100),
	}

	bumps := []struct {
		name string
		bump func(cfg *EmissionConfig)
	}{
		{"input", func(cfg *EmissionConfig) { cfg.InputTokens += 1000 }},
		{"output", func(cfg *EmissionConfig) { cfg.OutputTokens += 1000 }},
		{"cache creation", func(cfg *EmissionConfig) { cfg.CacheCreationTokens = int64Ptr(*cfg.CacheCreationTokens + 1000) }},
		{"cache read", func(cfg *EmissionConfig) { cfg.CacheReadTokens = int64Ptr(*cfg.CacheReadTokens + 1000) }},
	}

	for _, providerName := range engine.SupportedProviders() {
		provider := Provider(providerName)
		models, err := engine.SupportedModels(provider)
		require.NoError(t, err)

		for _, model := range models {
			cfg := base
			cfg.Provider = provider
			cfg.Model = model

			before, err := engine.CalculateImpact(cfg)
			require.NoError(t, err)

			for _, bump := range bumps {
				t.Run(providerName+"/"+model+"/"+bump.name, func(t *testing.T) {
					bumped := cfg
					bump.bump(&bumped)
					after, err := engine.CalculateImpact(bumped)
					require.NoError(t, err)

					assert.GreaterOrEqual(t, after.CO2Grams, before.CO2Grams)
					assert.GreaterOrEqual(t, after.EnergyWh, before.EnergyWh)
				})
			}
		}
	}
}

// TestEngine_AllPairsNonNegative verifies that every supported pair yields
// non-negative figures, and exact zeros when all token counts are zero.
func TestEngine_AllPairsNonNegative(t *testing.T) {
	engine, err := NewEngine(zerolog.Nop())
	require.NoError(t, err)

	for _, providerName := range engine.SupportedProviders() {
		provider := Provider(providerName)
		models, err := engine.SupportedModels(provider)
		require.NoError(t, err)

		for _, model := range models {
			loaded, err := engine.CalculateImpact(EmissionConfig{
				Provider:     provider,
				Model:        model,
				InputTokens:  1234,
				OutputTokens: 567,
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, loaded.CO2Grams, 0.0)
			assert.GreaterOrEqual(t, loaded.EnergyWh, 0.0)
			assert.GreaterOrEqual(t, loaded.WaterLiters, 0.0)

			empty, err := engine.CalculateImpact(EmissionConfig{
				Provider: provider,
				Model:    model,
			})
			require.NoError(t, err)
			assert.Zero(t, empty.CO2Grams)
			assert.Zero(t, empty.EnergyWh)
			assert.Zero(t, empty.WaterLiters)
		}
	}
}

func TestEngine_RegionalFactors(t *testing.T) {
	factors, err := getDefaultEngineForTest(t).RegionalFactors(ProviderClaude)
	require.NoError(t, err)
	require.Contains(t, factors, "us-east-1")

	def := factors["us-east-1"]
	assert.InDelta(t, 0.385, def.CarbonIntensity, 1e-12)
	assert.Zero(t, def.RenewableFraction)
	assert.InDelta(t, 1.0, def.Adjustment, 1e-12)
}

func getDefaultEngineForTest(t *testing.T) *Engine {
	t.Helper()
	engine, err := getDefaultEngine()
	require.NoError(t, err)
	return engine
}
