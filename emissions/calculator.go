package emissions

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

// joulesPerKWh converts joules to kilowatt-hours.
const joulesPerKWh = 3_600_000.0

// Calculator computes emission estimates for one provider. Implementations
// are safe for concurrent use: all state is immutable after construction.
type Calculator interface {
	// CalculateEmissions computes the impact of a single inference call.
	CalculateEmissions(cfg EmissionConfig) (EmissionResult, error)

	// SupportedModels returns the provider's model identifiers in table order.
	SupportedModels() []string

	// RegionalFactors returns the provider's full regional factor table.
	RegionalFactors() map[string]RegionalFactor

	// ModelInfo returns the spec for one model, or UnknownModelError.
	ModelInfo(model string) (ModelSpec, error)

	// ReferenceModel returns the model used for cross-provider comparisons.
	ReferenceModel() string
}

// providerCalculator carries the immutable tables shared by all provider
// variants: a model spec table, a regional factor table, and an
// infrastructure profile, held as plain data.
type providerCalculator struct {
	provider       Provider
	models         map[string]ModelSpec
	modelOrder     []string
	regions        map[string]RegionalFactor
	defaultRegion  string
	referenceModel string
	infra          InfrastructureProfile
	logger         zerolog.Logger
}

// newProviderCalculator builds the shared table set from catalog records.
func newProviderCalculator(cat *catalog.Client, provider Provider, logger zerolog.Logger) providerCalculator {
	record, _ := cat.Provider(string(provider))
	modelRecords, _ := cat.Models(string(provider))

	models := make(map[string]ModelSpec, len(modelRecords))
	order := make([]string, 0, len(modelRecords))
	for _, m := range modelRecords {
		models[m.Name] = ModelSpec{
			Name:             m.Name,
			EnergyPerToken:   m.EnergyPerToken,
			Architecture:     m.Architecture,
			ParametersB:      m.ParametersB,
			UseCase:          m.UseCase,
			BuiltinReasoning: m.BuiltinReasoning,
		}
		order = append(order, m.Name)
	}

	regions := make(map[string]RegionalFactor, len(record.Regions))
	for name, r := range record.Regions {
		regions[name] = RegionalFactor{
			CarbonIntensity:   r.CarbonIntensity,
			RenewableFraction: r.RenewableFraction,
			Adjustment:        r.Adjustment,
		}
	}

	return providerCalculator{
		provider:       provider,
		models:         models,
		modelOrder:     order,
		regions:        regions,
		defaultRegion:  record.DefaultRegion,
		referenceModel: record.ReferenceModel,
		infra: InfrastructureProfile{
			PUE:                  record.PUE,
			WUE:                  record.WUE,
			CacheWriteMultiplier: record.Multipliers.CacheWrite,
			CacheReadMultiplier:  record.Multipliers.CacheRead,
			OutputMultiplier:     record.Multipliers.Output,
			ReasoningMultiplier:  record.Multipliers.Reasoning,
			HardwareEfficiency:   record.Multipliers.HardwareEfficiency,
		},
		logger: logger,
	}
}

// SupportedModels returns the provider's model identifiers in table order.
func (c *providerCalculator) SupportedModels() []string {
	models := make([]string, len(c.modelOrder))
	copy(models, c.modelOrder)
	return models
}

// RegionalFactors returns a copy of the provider's regional factor table.
func (c *providerCalculator) RegionalFactors() map[string]RegionalFactor {
	factors := make(map[string]RegionalFactor, len(c.regions))
	for name, factor := range c.regions {
		factors[name] = factor
	}
	return factors
}

// ModelInfo returns the spec for one model, or UnknownModelError.
func (c *providerCalculator) ModelInfo(model string) (ModelSpec, error) {
	spec, ok := c.models[model]
	if !ok {
		return ModelSpec{}, &UnknownModelError{Provider: c.provider, Model: model}
	}
	return spec, nil
}

// ReferenceModel returns the model used for cross-provider comparisons.
func (c *providerCalculator) ReferenceModel() string {
	return c.referenceModel
}

// resolveRegion returns the factor for the requested region, falling back to
// the provider default when the region is empty or not in the table. Missing
// regions never fail; only missing models and providers do.
func (c *providerCalculator) resolveRegion(region string) (RegionalFactor, string) {
	if region != "" {
		if factor, ok := c.regions[region]; ok {
			return factor, region
		}
		c.logger.Debug().
			Str("provider", string(c.provider)).
			Str("region", region).
			Str("default_region", c.defaultRegion).
			Msg("region not in table, using provider default")
	}
	return c.regions[c.defaultRegion], c.defaultRegion
}

// validateTokens rejects negative token counts before any arithmetic runs.
func validateTokens(cfg EmissionConfig) error {
	if cfg.InputTokens < 0 {
		return &InvalidTokenCountError{Field: "input_tokens", Value: cfg.InputTokens}
	}
	if cfg.OutputTokens < 0 {
		return &InvalidTokenCountError{Field: "output_tokens", Value: cfg.OutputTokens}
	}
	if cfg.CacheCreationTokens != nil && *cfg.CacheCreationTokens < 0 {
		return &InvalidTokenCountError{Field: "cache_creation_tokens", Value: *cfg.CacheCreationTokens}
	}
	if cfg.CacheReadTokens != nil && *cfg.CacheReadTokens < 0 {
		return &InvalidTokenCountError{Field: "cache_read_tokens", Value: *cfg.CacheReadTokens}
	}
	return nil
}

// optionalTokens returns the value of an optional token count, 0 when absent.
func optionalTokens(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// buildResult converts total energy in joules to the final result record:
// joules -> kWh, apply PUE and regional adjustment, then derive carbon from
// the grid intensity net of renewables and water from the WUE.
func (c *providerCalculator) buildResult(cfg EmissionConfig, joules float64, factor RegionalFactor, region string) EmissionResult {
	energyKWh := joules / joulesPerKWh * c.infra.PUE * factor.Adjustment
	co2Kg := energyKWh * factor.CarbonIntensity * (1 - factor.RenewableFraction)
	waterLiters := energyKWh * c.infra.WUE

	result := EmissionResult{
		ID:           uuid.New().String(),
		Provider:     c.provider,
		Model:        cfg.Model,
		CO2Grams:     co2Kg * 1000,
		EnergyWh:     energyKWh * 1000,
		WaterLiters:  waterLiters,
		InputTokens:  cfg.InputTokens,
		OutputTokens: cfg.OutputTokens,
		Reasoning:    cfg.Reasoning,
		Region:       region,
		Timestamp:    time.Now().UTC(),
	}

	// Zero or absent cache counts are omitted from the result.
	if n := optionalTokens(cfg.CacheCreationTokens); n > 0 {
		result.CacheCreationTokens = &n
	}
	if n := optionalTokens(cfg.CacheReadTokens); n > 0 {
		result.CacheReadTokens = &n
	}

	c.logger.Debug().
		Str("provider", string(c.provider)).
		Str("model", cfg.Model).
		Str("region", region).
		Float64("co2_grams", result.CO2Grams).
		Float64("energy_wh", result.EnergyWh).
		Msg("emissions calculated")

	return result
}
