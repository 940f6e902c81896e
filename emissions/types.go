// Package emissions estimates the environmental impact of AI-model inference
// calls: CO2 emissions, energy consumption, and water usage derived from token
// counts and static per-provider factor tables.
//
// The methodology follows the Cloud Carbon Footprint approach adapted to LLM
// inference:
//  1. Energy (J) = tokens × model energy-per-token, weighted per provider
//  2. Energy (kWh) = J / 3,600,000 × provider PUE × regional adjustment
//  3. Carbon (kg) = kWh × grid carbon intensity × (1 − renewable fraction)
//  4. Water (L) = kWh × provider WUE
package emissions

import "time"

// Provider identifies one of the supported inference providers.
type Provider string

// Supported providers.
const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ModelSpec describes one model's static characteristics.
type ModelSpec struct {
	Name           string  `json:"name"`
	EnergyPerToken float64 `json:"energy_per_token"` // joules per token, > 0
	Architecture   string  `json:"architecture"`
	ParametersB    float64 `json:"parameters_b,omitempty"` // estimated parameter count, billions
	UseCase        string  `json:"use_case,omitempty"`

	// BuiltinReasoning marks models whose energy-per-token already encodes
	// reasoning cost; the generic reasoning multiplier must not be applied
	// to them a second time.
	BuiltinReasoning bool `json:"builtin_reasoning,omitempty"`
}

// RegionalFactor describes the electricity profile of one provider region.
type RegionalFactor struct {
	CarbonIntensity   float64 `json:"carbon_intensity"`   // kg CO2e per kWh, >= 0
	RenewableFraction float64 `json:"renewable_fraction"` // 0.0 to 1.0
	Adjustment        float64 `json:"adjustment"`         // unitless regional overhead, > 0
}

// InfrastructureProfile holds per-provider datacenter constants and the named
// multipliers of that provider's computational cost model. Each provider's
// calculator applies its own subset; unused multipliers stay zero.
type InfrastructureProfile struct {
	PUE float64 // power usage effectiveness, >= 1
	WUE float64 // water usage effectiveness, liters per kWh, >= 0

	CacheWriteMultiplier float64 // cache-creation tokens vs. base rate
	CacheReadMultiplier  float64 // cache-read tokens vs. base rate
	OutputMultiplier     float64 // output tokens vs. input tokens
	ReasoningMultiplier  float64 // reasoning mode vs. standard inference
	HardwareEfficiency   float64 // specialized-accelerator bonus, < 1
}

// EmissionConfig is the input to a single impact calculation.
// Cache token counts are explicit optionals: nil means not provided, which is
// distinct from provided-as-zero at the input layer even though both omit the
// field from the result.
type EmissionConfig struct {
	Provider            Provider `json:"provider"`
	Model               string   `json:"model"`
	InputTokens         int64    `json:"input_tokens"`
	OutputTokens        int64    `json:"output_tokens"`
	CacheCreationTokens *int64   `json:"cache_creation_tokens,omitempty"`
	CacheReadTokens     *int64   `json:"cache_read_tokens,omitempty"`
	Reasoning           bool     `json:"reasoning,omitempty"`

	// Region selects the provider region; empty uses the provider default.
	Region string `json:"region,omitempty"`
}

// EmissionResult is the outcome of a single impact calculation. Results are
// immutable once produced. Cache token fields are nil when the corresponding
// input was zero or absent.
type EmissionResult struct {
	ID                  string    `json:"id"` // correlation ID for log matching
	Provider            Provider  `json:"provider"`
	Model               string    `json:"model"`
	CO2Grams            float64   `json:"co2_grams"`
	EnergyWh            float64   `json:"energy_wh"`
	WaterLiters         float64   `json:"water_liters"`
	InputTokens         int64     `json:"input_tokens"`
	OutputTokens        int64     `json:"output_tokens"`
	CacheCreationTokens *int64    `json:"cache_creation_tokens,omitempty"`
	CacheReadTokens     *int64    `json:"cache_read_tokens,omitempty"`
	Reasoning           bool      `json:"reasoning"`
	Region              string    `json:"region"`
	Timestamp           time.Time `json:"timestamp"`
}

// TotalTokens returns the sum of all token counts in the result.
func (r EmissionResult) TotalTokens() int64 {
	total := r.InputTokens + r.OutputTokens
	if r.CacheCreationTokens != nil {
		total += *r.CacheCreationTokens
	}
	if r.CacheReadTokens != nil {
		total += *r.CacheReadTokens
	}
	return total
}

// AggregatedImpact summarizes a sequence of emission results.
type AggregatedImpact struct {
	CO2Grams    float64 `json:"co2_grams"`
	EnergyWh    float64 `json:"energy_wh"`
	WaterLiters float64 `json:"water_liters"`
	TotalTokens int64   `json:"total_tokens"`
	Calls       int     `json:"calls"`

	// Per-token averages; 0 when TotalTokens is 0.
	CO2GramsPerToken float64 `json:"co2_grams_per_token"`
	EnergyWhPerToken float64 `json:"energy_wh_per_token"`
}

// RankedResult is an emission result annotated with an efficiency score.
// The score is maxCO2 / thisCO2 over the ranked set, so the least-emitting
// entry carries the highest score and the most-emitting entry scores 1.0.
type RankedResult struct {
	EmissionResult
	Efficiency float64 `json:"efficiency"`
}
