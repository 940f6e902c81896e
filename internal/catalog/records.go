package catalog

// ModelRecord is one entry from the embedded model spec table.
type ModelRecord struct {
	Name             string  `json:"name"`
	EnergyPerToken   float64 `json:"energy_per_token"` // joules per token
	Architecture     string  `json:"architecture"`
	ParametersB      float64 `json:"parameters_b,omitempty"`
	UseCase          string  `json:"use_case,omitempty"`
	BuiltinReasoning bool    `json:"builtin_reasoning,omitempty"`
}

// RegionRecord describes the electricity profile of one provider region.
type RegionRecord struct {
	CarbonIntensity   float64 `yaml:"carbon_intensity"`   // kg CO2e per kWh
	RenewableFraction float64 `yaml:"renewable_fraction"` // 0.0 to 1.0
	Adjustment        float64 `yaml:"adjustment"`         // unitless regional overhead
}

// MultiplierRecord holds the named multipliers of a provider's cost model.
// Each provider applies its own subset; unused multipliers stay zero.
type MultiplierRecord struct {
	CacheWrite         float64 `yaml:"cache_write"`
	CacheRead          float64 `yaml:"cache_read"`
	Output             float64 `yaml:"output"`
	Reasoning          float64 `yaml:"reasoning"`
	HardwareEfficiency float64 `yaml:"hardware_efficiency"`
}

// ProviderRecord is one provider's infrastructure profile from providers.yaml.
type ProviderRecord struct {
	PUE            float64                 `yaml:"pue"`
	WUE            float64                 `yaml:"wue"` // liters per kWh
	DefaultRegion  string                  `yaml:"default_region"`
	ReferenceModel string                  `yaml:"reference_model"`
	Multipliers    MultiplierRecord        `yaml:"multipliers"`
	Regions        map[string]RegionRecord `yaml:"regions"`
}
