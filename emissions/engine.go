package emissions

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

// Engine dispatches calculations to per-provider calculators. All state is
// immutable after construction, so a single Engine is safe for concurrent
// use without locking.
type Engine struct {
	calculators map[Provider]Calculator
	providers   []Provider // sorted, for deterministic iteration
	logger      zerolog.Logger
}

// NewEngine builds an engine over the embedded factor tables. The logger is
// propagated to the catalog client and every calculator.
func NewEngine(logger zerolog.Logger) (*Engine, error) {
	cat, err := catalog.NewClient(logger)
	if err != nil {
		return nil, err
	}

	calculators := map[Provider]Calculator{
		ProviderClaude: newClaudeCalculator(cat, logger),
		ProviderOpenAI: newOpenAICalculator(cat, logger),
		ProviderGemini: newGeminiCalculator(cat, logger),
	}

	providers := make([]Provider, 0, len(calculators))
	for _, name := range cat.Providers() {
		if _, ok := calculators[Provider(name)]; ok {
			providers = append(providers, Provider(name))
		}
	}

	return &Engine{
		calculators: calculators,
		providers:   providers,
		logger:      logger,
	}, nil
}

// Calculator returns the calculator for a provider, or UnknownProviderError.
func (e *Engine) Calculator(provider Provider) (Calculator, error) {
	calc, ok := e.calculators[provider]
	if !ok {
		return nil, &UnknownProviderError{Provider: provider}
	}
	return calc, nil
}

// CalculateImpact computes the impact of a single provider-qualified call.
func (e *Engine) CalculateImpact(cfg EmissionConfig) (EmissionResult, error) {
	calc, err := e.Calculator(cfg.Provider)
	if err != nil {
		return EmissionResult{}, err
	}
	return calc.CalculateEmissions(cfg)
}

// CalculateBatch computes impacts for a list of configurations,
// order-preserving and independent per element. The first failure aborts the
// batch: there is no meaningful partial environmental-impact answer. An empty
// input yields an empty, non-nil slice.
func (e *Engine) CalculateBatch(cfgs []EmissionConfig) ([]EmissionResult, error) {
	results := make([]EmissionResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		result, err := e.CalculateImpact(cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// SupportedProviders returns all provider identifiers in sorted order.
func (e *Engine) SupportedProviders() []string {
	providers := make([]string, len(e.providers))
	for i, p := range e.providers {
		providers[i] = string(p)
	}
	return providers
}

// SupportedModels returns a provider's model identifiers in table order.
func (e *Engine) SupportedModels(provider Provider) ([]string, error) {
	calc, err := e.Calculator(provider)
	if err != nil {
		return nil, err
	}
	return calc.SupportedModels(), nil
}

// GetModelInfo returns the spec for one (provider, model) pair.
func (e *Engine) GetModelInfo(provider Provider, model string) (ModelSpec, error) {
	calc, err := e.Calculator(provider)
	if err != nil {
		return ModelSpec{}, err
	}
	return calc.ModelInfo(model)
}

// RegionalFactors returns a provider's full regional factor table.
func (e *Engine) RegionalFactors(provider Provider) (map[string]RegionalFactor, error) {
	calc, err := e.Calculator(provider)
	if err != nil {
		return nil, err
	}
	return calc.RegionalFactors(), nil
}

// The package-level functions operate on a process-wide default engine with
// a no-op logger, initialized once on first use. The embedded tables are
// validated at build time by tests and tools/validate-factors, so the default
// engine construction only fails if the binary itself is broken.
var (
	defaultEngine     *Engine
	defaultEngineErr  error
	defaultEngineOnce sync.Once
)

func getDefaultEngine() (*Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = NewEngine(zerolog.Nop())
	})
	return defaultEngine, defaultEngineErr
}

// CalculateImpact computes the impact of a single provider-qualified call
// using the default engine.
func CalculateImpact(cfg EmissionConfig) (EmissionResult, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return EmissionResult{}, err
	}
	return engine.CalculateImpact(cfg)
}

// CalculateBatch computes impacts for a list of configurations using the
// default engine.
func CalculateBatch(cfgs []EmissionConfig) ([]EmissionResult, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return nil, err
	}
	return engine.CalculateBatch(cfgs)
}

// SupportedProviders returns all provider identifiers in sorted order.
func SupportedProviders() []string {
	engine, err := getDefaultEngine()
	if err != nil {
		return nil
	}
	return engine.SupportedProviders()
}

// SupportedModels returns a provider's model identifiers in table order.
func SupportedModels(provider Provider) ([]string, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return nil, err
	}
	return engine.SupportedModels(provider)
}

// GetModelInfo returns the spec for one (provider, model) pair.
func GetModelInfo(provider Provider, model string) (ModelSpec, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return ModelSpec{}, err
	}
	return engine.GetModelInfo(provider, model)
}
