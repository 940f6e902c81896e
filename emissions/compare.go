package emissions

import (
	"sort"
	"sync"
)

// CompareProviders computes one result per provider at the given token
// counts, each using that provider's reference model and default region.
// Calculations are independent and side-effect-free, so they fan out
// concurrently and join once all complete; any single failure fails the
// whole comparison rather than returning partial results.
//
// Results are ordered by provider identifier.
func (e *Engine) CompareProviders(inputTokens, outputTokens int64, reasoning bool) ([]EmissionResult, error) {
	results := make([]EmissionResult, len(e.providers))
	errs := make([]error, len(e.providers))

	var wg sync.WaitGroup
	for i, provider := range e.providers {
		wg.Add(1)
		go func(i int, provider Provider) {
			defer wg.Done()
			calc := e.calculators[provider]
			results[i], errs[i] = calc.CalculateEmissions(EmissionConfig{
				Provider:     provider,
				Model:        calc.ReferenceModel(),
				InputTokens:  inputTokens,
				OutputTokens: outputTokens,
				Reasoning:    reasoning,
			})
		}(i, provider)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// RankByEfficiency compares all providers at the given token counts and
// ranks the results ascending by CO2.
func (e *Engine) RankByEfficiency(inputTokens, outputTokens int64) ([]RankedResult, error) {
	results, err := e.CompareProviders(inputTokens, outputTokens, false)
	if err != nil {
		return nil, err
	}
	return RankResults(results), nil
}

// RankResults orders results ascending by CO2Grams and annotates each with
// an efficiency score of maxCO2 / thisCO2: the least-emitting entry receives
// the highest score, the most-emitting entry exactly 1.0. A zero-emission
// entry among nonzero ones scores 0 by convention rather than dividing by
// zero; an all-zero set scores 1.0 throughout.
func RankResults(results []EmissionResult) []RankedResult {
	ranked := make([]RankedResult, len(results))
	maxCO2 := 0.0
	for i, r := range results {
		ranked[i] = RankedResult{EmissionResult: r}
		if r.CO2Grams > maxCO2 {
			maxCO2 = r.CO2Grams
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CO2Grams < ranked[j].CO2Grams
	})

	for i := range ranked {
		switch {
		case ranked[i].CO2Grams > 0:
			ranked[i].Efficiency = maxCO2 / ranked[i].CO2Grams
		case maxCO2 == 0:
			ranked[i].Efficiency = 1.0
		default:
			ranked[i].Efficiency = 0
		}
	}
	return ranked
}

// CompareProviders computes one result per provider using the default engine.
func CompareProviders(inputTokens, outputTokens int64, reasoning bool) ([]EmissionResult, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return nil, err
	}
	return engine.CompareProviders(inputTokens, outputTokens, reasoning)
}

// RankByEfficiency ranks all providers at the given token counts using the
// default engine.
func RankByEfficiency(inputTokens, outputTokens int64) ([]RankedResult, error) {
	engine, err := getDefaultEngine()
	if err != nil {
		return nil, err
	}
	return engine.RankByEfficiency(inputTokens, outputTokens)
}
