package emissions

// Aggregate combines emission results into summary statistics. Per-token
// averages are 0 (not NaN) when the set carries no tokens; an empty input
// yields the zero value with Calls == 0.
func Aggregate(results []EmissionResult) AggregatedImpact {
	agg := AggregatedImpact{Calls: len(results)}
	for _, r := range results {
		agg.CO2Grams += r.CO2Grams
		agg.EnergyWh += r.EnergyWh
		agg.WaterLiters += r.WaterLiters
		agg.TotalTokens += r.TotalTokens()
	}
	if agg.TotalTokens > 0 {
		agg.CO2GramsPerToken = agg.CO2Grams / float64(agg.TotalTokens)
		agg.EnergyWhPerToken = agg.EnergyWh / float64(agg.TotalTokens)
	}
	return agg
}
