// Package main validates the embedded factor tables against physically
// reasonable ranges before a release.
//
// Usage:
//
//	go run ./tools/validate-factors [--verbose]
//
// The tool loads the embedded catalog (which enforces structural invariants:
// positive energy-per-token, PUE >= 1, default regions present) and then
// applies plausibility bounds: no grid above 2.0 kg CO2e/kWh, no datacenter
// above PUE 2.0, no WUE above 10 L/kWh. It exits nonzero on any violation so
// it can gate CI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rshade/llm-impact/internal/catalog"
)

const (
	maxCarbonIntensity = 2.0  // kg CO2e per kWh; no grid is this dirty
	maxPUE             = 2.0  // no modern datacenter runs above this
	maxWUE             = 10.0 // liters per kWh
	maxEnergyPerToken  = 1.0  // joules; an inference token is millijoules, not joules
)

func main() {
	verbose := flag.Bool("verbose", false, "Print every table entry as it is checked")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	client, err := catalog.NewClient(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog failed structural validation: %v\n", err)
		os.Exit(1)
	}

	violations := 0
	report := func(format string, args ...any) {
		violations++
		fmt.Fprintf(os.Stderr, "VIOLATION: "+format+"\n", args...)
	}

	for _, provider := range client.Providers() {
		record, _ := client.Provider(provider)

		if record.PUE > maxPUE {
			report("provider %s: PUE %.3f exceeds %.1f", provider, record.PUE, maxPUE)
		}
		if record.WUE > maxWUE {
			report("provider %s: WUE %.3f exceeds %.1f", provider, record.WUE, maxWUE)
		}

		for region, factor := range record.Regions {
			if *verbose {
				fmt.Printf("%s/%s: %.3f kg/kWh, %.0f%% renewable, adjustment %.2f\n",
					provider, region, factor.CarbonIntensity, factor.RenewableFraction*100, factor.Adjustment)
			}
			if factor.CarbonIntensity > maxCarbonIntensity {
				report("provider %s region %s: carbon intensity %.3f exceeds %.1f",
					provider, region, factor.CarbonIntensity, maxCarbonIntensity)
			}
		}

		models, _ := client.Models(provider)
		for _, model := range models {
			if *verbose {
				fmt.Printf("%s/%s: %.4g J/token (%s)\n", provider, model.Name, model.EnergyPerToken, model.Architecture)
			}
			if model.EnergyPerToken > maxEnergyPerToken {
				report("model %s/%s: energy per token %.4g exceeds %.1f J",
					provider, model.Name, model.EnergyPerToken, maxEnergyPerToken)
			}
		}
	}

	if violations > 0 {
		fmt.Fprintf(os.Stderr, "%d violation(s) found\n", violations)
		os.Exit(1)
	}
	fmt.Println("all factor tables within expected ranges")
}
