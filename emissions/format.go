package emissions

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Format renders a result as a human-readable multi-line string. Cache token
// counts appear as a parenthetical suffix only when present and nonzero.
func Format(result EmissionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Provider: %s\n", result.Provider)
	fmt.Fprintf(&b, "Model:    %s\n", result.Model)
	fmt.Fprintf(&b, "CO2:      %.2f g\n", result.CO2Grams)
	fmt.Fprintf(&b, "Energy:   %.2f Wh\n", result.EnergyWh)
	fmt.Fprintf(&b, "Water:    %.3f L\n", result.WaterLiters)

	fmt.Fprintf(&b, "Tokens:   %d", result.InputTokens+result.OutputTokens)
	var cache []string
	if result.CacheCreationTokens != nil && *result.CacheCreationTokens > 0 {
		cache = append(cache, fmt.Sprintf("+%d cache write", *result.CacheCreationTokens))
	}
	if result.CacheReadTokens != nil && *result.CacheReadTokens > 0 {
		cache = append(cache, fmt.Sprintf("+%d cache read", *result.CacheReadTokens))
	}
	if len(cache) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(cache, ", "))
	}
	b.WriteString("\n")

	return b.String()
}

// MarshalResult renders a result as indented JSON. Nil cache fields are
// omitted, matching the presentation convention of Format.
func MarshalResult(result EmissionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
