// Package catalog provides read-only access to the embedded model spec and
// regional factor tables. Data is parsed once and never changes during
// execution.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed data/models.json
var rawModelsJSON []byte

//go:embed data/providers.yaml
var rawProvidersYAML []byte

// Client implements lookups over the embedded catalog data.
type Client struct {
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	// In-memory indexes (built on first access)
	modelIndex    map[string]map[string]ModelRecord // provider -> model name -> record
	modelOrder    map[string][]string               // provider -> model names in table order
	providerIndex map[string]ProviderRecord
}

// NewClient creates a Client from the embedded catalog data.
// The provided logger is used for diagnostics while building the indexes.
// It returns a non-nil error if the embedded data fails to parse or violates
// a table invariant.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses the embedded tables exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		var models map[string][]ModelRecord
		if err := json.Unmarshal(rawModelsJSON, &models); err != nil {
			c.err = fmt.Errorf("failed to parse model spec data: %w", err)
			return
		}

		var providers struct {
			Providers map[string]ProviderRecord `yaml:"providers"`
		}
		if err := yaml.Unmarshal(rawProvidersYAML, &providers); err != nil {
			c.err = fmt.Errorf("failed to parse provider factor data: %w", err)
			return
		}

		c.modelIndex = make(map[string]map[string]ModelRecord, len(models))
		c.modelOrder = make(map[string][]string, len(models))
		c.providerIndex = providers.Providers

		for provider, records := range models {
			index := make(map[string]ModelRecord, len(records))
			order := make([]string, 0, len(records))
			for _, record := range records {
				if record.Name == "" || record.EnergyPerToken <= 0 {
					c.err = fmt.Errorf("invalid model record %q for provider %q: energy per token must be > 0", record.Name, provider)
					return
				}
				index[record.Name] = record
				order = append(order, record.Name)
			}
			c.modelIndex[provider] = index
			c.modelOrder[provider] = order
		}

		for provider, record := range c.providerIndex {
			if err := validateProvider(provider, record, c.modelIndex[provider]); err != nil {
				c.err = err
				return
			}
			c.logger.Debug().
				Str("provider", provider).
				Int("models", len(c.modelIndex[provider])).
				Int("regions", len(record.Regions)).
				Msg("catalog tables loaded")
		}

		// Every model table needs a matching provider profile.
		for provider := range c.modelIndex {
			if _, ok := c.providerIndex[provider]; !ok {
				c.err = fmt.Errorf("provider %q has model specs but no infrastructure profile", provider)
				return
			}
		}
	})
	return c.err
}

// validateProvider checks the physical-range invariants of one provider record.
func validateProvider(provider string, record ProviderRecord, models map[string]ModelRecord) error {
	if record.PUE < 1 {
		return fmt.Errorf("provider %q: PUE must be >= 1, got %f", provider, record.PUE)
	}
	if record.WUE < 0 {
		return fmt.Errorf("provider %q: WUE must be >= 0, got %f", provider, record.WUE)
	}
	if _, ok := record.Regions[record.DefaultRegion]; !ok {
		return fmt.Errorf("provider %q: default region %q is not in the regional table", provider, record.DefaultRegion)
	}
	if _, ok := models[record.ReferenceModel]; !ok {
		return fmt.Errorf("provider %q: reference model %q is not in the model table", provider, record.ReferenceModel)
	}
	for region, factor := range record.Regions {
		if factor.CarbonIntensity < 0 {
			return fmt.Errorf("provider %q region %q: carbon intensity must be >= 0", provider, region)
		}
		if factor.RenewableFraction < 0 || factor.RenewableFraction > 1 {
			return fmt.Errorf("provider %q region %q: renewable fraction must be in [0, 1]", provider, region)
		}
		if factor.Adjustment <= 0 {
			return fmt.Errorf("provider %q region %q: adjustment must be > 0", provider, region)
		}
	}
	return nil
}

// Providers returns all provider identifiers in sorted order.
func (c *Client) Providers() []string {
	providers := make([]string, 0, len(c.providerIndex))
	for provider := range c.providerIndex {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers
}

// Provider returns the infrastructure profile for a provider.
// Returns (record, true) if found, (zero, false) if not found.
func (c *Client) Provider(provider string) (ProviderRecord, bool) {
	record, ok := c.providerIndex[provider]
	return record, ok
}

// Models returns a provider's model records in table order.
// Returns (records, true) if the provider is known, (nil, false) if not.
func (c *Client) Models(provider string) ([]ModelRecord, bool) {
	index, ok := c.modelIndex[provider]
	if !ok {
		return nil, false
	}
	records := make([]ModelRecord, 0, len(index))
	for _, name := range c.modelOrder[provider] {
		records = append(records, index[name])
	}
	return records, true
}

// Model returns the spec record for one (provider, model) pair.
// Returns (record, true) if found, (zero, false) if not found.
func (c *Client) Model(provider, model string) (ModelRecord, bool) {
	index, ok := c.modelIndex[provider]
	if !ok {
		return ModelRecord{}, false
	}
	record, ok := index[model]
	return record, ok
}

// ResolveRegion returns the regional factor for the given region, falling
// back to the provider's default region when the region is empty or absent.
// The resolved region name is returned alongside the record. The boolean is
// false only when the provider itself is unknown; missing regions never fail.
func (c *Client) ResolveRegion(provider, region string) (RegionRecord, string, bool) {
	record, ok := c.providerIndex[provider]
	if !ok {
		return RegionRecord{}, "", false
	}
	if region != "" {
		if factor, found := record.Regions[region]; found {
			return factor, region, true
		}
		c.logger.Debug().
			Str("provider", provider).
			Str("region", region).
			Str("default_region", record.DefaultRegion).
			Msg("region not in table, using provider default")
	}
	return record.Regions[record.DefaultRegion], record.DefaultRegion, true
}
