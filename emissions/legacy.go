package emissions

// ClaudeOptions carries the optional inputs of the legacy claude-only entry
// point. A nil options value means defaults throughout.
type ClaudeOptions struct {
	CacheCreationTokens *int64
	CacheReadTokens     *int64
	Reasoning           bool
	Region              string
}

// CalculateClaudeImpact is the legacy single-provider entry point, fixed to
// the claude provider. It produces numerically identical results to
// CalculateImpact given the equivalent configuration; that equivalence is a
// compatibility contract, not an implementation detail.
//
// Deprecated: use CalculateImpact with an explicit provider.
func CalculateClaudeImpact(model string, inputTokens, outputTokens int64, opts *ClaudeOptions) (EmissionResult, error) {
	cfg := EmissionConfig{
		Provider:     ProviderClaude,
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
	}
	if opts != nil {
		cfg.CacheCreationTokens = opts.CacheCreationTokens
		cfg.CacheReadTokens = opts.CacheReadTokens
		cfg.Reasoning = opts.Reasoning
		cfg.Region = opts.Region
	}
	return CalculateImpact(cfg)
}
