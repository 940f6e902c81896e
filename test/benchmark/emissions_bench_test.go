// Package benchmark provides performance benchmarks for the emission
// calculators. Every calculation is pure arithmetic over static tables and
// should complete in well under a microsecond.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"sync"
	"testing"

	"github.com/rshade/llm-impact/emissions"
)

var benchConfig = emissions.EmissionConfig{
	Provider:     emissions.ProviderClaude,
	Model:        "claude-sonnet-4-5",
	InputTokens:  1000,
	OutputTokens: 500,
}

func BenchmarkCalculateImpact(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emissions.CalculateImpact(benchConfig); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateImpact_WithCacheAndReasoning(b *testing.B) {
	cacheWrite := int64(500)
	cacheRead := int64(8000)
	cfg := benchConfig
	cfg.CacheCreationTokens = &cacheWrite
	cfg.CacheReadTokens = &cacheRead
	cfg.Reasoning = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emissions.CalculateImpact(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareProviders(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emissions.CompareProviders(1000, 500, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateBatch_100(b *testing.B) {
	cfgs := make([]emissions.EmissionConfig, 100)
	for i := range cfgs {
		cfgs[i] = benchConfig
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := emissions.CalculateBatch(cfgs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCalculateImpact_Parallel exercises the no-shared-mutable-state
// property: independent calculations must scale across goroutines without
// locking.
func BenchmarkCalculateImpact_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := emissions.CalculateImpact(benchConfig); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// TestConcurrentCalculations is a smoke test that many goroutines can share
// the default engine safely.
func TestConcurrentCalculations(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := emissions.CalculateImpact(benchConfig); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}
