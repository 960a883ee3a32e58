// File: cluster/bench_test.go
package cluster_test

import (
	"testing"

	"github.com/katalvlaran/clustra/builder"
	"github.com/katalvlaran/clustra/cluster"
	"github.com/katalvlaran/clustra/criteria"
	"github.com/katalvlaran/clustra/particle"
)

// BenchmarkAnalyze_RandomGas measures a full analysis pass over a random gas
// with a distance criterion: the O(N²) all-pairs baseline.
func BenchmarkAnalyze_RandomGas(b *testing.B) {
	const n = 400
	box := particle.CubicBox(20)
	reg, err := builder.RandomGas(n, box, builder.WithSeed(7))
	if err != nil {
		b.Fatalf("RandomGas failed: %v", err)
	}
	crit, err := criteria.NewDistanceCriterion(1.2, box)
	if err != nil {
		b.Fatalf("NewDistanceCriterion failed: %v", err)
	}
	s := cluster.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = s.Analyze(reg, crit); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze_BondedChain measures the pass on a long bonded chain,
// where almost every positive pair extends an existing cluster (case 2 of
// the pairing step dominates).
func BenchmarkAnalyze_BondedChain(b *testing.B) {
	const n = 1000
	reg, err := builder.Chain(n, 1.0)
	if err != nil {
		b.Fatalf("Chain failed: %v", err)
	}
	crit := criteria.NewBondCriterion(0)
	s := cluster.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = s.Analyze(reg, crit); err != nil {
			b.Fatal(err)
		}
	}
}
