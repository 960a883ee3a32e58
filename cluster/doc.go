// Package cluster identifies connected components ("clusters") among the
// particles of a registry, two particles being connected when a neighbor
// criterion reports them adjacent.
//
// What:
//
//   - Structure — owns the particle→label map, the label redirect map, and
//     the label→Cluster map, plus the incremental label-merging algorithm
//     that builds them.
//   - Analyze — one full analysis pass: clear state, scan all unordered
//     pairs of live particles, feed positive pairs to the pairing step,
//     then collapse redirect chains and materialize Cluster objects.
//   - Cluster — canonical label plus the sorted particle identities that
//     resolve to it, with on-demand observables (center of mass, radius of
//     gyration, longest distance, fractal dimension).
//
// Why:
//
//   - Aggregation analysis: droplets, micelles, percolating networks.
//   - Bond topology: molecules as clusters under a bond criterion.
//   - Any transitive-closure grouping driven by a pairwise predicate.
//
// How it works:
//
//	Labels are nonnegative integers allocated by a monotonic counter, never
//	reused within a pass. When two already-labeled clusters meet, the larger
//	canonical label is redirected to the smaller one; redirect chains are
//	therefore strictly descending, cycle-free, and finite. The final merge
//	pass resolves every stored label to its canonical form and builds one
//	Cluster per canonical label. This is a deliberate union-find variant
//	without path compression: correctness first, and the observable result
//	would not change if compression were added.
//
// Complexity:
//
//	Analyze: O(N²) criterion evaluations for N live particles with the
//	default all-pairs source (the correctness baseline; substitute a
//	smarter candidate generator via WithPairSource), plus O(P·C) label
//	resolution where P is the number of labeled particles and C the longest
//	redirect chain.
//
// Options:
//
//   - WithSingletons    — materialize live particles that never passed a
//     positive neighbor test as one-particle clusters.
//   - WithPairSource    — substitute the all-pairs candidate enumerator.
//
// Concurrency:
//
//	A Structure is not safe for concurrent use: Analyze overwrites all
//	state, and mid-pass state is not a valid partition. The registry must
//	stay stable for the duration of one Analyze call.
//
// Errors:
//
//	ErrNilRegistry     - Analyze got a nil registry.
//	ErrNilCriterion    - Analyze got a nil criterion.
//	ErrRedirectCycle   - redirect map violated the strictly-descending
//	                     invariant; the pass aborts loudly.
//	ErrClusterTooSmall - observable needs more members than the cluster has.
//	ErrNonPositiveBin  - fractal dimension needs a positive bin width.
package cluster
