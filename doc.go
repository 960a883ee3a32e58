// Package clustra is an in-memory cluster-analysis toolkit for simulation
// particles: group particles into connected components ("clusters") driven
// by any pairwise neighbor criterion.
//
// 🚀 What is clustra?
//
//	A small, correctness-first library that brings together:
//		• Particle primitives: opaque identities, bond topology, periodic boxes
//		• A sparse slot-indexed Registry with roaring-bitmap occupancy
//		• Neighbor criteria: distance (minimum image), bond, energy — or your own
//		• Incremental label-merging connectivity (a union-find variant with
//		  strictly descending redirects) with a final merge/resolution pass
//		• Per-cluster observables: center of mass, radius of gyration,
//		  longest distance, fractal dimension
//
// ✨ Why choose clustra?
//
//   - Deterministic partitions – scan-order independent, reproducible builders
//   - Explicit lifetimes – no global singleton; you own every Structure
//   - Honest failure – broken redirect invariants fail loudly, never loop
//   - Swappable candidate generation – all-pairs baseline, bring your own
//
// Everything is organized under four subpackages:
//
//	particle/ — Particle, Box, and the slot-indexed sparse Registry
//	criteria/ — the Criterion contract plus distance/bond/energy criteria
//	cluster/  — the Structure, the analysis pass, and cluster observables
//	builder/  — deterministic particle-configuration generators for tests
//
// Quick ASCII example:
//
//	0──1   2──3     after Analyze with a distance criterion:
//	                cluster {0,1} and cluster {2,3} — and a later
//	0──1───2──3     bridge pair merges them into one.
//
// Dive into the package docs for contracts, invariants, and complexity notes.
//
//	go get github.com/katalvlaran/clustra
package clustra
