// Package particle defines the fundamental particle types and the
// slot-indexed Registry container for the clustra cluster-analysis library.
//
// What:
//
//   - ID — opaque unique particle identity, distinct from the registry slot.
//   - Particle — position, type and bond topology of a single particle.
//   - Box — periodic simulation box with minimum-image displacement/distance.
//   - Registry — sparse slot→particle container with per-slot liveness,
//     a highest-occupied-slot query, and identity→slot lookup.
//
// Why:
//
//   - Cluster analysis scans particle pairs by slot index, skipping dead
//     slots; the Registry exposes exactly that access pattern.
//   - Slot occupancy is tracked in a compressed roaring bitmap, so sparse
//     registries (high slot numbers, many gaps) stay cheap to scan.
//   - Particles are returned by value: neighbor criteria must stay
//     side-effect-free, and value semantics make that the default.
//
// Concurrency:
//
//	All Registry methods are guarded by a sync.RWMutex, so concurrent
//	readers and writers are safe. A registry must nevertheless stay stable
//	(no Set/Add/Remove) for the duration of one cluster.Analyze pass.
//
// Errors:
//
//	ErrNegativeSlot - slot index below zero.
//	ErrDuplicateID  - identity already registered at a different slot.
package particle
