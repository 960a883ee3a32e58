// Package builder provides deterministic particle-configuration generators
// for tests, benchmarks, and examples.
//
// What:
//
//   - Chain     — n particles along x with consecutive bonds.
//   - Lattice   — cubic lattice of side³ particles.
//   - RandomGas — uniformly distributed particles in a box (seeded).
//   - DimerGas  — bonded particle pairs scattered through a box.
//
// Every generator returns a freshly populated *particle.Registry. Options
// control the slot layout (start slot, gaps between slots), identity base,
// particle type, bond type, and the random seed, so a generated
// configuration is reproducible bit for bit.
//
// Identities are assigned as idBase + running index and slots independently
// as startSlot + i·slotGap: generated registries exercise the
// identity≠slot-index contract of the cluster analysis by default.
//
// Errors:
//
//	ErrNonPositiveCount   - particle/pair count must be >= 1.
//	ErrNonPositiveSpacing - spacing/separation must be > 0.
//	ErrEmptyBox           - gas generators need a box with volume.
package builder
