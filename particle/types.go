// Package particle declares the Particle, Bond, and ID types together with
// the sentinel errors and options used by the Registry.
package particle

import (
	"errors"
)

// Sentinel errors for registry operations.
var (
	// ErrNegativeSlot indicates a slot index below zero was supplied.
	ErrNegativeSlot = errors.New("particle: slot index must be non-negative")

	// ErrDuplicateID indicates the identity is already registered at a different slot.
	ErrDuplicateID = errors.New("particle: identity already registered at another slot")
)

// ID is the opaque, unique identity of a particle.
//
// An ID is owned by the Registry that issued or accepted it and is never
// assumed equal to the slot the particle occupies; downstream code (cluster
// analysis, criteria) treats it purely as a map key.
type ID int

// Bond records one entry of a particle's bond topology: the identity of the
// bonded partner and the numeric bond type.
type Bond struct {
	// Partner is the identity of the particle at the other end of the bond.
	Partner ID

	// Type is the numeric bond type.
	Type int
}

// Particle is a single simulation particle.
//
// Pos holds the Cartesian position. Type is the numeric particle type.
// Bonds lists the particle's bond topology entries; a bond stored on either
// partner counts as a bond between the two.
type Particle struct {
	// ID uniquely identifies this particle within its Registry.
	ID ID

	// Pos is the Cartesian position (x, y, z).
	Pos [3]float64

	// Type is the numeric particle type.
	Type int

	// Bonds lists bond topology entries anchored at this particle.
	Bonds []Bond
}

// Bonded reports whether p carries a bond of the given type to partner.
// Only bonds anchored at p are inspected; symmetric lookups are the
// caller's concern (see criteria.BondCriterion).
// Complexity: O(len(p.Bonds)).
func (p Particle) Bonded(partner ID, bondType int) bool {
	for _, b := range p.Bonds {
		if b.Partner == partner && b.Type == bondType {
			return true
		}
	}

	return false
}

// clone returns a deep copy of p, so that registry reads and writes never
// alias the caller's Bonds slice.
func (p Particle) clone() Particle {
	cp := p
	if len(p.Bonds) > 0 {
		cp.Bonds = make([]Bond, len(p.Bonds))
		copy(cp.Bonds, p.Bonds)
	}

	return cp
}

// RegistryOption configures a Registry before creation.
type RegistryOption func(r *Registry)

// WithCapacity pre-sizes the registry's internal maps for n particles.
func WithCapacity(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.capHint = n
		}
	}
}
