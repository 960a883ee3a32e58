package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/clustra/particle"
)

// Chain generates n particles along the x axis, spacing apart, with a bond
// of the configured type between each consecutive pair (anchored at the
// lower-identity partner).
// Returns ErrNonPositiveCount for n < 1 and ErrNonPositiveSpacing for
// spacing <= 0.
// Complexity: O(n).
func Chain(n int, spacing float64, opts ...Option) (*particle.Registry, error) {
	o, err := build(n, spacing, opts)
	if err != nil {
		return nil, err
	}

	reg := particle.NewRegistry(particle.WithCapacity(n))
	for i := 0; i < n; i++ {
		p := particle.Particle{
			ID:   particle.ID(o.idBase + i),
			Pos:  [3]float64{float64(i) * spacing, 0, 0},
			Type: o.partType,
		}
		if i+1 < n {
			p.Bonds = []particle.Bond{{Partner: particle.ID(o.idBase + i + 1), Type: o.bondType}}
		}
		if err = reg.Set(o.startSlot+i*o.slotGap, p); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Lattice generates a cubic lattice of side³ particles with the given
// lattice spacing, anchored at the origin.
// Returns ErrNonPositiveCount for side < 1 and ErrNonPositiveSpacing for
// spacing <= 0.
// Complexity: O(side³).
func Lattice(side int, spacing float64, opts ...Option) (*particle.Registry, error) {
	o, err := build(side, spacing, opts)
	if err != nil {
		return nil, err
	}

	n := side * side * side
	reg := particle.NewRegistry(particle.WithCapacity(n))
	i := 0
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				p := particle.Particle{
					ID:   particle.ID(o.idBase + i),
					Pos:  [3]float64{float64(x) * spacing, float64(y) * spacing, float64(z) * spacing},
					Type: o.partType,
				}
				if err = reg.Set(o.startSlot+i*o.slotGap, p); err != nil {
					return nil, err
				}
				i++
			}
		}
	}

	return reg, nil
}

// RandomGas generates n particles uniformly distributed inside box, using
// the configured seed for reproducibility.
// Returns ErrNonPositiveCount for n < 1 and ErrEmptyBox when any box axis
// has no extent.
// Complexity: O(n).
func RandomGas(n int, box particle.Box, opts ...Option) (*particle.Registry, error) {
	o, err := build(n, 1, opts)
	if err != nil {
		return nil, err
	}
	if box.L[0] <= 0 || box.L[1] <= 0 || box.L[2] <= 0 {
		return nil, fmt.Errorf("%w: L = %v", ErrEmptyBox, box.L)
	}

	rng := rand.New(rand.NewSource(o.seed))
	reg := particle.NewRegistry(particle.WithCapacity(n))
	for i := 0; i < n; i++ {
		p := particle.Particle{
			ID:   particle.ID(o.idBase + i),
			Pos:  [3]float64{rng.Float64() * box.L[0], rng.Float64() * box.L[1], rng.Float64() * box.L[2]},
			Type: o.partType,
		}
		if err = reg.Set(o.startSlot+i*o.slotGap, p); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// DimerGas generates pairs bonded dimers: each dimer has a random anchor
// inside box and a partner sep away along x, bonded with the configured
// bond type.
// Returns ErrNonPositiveCount for pairs < 1, ErrNonPositiveSpacing for
// sep <= 0, and ErrEmptyBox when any box axis has no extent.
// Complexity: O(pairs).
func DimerGas(pairs int, sep float64, box particle.Box, opts ...Option) (*particle.Registry, error) {
	o, err := build(pairs, sep, opts)
	if err != nil {
		return nil, err
	}
	if box.L[0] <= 0 || box.L[1] <= 0 || box.L[2] <= 0 {
		return nil, fmt.Errorf("%w: L = %v", ErrEmptyBox, box.L)
	}

	rng := rand.New(rand.NewSource(o.seed))
	reg := particle.NewRegistry(particle.WithCapacity(2 * pairs))
	for i := 0; i < pairs; i++ {
		anchorID := particle.ID(o.idBase + 2*i)
		partnerID := anchorID + 1
		anchor := particle.Particle{
			ID:    anchorID,
			Pos:   [3]float64{rng.Float64() * box.L[0], rng.Float64() * box.L[1], rng.Float64() * box.L[2]},
			Type:  o.partType,
			Bonds: []particle.Bond{{Partner: partnerID, Type: o.bondType}},
		}
		partner := particle.Particle{
			ID:   partnerID,
			Pos:  [3]float64{anchor.Pos[0] + sep, anchor.Pos[1], anchor.Pos[2]},
			Type: o.partType,
		}
		if err = reg.Set(o.startSlot+2*i*o.slotGap, anchor); err != nil {
			return nil, err
		}
		if err = reg.Set(o.startSlot+(2*i+1)*o.slotGap, partner); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// build validates the shared count/spacing arguments and applies options.
func build(count int, spacing float64, opts []Option) (options, error) {
	if count < 1 {
		return options{}, fmt.Errorf("%w: got %d", ErrNonPositiveCount, count)
	}
	if spacing <= 0 {
		return options{}, fmt.Errorf("%w: got %g", ErrNonPositiveSpacing, spacing)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}
