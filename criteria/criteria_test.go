// File: criteria/criteria_test.go
package criteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustra/criteria"
	"github.com/katalvlaran/clustra/particle"
)

// at builds a particle with the given identity and x coordinate.
func at(id particle.ID, x float64) particle.Particle {
	return particle.Particle{ID: id, Pos: [3]float64{x, 0, 0}}
}

// TestDistanceCriterion_OpenBox verifies the strict cutoff on plain geometry.
func TestDistanceCriterion_OpenBox(t *testing.T) {
	c, err := criteria.NewDistanceCriterion(1.0, particle.OpenBox())
	require.NoError(t, err)

	assert.True(t, c.AreNeighbors(at(1, 0), at(2, 0.9)), "0.9 < 1.0 should be neighbors")
	assert.False(t, c.AreNeighbors(at(1, 0), at(2, 1.0)), "cutoff is strict")
	assert.False(t, c.AreNeighbors(at(1, 0), at(2, 1.5)))
	assert.Equal(t, 1.0, c.Cutoff())
}

// TestDistanceCriterion_PeriodicWrap verifies the minimum image convention:
// particles hugging opposite box faces are close, not far.
func TestDistanceCriterion_PeriodicWrap(t *testing.T) {
	c, err := criteria.NewDistanceCriterion(1.5, particle.CubicBox(10))
	require.NoError(t, err)

	assert.True(t, c.AreNeighbors(at(1, 0.5), at(2, 9.5)), "wrap distance 1.0 < 1.5")
	assert.False(t, c.AreNeighbors(at(1, 0.5), at(2, 5.0)))
}

// TestDistanceCriterion_BadCutoff verifies constructor validation.
func TestDistanceCriterion_BadCutoff(t *testing.T) {
	_, err := criteria.NewDistanceCriterion(0, particle.OpenBox())
	assert.ErrorIs(t, err, criteria.ErrNonPositiveCutoff)

	_, err = criteria.NewDistanceCriterion(-2, particle.OpenBox())
	assert.ErrorIs(t, err, criteria.ErrNonPositiveCutoff)
}

// TestBondCriterion verifies bond lookups in both anchoring directions and
// the type filter.
func TestBondCriterion(t *testing.T) {
	c := criteria.NewBondCriterion(1)

	p1 := particle.Particle{ID: 1, Bonds: []particle.Bond{{Partner: 2, Type: 1}}}
	p2 := particle.Particle{ID: 2}
	p3 := particle.Particle{ID: 3, Bonds: []particle.Bond{{Partner: 1, Type: 0}}}

	assert.True(t, c.AreNeighbors(p1, p2), "bond anchored at p1")
	assert.True(t, c.AreNeighbors(p2, p1), "symmetric: bond anchored at second argument")
	assert.False(t, c.AreNeighbors(p1, p3), "bond of the wrong type")
	assert.Equal(t, 1, c.BondType())
}

// TestEnergyCriterion verifies the threshold decision and constructor
// validation.
func TestEnergyCriterion(t *testing.T) {
	// Toy potential: inverse distance along x.
	u := func(p1, p2 particle.Particle) float64 {
		d := p1.Pos[0] - p2.Pos[0]
		if d < 0 {
			d = -d
		}

		return 1 / d
	}

	c, err := criteria.NewEnergyCriterion(u, 0.5)
	require.NoError(t, err)

	assert.True(t, c.AreNeighbors(at(1, 0), at(2, 1)), "u=1 >= 0.5")
	assert.True(t, c.AreNeighbors(at(1, 0), at(2, 2)), "u=0.5 >= 0.5: boundary included")
	assert.False(t, c.AreNeighbors(at(1, 0), at(2, 4)), "u=0.25 < 0.5")

	_, err = criteria.NewEnergyCriterion(nil, 0.5)
	assert.ErrorIs(t, err, criteria.ErrNilPotential)
	_, err = criteria.NewEnergyCriterion(u, 0)
	assert.ErrorIs(t, err, criteria.ErrNonPositiveCutoff)
}

// TestCheckSymmetry_Passes verifies that well-behaved criteria pass both the
// sampled and the exhaustive sweep.
func TestCheckSymmetry_Passes(t *testing.T) {
	reg := particle.NewRegistry()
	for i := 0; i < 8; i++ {
		require.NoError(t, reg.Set(i, particle.Particle{ID: particle.ID(i), Pos: [3]float64{float64(i), 0, 0}}))
	}

	c, err := criteria.NewDistanceCriterion(1.5, particle.OpenBox())
	require.NoError(t, err)

	assert.NoError(t, criteria.CheckSymmetry(c, reg, 100, 42), "sampled")
	assert.NoError(t, criteria.CheckSymmetry(c, reg, 0, 0), "exhaustive")
}

// TestCheckSymmetry_FlagsAsymmetry verifies that an order-dependent
// criterion is rejected with ErrAsymmetric.
func TestCheckSymmetry_FlagsAsymmetry(t *testing.T) {
	reg := particle.NewRegistry()
	for i := 0; i < 4; i++ {
		require.NoError(t, reg.Set(i, particle.Particle{ID: particle.ID(i)}))
	}

	// Deliberately broken: compares identities directionally.
	broken := criteria.CriterionFunc(func(p1, p2 particle.Particle) bool {
		return p1.ID < p2.ID
	})

	err := criteria.CheckSymmetry(broken, reg, 0, 0)
	assert.ErrorIs(t, err, criteria.ErrAsymmetric)
}

// TestCheckSymmetry_NilInputs verifies the explicit nil errors and the
// trivial pass on tiny registries.
func TestCheckSymmetry_NilInputs(t *testing.T) {
	reg := particle.NewRegistry()
	c := criteria.NewBondCriterion(0)

	assert.ErrorIs(t, criteria.CheckSymmetry(nil, reg, 10, 1), criteria.ErrNilCriterion)
	assert.ErrorIs(t, criteria.CheckSymmetry(c, nil, 10, 1), criteria.ErrNilRegistry)

	// Fewer than two live particles: trivially symmetric.
	require.NoError(t, reg.Set(0, particle.Particle{ID: 1}))
	assert.NoError(t, criteria.CheckSymmetry(c, reg, 10, 1))
}
