// File: builder/generators_test.go
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clustra/builder"
	"github.com/katalvlaran/clustra/particle"
)

// TestChain_PositionsAndBonds verifies layout, identities, and the bond
// between consecutive particles.
func TestChain_PositionsAndBonds(t *testing.T) {
	reg, err := builder.Chain(4, 2.0)
	require.NoError(t, err)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, 3, reg.MaxSeen())

	p0, ok := reg.At(0)
	require.True(t, ok)
	assert.Equal(t, particle.ID(100), p0.ID, "identities start at the default base")
	assert.Equal(t, [3]float64{0, 0, 0}, p0.Pos)
	require.Len(t, p0.Bonds, 1)
	assert.Equal(t, particle.ID(101), p0.Bonds[0].Partner)

	p3, ok := reg.At(3)
	require.True(t, ok)
	assert.Equal(t, [3]float64{6, 0, 0}, p3.Pos)
	assert.Empty(t, p3.Bonds, "the chain end has no outgoing bond")
}

// TestChain_SlotLayout verifies start slot and slot gaps leave dead slots.
func TestChain_SlotLayout(t *testing.T) {
	reg, err := builder.Chain(3, 1.0, builder.WithStartSlot(4), builder.WithSlotGap(3))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 7, 10}, reg.ActiveSlots())
	assert.False(t, reg.Alive(5), "gap slots stay dead")
	assert.Equal(t, 10, reg.MaxSeen())
}

// TestLattice_CountAndCorners verifies side³ particles and corner positions.
func TestLattice_CountAndCorners(t *testing.T) {
	reg, err := builder.Lattice(3, 1.5)
	require.NoError(t, err)

	require.Equal(t, 27, reg.Len())

	first, ok := reg.At(0)
	require.True(t, ok)
	assert.Equal(t, [3]float64{0, 0, 0}, first.Pos)

	last, ok := reg.At(26)
	require.True(t, ok)
	assert.Equal(t, [3]float64{3, 3, 3}, last.Pos)
}

// TestRandomGas_Reproducible verifies that equal seeds produce identical
// configurations and different seeds do not.
func TestRandomGas_Reproducible(t *testing.T) {
	box := particle.CubicBox(10)

	a, err := builder.RandomGas(16, box, builder.WithSeed(3))
	require.NoError(t, err)
	b, err := builder.RandomGas(16, box, builder.WithSeed(3))
	require.NoError(t, err)
	c, err := builder.RandomGas(16, box, builder.WithSeed(4))
	require.NoError(t, err)

	pa, _ := a.At(5)
	pb, _ := b.At(5)
	pc, _ := c.At(5)
	assert.Equal(t, pa.Pos, pb.Pos, "same seed, same configuration")
	assert.NotEqual(t, pa.Pos, pc.Pos, "different seed, different configuration")

	// Positions stay inside the box.
	for _, slot := range a.ActiveSlots() {
		p, _ := a.At(slot)
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, p.Pos[k], 0.0)
			assert.Less(t, p.Pos[k], box.L[k])
		}
	}
}

// TestDimerGas_Bonds verifies that each dimer is a bonded pair sep apart.
func TestDimerGas_Bonds(t *testing.T) {
	box := particle.CubicBox(50)
	reg, err := builder.DimerGas(5, 0.8, box)
	require.NoError(t, err)

	require.Equal(t, 10, reg.Len())
	for i := 0; i < 5; i++ {
		anchor, ok := reg.At(2 * i)
		require.True(t, ok)
		partner, ok := reg.At(2*i + 1)
		require.True(t, ok)

		require.Len(t, anchor.Bonds, 1)
		assert.Equal(t, partner.ID, anchor.Bonds[0].Partner)
		assert.InDelta(t, 0.8, partner.Pos[0]-anchor.Pos[0], 1e-12)
	}
}

// TestGenerators_Validation covers the shared argument validation.
func TestGenerators_Validation(t *testing.T) {
	_, err := builder.Chain(0, 1.0)
	assert.ErrorIs(t, err, builder.ErrNonPositiveCount)

	_, err = builder.Chain(3, 0)
	assert.ErrorIs(t, err, builder.ErrNonPositiveSpacing)

	_, err = builder.Lattice(-1, 1.0)
	assert.ErrorIs(t, err, builder.ErrNonPositiveCount)

	_, err = builder.RandomGas(8, particle.OpenBox())
	assert.ErrorIs(t, err, builder.ErrEmptyBox)

	_, err = builder.DimerGas(2, 0.5, particle.Box{L: [3]float64{10, 10, 0}})
	assert.ErrorIs(t, err, builder.ErrEmptyBox)
}
