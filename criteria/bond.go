package criteria

import (
	"github.com/katalvlaran/clustra/particle"
)

// BondCriterion reports two particles as neighbors when a bond of the
// configured type exists between them.
//
// Bond topology entries are anchored at one partner only; the criterion
// checks both directions, which also makes it symmetric.
type BondCriterion struct {
	bondType int
}

// NewBondCriterion builds a BondCriterion for the given numeric bond type.
func NewBondCriterion(bondType int) *BondCriterion {
	return &BondCriterion{bondType: bondType}
}

// BondType returns the configured numeric bond type.
func (c *BondCriterion) BondType() int { return c.bondType }

// AreNeighbors reports whether a bond of the configured type connects p1 and
// p2, anchored at either of them.
// Complexity: O(len(p1.Bonds) + len(p2.Bonds)).
func (c *BondCriterion) AreNeighbors(p1, p2 particle.Particle) bool {
	return p1.Bonded(p2.ID, c.bondType) || p2.Bonded(p1.ID, c.bondType)
}
