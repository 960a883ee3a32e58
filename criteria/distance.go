package criteria

import (
	"fmt"

	"github.com/katalvlaran/clustra/particle"
)

// DistanceCriterion reports two particles as neighbors when their
// minimum-image distance is strictly below the cutoff.
//
// Periodic boundaries are handled by the Box: periodic axes use the minimum
// image convention, open axes the plain Cartesian difference. The criterion
// is symmetric by construction (distance is).
type DistanceCriterion struct {
	cutoff float64
	box    particle.Box
}

// NewDistanceCriterion builds a DistanceCriterion for the given cutoff and
// box geometry. Returns ErrNonPositiveCutoff for cutoff <= 0.
func NewDistanceCriterion(cutoff float64, box particle.Box) (*DistanceCriterion, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveCutoff, cutoff)
	}

	return &DistanceCriterion{cutoff: cutoff, box: box}, nil
}

// Cutoff returns the configured distance cutoff.
func (c *DistanceCriterion) Cutoff() float64 { return c.cutoff }

// AreNeighbors reports whether p1 and p2 lie closer than the cutoff under
// the minimum image convention.
// Complexity: O(1).
func (c *DistanceCriterion) AreNeighbors(p1, p2 particle.Particle) bool {
	return c.box.Distance(p1.Pos, p2.Pos) < c.cutoff
}
