package criteria

import (
	"fmt"

	"github.com/katalvlaran/clustra/particle"
)

// PairPotential evaluates the short-range interaction energy between two
// particles. It inherits the Criterion contract: symmetric in its arguments
// and side-effect-free.
type PairPotential func(p1, p2 particle.Particle) float64

// EnergyCriterion reports two particles as neighbors when their pair
// potential evaluates to at least the cutoff energy.
//
// The potential itself is injected; the criterion owns only the threshold
// decision.
type EnergyCriterion struct {
	u      PairPotential
	cutoff float64
}

// NewEnergyCriterion builds an EnergyCriterion from a pair potential and an
// energy cutoff. Returns ErrNilPotential for a nil potential and
// ErrNonPositiveCutoff for cutoff <= 0.
func NewEnergyCriterion(u PairPotential, cutoff float64) (*EnergyCriterion, error) {
	if u == nil {
		return nil, ErrNilPotential
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveCutoff, cutoff)
	}

	return &EnergyCriterion{u: u, cutoff: cutoff}, nil
}

// Cutoff returns the configured energy cutoff.
func (c *EnergyCriterion) Cutoff() float64 { return c.cutoff }

// AreNeighbors reports whether the pair energy of p1 and p2 reaches the
// cutoff.
// Complexity: one potential evaluation.
func (c *EnergyCriterion) AreNeighbors(p1, p2 particle.Particle) bool {
	return c.u(p1, p2) >= c.cutoff
}
