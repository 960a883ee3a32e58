// Package criteria declares the Criterion interface, the CriterionFunc
// adapter, and the sentinel errors shared by the concrete criteria.
package criteria

import (
	"errors"

	"github.com/katalvlaran/clustra/particle"
)

// Sentinel errors for criterion construction and conformance checking.
var (
	// ErrNonPositiveCutoff indicates a cutoff that is zero or negative.
	ErrNonPositiveCutoff = errors.New("criteria: cutoff must be positive")

	// ErrNilPotential indicates a nil pair-potential function.
	ErrNilPotential = errors.New("criteria: pair potential is nil")

	// ErrNilCriterion indicates a nil Criterion was supplied.
	ErrNilCriterion = errors.New("criteria: criterion is nil")

	// ErrNilRegistry indicates a nil Registry was supplied.
	ErrNilRegistry = errors.New("criteria: registry is nil")

	// ErrAsymmetric indicates a criterion whose result depends on argument order.
	ErrAsymmetric = errors.New("criteria: criterion is not symmetric")
)

// Criterion decides whether two particles count as neighbors.
//
// Implementations MUST be symmetric and side-effect-free; see the package
// documentation for the full contract.
type Criterion interface {
	// AreNeighbors reports whether p1 and p2 are neighbors.
	AreNeighbors(p1, p2 particle.Particle) bool
}

// CriterionFunc adapts an ordinary function to the Criterion interface.
// The wrapped function inherits the Criterion contract (symmetry, purity).
type CriterionFunc func(p1, p2 particle.Particle) bool

// AreNeighbors calls the wrapped function.
func (f CriterionFunc) AreNeighbors(p1, p2 particle.Particle) bool {
	return f(p1, p2)
}
