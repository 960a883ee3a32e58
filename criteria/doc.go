// Package criteria defines the neighbor-criterion contract consumed by the
// cluster package, together with the standard concrete criteria.
//
// What:
//
//   - Criterion — the pairwise predicate deciding whether two particles are
//     neighbors; the single input the cluster analysis needs besides the
//     particle registry.
//   - DistanceCriterion — neighbors iff closer than a cutoff, with periodic
//     boundaries treated via the minimum image convention.
//   - BondCriterion — neighbors iff a bond of a given type exists between
//     them (either direction).
//   - EnergyCriterion — neighbors iff a supplied pair potential evaluates to
//     at least a cutoff energy.
//   - CriterionFunc — adapter turning a plain func into a Criterion.
//   - CheckSymmetry — conformance check for the symmetry precondition.
//
// Contract:
//
//	A Criterion MUST be symmetric (AreNeighbors(a,b) == AreNeighbors(b,a))
//	and side-effect-free. The cluster analysis evaluates each unordered pair
//	exactly once, so an asymmetric or stateful criterion yields an
//	order-dependent, ill-defined partition. Symmetry is a documented caller
//	responsibility; CheckSymmetry exists to validate custom criteria in
//	tests and debug builds.
//
// Errors:
//
//	ErrNonPositiveCutoff - cutoff must be > 0.
//	ErrNilPotential      - energy criterion needs a pair potential.
//	ErrNilCriterion      - nil Criterion passed to CheckSymmetry.
//	ErrNilRegistry       - nil Registry passed to CheckSymmetry.
//	ErrAsymmetric        - CheckSymmetry found an order-dependent pair.
package criteria
