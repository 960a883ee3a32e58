// Package cluster declares the Cluster type, analysis options, and sentinel
// errors for the cluster subpackage of github.com/katalvlaran/clustra.
package cluster

import (
	"errors"

	"github.com/katalvlaran/clustra/particle"
)

// Sentinel errors for cluster analysis.
var (
	// ErrNilRegistry indicates Analyze was called with a nil registry.
	ErrNilRegistry = errors.New("cluster: registry is nil")

	// ErrNilCriterion indicates Analyze was called with a nil criterion.
	ErrNilCriterion = errors.New("cluster: criterion is nil")

	// ErrRedirectCycle indicates the redirect map lost its strictly-descending
	// invariant; resolution would not terminate.
	ErrRedirectCycle = errors.New("cluster: redirect chain is not strictly descending")

	// ErrClusterTooSmall indicates an observable that needs more members.
	ErrClusterTooSmall = errors.New("cluster: too few particles for observable")

	// ErrNonPositiveBin indicates a non-positive radial bin width.
	ErrNonPositiveBin = errors.New("cluster: bin width must be positive")

	// ErrUnknownParticle indicates a cluster member that is no longer in the
	// registry — the registry changed since the pass that built the cluster.
	ErrUnknownParticle = errors.New("cluster: member particle not found in registry")
)

// Cluster is one connected component: a canonical label and the identities
// of every particle that resolves to it, in ascending ID order.
//
// Clusters are materialized by the final merge pass of Analyze and are
// immutable afterwards; observables read particle data from the registry on
// demand and never mutate the cluster.
type Cluster struct {
	// Label is the canonical cluster label, unique within one pass.
	Label int

	// Particles holds the member identities, sorted ascending.
	Particles []particle.ID
}

// Size returns the number of member particles.
func (c *Cluster) Size() int { return len(c.Particles) }

// PairSource enumerates candidate slot pairs for one analysis pass, calling
// emit once per unordered pair (i < j expected, both slots live). Returning
// a non-nil error from emit aborts the pass; a PairSource must propagate it.
//
// AllPairs is the default. A smarter source (cell lists, neighbor lists,
// spatial hashing) may skip pairs that can never satisfy the criterion, but
// must never emit a pair twice: the pairing step assumes one visit per
// unordered pair.
type PairSource func(reg *particle.Registry, emit func(i, j int) error) error

// AllPairs feeds every unordered pair of live slots in [0, MaxSeen] to emit.
// O(N²) emissions — the correctness baseline.
func AllPairs(reg *particle.Registry, emit func(i, j int) error) error {
	maxSeen := reg.MaxSeen()
	for i := 0; i <= maxSeen; i++ {
		if !reg.Alive(i) {
			continue
		}
		for j := i + 1; j <= maxSeen; j++ {
			if !reg.Alive(j) {
				continue
			}
			if err := emit(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// Option configures a Structure at construction time.
type Option func(s *Structure)

// WithSingletons materializes every live particle that never passed a
// positive neighbor test as a one-particle cluster with a fresh label.
// By default such particles stay out of the result entirely.
func WithSingletons() Option {
	return func(s *Structure) { s.singletons = true }
}

// WithPairSource substitutes the candidate pair enumerator used by Analyze.
// A nil src keeps the AllPairs default.
func WithPairSource(src PairSource) Option {
	return func(s *Structure) {
		if src != nil {
			s.pairs = src
		}
	}
}
