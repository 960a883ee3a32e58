package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clustra/criteria"
	"github.com/katalvlaran/clustra/particle"
)

// Structure owns the state of one cluster analysis: the particle→label map,
// the label redirect map, and the materialized clusters.
//
// A Structure is long-lived and reusable: every Analyze call fully
// overwrites its state, and no state leaks between passes. It is not safe
// for concurrent use; see the package documentation.
type Structure struct {
	// labels maps particle identity → cluster label. During the scan the
	// stored label may still be subject to redirection; after the merge pass
	// every entry is canonical.
	labels map[particle.ID]int

	// redirects maps a subsumed label to the strictly smaller label that
	// absorbed it. Chains are strictly descending, hence finite and acyclic.
	redirects map[int]int

	// clusters maps canonical label → Cluster, built only by the merge pass.
	clusters map[int]*Cluster

	// next is the monotonic label counter; labels are never reused in a pass.
	next int

	// analyzed flips to true once a pass completed; queries before that
	// return explicit empty results.
	analyzed bool

	// singletons and pairs come from the construction options.
	singletons bool
	pairs      PairSource
}

// New creates an empty Structure with the given options.
// Complexity: O(1).
func New(opts ...Option) *Structure {
	s := &Structure{pairs: AllPairs}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()

	return s
}

// reset clears all pass state, including the label counter.
func (s *Structure) reset() {
	s.labels = make(map[particle.ID]int)
	s.redirects = make(map[int]int)
	s.clusters = make(map[int]*Cluster)
	s.next = 0
	s.analyzed = false
}

// Clear drops all analysis state, returning the Structure to its
// not-analyzed condition.
// Complexity: O(1) amortized.
func (s *Structure) Clear() {
	s.reset()
}

// Analyze runs one full analysis pass against the given registry and
// criterion.
//
// Steps:
//  1. Clear all prior state (maps, counter, analyzed flag).
//  2. Enumerate candidate slot pairs via the configured PairSource
//     (AllPairs by default: every unordered pair of live slots).
//  3. Feed each pair that satisfies the criterion to the pairing step,
//     which labels particles and records cluster merges as redirects.
//  4. Run the merge pass: canonicalize every label and materialize one
//     Cluster per canonical label (plus singletons when enabled).
//
// The registry must stay stable for the duration of the call. The resulting
// partition is independent of scan order; label numbering is not.
// Returns ErrNilRegistry / ErrNilCriterion for nil inputs and
// ErrRedirectCycle if the redirect invariant is violated (the Structure is
// left cleared in that case).
// Complexity: O(N²) criterion evaluations with the default source.
func (s *Structure) Analyze(reg *particle.Registry, crit criteria.Criterion) error {
	if reg == nil {
		return ErrNilRegistry
	}
	if crit == nil {
		return ErrNilCriterion
	}

	// 1. Self-contained pass: nothing survives from the previous one.
	s.reset()

	// 2–3. Scan candidate pairs, pairing the positive ones.
	emit := func(i, j int) error {
		p1, ok := reg.At(i)
		if !ok {
			return nil
		}
		p2, ok := reg.At(j)
		if !ok {
			return nil
		}
		if !crit.AreNeighbors(p1, p2) {
			return nil
		}

		return s.pair(p1.ID, p2.ID)
	}
	if err := s.pairs(reg, emit); err != nil {
		s.reset()

		return err
	}

	// 4. Collapse redirects and materialize the clusters.
	if err := s.merge(reg); err != nil {
		s.reset()

		return err
	}
	s.analyzed = true

	return nil
}

// pair is the incremental pairing step for two particles already known to be
// neighbors. Four mutually exclusive cases:
//
//  1. Neither labeled      → allocate a fresh label, assign to both.
//  2. Exactly one labeled  → assign the unlabeled one the canonical label of
//     the labeled one, so the labels map never stores a label that is itself
//     pending redirection.
//  3. Both labeled, labels differ → resolve both to canonical form and
//     redirect the larger canonical label to the smaller. Larger→smaller is
//     the invariant that keeps chains descending and resolution finite.
//  4. Both carry the same label   → no-op.
func (s *Structure) pair(id1, id2 particle.ID) error {
	l1, ok1 := s.labels[id1]
	l2, ok2 := s.labels[id2]

	switch {
	case !ok1 && !ok2:
		// Case 1: both join the same, new cluster.
		cid := s.nextLabel()
		s.labels[id1] = cid
		s.labels[id2] = cid

	case !ok1:
		// Case 2: id2 is labeled, id1 is not.
		cid, err := s.findCanonical(l2)
		if err != nil {
			return err
		}
		s.labels[id1] = cid

	case !ok2:
		// Case 2, mirrored: id1 is labeled, id2 is not.
		cid, err := s.findCanonical(l1)
		if err != nil {
			return err
		}
		s.labels[id2] = cid

	case l1 != l2:
		// Case 3: two clusters meet; record the merge for the final pass.
		c1, err := s.findCanonical(l1)
		if err != nil {
			return err
		}
		c2, err := s.findCanonical(l2)
		if err != nil {
			return err
		}
		switch {
		case c1 < c2:
			s.redirects[c2] = c1
		case c2 < c1:
			s.redirects[c1] = c2
		}
		// Equal canonicals mean the merge already happened: nothing to do.
	}
	// Case 4 (l1 == l2): already the same cluster, no action.

	return nil
}

// nextLabel allocates a fresh cluster label. Labels grow monotonically and
// are never reused within a pass.
func (s *Structure) nextLabel() int {
	cid := s.next
	s.next++

	return cid
}

// findCanonical resolves a label through the redirect map until a label with
// no redirect entry is found, and returns it.
//
// Every redirect must point to a strictly smaller label; a non-descending
// entry or a walk longer than the redirect count means the invariant is
// broken, and the walk fails loudly with ErrRedirectCycle instead of
// looping.
// Complexity: O(chain length), bounded by len(redirects).
func (s *Structure) findCanonical(label int) (int, error) {
	limit := len(s.redirects) + 1
	cur := label
	for step := 0; step < limit; step++ {
		to, ok := s.redirects[cur]
		if !ok {
			return cur, nil
		}
		if to >= cur {
			return 0, fmt.Errorf("%w: %d → %d", ErrRedirectCycle, cur, to)
		}
		cur = to
	}

	return 0, fmt.Errorf("%w: label %d not resolved after %d redirects", ErrRedirectCycle, label, limit)
}

// merge is the final pass: canonicalize every labels entry, materialize one
// Cluster per canonical label, and fill it with its member identities.
// With singletons enabled, live particles that never got a label receive a
// fresh one and a one-particle cluster each.
// Complexity: O(P·C + K log K) for P labeled particles, chain length C, and
// K members per cluster (for the sort).
func (s *Structure) merge(reg *particle.Registry) error {
	// Relabel to canonical form and create the cluster shells.
	for id, label := range s.labels {
		cid, err := s.findCanonical(label)
		if err != nil {
			return err
		}
		s.labels[id] = cid
		if _, ok := s.clusters[cid]; !ok {
			s.clusters[cid] = &Cluster{Label: cid}
		}
	}

	// Fill the clusters with their member identities.
	for id, cid := range s.labels {
		c := s.clusters[cid]
		c.Particles = append(c.Particles, id)
	}

	// Optionally materialize untouched live particles as singletons.
	if s.singletons {
		for _, slot := range reg.ActiveSlots() {
			p, ok := reg.At(slot)
			if !ok {
				continue
			}
			if _, labeled := s.labels[p.ID]; labeled {
				continue
			}
			cid := s.nextLabel()
			s.labels[p.ID] = cid
			s.clusters[cid] = &Cluster{Label: cid, Particles: []particle.ID{p.ID}}
		}
	}

	// Sort member lists so equivalent passes produce identical clusters.
	for _, c := range s.clusters {
		sort.Slice(c.Particles, func(i, j int) bool { return c.Particles[i] < c.Particles[j] })
	}

	return nil
}

// Analyzed reports whether a pass has completed since construction or the
// last Clear.
func (s *Structure) Analyzed() bool { return s.analyzed }

// LabelOf returns the canonical cluster label of the given particle.
// The second result is false before any pass, and for particles that never
// passed a positive neighbor test (unless singletons are enabled).
// Complexity: O(1).
func (s *Structure) LabelOf(id particle.ID) (int, bool) {
	if !s.analyzed {
		return 0, false
	}
	label, ok := s.labels[id]

	return label, ok
}

// ClusterByLabel returns the cluster with the given canonical label.
// Complexity: O(1).
func (s *Structure) ClusterByLabel(label int) (*Cluster, bool) {
	if !s.analyzed {
		return nil, false
	}
	c, ok := s.clusters[label]

	return c, ok
}

// Clusters returns all clusters of the last pass in ascending label order.
// Before any pass it returns an empty slice.
// Complexity: O(K log K) for K clusters.
func (s *Structure) Clusters() []*Cluster {
	out := make([]*Cluster, 0, len(s.clusters))
	if !s.analyzed {
		return out
	}
	for _, c := range s.clusters {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// Size returns the number of clusters found by the last pass (0 before any
// pass).
func (s *Structure) Size() int {
	if !s.analyzed {
		return 0
	}

	return len(s.clusters)
}
