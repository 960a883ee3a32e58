package cluster

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/clustra/particle"
)

// Observables are computed on demand from the registry that was analyzed and
// the box geometry; they never mutate the cluster. They assume the registry
// still holds every member particle — a missing member yields
// ErrUnknownParticle, since it means the registry changed after the pass.

// members resolves every member identity to its particle record.
func (c *Cluster) members(reg *particle.Registry) ([]particle.Particle, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	out := make([]particle.Particle, 0, len(c.Particles))
	for _, id := range c.Particles {
		p, ok := reg.ByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownParticle, id)
		}
		out = append(out, p)
	}

	return out, nil
}

// CenterOfMass returns the center of mass of the cluster, folded into the
// box.
//
// Positions are accumulated as minimum-image displacements relative to the
// first member, so a cluster wrapped across a periodic boundary is not torn
// apart by naive averaging. All particles carry unit mass.
// Returns ErrClusterTooSmall for an empty cluster.
// Complexity: O(K).
func (c *Cluster) CenterOfMass(reg *particle.Registry, box particle.Box) ([3]float64, error) {
	ps, err := c.members(reg)
	if err != nil {
		return [3]float64{}, err
	}

	return centerOfMass(ps, box)
}

// centerOfMass computes the folded center of mass of already-resolved
// members. Observables that need both the members and their center resolve
// the registry once and share the slice.
func centerOfMass(ps []particle.Particle, box particle.Box) ([3]float64, error) {
	if len(ps) == 0 {
		return [3]float64{}, fmt.Errorf("%w: empty cluster", ErrClusterTooSmall)
	}

	ref := ps[0].Pos
	var acc [3]float64
	for _, p := range ps {
		d := box.Displacement(ref, p.Pos)
		acc[0] += d[0]
		acc[1] += d[1]
		acc[2] += d[2]
	}
	n := float64(len(ps))
	com := [3]float64{
		ref[0] + acc[0]/n,
		ref[1] + acc[1]/n,
		ref[2] + acc[2]/n,
	}

	return box.Fold(com), nil
}

// LongestDistance returns the largest minimum-image distance between any two
// members (0 for clusters of fewer than two particles).
// Complexity: O(K²).
func (c *Cluster) LongestDistance(reg *particle.Registry, box particle.Box) (float64, error) {
	ps, err := c.members(reg)
	if err != nil {
		return 0, err
	}

	var longest float64
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if d := box.Distance(ps[i].Pos, ps[j].Pos); d > longest {
				longest = d
			}
		}
	}

	return longest, nil
}

// RadiusOfGyration returns the root-mean-square minimum-image distance of
// the members from the center of mass.
// Returns ErrClusterTooSmall for an empty cluster.
// Complexity: O(K).
func (c *Cluster) RadiusOfGyration(reg *particle.Registry, box particle.Box) (float64, error) {
	ps, err := c.members(reg)
	if err != nil {
		return 0, err
	}
	com, err := centerOfMass(ps, box)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, p := range ps {
		d := box.Distance(com, p.Pos)
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(ps))), nil
}

// FractalDimension estimates the cluster's fractal dimension from the radial
// mass distribution around the center of mass.
//
// Member distances from the center of mass are binned with width dr; for
// each bin edge r the cumulative particle count n(r) is recorded, and the
// dimension is the slope of the least-squares fit of log n(r) against
// log r (gonum stat.LinearRegression). The second result is the mean square
// residual of the fit, a rough quality measure.
//
// Returns ErrNonPositiveBin for dr <= 0 and ErrClusterTooSmall when fewer
// than three members — or fewer than two usable radial bins — are available.
// Complexity: O(K log K).
func (c *Cluster) FractalDimension(reg *particle.Registry, box particle.Box, dr float64) (dim, msr float64, err error) {
	if dr <= 0 {
		return 0, 0, fmt.Errorf("%w: dr = %g", ErrNonPositiveBin, dr)
	}
	if len(c.Particles) < 3 {
		return 0, 0, fmt.Errorf("%w: need at least 3 particles, have %d", ErrClusterTooSmall, len(c.Particles))
	}

	ps, err := c.members(reg)
	if err != nil {
		return 0, 0, err
	}
	com, err := centerOfMass(ps, box)
	if err != nil {
		return 0, 0, err
	}

	// Sorted member distances from the center of mass.
	dists := make([]float64, len(ps))
	for i, p := range ps {
		dists[i] = box.Distance(com, p.Pos)
	}
	sort.Float64s(dists)

	// Cumulative counts n(r) at bin edges r = dr, 2·dr, ...
	bins := int(math.Ceil(dists[len(dists)-1] / dr))
	var xs, ys []float64
	for k := 0; k < bins; k++ {
		r := float64(k+1) * dr
		n := sort.SearchFloat64s(dists, r)
		for n < len(dists) && dists[n] <= r {
			n++
		}
		if n == 0 {
			continue
		}
		xs = append(xs, math.Log(r))
		ys = append(ys, math.Log(float64(n)))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least two radial bins, have %d", ErrClusterTooSmall, len(xs))
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	for i := range xs {
		res := ys[i] - (alpha + beta*xs[i])
		msr += res * res
	}
	msr /= float64(len(xs))

	return beta, msr, nil
}
