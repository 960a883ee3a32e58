package criteria

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/clustra/particle"
)

// CheckSymmetry validates the symmetry precondition of a Criterion against
// the live particles of a registry.
//
// With samples > 0, it draws that many random ordered pairs of live
// particles (seeded, hence reproducible) and compares AreNeighbors(a,b) with
// AreNeighbors(b,a). With samples <= 0, it checks every unordered pair
// exhaustively — O(N²) evaluations, intended for small test registries.
//
// Returns nil if no violation was found, ErrAsymmetric (wrapped with the
// offending identities) otherwise, ErrNilCriterion / ErrNilRegistry for nil
// inputs. A registry with fewer than two live particles passes trivially.
func CheckSymmetry(c Criterion, reg *particle.Registry, samples int, seed int64) error {
	if c == nil {
		return ErrNilCriterion
	}
	if reg == nil {
		return ErrNilRegistry
	}

	slots := reg.ActiveSlots()
	if len(slots) < 2 {
		return nil
	}

	check := func(a, b particle.Particle) error {
		if c.AreNeighbors(a, b) != c.AreNeighbors(b, a) {
			return fmt.Errorf("%w: particles %d and %d", ErrAsymmetric, a.ID, b.ID)
		}

		return nil
	}

	// Exhaustive sweep over all unordered pairs.
	if samples <= 0 {
		for i := 0; i < len(slots); i++ {
			a, _ := reg.At(slots[i])
			for j := i + 1; j < len(slots); j++ {
				b, _ := reg.At(slots[j])
				if err := check(a, b); err != nil {
					return err
				}
			}
		}

		return nil
	}

	// Sampled sweep; rand.New keeps the draw reproducible per seed.
	rng := rand.New(rand.NewSource(seed))
	for n := 0; n < samples; n++ {
		i := slots[rng.Intn(len(slots))]
		j := slots[rng.Intn(len(slots))]
		if i == j {
			continue
		}
		a, _ := reg.At(i)
		b, _ := reg.At(j)
		if err := check(a, b); err != nil {
			return err
		}
	}

	return nil
}
