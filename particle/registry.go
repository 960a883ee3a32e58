package particle

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Registry is a sparse, slot-indexed particle container.
//
// Slots are nonnegative integers; they may have gaps and are not required to
// start at zero. Occupancy is tracked in a compressed roaring bitmap, which
// makes liveness checks O(1)-ish and the highest-occupied-slot query cheap
// even for very sparse slot layouts. Identities are unique across the
// registry and resolvable back to their slot.
//
// All methods are safe for concurrent use; muReg guards every field.
type Registry struct {
	muReg sync.RWMutex

	// slots maps slot index → particle record.
	slots map[int]Particle

	// occupied marks the live slots.
	occupied *roaring.Bitmap

	// byID maps identity → slot, enforcing identity uniqueness.
	byID map[ID]int

	// capHint pre-sizes the maps (WithCapacity).
	capHint int
}

// NewRegistry creates an empty Registry.
// Complexity: O(1).
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.slots = make(map[int]Particle, r.capHint)
	r.byID = make(map[ID]int, r.capHint)
	r.occupied = roaring.New()

	return r
}

// Set places p at the given slot, replacing any particle stored there.
// Returns ErrNegativeSlot for slot < 0 and ErrDuplicateID if p.ID is already
// registered at a different slot.
// Complexity: O(len(p.Bonds)) for the defensive copy.
func (r *Registry) Set(slot int, p Particle) error {
	if slot < 0 {
		return fmt.Errorf("%w: slot %d", ErrNegativeSlot, slot)
	}

	r.muReg.Lock()
	defer r.muReg.Unlock()

	return r.setLocked(slot, p)
}

// setLocked inserts p at slot. Callers must hold muReg.
func (r *Registry) setLocked(slot int, p Particle) error {
	if prev, ok := r.byID[p.ID]; ok && prev != slot {
		return fmt.Errorf("%w: id %d occupies slot %d", ErrDuplicateID, p.ID, prev)
	}
	// Evict the identity of a particle being overwritten in place.
	if old, ok := r.slots[slot]; ok {
		delete(r.byID, old.ID)
	}

	r.slots[slot] = p.clone()
	r.byID[p.ID] = slot
	r.occupied.Add(uint32(slot))

	return nil
}

// Add places p at the slot just past the highest occupied one (slot 0 for an
// empty registry) and returns that slot. The slot choice and the insert
// happen under one lock, so concurrent Adds never collide on a slot.
// Complexity: O(len(p.Bonds)).
func (r *Registry) Add(p Particle) (int, error) {
	r.muReg.Lock()
	defer r.muReg.Unlock()

	slot := 0
	if !r.occupied.IsEmpty() {
		slot = int(r.occupied.Maximum()) + 1
	}
	if err := r.setLocked(slot, p); err != nil {
		return 0, err
	}

	return slot, nil
}

// Remove deletes the particle at slot, reporting whether one was present.
// Complexity: O(1).
func (r *Registry) Remove(slot int) bool {
	if slot < 0 {
		return false
	}

	r.muReg.Lock()
	defer r.muReg.Unlock()

	p, ok := r.slots[slot]
	if !ok {
		return false
	}
	delete(r.slots, slot)
	delete(r.byID, p.ID)
	r.occupied.Remove(uint32(slot))

	return true
}

// At returns a copy of the particle at slot and whether the slot is live.
// Complexity: O(len(p.Bonds)) for the copy.
func (r *Registry) At(slot int) (Particle, bool) {
	if slot < 0 {
		return Particle{}, false
	}

	r.muReg.RLock()
	defer r.muReg.RUnlock()

	p, ok := r.slots[slot]
	if !ok {
		return Particle{}, false
	}

	return p.clone(), true
}

// ByID returns a copy of the particle with the given identity and whether it
// is registered.
// Complexity: O(len(p.Bonds)) for the copy.
func (r *Registry) ByID(id ID) (Particle, bool) {
	r.muReg.RLock()
	defer r.muReg.RUnlock()

	slot, ok := r.byID[id]
	if !ok {
		return Particle{}, false
	}

	return r.slots[slot].clone(), true
}

// SlotOf returns the slot occupied by the given identity.
// Complexity: O(1).
func (r *Registry) SlotOf(id ID) (int, bool) {
	r.muReg.RLock()
	defer r.muReg.RUnlock()

	slot, ok := r.byID[id]

	return slot, ok
}

// Alive reports whether slot is occupied.
// Complexity: O(1).
func (r *Registry) Alive(slot int) bool {
	if slot < 0 {
		return false
	}

	r.muReg.RLock()
	defer r.muReg.RUnlock()

	return r.occupied.Contains(uint32(slot))
}

// MaxSeen returns the highest occupied slot index, or -1 for an empty
// registry. Pair scans iterate slots [0, MaxSeen] and skip dead ones.
// Complexity: O(1).
func (r *Registry) MaxSeen() int {
	r.muReg.RLock()
	defer r.muReg.RUnlock()

	if r.occupied.IsEmpty() {
		return -1
	}

	return int(r.occupied.Maximum())
}

// Len returns the number of live particles.
// Complexity: O(1).
func (r *Registry) Len() int {
	r.muReg.RLock()
	defer r.muReg.RUnlock()

	return int(r.occupied.GetCardinality())
}

// ActiveSlots returns the live slot indices in ascending order.
// Complexity: O(N).
func (r *Registry) ActiveSlots() []int {
	r.muReg.RLock()
	defer r.muReg.RUnlock()

	out := make([]int, 0, r.occupied.GetCardinality())
	it := r.occupied.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Clear removes every particle, leaving an empty registry.
// Complexity: O(1) amortized.
func (r *Registry) Clear() {
	r.muReg.Lock()
	defer r.muReg.Unlock()

	r.slots = make(map[int]Particle, r.capHint)
	r.byID = make(map[ID]int, r.capHint)
	r.occupied.Clear()
}
