package builder

// Option configures a generator via functional arguments.
type Option func(o *options)

// options holds the shared generator parameters.
type options struct {
	seed      int64 // rng seed for the gas generators
	startSlot int   // slot of the first particle
	slotGap   int   // distance between consecutive slots (>= 1)
	idBase    int   // identity of the first particle
	partType  int   // particle type assigned to every particle
	bondType  int   // bond type used by bonded generators
}

// defaultOptions returns the generator defaults: seed 1, slots from 0 with
// gap 1, identities from 100 (so identity != slot out of the box), particle
// and bond type 0.
func defaultOptions() options {
	return options{
		seed:      1,
		startSlot: 0,
		slotGap:   1,
		idBase:    100,
	}
}

// WithSeed sets the rng seed used by RandomGas and DimerGas.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStartSlot places the first particle at the given slot (default 0).
// Negative values are ignored.
func WithStartSlot(slot int) Option {
	return func(o *options) {
		if slot >= 0 {
			o.startSlot = slot
		}
	}
}

// WithSlotGap spaces consecutive particles gap slots apart (default 1).
// A gap > 1 leaves dead slots between live ones, exercising liveness
// skipping in pair scans. Values below 1 are ignored.
func WithSlotGap(gap int) Option {
	return func(o *options) {
		if gap >= 1 {
			o.slotGap = gap
		}
	}
}

// WithIDBase assigns identities idBase, idBase+1, ... (default 100).
func WithIDBase(base int) Option {
	return func(o *options) { o.idBase = base }
}

// WithType sets the particle type stamped on every generated particle.
func WithType(t int) Option {
	return func(o *options) { o.partType = t }
}

// WithBondType sets the bond type used by Chain and DimerGas.
func WithBondType(t int) Option {
	return func(o *options) { o.bondType = t }
}
