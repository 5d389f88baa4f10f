package resist

// Grid maps resistance tuples onto a dense linear index.
//
// For a maximal tuple max, the per-axis dimensions are D = max + (1,1,1,1)
// and every tuple v with v ≤ max (component-wise) maps one-to-one onto
// [0, Size). Chaos is the innermost axis, so consecutive chaos values are
// adjacent in memory; fire is the outermost.
//
// Grid is an immutable value; it is cheap to copy and safe to share.
type Grid struct {
	dimFire      int
	dimCold      int
	dimLightning int
	dimChaos     int
}

// NewGrid builds the index map covering every tuple ≤ max component-wise.
func NewGrid(max Resistance) Grid {
	return Grid{
		dimFire:      int(max.Fire) + 1,
		dimCold:      int(max.Cold) + 1,
		dimLightning: int(max.Lightning) + 1,
		dimChaos:     int(max.Chaos) + 1,
	}
}

// Size returns the number of distinct tuples covered by the grid,
// i.e. the product of the four axis dimensions.
func (g Grid) Size() int {
	return g.dimFire * g.dimCold * g.dimLightning * g.dimChaos
}

// Dims returns the four axis dimensions in (fire, cold, lightning, chaos)
// order.
func (g Grid) Dims() (fire, cold, lightning, chaos int) {
	return g.dimFire, g.dimCold, g.dimLightning, g.dimChaos
}

// Contains reports whether v lies inside the grid's domain.
func (g Grid) Contains(v Resistance) bool {
	return int(v.Fire) < g.dimFire &&
		int(v.Cold) < g.dimCold &&
		int(v.Lightning) < g.dimLightning &&
		int(v.Chaos) < g.dimChaos
}

// Index composes v into its linear index by mixed-radix evaluation.
// v must satisfy Contains(v); this is not checked on the hot path.
func (g Grid) Index(v Resistance) int {
	i := int(v.Fire)
	i = i*g.dimCold + int(v.Cold)
	i = i*g.dimLightning + int(v.Lightning)
	i = i*g.dimChaos + int(v.Chaos)

	return i
}

// At decomposes a linear index back into its resistance tuple.
// i must be in [0, Size).
func (g Grid) At(i int) Resistance {
	chaos := i % g.dimChaos
	i /= g.dimChaos
	lightning := i % g.dimLightning
	i /= g.dimLightning
	cold := i % g.dimCold
	i /= g.dimCold

	return Resistance{
		Fire:      Item(i),
		Cold:      Item(cold),
		Lightning: Item(lightning),
		Chaos:     Item(chaos),
	}
}
