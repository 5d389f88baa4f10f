package resist

import "fmt"

// Item is the storage type of a single resistance component.
// uint16 comfortably covers the practical ceiling of a few hundred percent.
type Item = uint16

// Resistance is an immutable 4-tuple of elemental resistances.
// The zero value is the zero resistance.
type Resistance struct {
	Fire      Item
	Cold      Item
	Lightning Item
	Chaos     Item
}

// New constructs a Resistance from its four components.
func New(fire, cold, lightning, chaos Item) Resistance {
	return Resistance{Fire: fire, Cold: cold, Lightning: lightning, Chaos: chaos}
}

// Zero returns the all-zero resistance.
func Zero() Resistance {
	return Resistance{}
}

// IsZero reports whether every component is zero.
func (r Resistance) IsZero() bool {
	return r == Resistance{}
}

// Add returns the component-wise sum of r and other.
// Addition is unsaturated; callers guarantee no component exceeds the
// table dimension of the enclosing computation.
func (r Resistance) Add(other Resistance) Resistance {
	return Resistance{
		Fire:      r.Fire + other.Fire,
		Cold:      r.Cold + other.Cold,
		Lightning: r.Lightning + other.Lightning,
		Chaos:     r.Chaos + other.Chaos,
	}
}

// Sub returns the component-wise difference of r and other, saturating
// at zero: sub(a,b)_i = a_i − b_i if a_i ≥ b_i, else 0.
func (r Resistance) Sub(other Resistance) Resistance {
	return Resistance{
		Fire:      satSub(r.Fire, other.Fire),
		Cold:      satSub(r.Cold, other.Cold),
		Lightning: satSub(r.Lightning, other.Lightning),
		Chaos:     satSub(r.Chaos, other.Chaos),
	}
}

// LessEq reports whether every component of r is ≤ the corresponding
// component of other.
func (r Resistance) LessEq(other Resistance) bool {
	return r.Fire <= other.Fire &&
		r.Cold <= other.Cold &&
		r.Lightning <= other.Lightning &&
		r.Chaos <= other.Chaos
}

// GreaterEq reports whether every component of r is ≥ the corresponding
// component of other.
func (r Resistance) GreaterEq(other Resistance) bool {
	return other.LessEq(r)
}

// String renders the tuple as "(fire,cold,lightning,chaos)".
func (r Resistance) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Fire, r.Cold, r.Lightning, r.Chaos)
}

// satSub subtracts b from a, clamping the result at zero.
func satSub(a, b Item) Item {
	if a >= b {
		return a - b
	}

	return 0
}
