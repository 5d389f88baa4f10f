package recipe

import (
	"math"

	"github.com/katalvlaran/recap/resist"
)

// CostInf is the sentinel cost of an impossible or invalid choice.
// It is larger than any finite sum of recipe costs.
var CostInf = math.Inf(1)

// Recipe is an immutable crafting recipe: the resistances it grants,
// its cost, and the mask of slots it can be applied to.
type Recipe struct {
	Resist resist.Resistance
	Cost   float64
	Slots  Slot
}

// New constructs a Recipe.
func New(r resist.Resistance, cost float64, slots Slot) Recipe {
	return Recipe{Resist: r, Cost: cost, Slots: slots}
}

// Null returns the distinguished null recipe: zero resistance, zero cost,
// applicable everywhere. Catalogs place it at index 0 so "skip this slot"
// is always an available choice.
func Null() Recipe {
	return Recipe{Resist: resist.Zero(), Cost: 0, Slots: SlotAll}
}

// IsNull reports whether the recipe grants no resistance at all.
func (r Recipe) IsNull() bool {
	return r.Resist.IsZero()
}

// Fits reports whether the recipe can be applied to the physical slot s.
func (r Recipe) Fits(s Slot) bool {
	return r.Slots&s != 0
}
