package assign

import (
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// reconstruct walks the back-pointer layers from the answer cell down to
// the base layer and rebuilds the chosen (slot, recipe) pairs in slot
// order.
//
// Starting at v_n = required, for k = n−1 down to 0 the recipe index at
// B_k[v_k] is read and the predecessor cell is v_{k-1} =
// sub(v_k, recipe.resistances) — the same saturating step the forward
// sweep took. Null choices are filtered from the emitted pairs; the
// reported cost is the table answer, which already sums every step.
func (e *CPU) reconstruct(grid resist.Grid, required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe, answer float64) Assignment {
	pairs := make([]SlotRecipe, 0, len(slots))

	v := required
	for k := len(slots) - 1; k >= 0; k-- {
		j := e.back[k*e.backStride+grid.Index(v)]
		chosen := recipes[j]

		if !chosen.IsNull() {
			pairs = append(pairs, SlotRecipe{Slot: slots[k], Recipe: chosen, Index: int(j)})
		}
		v = v.Sub(chosen.Resist)
	}

	// the walk visits slots last-to-first; restore slot order
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}

	return Assignment{Pairs: pairs, Cost: answer}
}
