package assign

import (
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// BruteForce enumerates every recipe-per-slot tuple and returns the
// cheapest feasible assignment. It exists as a reference oracle for the
// dynamic-programming engines; with m recipes and n slots it visits m^n
// tuples, so keep instances small.
//
// Tuples are enumerated with slot 0 as the lowest digit and ties resolve
// to the first tuple encountered (strict < comparison), so the returned
// cost is deterministic.
func BruteForce(required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe) Assignment {
	if len(recipes) == 0 {
		if required.IsZero() && len(slots) == 0 {
			return Assignment{Cost: 0}
		}

		return Invalid()
	}

	tuples := 1
	for range slots {
		tuples *= len(recipes)
	}

	best := Invalid()
	var bestChoice []int

	choice := make([]int, len(slots))
	for t := 0; t < tuples; t++ {
		value := t
		cost := 0.0
		total := resist.Zero()
		feasible := true

		for k := range slots {
			j := value % len(recipes)
			value /= len(recipes)

			if !recipes[j].Fits(slots[k]) {
				feasible = false

				break
			}
			choice[k] = j
			cost += recipes[j].Cost
			total = total.Add(recipes[j].Resist)
		}

		if feasible && total.GreaterEq(required) && cost < best.Cost {
			best.Cost = cost
			bestChoice = append(bestChoice[:0], choice...)
		}
	}

	if !best.Feasible() {
		return best
	}

	// materialize non-null pairs in slot order
	best.Pairs = make([]SlotRecipe, 0, len(slots))
	for k, j := range bestChoice {
		if recipes[j].IsNull() {
			continue
		}
		best.Pairs = append(best.Pairs, SlotRecipe{Slot: slots[k], Recipe: recipes[j], Index: j})
	}

	return best
}
