package assign

import (
	"fmt"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// Reassign decides which subset of equipped items to re-craft so the
// character's resistances reach target, at minimal total cost.
//
// Items marked New replace the occupant of the same slot: the baseline
// loses the old item's total resistances and gains the new item's. Every
// retained item — non-new items that were not replaced, plus all new
// items — is a re-craft candidate. Re-crafting an item forfeits its
// current crafted bonus, so each subset solve requires the remaining gap
// plus the crafted resistances it gives up.
//
// Subsets are enumerated by ascending binary representation (1..2^k−1)
// and ties among equal-cost subsets resolve to the first encountered, so
// the result is deterministic. k is bounded by MaxReassignCandidates.
//
// An all-infeasible enumeration yields an invalid Assignment and a nil
// error; a trivially satisfied target yields cost 0 and no pairs.
func Reassign(alg Algorithm, current, target resist.Resistance, items []recipe.Equipment, recipes []recipe.Recipe) (Assignment, error) {
	// --- 1. Fold replacements into the baseline, collect candidates ---
	candidates := make([]recipe.Equipment, 0, len(items))

	baseline := current
	for _, item := range items {
		if item.New {
			candidates = append(candidates, item)

			continue
		}

		replacement, replaced := findReplacement(items, item.Slot)
		if replaced {
			baseline = baseline.Sub(item.AllResistances()).Add(replacement.AllResistances())
		} else {
			candidates = append(candidates, item)
		}
	}

	if len(candidates) > MaxReassignCandidates {
		return Invalid(), fmt.Errorf("%w: got %d, limit %d",
			ErrTooManyCandidates, len(candidates), MaxReassignCandidates)
	}

	// --- 2. Remaining gap; nothing to do if already satisfied ---
	gap := target.Sub(baseline)
	if gap.IsZero() {
		return Assignment{Cost: 0}, nil
	}

	// The widest requirement any subset can pose is the gap plus every
	// candidate's crafted bonus; front-load the table allocation for it.
	maxReq := gap
	for _, item := range candidates {
		maxReq = maxReq.Add(item.Crafted)
	}
	if err := alg.Initialize(maxReq, len(recipes)); err != nil {
		return Invalid(), err
	}

	// --- 3. Try every non-empty candidate subset ---
	best := Invalid()
	slots := make([]recipe.Slot, 0, len(candidates))

	for subset := 1; subset < 1<<len(candidates); subset++ {
		req := gap
		slots = slots[:0]
		for j, item := range candidates {
			if subset&(1<<j) == 0 {
				continue
			}
			slots = append(slots, item.Slot)
			// the crafted bonus on this item is forfeited by re-crafting
			req = req.Add(item.Crafted)
		}

		result, err := alg.Solve(req, slots, recipes)
		if err != nil {
			return Invalid(), err
		}
		if result.Cost < best.Cost {
			best = result
		}
	}

	return best, nil
}

// findReplacement locates the new item occupying slot, if any.
func findReplacement(items []recipe.Equipment, slot recipe.Slot) (recipe.Equipment, bool) {
	for _, item := range items {
		if item.New && item.Slot == slot {
			return item, true
		}
	}

	return recipe.Equipment{}, false
}
