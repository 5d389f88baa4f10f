package assign_test

import (
	"testing"

	"github.com/katalvlaran/recap/assign"
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
	"github.com/stretchr/testify/require"
)

// S5: a new item fully covers what the replaced one provided → nothing
// to craft, zero cost.
func TestReassign_ReplacementCoversTarget(t *testing.T) {
	target := resist.New(20, 20, 20, 0)
	items := []recipe.Equipment{
		recipe.NewEquipment(recipe.SlotGloves, resist.New(10, 10, 10, 0), resist.New(2, 2, 2, 0), true, false),
		recipe.NewEquipment(recipe.SlotGloves, resist.New(10, 10, 10, 0), resist.New(2, 2, 2, 0), true, true),
	}
	recipes := []recipe.Recipe{recipe.Null()}

	got, err := assign.Reassign(newEngine(), target, target, items, recipes)
	require.NoError(t, err)
	require.Zero(t, got.Cost)
	require.Empty(t, got.Pairs)
}

// S6: the replacement opens a gap of 10 but the catalog caps at 4 per
// craft on a single candidate slot → infeasible, not an error.
func TestReassign_GapCannotBeClosed(t *testing.T) {
	current := resist.New(20, 20, 20, 0)
	target := resist.New(20, 20, 20, 0)
	items := []recipe.Equipment{
		// old gloves contribute 10 fire that the new pair lacks
		recipe.NewEquipment(recipe.SlotGloves, resist.New(10, 0, 0, 0), resist.Zero(), true, false),
		recipe.NewEquipment(recipe.SlotGloves, resist.Zero(), resist.Zero(), true, true),
	}
	recipes := []recipe.Recipe{
		recipe.Null(),
		recipe.New(resist.New(4, 4, 0, 0), 1, recipe.SlotAll),
	}

	got, err := assign.Reassign(newEngine(), current, target, items, recipes)
	require.NoError(t, err)
	require.False(t, got.Feasible())
	require.Empty(t, got.Pairs)
}

func TestReassign_CraftsOnRetainedItem(t *testing.T) {
	current := resist.Zero()
	target := resist.New(10, 0, 0, 0)
	items := []recipe.Equipment{
		recipe.NewEquipment(recipe.SlotBoots, resist.Zero(), resist.Zero(), true, false),
	}
	recipes := []recipe.Recipe{
		recipe.Null(),
		recipe.New(resist.New(10, 0, 0, 0), 5, recipe.SlotAll),
	}

	got, err := assign.Reassign(newEngine(), current, target, items, recipes)
	require.NoError(t, err)
	require.InDelta(t, 5.0, got.Cost, 1e-9)
	require.Len(t, got.Pairs, 1)
	require.Equal(t, recipe.SlotBoots, got.Pairs[0].Slot)
}

// Re-crafting an item forfeits its current crafted bonus: closing a gap
// of 5 on an item already carrying 5 crafted fire needs a 10-fire craft.
func TestReassign_ForfeitsCraftedBonus(t *testing.T) {
	current := resist.New(5, 0, 0, 0)
	target := resist.New(10, 0, 0, 0)
	items := []recipe.Equipment{
		recipe.NewEquipment(recipe.SlotBoots, resist.New(5, 0, 0, 0), resist.Zero(), true, false),
	}
	recipes := []recipe.Recipe{
		recipe.Null(),
		recipe.New(resist.New(5, 0, 0, 0), 1, recipe.SlotAll),
		recipe.New(resist.New(10, 0, 0, 0), 4, recipe.SlotAll),
	}

	got, err := assign.Reassign(newEngine(), current, target, items, recipes)
	require.NoError(t, err)
	require.True(t, got.Feasible())
	// a 5-fire craft would leave the total at 5: the old bonus is gone
	require.InDelta(t, 4.0, got.Cost, 1e-9)
	require.Len(t, got.Pairs, 1)
	require.Equal(t, resist.New(10, 0, 0, 0), got.Pairs[0].Recipe.Resist)
}

// The orchestrator must pick the cheapest subset across the enumeration.
func TestReassign_PicksCheapestSubset(t *testing.T) {
	current := resist.Zero()
	target := resist.New(10, 10, 0, 0)
	items := []recipe.Equipment{
		recipe.NewEquipment(recipe.SlotBoots, resist.Zero(), resist.Zero(), true, false),
		recipe.NewEquipment(recipe.SlotGloves, resist.Zero(), resist.Zero(), true, false),
	}
	recipes := []recipe.Recipe{
		recipe.Null(),
		recipe.New(resist.New(10, 10, 0, 0), 3, recipe.SlotAll),
		recipe.New(resist.New(10, 0, 0, 0), 2, recipe.SlotAll),
		recipe.New(resist.New(0, 10, 0, 0), 2, recipe.SlotAll),
	}

	got, err := assign.Reassign(newEngine(), current, target, items, recipes)
	require.NoError(t, err)
	// one slot with the combined recipe (cost 3) beats two single-axis
	// crafts (cost 4)
	require.InDelta(t, 3.0, got.Cost, 1e-9)
	require.Len(t, got.Pairs, 1)
}

func TestReassign_TooManyCandidates(t *testing.T) {
	items := make([]recipe.Equipment, assign.MaxReassignCandidates+1)
	for i := range items {
		items[i] = recipe.NewEquipment(recipe.SlotBoots, resist.Zero(), resist.Zero(), true, false)
	}

	_, err := assign.Reassign(newEngine(), resist.Zero(), resist.New(1, 0, 0, 0), items, []recipe.Recipe{recipe.Null()})
	require.ErrorIs(t, err, assign.ErrTooManyCandidates)
}

// A replaced item must not appear among craft candidates, and the
// baseline must reflect the swap.
func TestReassign_BaselineSwap(t *testing.T) {
	// old helmet grants 10 cold; its replacement grants 4 cold
	current := resist.New(0, 10, 0, 0)
	target := resist.New(0, 10, 0, 0)
	items := []recipe.Equipment{
		recipe.NewEquipment(recipe.SlotHelmet, resist.Zero(), resist.New(0, 10, 0, 0), false, false),
		recipe.NewEquipment(recipe.SlotHelmet, resist.Zero(), resist.New(0, 4, 0, 0), true, true),
	}
	recipes := []recipe.Recipe{
		recipe.Null(),
		recipe.New(resist.New(0, 6, 0, 0), 2, recipe.SlotAll),
	}

	got, err := assign.Reassign(newEngine(), current, target, items, recipes)
	require.NoError(t, err)
	// gap after the swap is 6 cold, closed on the new helmet for 2
	require.InDelta(t, 2.0, got.Cost, 1e-9)
	require.Len(t, got.Pairs, 1)
	require.Equal(t, recipe.SlotHelmet, got.Pairs[0].Slot)
}
