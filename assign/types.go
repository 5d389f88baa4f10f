// Package assign: capability interface, result types, sentinel errors,
// and engine options.
package assign

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// Hard limits of the engine. They bound table shapes before any
// allocation happens and are checked on every solve.
const (
	// MaxRecipes is the largest admissible recipe catalog. Back-pointer
	// cells are one byte wide, so recipe indices must fit in uint8.
	MaxRecipes = 255

	// MaxSlots is the largest admissible slot list per solve.
	MaxSlots = 16

	// MaxReassignCandidates bounds the subset enumeration of Reassign;
	// the orchestrator performs 2^k − 1 solves for k candidates.
	MaxReassignCandidates = 10

	// DefaultMaxCells caps the dense table size V unless overridden
	// via Options.MaxCells.
	DefaultMaxCells = 10_000_000
)

// Sentinel errors for assignment operations. All are reported before any
// dynamic-programming work begins; match with errors.Is.
var (
	// ErrTooManyRecipes indicates the catalog exceeds MaxRecipes variants.
	ErrTooManyRecipes = errors.New("assign: too many recipe variants")

	// ErrTooManySlots indicates the slot list exceeds MaxSlots entries.
	ErrTooManySlots = errors.New("assign: too many equipment slots")

	// ErrTooManyCandidates indicates Reassign received more candidate
	// items than MaxReassignCandidates.
	ErrTooManyCandidates = errors.New("assign: too many reassignment candidates")

	// ErrNoNullRecipe indicates catalog index 0 is not the null recipe.
	ErrNoNullRecipe = errors.New("assign: recipe catalog must carry the null recipe at index 0")

	// ErrRequiredTooLarge indicates the requirement implies a table larger
	// than the configured cell budget.
	ErrRequiredTooLarge = errors.New("assign: requirement exceeds the table cell budget")
)

// Algorithm is the capability satisfied by every assignment engine.
// Reassign is parameterized over it.
type Algorithm interface {
	// Name identifies the engine implementation.
	Name() string

	// Initialize acquires table memory for requirements up to maxReq and
	// catalogs up to maxRecipes variants. Later solves may still grow the
	// tables; Initialize front-loads the allocation.
	Initialize(maxReq resist.Resistance, maxRecipes int) error

	// Solve finds a minimum-cost assignment of recipes to slots whose
	// summed resistances reach at least required. An infeasible instance
	// yields an invalid Assignment and a nil error.
	Solve(required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe) (Assignment, error)
}

// SlotRecipe is one chosen (slot, recipe) pair of an assignment.
// Index is the recipe's position in the catalog passed to Solve.
type SlotRecipe struct {
	Slot   recipe.Slot
	Recipe recipe.Recipe
	Index  int
}

// Assignment is the solver output: the chosen non-null pairs in slot
// order and the total cost over all steps (null choices contribute 0).
// An invalid assignment has Cost = recipe.CostInf and no pairs.
type Assignment struct {
	Pairs []SlotRecipe
	Cost  float64
}

// Invalid returns the infeasible assignment.
func Invalid() Assignment {
	return Assignment{Cost: recipe.CostInf}
}

// Feasible reports whether the assignment carries a finite cost.
func (a Assignment) Feasible() bool {
	return !math.IsInf(a.Cost, 1)
}

// TotalResistance sums the resistances of every chosen pair.
func (a Assignment) TotalResistance() resist.Resistance {
	total := resist.Zero()
	for _, p := range a.Pairs {
		total = total.Add(p.Recipe.Resist)
	}

	return total
}

// Options tunes the CPU engine. The zero value is not usable directly;
// start from DefaultOptions.
type Options struct {
	// Workers is the parallel sweep width; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// TileFire and TileCold set the tile extent on the two outer axes.
	// Each tile spans full lightning×chaos planes so the innermost runs
	// stay contiguous. 0 means 1.
	TileFire int
	TileCold int

	// MaxCells caps the dense table size V; 0 means DefaultMaxCells.
	MaxCells int
}

// DefaultOptions returns the documented defaults: one (fire, cold) pair
// per tile, GOMAXPROCS workers, DefaultMaxCells cell budget.
func DefaultOptions() Options {
	return Options{
		Workers:  0,
		TileFire: 1,
		TileCold: 1,
		MaxCells: DefaultMaxCells,
	}
}

// workers resolves the effective worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// maxCells resolves the effective cell budget.
func (o Options) maxCells() int {
	if o.MaxCells > 0 {
		return o.MaxCells
	}

	return DefaultMaxCells
}

// tile resolves a tile extent (0 ⇒ 1).
func tileExtent(v int) int {
	if v > 0 {
		return v
	}

	return 1
}
