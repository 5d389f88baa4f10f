package assign

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// CPU is the tile-parallel dynamic-programming engine.
//
// A CPU instance owns its cost and back-pointer slabs; it reuses them
// across solves and grows them on demand. It is movable but must not be
// copied while a solve is running, and a single instance must not serve
// concurrent Solve calls.
type CPU struct {
	opts Options

	// cur and next are the double-buffered cost layers T_{k-1} and T_k.
	cur  []float64
	next []float64

	// back holds MaxSlots back-pointer layers as one flat slab of
	// backStride-sized slices, one byte per cell; a solve over n slots
	// uses the first n.
	back       []uint8
	backStride int
}

// NewCPU constructs an engine with the given options.
func NewCPU(opts Options) *CPU {
	return &CPU{opts: opts}
}

// Name identifies the engine.
func (e *CPU) Name() string {
	return "cpu-tiled"
}

// Initialize acquires slabs for requirements up to maxReq and catalogs up
// to maxRecipes variants. Solves beyond these bounds still succeed; the
// slabs grow and never shrink.
func (e *CPU) Initialize(maxReq resist.Resistance, maxRecipes int) error {
	if maxRecipes > MaxRecipes {
		return fmt.Errorf("%w: got %d, limit %d", ErrTooManyRecipes, maxRecipes, MaxRecipes)
	}

	grid := resist.NewGrid(maxReq)
	if grid.Size() > e.opts.maxCells() {
		return fmt.Errorf("%w: %d cells for %v, budget %d",
			ErrRequiredTooLarge, grid.Size(), maxReq, e.opts.maxCells())
	}
	e.ensureCapacity(grid.Size())

	return nil
}

// Solve finds a minimum-cost assignment meeting at least required.
// See SolveContext for the cancellable variant.
func (e *CPU) Solve(required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe) (Assignment, error) {
	return e.SolveContext(context.Background(), required, slots, recipes)
}

// SolveContext is Solve with cancellation between slot steps. The sweep
// of a single step always runs to completion; ctx is consulted only at
// the step barriers, matching the engine's suspension points.
func (e *CPU) SolveContext(ctx context.Context, required resist.Resistance, slots []recipe.Slot, recipes []recipe.Recipe) (Assignment, error) {
	// --- 1. Validate bounds before touching any table ---
	if len(slots) > MaxSlots {
		return Invalid(), fmt.Errorf("%w: got %d, limit %d", ErrTooManySlots, len(slots), MaxSlots)
	}
	if len(recipes) == 0 {
		// nothing to apply: infeasible unless there is nothing to satisfy
		// and no slot forces a choice — the DP below would degenerate, so
		// answer directly.
		if required.IsZero() && len(slots) == 0 {
			return Assignment{Cost: 0}, nil
		}

		return Invalid(), nil
	}
	if len(recipes) > MaxRecipes {
		return Invalid(), fmt.Errorf("%w: got %d, limit %d", ErrTooManyRecipes, len(recipes), MaxRecipes)
	}
	if !recipes[0].IsNull() || recipes[0].Cost != 0 {
		return Invalid(), ErrNoNullRecipe
	}

	grid := resist.NewGrid(required)
	cells := grid.Size()
	if cells > e.opts.maxCells() {
		return Invalid(), fmt.Errorf("%w: %d cells for %v, budget %d",
			ErrRequiredTooLarge, cells, required, e.opts.maxCells())
	}

	// --- 2. Acquire slabs and set the base layer ---
	e.ensureCapacity(cells)

	cur, next := e.cur[:cells], e.next[:cells]
	inf := math.Inf(1)
	for i := range cur {
		cur[i] = inf
	}
	cur[0] = 0 // zero requirement is free with zero slots

	// --- 3. Sequential slot steps, tile-parallel sweeps ---
	for k, slot := range slots {
		if err := ctx.Err(); err != nil {
			return Invalid(), err
		}

		// Applicability depends only on the slot, so filter the catalog
		// once per step, preserving ascending index order for the
		// deterministic tie-break.
		apply := applicable(recipes, slot)

		layer := e.back[k*e.backStride : k*e.backStride+cells]
		e.sweep(grid, cur, next, layer, apply)

		cur, next = next, cur
	}

	// --- 4. Read the answer and reconstruct ---
	answer := cur[grid.Index(required)]
	if math.IsInf(answer, 1) {
		return Invalid(), nil
	}

	return e.reconstruct(grid, required, slots, recipes, answer), nil
}

// candidate is one applicable recipe of the current step.
type candidate struct {
	res  resist.Resistance
	cost float64
	idx  uint8
}

// applicable filters the catalog down to recipes fitting slot,
// ascending index order preserved.
func applicable(recipes []recipe.Recipe, slot recipe.Slot) []candidate {
	out := make([]candidate, 0, len(recipes))
	for j, rc := range recipes {
		if !rc.Fits(slot) {
			continue
		}
		out = append(out, candidate{res: rc.Resist, cost: rc.Cost, idx: uint8(j)})
	}

	return out
}

// sweep computes one full T_k layer from T_{k-1}.
//
// The grid is partitioned into tiles over the fire and cold axes; every
// tile spans complete lightning×chaos planes, so each (fire, cold) pair
// of a tile writes a contiguous run of next and layer, and workers read
// only cur. No two tiles
// overlap, hence no synchronization beyond the final barrier.
func (e *CPU) sweep(grid resist.Grid, cur, next []float64, layer []uint8, apply []candidate) {
	dimF, dimC, _, _ := grid.Dims()
	tileF := tileExtent(e.opts.TileFire)
	tileC := tileExtent(e.opts.TileCold)

	type tile struct{ f0, f1, c0, c1 int }
	tiles := make(chan tile, e.opts.workers())

	var g errgroup.Group
	for w := 0; w < e.opts.workers(); w++ {
		g.Go(func() error {
			for t := range tiles {
				sweepTile(grid, cur, next, layer, apply, t.f0, t.f1, t.c0, t.c1)
			}

			return nil
		})
	}

	for f := 0; f < dimF; f += tileF {
		for c := 0; c < dimC; c += tileC {
			tiles <- tile{f0: f, f1: minInt(f+tileF, dimF), c0: c, c1: minInt(c+tileC, dimC)}
		}
	}
	close(tiles)

	// barrier between steps k and k+1; workers never return an error
	_ = g.Wait()
}

// sweepTile fills next and layer for the cells of one (fire, cold) block.
func sweepTile(grid resist.Grid, cur, next []float64, layer []uint8, apply []candidate, f0, f1, c0, c1 int) {
	_, dimC, dimL, dimCh := grid.Dims()
	inf := math.Inf(1)

	for f := f0; f < f1; f++ {
		for c := c0; c < c1; c++ {
			base := ((f*dimC)+c)*dimL*dimCh
			for l := 0; l < dimL; l++ {
				row := base + l*dimCh
				for ch := 0; ch < dimCh; ch++ {
					v := resist.New(resist.Item(f), resist.Item(c), resist.Item(l), resist.Item(ch))

					best := inf
					bestJ := uint8(0)
					for _, cand := range apply {
						prev := cur[grid.Index(v.Sub(cand.res))]
						if total := prev + cand.cost; total < best {
							best = total
							bestJ = cand.idx
						}
					}
					next[row+ch] = best
					layer[row+ch] = bestJ
				}
			}
		}
	}
}

// ensureCapacity grows the slabs to hold cells table entries plus
// MaxSlots back-pointer layers. Growth only; existing capacity is kept.
func (e *CPU) ensureCapacity(cells int) {
	if cap(e.cur) < cells {
		e.cur = make([]float64, cells)
		e.next = make([]float64, cells)
	}
	if e.backStride < cells {
		e.backStride = cells
		e.back = make([]uint8, MaxSlots*cells)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
