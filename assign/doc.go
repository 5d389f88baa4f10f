// Package assign finds minimum-cost assignments of crafting recipes to
// equipment slots whose combined resistances meet a required threshold.
//
// What:
//
//   - Algorithm: the capability every solver engine satisfies —
//     Initialize(maxReq, maxRecipes) to acquire table memory, then
//     Solve(required, slots, recipes) → Assignment.
//   - CPU: the tile-parallel dynamic-programming engine over a dense 4D
//     resistance table.
//   - Reassign: decides which subset of equipped items to re-craft so a
//     changing baseline reaches a target, calling the engine once per
//     non-empty candidate subset.
//   - BruteForce: exponential reference solver used to cross-check the
//     engine on small instances.
//
// Algorithm Outline (CPU engine):
//
//  1. Let grid cover every tuple ≤ required; V = grid.Size().
//  2. T_0[zero] = 0, T_0 elsewhere = +Inf.
//  3. For each slot k = 0..n−1, for every cell v (tile-parallel):
//     T_k[v] = min over recipes j applicable to slots[k] of
//     T_{k-1}[sub(v, res_j)] + cost_j,
//     recording B_k[v] = j on every strict improvement. The subtraction
//     saturates at zero, which encodes the "at least" semantics on the
//     boundary. Recipes are scanned in ascending index order and replaced
//     only on strict <, so ties resolve to the first-seen recipe.
//  4. Answer = T_n[required]; +Inf means infeasible (a result, not an
//     error). Otherwise walk B_{n-1}..B_0 backwards to reconstruct the
//     chosen (slot, recipe) pairs.
//
// Parallelism:
//
//	The outer slot loop is sequential (step k reads only layer k−1).
//	Within a step, the 4D sweep is partitioned into tiles over the fire
//	and cold axes; each tile owns a disjoint block of cells spanning full
//	lightning×chaos planes, so the innermost runs are contiguous in
//	memory and no locks or atomics are needed. Workers drain a tile
//	channel under an errgroup; its Wait is the inter-step barrier.
//	A single engine instance must not run concurrent solves: the cost
//	and back-pointer slabs are shared mutable state.
//
// Memory:
//
//	The cost table is double-buffered (two V-sized slabs, swapped per
//	step). Back-pointers keep one layer per slot at one byte per cell;
//	the back-pointer slab reserves MaxSlots (16) layers, so the engine
//	holds 2·V·8 + 16·V bytes and a solve over n slots fills the first n
//	layers. Slabs are allocated by Initialize and grown (never shrunk)
//	when a later solve needs more.
//
// Complexity:
//
//	Time   = O(n · V · m) for n slots, V table cells, m recipes.
//	Memory = O(V · (n + 16)).
//	Reassign multiplies the solve cost by 2^k − 1 for k candidate items.
//
// Errors:
//
//   - ErrTooManyRecipes    — more recipe variants than the 8-bit
//     back-pointer width admits (> 255).
//   - ErrTooManySlots      — more than 16 slots.
//   - ErrTooManyCandidates — more than 10 reassignment candidates.
//   - ErrNoNullRecipe      — catalog index 0 is not the null recipe.
//   - ErrRequiredTooLarge  — the requirement implies more table cells
//     than Options.MaxCells allows.
//
// All bound violations surface before any table work begins.
// Infeasibility is expressed as Assignment.Cost = recipe.CostInf.
package assign
