// Package recap is an offline, deterministic solver for the resistance
// crafting problem: assign at most one crafting recipe to each equipment
// slot so the summed elemental resistances reach a required threshold at
// minimal total cost.
//
// 🚀 What is recap?
//
//	A batch optimization engine built around a pseudo-polynomial dynamic
//	program over a dense four-dimensional resistance table:
//		• resist/  — the resistance 4-tuple, saturating arithmetic, and
//		  the dense linear index map
//		• recipe/  — recipes, slot bitmasks, equipped items
//		• assign/  — the tile-parallel DP engine, solution
//		  reconstruction, and the re-crafting orchestrator
//		• catalog/ — CSV and JSON ingestion with located diagnostics
//		• cmd/recap — the command-line front end
//
// ✨ Why choose recap?
//
//   - Exact – the engine matches brute force on every instance
//   - Deterministic – fixed tie-breaks, no randomness, reproducible runs
//   - Parallel – the 4D sweep scales across cores without locks
//   - Reusable – table memory is acquired once and recycled across solves
//
// Quick example:
//
//	engine := assign.NewCPU(assign.DefaultOptions())
//	result, err := engine.Solve(
//	    resist.New(29, 37, 23, 0),
//	    []recipe.Slot{recipe.SlotBody, recipe.SlotGloves},
//	    recipes, // catalog.ReadRecipes(...)
//	)
//
// Infeasibility is a result, not an error: an invalid assignment carries
// an infinite cost and no pairs. See each subpackage's doc.go for
// contracts, complexity and error taxonomies.
package recap
