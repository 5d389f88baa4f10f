package assign_test

import (
	"testing"

	"github.com/katalvlaran/recap/assign"
	"github.com/katalvlaran/recap/recipe"
	"github.com/katalvlaran/recap/resist"
)

// benchmarkSolve runs the engine on a fixed catalog with the given
// requirement and worker count, reusing one engine so slab allocation is
// paid once outside the loop.
func benchmarkSolve(b *testing.B, required resist.Resistance, workers int) {
	opts := assign.DefaultOptions()
	opts.Workers = workers
	engine := assign.NewCPU(opts)

	slots := []recipe.Slot{
		recipe.SlotBody, recipe.SlotHelmet, recipe.SlotGloves, recipe.SlotBoots,
		recipe.SlotRing1, recipe.SlotRing2,
	}
	recipes := s4Catalog()

	if err := engine.Initialize(required, len(recipes)); err != nil {
		b.Fatalf("Initialize failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Solve(required, slots, recipes); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkCPU_Solve_SmallSerial(b *testing.B) {
	benchmarkSolve(b, resist.New(30, 30, 30, 0), 1)
}

func BenchmarkCPU_Solve_SmallParallel(b *testing.B) {
	benchmarkSolve(b, resist.New(30, 30, 30, 0), 0)
}

func BenchmarkCPU_Solve_MediumSerial(b *testing.B) {
	benchmarkSolve(b, resist.New(75, 75, 60, 15), 1)
}

func BenchmarkCPU_Solve_MediumParallel(b *testing.B) {
	benchmarkSolve(b, resist.New(75, 75, 60, 15), 0)
}

func BenchmarkBruteForce_Small(b *testing.B) {
	required := resist.New(29, 37, 23, 17)
	slots := []recipe.Slot{recipe.SlotBody, recipe.SlotWeapon1, recipe.SlotBoots}
	recipes := s4Catalog()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		assign.BruteForce(required, slots, recipes)
	}
}
