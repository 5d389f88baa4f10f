package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/recap/assign"
	"github.com/katalvlaran/recap/resist"
)

// cellWidth is the fixed width of every printed table column.
const cellWidth = 13

// printAssignment renders the solver result as the classic six-column
// table: slot kind, per-axis resistance, cost, totals row, total cost.
func printAssignment(w io.Writer, a assign.Assignment) {
	if !a.Feasible() {
		fmt.Fprintln(w, "No solution.")

		return
	}

	fmt.Fprintf(w, "Found solution with cost %g:\n", a.Cost)

	printRow(w, "slot", "fire%", "cold%", "lightning%", "chaos%", "cost")
	fmt.Fprintln(w, strings.Repeat("-", cellWidth*6))

	total := resist.Zero()
	totalCost := 0.0
	for _, p := range a.Pairs {
		printRow(w,
			p.Slot.String(),
			fmt.Sprint(p.Recipe.Resist.Fire),
			fmt.Sprint(p.Recipe.Resist.Cold),
			fmt.Sprint(p.Recipe.Resist.Lightning),
			fmt.Sprint(p.Recipe.Resist.Chaos),
			fmt.Sprintf("%g", p.Recipe.Cost),
		)
		total = total.Add(p.Recipe.Resist)
		totalCost += p.Recipe.Cost
	}

	fmt.Fprintln(w, strings.Repeat("-", cellWidth*6))
	printRow(w, "",
		fmt.Sprint(total.Fire),
		fmt.Sprint(total.Cold),
		fmt.Sprint(total.Lightning),
		fmt.Sprint(total.Chaos),
		fmt.Sprintf("%g", totalCost),
	)
	fmt.Fprintln(w)
}

// printRow emits one table line of left-aligned fixed-width cells.
func printRow(w io.Writer, cells ...string) {
	for _, cell := range cells {
		fmt.Fprintf(w, "%-*s", cellWidth, cell)
	}
	fmt.Fprintln(w)
}
