package coloring_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lvlamg/coloring"
	"github.com/katalvlaran/lvlamg/sparse"
)

// ExampleVertexColoring colors a 5-vertex path by breadth-first level
// sets starting from vertex 0.
func ExampleVertexColoring() {
	entries := []sparse.Entry{
		{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 0, Val: 1},
		{Row: 1, Col: 2, Val: 1}, {Row: 2, Col: 1, Val: 1},
		{Row: 2, Col: 3, Val: 1}, {Row: 3, Col: 2, Val: 1},
		{Row: 3, Col: 4, Val: 1}, {Row: 4, Col: 3, Val: 1},
	}
	g, err := sparse.FromCOO(5, 5, entries)
	if err != nil {
		log.Fatal(err)
	}

	colors, n, err := coloring.VertexColoring(g)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(colors, n)
	// Output: [0 1 2 3 4] 5
}

// ExampleOrdering sweeps the same path from its midpoint: vertices are
// ordered by wave depth, ties broken by index.
func ExampleOrdering() {
	entries := []sparse.Entry{
		{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 0, Val: 1},
		{Row: 1, Col: 2, Val: 1}, {Row: 2, Col: 1, Val: 1},
		{Row: 2, Col: 3, Val: 1}, {Row: 3, Col: 2, Val: 1},
		{Row: 3, Col: 4, Val: 1}, {Row: 4, Col: 3, Val: 1},
	}
	g, err := sparse.FromCOO(5, 5, entries)
	if err != nil {
		log.Fatal(err)
	}

	order, err := coloring.Ordering(g, coloring.WithSource(2))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(order)
	// Output: [2 1 3 0 4]
}
