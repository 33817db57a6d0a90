package coloring_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlamg/coloring"
	"github.com/katalvlaran/lvlamg/sparse"
)

// pathGraph builds the adjacency pattern of a path 0–1–…–(n−1).
func pathGraph(t *testing.T, n int) *sparse.CSR {
	t.Helper()
	entries := make([]sparse.Entry, 0, 2*n)
	for i := 0; i+1 < n; i++ {
		entries = append(entries, sparse.Entry{Row: i, Col: i + 1, Val: 1})
		entries = append(entries, sparse.Entry{Row: i + 1, Col: i, Val: 1})
	}
	g, err := sparse.FromCOO(n, n, entries)
	if err != nil {
		t.Fatalf("pathGraph: %v", err)
	}

	return g
}

// TestVertexColoring_Errors verifies invalid inputs and options are rejected.
func TestVertexColoring_Errors(t *testing.T) {
	if _, _, err := coloring.VertexColoring(nil); !errors.Is(err, coloring.ErrNilMatrix) {
		t.Errorf("nil graph: want ErrNilMatrix, got %v", err)
	}
	rect, _ := sparse.FromCOO(2, 3, []sparse.Entry{{Row: 0, Col: 0, Val: 1}})
	if _, _, err := coloring.VertexColoring(rect); !errors.Is(err, coloring.ErrNonSquare) {
		t.Errorf("rectangular: want ErrNonSquare, got %v", err)
	}
	g := pathGraph(t, 3)
	if _, _, err := coloring.VertexColoring(g, coloring.WithSource(5)); !errors.Is(err, coloring.ErrSourceOutOfRange) {
		t.Errorf("bad source: want ErrSourceOutOfRange, got %v", err)
	}
	if _, _, err := coloring.VertexColoring(g, coloring.WithSource(-1)); !errors.Is(err, coloring.ErrOptionViolation) {
		t.Errorf("negative source: want ErrOptionViolation, got %v", err)
	}
}

// TestVertexColoring_Path checks level sets along a path graph.
func TestVertexColoring_Path(t *testing.T) {
	g := pathGraph(t, 5)
	colors, n, err := coloring.VertexColoring(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if n != 5 {
		t.Errorf("color count = %d; want 5", n)
	}
}

// TestVertexColoring_MidSource starts the wave in the middle of the path.
func TestVertexColoring_MidSource(t *testing.T) {
	g := pathGraph(t, 5)
	colors, n, err := coloring.VertexColoring(g, coloring.WithSource(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2, 1, 0, 1, 2}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if n != 3 {
		t.Errorf("color count = %d; want 3", n)
	}
}

// TestVertexColoring_Disconnected ensures every component is swept and
// each restarts at depth 0.
func TestVertexColoring_Disconnected(t *testing.T) {
	// Two components: 0–1 and 2–3–4.
	entries := []sparse.Entry{
		{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 0, Val: 1},
		{Row: 2, Col: 3, Val: 1}, {Row: 3, Col: 2, Val: 1},
		{Row: 3, Col: 4, Val: 1}, {Row: 4, Col: 3, Val: 1},
	}
	g, err := sparse.FromCOO(5, 5, entries)
	if err != nil {
		t.Fatal(err)
	}
	colors, n, err := coloring.VertexColoring(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 0, 1, 2}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if n != 3 {
		t.Errorf("color count = %d; want 3", n)
	}
}

// TestOrdering checks the (color, index) sort of the sweep order.
func TestOrdering(t *testing.T) {
	g := pathGraph(t, 5)
	order, err := coloring.Ordering(g, coloring.WithSource(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// colors are [2 1 0 1 2]: depth 0 → {2}, depth 1 → {1,3}, depth 2 → {0,4}.
	if want := []int{2, 1, 3, 0, 4}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v; want %v", order, want)
	}
}

// TestVertexColoring_Cancellation propagates a canceled context.
func TestVertexColoring_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := pathGraph(t, 4)
	if _, _, err := coloring.VertexColoring(g, coloring.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestVertexColoring_SelfLoops ignores diagonal entries as adjacency.
func TestVertexColoring_SelfLoops(t *testing.T) {
	entries := []sparse.Entry{
		{Row: 0, Col: 0, Val: 4}, {Row: 1, Col: 1, Val: 4},
		{Row: 0, Col: 1, Val: -1}, {Row: 1, Col: 0, Val: -1},
	}
	g, err := sparse.FromCOO(2, 2, entries)
	if err != nil {
		t.Fatal(err)
	}
	colors, n, err := coloring.VertexColoring(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v; want %v", colors, want)
	}
	if n != 2 {
		t.Errorf("color count = %d; want 2", n)
	}
}
