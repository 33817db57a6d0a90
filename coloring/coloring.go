// Package coloring labels the vertices of a sparse matrix graph with
// breadth-first level sets: a vertex's color is its BFS depth from the
// nearest wave source. The multigrid aggregation sweep consumes the
// induced ordering to make coarsening deterministic and locality-aware.
//
// The graph is the symmetric sparsity pattern of a square sparse.CSR:
// vertex i is adjacent to every column index stored in row i.
package coloring

import (
	"sort"

	"github.com/katalvlaran/lvlamg/sparse"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	vertex int
	depth  int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph  *sparse.CSR
	opts   Options
	queue  []queueItem
	colors []int // -1 while unvisited
	max    int   // deepest level seen
}

// VertexColoring performs a breadth-first traversal of g and returns
// one color per vertex (its level-set depth) together with the number
// of distinct colors used. The first wave starts from the configured
// source (vertex 0 by default); disconnected components are swept in
// ascending index order, each restarting at depth 0.
//
// Returns ErrNilMatrix or ErrNonSquare for invalid input,
// ErrSourceOutOfRange for a bad source, ErrOptionViolation for bad
// options, or the context's error on cancellation.
func VertexColoring(g *sparse.CSR, opts ...Option) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrNilMatrix
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	n := g.Rows()
	if n != g.Cols() {
		return nil, 0, ErrNonSquare
	}
	if o.Source >= n {
		return nil, 0, ErrSourceOutOfRange
	}

	w := &walker{
		graph:  g,
		opts:   o,
		queue:  make([]queueItem, 0, n),
		colors: make([]int, n),
		max:    0,
	}
	for i := range w.colors {
		w.colors[i] = -1
	}

	// Primary wave from the configured source.
	if err := w.sweep(o.Source); err != nil {
		return nil, 0, err
	}
	// Cover remaining components in ascending index order.
	for v := 0; v < n; v++ {
		if w.colors[v] >= 0 {
			continue
		}
		if err := w.sweep(v); err != nil {
			return nil, 0, err
		}
	}

	return w.colors, w.max + 1, nil
}

// Ordering returns the vertex indices of g sorted by (color, index):
// all depth-0 vertices first, then depth-1, and so on, ties broken by
// ascending index. This is the sweep order the aggregation pass uses.
// Error conditions are those of VertexColoring.
func Ordering(g *sparse.CSR, opts ...Option) ([]int, error) {
	colors, _, err := VertexColoring(g, opts...)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(colors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return colors[order[a]] < colors[order[b]]
	})

	return order, nil
}

// sweep runs one BFS wave from root at depth 0, coloring every vertex
// reachable from it. Checks cancellation once per dequeue.
func (w *walker) sweep(root int) error {
	w.colors[root] = 0
	w.queue = append(w.queue[:0], queueItem{vertex: root, depth: 0})

	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.depth > w.max {
			w.max = item.depth
		}

		cols, _, err := w.graph.Row(item.vertex)
		if err != nil {
			return err
		}
		for _, nbr := range cols {
			if nbr == item.vertex {
				continue // self-loops carry no adjacency
			}
			// first time seen?
			if w.colors[nbr] < 0 {
				w.colors[nbr] = item.depth + 1
				w.queue = append(w.queue, queueItem{vertex: nbr, depth: item.depth + 1})
			}
		}
	}

	return nil
}
