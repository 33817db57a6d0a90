// Package amg: standard aggregation over the strength graph.
package amg

import "github.com/katalvlaran/lvlamg/sparse"

// unaggregated marks a vertex not yet assigned to any aggregate.
const unaggregated = -1

// StandardAggregation partitions the vertices of the strength matrix c
// into aggregates (connected clusters), visiting vertices in the given
// sweep order. Every vertex ends up in exactly one aggregate; ids are
// dense in [0, count).
//
// The classic three-pass scheme:
//
//  1. A vertex none of whose neighbors is aggregated becomes the root
//     of a fresh aggregate together with all its neighbors.
//  2. Each remaining vertex attaches to the aggregate of its first
//     aggregated neighbor (in row order).
//  3. Whatever is left (vertices whose neighborhood was consumed by
//     pass 2 attachments elsewhere, or isolated clusters) roots a
//     fresh aggregate with its still-unaggregated neighbors.
//
// order must be a permutation of [0, c.Rows()), or nil for the natural
// 0..n−1 sweep; coloring.Ordering of the strength graph supplies a
// deterministic, locality-aware one. A degenerate result (one aggregate
// swallowing everything) is a precondition violation by the caller, not
// an error here.
//
// Complexity: Time O(nnz), Space O(rows).
func StandardAggregation(c *sparse.CSR, order []int) (aggregates []int, count int, err error) {
	if c == nil {
		return nil, 0, ErrNilMatrix
	}
	if c.Rows() != c.Cols() {
		return nil, 0, ErrNonSquare
	}
	n := c.Rows()
	if order == nil {
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}
	if len(order) != n {
		return nil, 0, ErrDimensionMismatch
	}

	aggregates = make([]int, n)
	for i := range aggregates {
		aggregates[i] = unaggregated
	}

	var i, j, p int
	var cols []int
	// Pass 1: roots with fully untouched neighborhoods.
	for _, i = range order {
		if aggregates[i] != unaggregated {
			continue
		}
		cols, _, _ = c.Row(i)
		free := true
		for p = 0; p < len(cols); p++ {
			if cols[p] != i && aggregates[cols[p]] != unaggregated {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		aggregates[i] = count
		for p = 0; p < len(cols); p++ {
			aggregates[cols[p]] = count
		}
		count++
	}

	// Pass 2: attach stragglers to an adjacent aggregate. Attachments
	// are applied after the sweep so pass-2 vertices do not themselves
	// attract further vertices within this pass.
	pending := make([][2]int, 0, n) // (vertex, aggregate id)
	for _, i = range order {
		if aggregates[i] != unaggregated {
			continue
		}
		cols, _, _ = c.Row(i)
		for p = 0; p < len(cols); p++ {
			j = cols[p]
			if j != i && aggregates[j] != unaggregated {
				pending = append(pending, [2]int{i, aggregates[j]})
				break
			}
		}
	}
	for _, pa := range pending {
		aggregates[pa[0]] = pa[1]
	}

	// Pass 3: whatever remains roots its own aggregate.
	for _, i = range order {
		if aggregates[i] != unaggregated {
			continue
		}
		aggregates[i] = count
		cols, _, _ = c.Row(i)
		for p = 0; p < len(cols); p++ {
			if aggregates[cols[p]] == unaggregated {
				aggregates[cols[p]] = count
			}
		}
		count++
	}

	return aggregates, count, nil
}
