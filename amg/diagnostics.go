// Package amg: hierarchy size and fill reporting.
package amg

import (
	"fmt"
	"io"
)

// OperatorComplexity is the sum of stored entries across all level
// operators divided by the finest level's entry count. It is always
// at least 1 and summarizes how much extra fill the coarse operators
// add to every cycle.
func (h *Hierarchy) OperatorComplexity() float64 {
	nnz := 0
	for i := range h.Levels {
		nnz += h.Levels[i].A.NNZ()
	}

	return float64(nnz) / float64(h.Levels[0].A.NNZ())
}

// GridComplexity is the sum of row counts across all levels divided by
// the finest level's row count. It is always at least 1 and summarizes
// the total number of unknowns the hierarchy carries.
func (h *Hierarchy) GridComplexity() float64 {
	unknowns := 0
	for i := range h.Levels {
		unknowns += h.Levels[i].A.Rows()
	}

	return float64(unknowns) / float64(h.Levels[0].A.Rows())
}

// WriteReport writes a human-readable hierarchy summary to w: level
// count, both complexity ratios, and a per-level table of unknowns,
// stored entries, and each level's share of the total fill.
func (h *Hierarchy) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\tNumber of Levels:\t%d\n", len(h.Levels)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tOperator Complexity:\t%.4f\n", h.OperatorComplexity()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tGrid Complexity:\t%.4f\n", h.GridComplexity()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tlevel\tunknowns\tnonzeros\n"); err != nil {
		return err
	}

	nnz := 0
	for i := range h.Levels {
		nnz += h.Levels[i].A.NNZ()
	}
	for i := range h.Levels {
		share := 100 * float64(h.Levels[i].A.NNZ()) / float64(nnz)
		if _, err := fmt.Fprintf(w, "\t%d\t%d\t\t%d\t[%.1f%%]\n",
			i, h.Levels[i].A.Rows(), h.Levels[i].A.NNZ(), share); err != nil {
			return err
		}
	}

	return nil
}
