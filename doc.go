// Package lvlamg is an in-memory smoothed-aggregation algebraic
// multigrid (AMG) solver for sparse symmetric linear systems — from
// CSR primitives to a full V-cycle preconditioner.
//
// 🚀 What is lvlamg?
//
//	A deterministic, thread-safe-per-instance library that brings together:
//		• Sparse primitives: CSR assembly, SpMV, SpGEMM, transpose
//		• Coarsening: strength-of-connection filtering & standard aggregation
//		• Transfer operators: tentative prolongators, smoothed prolongation
//		• Spectral estimates: Ritz values of the scaled operator
//		• Cycling: damped-Jacobi smoothing, V-cycles, direct coarse solves
//		• Diagnostics: operator & grid complexity, hierarchy reports
//
// ✨ Why choose lvlamg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic setup & cycles, in-code docs
//   - Pure Go – no cgo, numerics via gonum
//   - Extensible – plug in custom convergence monitors and null-space candidates
//
// Under the hood, everything is organized under four subpackages:
//
//	sparse/   — CSR matrix type, builders & multiplication kernels
//	coloring/ — BFS level-set vertex coloring & sweep orderings
//	amg/      — hierarchy setup, V-cycle solver & diagnostics
//	gallery/  — model Poisson operators for tests and demos
//
// Quick ASCII example:
//
//	A·x = b        level 0  ● ● ● ● ● ● ● ●   smooth ↘
//	                level 1    ●   ●   ●       restrict ↓
//	                 level 2       ●           solve exactly, then back up
//
//	a V-cycle descends the hierarchy, solves the coarsest system
//	directly, and interpolates corrections back to the fine grid.
//
// Dive into README.md for full examples and the solver feature matrix.
//
//	go get github.com/katalvlaran/lvlamg
package lvlamg
