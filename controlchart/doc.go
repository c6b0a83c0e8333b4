// Package controlchart computes control-chart limits for the five classic
// chart families: X-bar/R, X-bar/S, Individuals/Moving-Range, P and C.
//
// Given a time-ordered slice of Subgroup samples, Calculate produces the
// center line and ±3σ control limits for the primary chart, the paired
// dispersion chart (R, S or MR) where the family has one, and — for P charts
// with varying sample sizes — exact per-subgroup limit pairs.
//
// The chart constants (A2, A3, B3, B4, D3, D4, d2, c4) come from the standard
// SPC tables for subgroup sizes 2..25, implemented as a fixed lookup rather
// than a formula: the small-n values are empirically tabulated and have no
// closed form.
//
// Design principles:
//   - Deterministic, side-effect free functions; inputs are never mutated.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Staged validation first (shape, sizes, chart-specific encoding), then a
//     single dispatch per chart family.
//   - O(total observations) time for every family.
//
// Subgroup encoding per family:
//   - X-bar/R and X-bar/S: uniform subgroup size n ∈ [2,25].
//   - Individuals/Moving-Range: single-element subgroups.
//   - P: each subgroup holds per-unit indicators (0 = conforming, nonzero =
//     defective); the subgroup's sample size is len(Values).
//   - C: each subgroup holds exactly one value, the defect count for one
//     inspection unit.
package controlchart
