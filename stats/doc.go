// Package stats provides the shared numeric primitives used by every
// control-chart computation: mean, sample and population standard
// deviation, moving ranges, and defective proportion.
//
// Design principles:
//   - Deterministic, side-effect free functions over []float64.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Explicit numeric semantics: SampleStdDev is Bessel-corrected (n−1),
//     PopulationStdDev divides by n; callers pick, nothing is defaulted.
//   - O(n) time, O(1) extra space everywhere except MovingRanges (O(n) output).
//
// Mean and the standard deviations delegate to gonum/stat; MovingRanges and
// Proportion are SPC-specific and have no gonum equivalent.
package stats
