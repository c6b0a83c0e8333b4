// Package weco evaluates the eight Western Electric pattern rules over a
// time-ordered control-chart series and a limit set, producing ordered
// violation findings.
//
// Each rule is a pure scan over the full series - there is no stateful
// monitor object. A streaming caller can layer incremental detection on top
// by re-running the scan over a trailing window; the engine itself stays
// stateless and trivially testable.
//
// Zone geometry: σ = (UCL − CL)/3. Zone C spans ±1σ around the center line,
// Zone B reaches ±2σ, Zone A ±3σ, and anything further is beyond the limits.
// The Sensitivity level scales the zone boundaries used by the pattern rules
// (5-8): Strict shrinks them by ×0.9 for earlier alarms, Relaxed widens them
// by ×1.15 for fewer false alarms. The stratification rule (7) fires on
// points *inside* Zone C, so its boundary scales inversely - Strict always
// means more sensitive, for every rule. Rule 1 always uses the unscaled
// control limits.
//
// The eight rules:
//
//	1  point beyond the 3σ control limits            Critical
//	2  ≥9 consecutive points one side of center      Warning
//	3  ≥6 consecutive points monotonically trending  Warning
//	4  ≥14 consecutive points alternating direction  Warning
//	5  2 of 3 consecutive points in Zone A, one side Warning
//	6  4 of 5 consecutive points in Zone B, one side Info
//	7  ≥15 consecutive points within Zone C          Info
//	8  ≥8 consecutive points outside Zone C          Warning
//
// Design principles:
//   - Deterministic, side-effect free; inputs never mutated.
//   - An empty series or a too-short series is a valid "no findings" input,
//     never an error.
//   - Findings are ordered by first contributing point index, then rule id,
//     and record every point that contributed to the pattern.
//   - O(n) per rule; O(n·w) for the window rules with constant w.
package weco
