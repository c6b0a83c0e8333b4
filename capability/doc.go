// Package capability computes process capability and performance indices
// (Cp, Cpk, Pp, Ppk, Cpm) from a measurement series and specification limits.
//
// Two spread estimates drive the indices: the short-term "within" sigma
// (ideally R̄/d₂ or S̄/c₄ from the same subgroups that produced the control
// limits, supplied via Options) and the long-term "overall" sigma, always the
// sample standard deviation of the full series. Cp/Cpk use the within
// estimate, Pp/Ppk the overall one; when no within estimate is supplied the
// overall sigma stands in and the two families coincide.
//
// Pointer result fields distinguish "not computed" from "computed as zero":
// Cp and Pp need both specification limits, Cpm additionally needs a target.
// With a single limit the one-sided Cpk/Ppk are still computed.
//
// Design principles:
//   - Deterministic, side-effect free; only sentinel errors, no NaN or ±Inf
//     results - a zero-variance series is ErrZeroVariance, never Infinity.
//   - O(n) time, O(1) extra space.
package capability
