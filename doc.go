// Package spc turns an ordered sequence of manufacturing measurements into
// control limits, Western Electric rule violations and process capability
// indices - the complete statistical process control evaluation in one call.
//
// The heavy lifting lives in the subpackages; this package is the single
// integration surface a host application needs:
//
//	controlchart/ - limit calculation for X-bar/R, X-bar/S, I-MR, P and C charts
//	weco/         - the eight Western Electric pattern rules
//	capability/   - Cp, Cpk, Pp, Ppk, Cpm
//	stats/        - shared numeric primitives
//	config/       - YAML evaluation-config decoding
//
// Usage:
//
//	subgroups := spc.GroupObservations(observations)
//	opts := spc.DefaultOptions()
//	opts.USL, opts.LSL = &usl, &lsl
//
//	result, err := spc.Evaluate(controlchart.XBarR, subgroups, opts)
//	if err != nil {
//		// not enough data yet, malformed subgroups, ...
//	}
//	// result.Limits, result.Violations, result.Capability
//
// Everything is synchronous, stateless and side-effect free: every call
// operates on its own inputs and allocates its own outputs, so concurrent
// evaluation of many parameters is simply one Evaluate call per goroutine.
// Persistence, transport, alerting and chart rendering are the host
// application's business; the core never touches any of them.
package spc
