// Package config decodes per-parameter SPC evaluation settings from YAML
// into facade options.
//
// The host application's configuration store owns the documents and their
// persistence; this package only turns bytes into validated options. A
// document looks like:
//
//	chart: xbar_r
//	sensitivity: strict
//	rules: [1, 2, 5]
//	usl: 10.6
//	lsl: 9.4
//	target: 10.0
//	p_chart_limits: per_point
//
// Omitted sensitivity defaults to normal, omitted rules to all eight, and
// omitted p_chart_limits to exact per-point limits. Decoding is strict:
// unknown fields, chart names, sensitivity levels, rule ids or P-chart modes
// are errors, never silently defaulted.
package config
