package spc

import (
	"errors"
	"time"

	"github.com/machshop/spc/capability"
	"github.com/machshop/spc/controlchart"
	"github.com/machshop/spc/weco"
)

// Observation is one raw measurement in time order. Timestamp and SubgroupID
// are optional; the measurement pipeline that produced the data owns both.
type Observation struct {
	Value      float64
	Timestamp  *time.Time
	SubgroupID string
}

// GroupObservations folds a time-ordered observation sequence into subgroups:
// consecutive observations sharing a non-empty SubgroupID form one subgroup,
// and every observation without an ID stands alone (the Individuals shape).
// Input order is preserved; a SubgroupID reappearing later starts a new
// subgroup rather than merging backwards.
func GroupObservations(observations []Observation) []controlchart.Subgroup {
	var out []controlchart.Subgroup
	for i, obs := range observations {
		if obs.SubgroupID != "" && i > 0 &&
			observations[i-1].SubgroupID == obs.SubgroupID {
			last := &out[len(out)-1]
			last.Values = append(last.Values, obs.Value)
			continue
		}
		out = append(out, controlchart.Subgroup{Values: []float64{obs.Value}})
	}
	return out
}

// Options configures one evaluation.
type Options struct {
	// Sensitivity scales the rule engine's zone boundaries.
	Sensitivity weco.Sensitivity
	// Rules selects which Western Electric rules run.
	Rules weco.RuleSet
	// PChart selects the variable-n P-chart limit policy.
	PChart controlchart.PChartMode

	// USL, LSL and Target drive the capability study. Capability is computed
	// only when both limits are present; otherwise Result.Capability is nil.
	USL    *float64
	LSL    *float64
	Target *float64
}

// DefaultOptions enables all eight rules at normal sensitivity with exact
// per-point P-chart limits and no capability study.
func DefaultOptions() Options {
	return Options{
		Sensitivity: weco.SensitivityNormal,
		Rules:       weco.AllRules(),
		PChart:      controlchart.PChartPerPoint,
	}
}

// Result bundles one complete evaluation. Capability is nil unless both
// specification limits were supplied.
type Result struct {
	Limits     controlchart.Limits
	Violations []weco.Violation
	Capability *capability.Indices
}

// Evaluate computes control limits over subgroups, runs the enabled rules
// against the plotted series, and - when both specification limits are given -
// performs the capability study, all from the same data window.
//
// Contracts:
//   - subgroups follow the chart family's encoding (see controlchart).
//   - The capability study runs on the raw measurements for the variables
//     families and on the plotted statistic for the attribute families; the
//     within-sigma estimate comes from the same subgroups (R̄/d₂, S̄/c₄,
//     M̄R/d₂) where the family defines one.
//
// Errors: the controlchart validation sentinels, and the capability sentinels
// when a requested study is not computable (e.g. zero variance).
func Evaluate(chart controlchart.ChartType, subgroups []controlchart.Subgroup, opts Options) (Result, error) {
	limits, err := controlchart.Calculate(chart, subgroups, controlchart.Options{PChart: opts.PChart})
	if err != nil {
		return Result{}, err
	}

	series, err := controlchart.Series(chart, subgroups)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Limits:     limits,
		Violations: weco.Evaluate(series, limits, opts.Rules, opts.Sensitivity),
	}

	if opts.USL == nil || opts.LSL == nil {
		return result, nil
	}

	study := capabilitySeries(chart, subgroups, series)
	capOpts := capability.Options{}
	within, err := controlchart.EstimateWithinSigma(chart, subgroups)
	switch {
	case err == nil:
		capOpts.WithinSigma = &within
	case errors.Is(err, controlchart.ErrNoWithinSigma):
		// Attribute chart: fall back to the overall sigma.
	default:
		return Result{}, err
	}

	indices, err := capability.Analyze(study, capability.Spec{
		USL:    opts.USL,
		LSL:    opts.LSL,
		Target: opts.Target,
	}, capOpts)
	if err != nil {
		return Result{}, err
	}
	result.Capability = &indices
	return result, nil
}

// capabilitySeries picks the measurement view the study runs on: the raw
// individual values for variables charts (subgroup means would understate the
// spread), the plotted statistic for attribute charts.
func capabilitySeries(chart controlchart.ChartType, subgroups []controlchart.Subgroup, series []float64) []float64 {
	switch chart {
	case controlchart.XBarR, controlchart.XBarS, controlchart.IndividualsMovingRange:
		var out []float64
		for _, sg := range subgroups {
			out = append(out, sg.Values...)
		}
		return out
	default:
		return series
	}
}
