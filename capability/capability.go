package capability

import (
	"errors"
	"math"

	"github.com/machshop/spc/stats"
)

var (
	// ErrMissingSpecLimits indicates neither specification limit was supplied;
	// no index is computable.
	ErrMissingSpecLimits = errors.New("capability: at least one specification limit is required")
	// ErrInvalidSpecLimits indicates USL <= LSL.
	ErrInvalidSpecLimits = errors.New("capability: upper specification limit must exceed the lower")
	// ErrZeroVariance indicates a sigma estimate of zero (or a non-positive
	// supplied within-sigma); the indices would be infinite.
	ErrZeroVariance = errors.New("capability: zero process variance, indices undefined")
)

// Spec holds the specification limits and optional target for the studied
// characteristic. Nil fields mean "not specified".
type Spec struct {
	USL    *float64
	LSL    *float64
	Target *float64
}

// Options configures Analyze.
type Options struct {
	// WithinSigma is the short-term sigma estimate (R̄/d₂, S̄/c₄ or M̄R/d₂)
	// from the subgroups behind the control limits. Nil falls back to the
	// overall sample standard deviation, making Cp/Cpk equal Pp/Ppk.
	WithinSigma *float64
}

// Indices is the result of one capability study. Cp, Pp and Cpm are nil when
// their inputs were not supplied (single-sided study, missing target).
type Indices struct {
	Cp  *float64
	Cpk float64
	Pp  *float64
	Ppk float64
	Cpm *float64

	Mean         float64
	WithinSigma  float64
	OverallSigma float64
}

// Analyze computes the capability indices for series against spec.
//
// Contracts:
//   - len(series) >= 2 (a standard deviation needs two observations).
//   - At least one specification limit; USL > LSL when both are present.
//   - Cpk = min((USL−μ)/3σ_w, (μ−LSL)/3σ_w), dropping the missing side for
//     one-sided studies; Ppk substitutes the overall sigma.
//   - Cpm = (USL−LSL) / (6·√(σ_o² + (μ−target)²)); needs both limits + target.
//
// Errors: ErrMissingSpecLimits, ErrInvalidSpecLimits, ErrZeroVariance,
// stats.ErrInsufficientData.
//
// Complexity: O(n) time, O(1) extra space.
func Analyze(series []float64, spec Spec, opts Options) (Indices, error) {
	if spec.USL == nil && spec.LSL == nil {
		return Indices{}, ErrMissingSpecLimits
	}
	if spec.USL != nil && spec.LSL != nil && *spec.USL <= *spec.LSL {
		return Indices{}, ErrInvalidSpecLimits
	}

	mean, err := stats.Mean(series)
	if err != nil {
		return Indices{}, stats.ErrInsufficientData
	}
	overall, err := stats.SampleStdDev(series)
	if err != nil {
		return Indices{}, err
	}
	if overall == 0 {
		return Indices{}, ErrZeroVariance
	}

	within := overall
	if opts.WithinSigma != nil {
		within = *opts.WithinSigma
	}
	if within <= 0 {
		return Indices{}, ErrZeroVariance
	}

	out := Indices{
		Cpk:          minSided(spec, mean, within),
		Ppk:          minSided(spec, mean, overall),
		Mean:         mean,
		WithinSigma:  within,
		OverallSigma: overall,
	}

	if spec.USL != nil && spec.LSL != nil {
		width := *spec.USL - *spec.LSL
		cp := width / (6 * within)
		pp := width / (6 * overall)
		out.Cp = &cp
		out.Pp = &pp

		if spec.Target != nil {
			cpm := width / (6 * math.Sqrt(overall*overall+(mean-*spec.Target)*(mean-*spec.Target)))
			out.Cpm = &cpm
		}
	}
	return out, nil
}

// minSided returns the worst one-sided index over the supplied limits.
// At least one limit is present; validation has already ensured that.
func minSided(spec Spec, mean, sigma float64) float64 {
	idx := math.Inf(1)
	if spec.USL != nil {
		idx = math.Min(idx, (*spec.USL-mean)/(3*sigma))
	}
	if spec.LSL != nil {
		idx = math.Min(idx, (mean-*spec.LSL)/(3*sigma))
	}
	return idx
}
