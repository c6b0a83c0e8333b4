// Package controlchart - limit calculation and series reduction.
//
// This file provides the canonical entry points:
//
//   - Calculate: validate the subgroup window, then dispatch to the chart
//     family's formula set.
//   - Series: reduce each subgroup to the statistic the chart plots (mean,
//     individual, proportion or count), preserving input order.
//   - EstimateWithinSigma: the short-term sigma estimate implied by the chart
//     family (R̄/d₂, S̄/c₄, M̄R/d₂), for capability studies on the same window.
//
// Validation is staged as in validate-then-route dispatchers: shape first
// (subgroup count, empty subgroups), then chart-specific encoding, then
// constant lookup. Only sentinel errors from types.go are returned.
package controlchart

import (
	"math"

	"github.com/machshop/spc/stats"
)

// Calculate computes the control limit set for chart over subgroups.
//
// Contracts:
//   - len(subgroups) >= 2; every subgroup non-empty.
//   - X-bar/R and X-bar/S: uniform subgroup size n ∈ [2,25].
//   - Individuals/MR and C: single-element subgroups; C values non-negative.
//   - Input order is preserved; subgroups are never mutated.
//
// Errors: ErrInsufficientData, ErrInvalidArgument, ErrInconsistentSubgroupSize,
// ErrUnsupportedSubgroupSize, ErrUnknownChartType.
//
// Complexity: O(total observations) time for every family.
func Calculate(chart ChartType, subgroups []Subgroup, opts Options) (Limits, error) {
	if err := validateShape(chart, subgroups); err != nil {
		return Limits{}, err
	}

	switch chart {
	case XBarR:
		return calculateXBarR(subgroups)
	case XBarS:
		return calculateXBarS(subgroups)
	case IndividualsMovingRange:
		return calculateIMR(subgroups)
	case PChart:
		return calculateP(subgroups, opts.PChart)
	case CChart:
		return calculateC(subgroups)
	default:
		return Limits{}, ErrUnknownChartType
	}
}

// Series reduces subgroups to the per-point statistic the chart plots:
// subgroup means for the X-bar families, the individual value for I-MR, the
// defective proportion for P, the defect count for C. The result preserves
// subgroup order and has one entry per subgroup.
//
// Errors: same validation sentinels as Calculate.
func Series(chart ChartType, subgroups []Subgroup) ([]float64, error) {
	if err := validateShape(chart, subgroups); err != nil {
		return nil, err
	}

	series := make([]float64, len(subgroups))
	for i, sg := range subgroups {
		switch chart {
		case XBarR, XBarS:
			m, err := stats.Mean(sg.Values)
			if err != nil {
				return nil, ErrInvalidArgument
			}
			series[i] = m
		case IndividualsMovingRange, CChart:
			series[i] = sg.Values[0]
		case PChart:
			series[i] = defectiveFraction(sg.Values)
		default:
			return nil, ErrUnknownChartType
		}
	}
	return series, nil
}

// EstimateWithinSigma returns the short-term (within-subgroup) sigma estimate
// implied by the chart family: R̄/d₂ for X-bar/R, S̄/c₄ for X-bar/S and
// M̄R/d₂(2) for Individuals/MR.
//
// Errors: ErrNoWithinSigma for the attribute families (P, C), plus the
// validation sentinels shared with Calculate.
func EstimateWithinSigma(chart ChartType, subgroups []Subgroup) (float64, error) {
	if err := validateShape(chart, subgroups); err != nil {
		return 0, err
	}

	switch chart {
	case XBarR:
		rbar := meanSubgroupStat(subgroups, subgroupRange)
		consts, err := Constants(len(subgroups[0].Values))
		if err != nil {
			return 0, err
		}
		return rbar / consts.D2, nil
	case XBarS:
		sbar := meanSubgroupStat(subgroups, subgroupStdDev)
		consts, err := Constants(len(subgroups[0].Values))
		if err != nil {
			return 0, err
		}
		return sbar / consts.C4, nil
	case IndividualsMovingRange:
		mrbar, err := meanMovingRange(flatten(subgroups))
		if err != nil {
			return 0, err
		}
		return mrbar / d2ForMovingRange, nil
	case PChart, CChart:
		return 0, ErrNoWithinSigma
	default:
		return 0, ErrUnknownChartType
	}
}

// validateShape enforces the shared and per-family input contracts.
func validateShape(chart ChartType, subgroups []Subgroup) error {
	// Stage 1: window size. Two subgroups is the minimum for any center line
	// and for the first moving range.
	if len(subgroups) < 2 {
		return ErrInsufficientData
	}

	// Stage 2: no empty subgroups anywhere.
	for _, sg := range subgroups {
		if len(sg.Values) == 0 {
			return ErrInvalidArgument
		}
	}

	// Stage 3: per-family encoding.
	switch chart {
	case XBarR, XBarS:
		n := len(subgroups[0].Values)
		for _, sg := range subgroups[1:] {
			if len(sg.Values) != n {
				return ErrInconsistentSubgroupSize
			}
		}
		if n < MinSubgroupSize || n > MaxSubgroupSize {
			return ErrUnsupportedSubgroupSize
		}
	case IndividualsMovingRange:
		for _, sg := range subgroups {
			if len(sg.Values) != 1 {
				return ErrInvalidArgument
			}
		}
	case CChart:
		for _, sg := range subgroups {
			if len(sg.Values) != 1 || sg.Values[0] < 0 {
				return ErrInvalidArgument
			}
		}
	case PChart:
		// Any non-empty subgroup of indicators is acceptable.
	default:
		return ErrUnknownChartType
	}
	return nil
}

func calculateXBarR(subgroups []Subgroup) (Limits, error) {
	consts, err := Constants(len(subgroups[0].Values))
	if err != nil {
		return Limits{}, err
	}

	grand := meanSubgroupStat(subgroups, subgroupMean)
	rbar := meanSubgroupStat(subgroups, subgroupRange)

	return Limits{
		Chart:  XBarR,
		Center: grand,
		Upper:  grand + consts.A2*rbar,
		Lower:  grand - consts.A2*rbar,
		Secondary: &SecondaryLimits{
			Center: rbar,
			Upper:  consts.D4 * rbar,
			Lower:  math.Max(0, consts.D3*rbar),
		},
	}, nil
}

func calculateXBarS(subgroups []Subgroup) (Limits, error) {
	consts, err := Constants(len(subgroups[0].Values))
	if err != nil {
		return Limits{}, err
	}

	grand := meanSubgroupStat(subgroups, subgroupMean)
	sbar := meanSubgroupStat(subgroups, subgroupStdDev)

	return Limits{
		Chart:  XBarS,
		Center: grand,
		Upper:  grand + consts.A3*sbar,
		Lower:  grand - consts.A3*sbar,
		Secondary: &SecondaryLimits{
			Center: sbar,
			Upper:  consts.B4 * sbar,
			Lower:  math.Max(0, consts.B3*sbar),
		},
	}, nil
}

func calculateIMR(subgroups []Subgroup) (Limits, error) {
	values := flatten(subgroups)

	mean, err := stats.Mean(values)
	if err != nil {
		return Limits{}, ErrInsufficientData
	}
	mrbar, err := meanMovingRange(values)
	if err != nil {
		return Limits{}, err
	}

	// 3σ width from the moving-range estimate: 3/d₂(2) ≈ 2.66.
	width := 3 / d2ForMovingRange * mrbar

	// The MR chart bounds follow the n=2 range-chart constants: D4 = 3.267,
	// D3 = 0, so the lower limit is always 0.
	return Limits{
		Chart:  IndividualsMovingRange,
		Center: mean,
		Upper:  mean + width,
		Lower:  mean - width,
		Secondary: &SecondaryLimits{
			Center: mrbar,
			Upper:  3.267 * mrbar,
			Lower:  0,
		},
	}, nil
}

func calculateP(subgroups []Subgroup, mode PChartMode) (Limits, error) {
	var totalDefective, totalInspected int
	uniform := true
	firstN := len(subgroups[0].Values)
	for _, sg := range subgroups {
		n := len(sg.Values)
		if n != firstN {
			uniform = false
		}
		totalInspected += n
		for _, v := range sg.Values {
			if v != 0 {
				totalDefective++
			}
		}
	}

	pbar, err := stats.Proportion(totalDefective, totalInspected)
	if err != nil {
		return Limits{}, ErrInvalidArgument
	}

	// Scalar pair from the average sample size. Exact when sizes are uniform;
	// otherwise the zoning approximation that accompanies per-point limits.
	avgN := float64(totalInspected) / float64(len(subgroups))
	upper, lower := pLimitPair(pbar, avgN)

	limits := Limits{
		Chart:  PChart,
		Center: pbar,
		Upper:  upper,
		Lower:  lower,
		Mode:   LimitsUniform,
	}
	if uniform {
		return limits, nil
	}

	switch mode {
	case PChartAverageN:
		limits.Mode = LimitsAverageN
	case PChartPerPoint:
		limits.Mode = LimitsPerPoint
		limits.PerPoint = make([]LimitPair, len(subgroups))
		for i, sg := range subgroups {
			u, l := pLimitPair(pbar, float64(len(sg.Values)))
			limits.PerPoint[i] = LimitPair{Upper: u, Lower: l}
		}
	default:
		return Limits{}, ErrInvalidArgument
	}
	return limits, nil
}

func calculateC(subgroups []Subgroup) (Limits, error) {
	counts := flatten(subgroups)
	cbar, err := stats.Mean(counts)
	if err != nil {
		return Limits{}, ErrInsufficientData
	}

	width := 3 * math.Sqrt(cbar)
	return Limits{
		Chart:  CChart,
		Center: cbar,
		Upper:  cbar + width,
		Lower:  math.Max(0, cbar-width),
	}, nil
}

// pLimitPair returns the ±3σ proportion limits for sample size n, clamped to
// the meaningful proportion range [0,1].
func pLimitPair(pbar, n float64) (upper, lower float64) {
	width := 3 * math.Sqrt(pbar*(1-pbar)/n)
	return math.Min(1, pbar+width), math.Max(0, pbar-width)
}

// defectiveFraction counts nonzero indicators over the subgroup size.
// Shape validation has already guaranteed a non-empty subgroup.
func defectiveFraction(values []float64) float64 {
	defective := 0
	for _, v := range values {
		if v != 0 {
			defective++
		}
	}
	return float64(defective) / float64(len(values))
}

// subgroupMean, subgroupRange and subgroupStdDev adapt the stats primitives
// to the per-subgroup reductions used above. Shape validation has already
// ruled out the error cases, so the reductions are total.
func subgroupMean(values []float64) float64 {
	m, _ := stats.Mean(values)
	return m
}

func subgroupRange(values []float64) float64 {
	r, _ := stats.Range(values)
	return r
}

func subgroupStdDev(values []float64) float64 {
	s, _ := stats.SampleStdDev(values)
	return s
}

// meanSubgroupStat averages a per-subgroup reduction over the whole window.
func meanSubgroupStat(subgroups []Subgroup, stat func([]float64) float64) float64 {
	sum := 0.0
	for _, sg := range subgroups {
		sum += stat(sg.Values)
	}
	return sum / float64(len(subgroups))
}

// meanMovingRange returns M̄R over the flattened individual values.
func meanMovingRange(values []float64) (float64, error) {
	mrs, err := stats.MovingRanges(values)
	if err != nil {
		return 0, ErrInsufficientData
	}
	mrbar, err := stats.Mean(mrs)
	if err != nil {
		return 0, ErrInsufficientData
	}
	return mrbar, nil
}

func flatten(subgroups []Subgroup) []float64 {
	out := make([]float64, 0, len(subgroups))
	for _, sg := range subgroups {
		out = append(out, sg.Values...)
	}
	return out
}
