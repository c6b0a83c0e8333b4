package controlchart

import "errors"

// Sentinel errors returned by Calculate, Series and EstimateWithinSigma.
var (
	// ErrInsufficientData indicates fewer than two subgroups were supplied.
	ErrInsufficientData = errors.New("controlchart: at least two subgroups are required")
	// ErrInvalidArgument indicates a malformed subgroup for the chart family
	// (empty subgroup, multi-valued Individuals/C subgroup, negative count).
	ErrInvalidArgument = errors.New("controlchart: invalid subgroup for chart family")
	// ErrInconsistentSubgroupSize indicates varying subgroup sizes on a chart
	// family that requires uniform n (X-bar/R, X-bar/S).
	ErrInconsistentSubgroupSize = errors.New("controlchart: subgroup sizes must be uniform for this chart family")
	// ErrUnsupportedSubgroupSize indicates a subgroup size outside the
	// tabulated constant range n ∈ [2,25].
	ErrUnsupportedSubgroupSize = errors.New("controlchart: subgroup size outside tabulated range 2..25")
	// ErrUnknownChartType indicates a ChartType value outside the enum.
	ErrUnknownChartType = errors.New("controlchart: unknown chart type")
	// ErrNoWithinSigma indicates a within-subgroup sigma estimate was requested
	// for an attribute chart (P, C), which has none.
	ErrNoWithinSigma = errors.New("controlchart: attribute charts have no within-subgroup sigma estimate")
)

// ChartType selects the chart family, and with it the formulas and tabulated
// constants Calculate applies.
type ChartType int

const (
	// XBarR pairs a subgroup-means chart with a range chart (A2, D3, D4).
	XBarR ChartType = iota
	// XBarS pairs a subgroup-means chart with a sample-stddev chart (A3, B3, B4).
	XBarS
	// IndividualsMovingRange plots individual values with a moving-range chart.
	IndividualsMovingRange
	// PChart plots the defective proportion per subgroup.
	PChart
	// CChart plots the defect count per inspection unit.
	CChart
)

// String returns the canonical lowercase name, also accepted by ParseChartType.
func (c ChartType) String() string {
	switch c {
	case XBarR:
		return "xbar_r"
	case XBarS:
		return "xbar_s"
	case IndividualsMovingRange:
		return "i_mr"
	case PChart:
		return "p"
	case CChart:
		return "c"
	default:
		return "unknown"
	}
}

// ParseChartType maps a canonical name ("xbar_r", "xbar_s", "i_mr", "p", "c")
// back to its ChartType.
//
// Errors: ErrUnknownChartType for any other string.
func ParseChartType(s string) (ChartType, error) {
	switch s {
	case "xbar_r":
		return XBarR, nil
	case "xbar_s":
		return XBarS, nil
	case "i_mr":
		return IndividualsMovingRange, nil
	case "p":
		return PChart, nil
	case "c":
		return CChart, nil
	default:
		return 0, ErrUnknownChartType
	}
}

// Subgroup is one rational sample of consecutive measurements. See the
// package documentation for the per-family encoding of Values.
type Subgroup struct {
	Values []float64
}

// SecondaryLimits holds the paired dispersion chart (R, S or MR) for the
// two-chart families.
type SecondaryLimits struct {
	Center float64
	Upper  float64
	Lower  float64
}

// LimitPair is one per-subgroup control limit pair, used by variable-n
// P charts where the ±3σ width depends on each subgroup's own sample size.
type LimitPair struct {
	Upper float64
	Lower float64
}

// LimitsMode reports how the scalar Upper/Lower pair was derived, so callers
// never have to guess which variable-n policy produced the limits.
type LimitsMode int

const (
	// LimitsUniform: all subgroups share one size; the scalar pair is exact.
	LimitsUniform LimitsMode = iota
	// LimitsAverageN: sizes vary; the scalar pair uses the average sample size.
	LimitsAverageN
	// LimitsPerPoint: sizes vary; PerPoint holds the exact pair per subgroup
	// and the scalar pair (average-n) is a plotting/zoning approximation.
	LimitsPerPoint
)

// Limits is the full limit set for one chart family over one data window.
//
// Invariants: Lower <= Center <= Upper; dispersion, count and proportion
// lower limits are clamped at 0; the P-chart upper limit is clamped at 1.
type Limits struct {
	Chart  ChartType
	Center float64
	Upper  float64
	Lower  float64

	// Secondary is the paired R/S/MR chart; nil for P and C charts.
	Secondary *SecondaryLimits

	// PerPoint holds one exact limit pair per subgroup. Populated only when
	// Mode == LimitsPerPoint; len(PerPoint) equals the number of subgroups.
	PerPoint []LimitPair

	Mode LimitsMode
}

// PChartMode selects the variable-n P-chart limit policy.
type PChartMode int

const (
	// PChartPerPoint computes exact per-subgroup limits when sizes vary.
	// Correct statistical practice; the default.
	PChartPerPoint PChartMode = iota
	// PChartAverageN collapses varying sizes into one limit pair from the
	// average sample size.
	PChartAverageN
)

// Options configures Calculate.
type Options struct {
	// PChart selects the variable-n P-chart limit policy. Ignored by the
	// other chart families and by uniform-size P charts.
	PChart PChartMode
}

// DefaultOptions returns the canonical options: exact per-point limits for
// variable-n P charts.
func DefaultOptions() Options {
	return Options{PChart: PChartPerPoint}
}
