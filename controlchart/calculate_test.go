package controlchart_test

import (
	"math"
	"testing"

	"github.com/machshop/spc/controlchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sg is a test shorthand for building a subgroup.
func sg(values ...float64) controlchart.Subgroup {
	return controlchart.Subgroup{Values: values}
}

// singles wraps individual values into single-element subgroups.
func singles(values ...float64) []controlchart.Subgroup {
	out := make([]controlchart.Subgroup, len(values))
	for i, v := range values {
		out[i] = sg(v)
	}
	return out
}

// TestCalculate_XBarR verifies the textbook n=5 example: grand mean 11,
// R̄ = 10/3, limits symmetric around the center line.
func TestCalculate_XBarR(t *testing.T) {
	subgroups := []controlchart.Subgroup{
		sg(10, 12, 11, 9, 13),
		sg(11, 10, 12, 10, 12),
		sg(9, 11, 10, 13, 12),
	}

	limits, err := controlchart.Calculate(controlchart.XBarR, subgroups, controlchart.DefaultOptions())
	require.NoError(t, err)

	rbar := 10.0 / 3
	assert.InDelta(t, 11.0, limits.Center, 1e-12, "grand mean")
	assert.InDelta(t, 11.0+0.577*rbar, limits.Upper, 1e-12, "UCL = x̄̄ + A2·R̄")
	assert.InDelta(t, 11.0-0.577*rbar, limits.Lower, 1e-12, "LCL = x̄̄ − A2·R̄")
	assert.InDelta(t, limits.Upper-limits.Center, limits.Center-limits.Lower, 1e-12,
		"A2·R̄ width is symmetric around CL")

	require.NotNil(t, limits.Secondary, "X-bar/R carries an R chart")
	assert.InDelta(t, rbar, limits.Secondary.Center, 1e-12)
	assert.InDelta(t, 2.114*rbar, limits.Secondary.Upper, 1e-12, "UCL_R = D4·R̄")
	assert.Zero(t, limits.Secondary.Lower, "D3 = 0 at n=5")
}

// TestCalculate_XBarS verifies the S-chart family against hand-computed
// subgroup standard deviations.
func TestCalculate_XBarS(t *testing.T) {
	subgroups := []controlchart.Subgroup{
		sg(10, 12, 11, 9, 13),
		sg(11, 10, 12, 10, 12),
		sg(9, 11, 10, 13, 12),
	}

	limits, err := controlchart.Calculate(controlchart.XBarS, subgroups, controlchart.DefaultOptions())
	require.NoError(t, err)

	// Subgroup stddevs: √2.5, 1, √2.5.
	sbar := (math.Sqrt(2.5) + 1 + math.Sqrt(2.5)) / 3
	assert.InDelta(t, 11.0, limits.Center, 1e-12)
	assert.InDelta(t, 11.0+1.427*sbar, limits.Upper, 1e-12, "UCL = x̄̄ + A3·s̄")
	assert.InDelta(t, 11.0-1.427*sbar, limits.Lower, 1e-12, "LCL = x̄̄ − A3·s̄")

	require.NotNil(t, limits.Secondary, "X-bar/S carries an S chart")
	assert.InDelta(t, sbar, limits.Secondary.Center, 1e-12)
	assert.InDelta(t, 2.089*sbar, limits.Secondary.Upper, 1e-12, "UCL_S = B4·s̄")
	assert.Zero(t, limits.Secondary.Lower, "B3 = 0 at n=5")
}

// TestCalculate_IndividualsMovingRange verifies the 2.66·M̄R width and the
// MR chart bounds.
func TestCalculate_IndividualsMovingRange(t *testing.T) {
	subgroups := singles(10, 11, 9, 10, 12, 10)

	limits, err := controlchart.Calculate(controlchart.IndividualsMovingRange, subgroups, controlchart.DefaultOptions())
	require.NoError(t, err)

	mean := 62.0 / 6
	mrbar := 1.6 // moving ranges 1,2,1,2,2
	width := 3 / 1.128 * mrbar
	assert.InDelta(t, mean, limits.Center, 1e-12)
	assert.InDelta(t, mean+width, limits.Upper, 1e-12)
	assert.InDelta(t, mean-width, limits.Lower, 1e-12)

	require.NotNil(t, limits.Secondary, "I-MR carries an MR chart")
	assert.InDelta(t, mrbar, limits.Secondary.Center, 1e-12)
	assert.InDelta(t, 3.267*mrbar, limits.Secondary.Upper, 1e-12)
	assert.Zero(t, limits.Secondary.Lower, "MR lower limit is always 0")
}

// TestCalculate_PChart_Uniform verifies a uniform-size P chart: one scalar
// pair, LCL clamped at 0, no per-point limits.
func TestCalculate_PChart_Uniform(t *testing.T) {
	subgroups := []controlchart.Subgroup{
		sg(1, 0, 0, 0, 0, 0, 0, 0, 0, 0), // 1 defective of 10
		sg(1, 1, 0, 0, 0, 0, 0, 0, 0, 0), // 2 of 10
		sg(0, 0, 0, 0, 0, 0, 0, 0, 0, 0), // 0 of 10
	}

	limits, err := controlchart.Calculate(controlchart.PChart, subgroups, controlchart.DefaultOptions())
	require.NoError(t, err)

	pbar := 0.1
	width := 3 * math.Sqrt(pbar*(1-pbar)/10)
	assert.InDelta(t, pbar, limits.Center, 1e-12)
	assert.InDelta(t, pbar+width, limits.Upper, 1e-12)
	assert.Zero(t, limits.Lower, "negative proportion limit clamps to 0")
	assert.Equal(t, controlchart.LimitsUniform, limits.Mode)
	assert.Nil(t, limits.PerPoint)
	assert.Nil(t, limits.Secondary, "attribute charts have no paired chart")
}

// TestCalculate_PChart_VariableN covers both variable-n policies: exact
// per-point limits by default, one average-n pair on request.
func TestCalculate_PChart_VariableN(t *testing.T) {
	subgroups := []controlchart.Subgroup{
		sg(1, 0, 0, 0, 0, 0, 0, 0, 0, 0),                               // 1 of 10
		sg(1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0), // 2 of 20
	}
	pbar := 0.1

	t.Run("per-point default", func(t *testing.T) {
		limits, err := controlchart.Calculate(controlchart.PChart, subgroups, controlchart.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, controlchart.LimitsPerPoint, limits.Mode)
		require.Len(t, limits.PerPoint, 2, "one exact pair per subgroup")

		for i, n := range []float64{10, 20} {
			width := 3 * math.Sqrt(pbar*(1-pbar)/n)
			assert.InDelta(t, pbar+width, limits.PerPoint[i].Upper, 1e-12)
			assert.InDelta(t, math.Max(0, pbar-width), limits.PerPoint[i].Lower, 1e-12)
		}

		// Scalar pair still carries the average-n approximation for zoning.
		avgWidth := 3 * math.Sqrt(pbar*(1-pbar)/15)
		assert.InDelta(t, pbar+avgWidth, limits.Upper, 1e-12)
	})

	t.Run("average-n on request", func(t *testing.T) {
		limits, err := controlchart.Calculate(controlchart.PChart, subgroups,
			controlchart.Options{PChart: controlchart.PChartAverageN})
		require.NoError(t, err)
		assert.Equal(t, controlchart.LimitsAverageN, limits.Mode)
		assert.Nil(t, limits.PerPoint)
	})
}

// TestCalculate_CChart verifies c̄ ± 3√c̄ with the 0 clamp.
func TestCalculate_CChart(t *testing.T) {
	subgroups := singles(2, 3, 1, 4, 0)

	limits, err := controlchart.Calculate(controlchart.CChart, subgroups, controlchart.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, limits.Center, 1e-12)
	assert.InDelta(t, 2+3*math.Sqrt(2), limits.Upper, 1e-12)
	assert.Zero(t, limits.Lower, "count limits clamp at 0")
	assert.Nil(t, limits.Secondary)
}

// TestCalculate_InvariantHolds asserts LCL <= CL <= UCL across families.
func TestCalculate_InvariantHolds(t *testing.T) {
	cases := map[string]struct {
		chart     controlchart.ChartType
		subgroups []controlchart.Subgroup
	}{
		"xbar_r": {controlchart.XBarR, []controlchart.Subgroup{sg(1, 2, 3), sg(2, 3, 4), sg(0, 5, 1)}},
		"xbar_s": {controlchart.XBarS, []controlchart.Subgroup{sg(1, 2, 3), sg(2, 3, 4), sg(0, 5, 1)}},
		"i_mr":   {controlchart.IndividualsMovingRange, singles(5, 7, 6, 9, 4)},
		"p":      {controlchart.PChart, []controlchart.Subgroup{sg(1, 0, 0, 0), sg(0, 0, 1, 1)}},
		"c":      {controlchart.CChart, singles(1, 2, 0, 1)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			limits, err := controlchart.Calculate(tc.chart, tc.subgroups, controlchart.DefaultOptions())
			require.NoError(t, err)
			assert.LessOrEqual(t, limits.Lower, limits.Center)
			assert.LessOrEqual(t, limits.Center, limits.Upper)
			if limits.Secondary != nil {
				assert.GreaterOrEqual(t, limits.Secondary.Lower, 0.0, "dispersion LCL never negative")
				assert.LessOrEqual(t, limits.Secondary.Center, limits.Secondary.Upper)
			}
		})
	}
}

// TestCalculate_ValidationSentinels exercises every input-shape sentinel.
func TestCalculate_ValidationSentinels(t *testing.T) {
	big := make([]float64, 26)

	cases := map[string]struct {
		chart     controlchart.ChartType
		subgroups []controlchart.Subgroup
		want      error
	}{
		"one subgroup":        {controlchart.XBarR, []controlchart.Subgroup{sg(1, 2, 3)}, controlchart.ErrInsufficientData},
		"empty subgroup":      {controlchart.XBarR, []controlchart.Subgroup{sg(1, 2), sg()}, controlchart.ErrInvalidArgument},
		"mismatched sizes":    {controlchart.XBarR, []controlchart.Subgroup{sg(1, 2, 3), sg(1, 2)}, controlchart.ErrInconsistentSubgroupSize},
		"size below range":    {controlchart.XBarS, []controlchart.Subgroup{sg(1), sg(2)}, controlchart.ErrUnsupportedSubgroupSize},
		"size above range":    {controlchart.XBarR, []controlchart.Subgroup{{Values: big}, {Values: big}}, controlchart.ErrUnsupportedSubgroupSize},
		"multi-value i-mr":    {controlchart.IndividualsMovingRange, []controlchart.Subgroup{sg(1), sg(2, 3)}, controlchart.ErrInvalidArgument},
		"negative c count":    {controlchart.CChart, singles(2, -1), controlchart.ErrInvalidArgument},
		"multi-value c chart": {controlchart.CChart, []controlchart.Subgroup{sg(1), sg(2, 3)}, controlchart.ErrInvalidArgument},
		"unknown chart":       {controlchart.ChartType(99), singles(1, 2), controlchart.ErrUnknownChartType},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := controlchart.Calculate(tc.chart, tc.subgroups, controlchart.DefaultOptions())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSeries_PlotStatisticPerFamily verifies the subgroup → plotted-point
// reduction for every family, preserving order.
func TestSeries_PlotStatisticPerFamily(t *testing.T) {
	xbar := []controlchart.Subgroup{sg(10, 12, 11, 9, 13), sg(11, 10, 12, 10, 12), sg(9, 11, 10, 13, 12)}
	series, err := controlchart.Series(controlchart.XBarR, xbar)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 11, 11}, series, "subgroup means")

	series, err = controlchart.Series(controlchart.IndividualsMovingRange, singles(5, 7, 6))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 6}, series, "individuals pass through")

	series, err = controlchart.Series(controlchart.PChart,
		[]controlchart.Subgroup{sg(1, 0, 0, 0), sg(1, 1, 0, 0)})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5}, series, "defective proportions")

	series, err = controlchart.Series(controlchart.CChart, singles(3, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 2}, series, "defect counts pass through")
}

// TestEstimateWithinSigma verifies the chart-family short-term estimates.
func TestEstimateWithinSigma(t *testing.T) {
	xbar := []controlchart.Subgroup{sg(10, 12, 11, 9, 13), sg(11, 10, 12, 10, 12), sg(9, 11, 10, 13, 12)}

	got, err := controlchart.EstimateWithinSigma(controlchart.XBarR, xbar)
	require.NoError(t, err)
	assert.InDelta(t, (10.0/3)/2.326, got, 1e-12, "R̄/d₂ at n=5")

	got, err = controlchart.EstimateWithinSigma(controlchart.XBarS, xbar)
	require.NoError(t, err)
	sbar := (math.Sqrt(2.5) + 1 + math.Sqrt(2.5)) / 3
	assert.InDelta(t, sbar/0.9400, got, 1e-12, "S̄/c₄ at n=5")

	got, err = controlchart.EstimateWithinSigma(controlchart.IndividualsMovingRange, singles(10, 11, 9, 10, 12, 10))
	require.NoError(t, err)
	assert.InDelta(t, 1.6/1.128, got, 1e-12, "M̄R/d₂(2)")

	_, err = controlchart.EstimateWithinSigma(controlchart.PChart,
		[]controlchart.Subgroup{sg(1, 0), sg(0, 0)})
	assert.ErrorIs(t, err, controlchart.ErrNoWithinSigma)
}

// TestParseChartType round-trips every chart family and rejects garbage.
func TestParseChartType(t *testing.T) {
	for _, chart := range []controlchart.ChartType{
		controlchart.XBarR, controlchart.XBarS, controlchart.IndividualsMovingRange,
		controlchart.PChart, controlchart.CChart,
	} {
		parsed, err := controlchart.ParseChartType(chart.String())
		require.NoError(t, err)
		assert.Equal(t, chart, parsed)
	}

	_, err := controlchart.ParseChartType("np")
	assert.ErrorIs(t, err, controlchart.ErrUnknownChartType)
}
