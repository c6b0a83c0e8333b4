package controlchart

// ChartConstants is one row of the standard SPC constant table for a given
// subgroup size n.
//
// Field naming follows the SPC literature: A2/A3 scale the mean chart width
// from R̄/S̄, D3/D4 bound the R chart, B3/B4 bound the S chart, D2 is the
// mean-range constant d₂ (sigma = R̄/d₂) and C4 is the c₄ bias correction
// (sigma = S̄/c₄).
type ChartConstants struct {
	A2 float64
	A3 float64
	B3 float64
	B4 float64
	D3 float64
	D4 float64
	D2 float64
	C4 float64
}

// MinSubgroupSize and MaxSubgroupSize bound the tabulated constant range.
const (
	MinSubgroupSize = 2
	MaxSubgroupSize = 25
)

// d2ForMovingRange is d₂ at n=2, the window size of a moving range.
const d2ForMovingRange = 1.128

// constantTable holds the published values for n = 2..25. These are
// empirically tabulated, not derived from a closed-form expression, so a
// fixed lookup is the whole implementation.
var constantTable = map[int]ChartConstants{
	2:  {A2: 1.880, A3: 2.659, B3: 0.000, B4: 3.267, D3: 0.000, D4: 3.267, D2: 1.128, C4: 0.7979},
	3:  {A2: 1.023, A3: 1.954, B3: 0.000, B4: 2.568, D3: 0.000, D4: 2.574, D2: 1.693, C4: 0.8862},
	4:  {A2: 0.729, A3: 1.628, B3: 0.000, B4: 2.266, D3: 0.000, D4: 2.282, D2: 2.059, C4: 0.9213},
	5:  {A2: 0.577, A3: 1.427, B3: 0.000, B4: 2.089, D3: 0.000, D4: 2.114, D2: 2.326, C4: 0.9400},
	6:  {A2: 0.483, A3: 1.287, B3: 0.030, B4: 1.970, D3: 0.000, D4: 2.004, D2: 2.534, C4: 0.9515},
	7:  {A2: 0.419, A3: 1.182, B3: 0.118, B4: 1.882, D3: 0.076, D4: 1.924, D2: 2.704, C4: 0.9594},
	8:  {A2: 0.373, A3: 1.099, B3: 0.185, B4: 1.815, D3: 0.136, D4: 1.864, D2: 2.847, C4: 0.9650},
	9:  {A2: 0.337, A3: 1.032, B3: 0.239, B4: 1.761, D3: 0.184, D4: 1.816, D2: 2.970, C4: 0.9693},
	10: {A2: 0.308, A3: 0.975, B3: 0.284, B4: 1.716, D3: 0.223, D4: 1.777, D2: 3.078, C4: 0.9727},
	11: {A2: 0.285, A3: 0.927, B3: 0.321, B4: 1.679, D3: 0.256, D4: 1.744, D2: 3.173, C4: 0.9754},
	12: {A2: 0.266, A3: 0.886, B3: 0.354, B4: 1.646, D3: 0.283, D4: 1.717, D2: 3.258, C4: 0.9776},
	13: {A2: 0.249, A3: 0.850, B3: 0.382, B4: 1.618, D3: 0.307, D4: 1.693, D2: 3.336, C4: 0.9794},
	14: {A2: 0.235, A3: 0.817, B3: 0.406, B4: 1.594, D3: 0.328, D4: 1.672, D2: 3.407, C4: 0.9810},
	15: {A2: 0.223, A3: 0.789, B3: 0.428, B4: 1.572, D3: 0.347, D4: 1.653, D2: 3.472, C4: 0.9823},
	16: {A2: 0.212, A3: 0.763, B3: 0.448, B4: 1.552, D3: 0.363, D4: 1.637, D2: 3.532, C4: 0.9835},
	17: {A2: 0.203, A3: 0.739, B3: 0.466, B4: 1.534, D3: 0.378, D4: 1.622, D2: 3.588, C4: 0.9845},
	18: {A2: 0.194, A3: 0.718, B3: 0.482, B4: 1.518, D3: 0.391, D4: 1.608, D2: 3.640, C4: 0.9854},
	19: {A2: 0.187, A3: 0.698, B3: 0.497, B4: 1.503, D3: 0.403, D4: 1.597, D2: 3.689, C4: 0.9862},
	20: {A2: 0.180, A3: 0.680, B3: 0.510, B4: 1.490, D3: 0.415, D4: 1.585, D2: 3.735, C4: 0.9869},
	21: {A2: 0.173, A3: 0.663, B3: 0.523, B4: 1.477, D3: 0.425, D4: 1.575, D2: 3.778, C4: 0.9876},
	22: {A2: 0.167, A3: 0.647, B3: 0.534, B4: 1.466, D3: 0.434, D4: 1.566, D2: 3.819, C4: 0.9882},
	23: {A2: 0.162, A3: 0.633, B3: 0.545, B4: 1.455, D3: 0.443, D4: 1.557, D2: 3.858, C4: 0.9887},
	24: {A2: 0.157, A3: 0.619, B3: 0.555, B4: 1.445, D3: 0.451, D4: 1.548, D2: 3.895, C4: 0.9892},
	25: {A2: 0.153, A3: 0.606, B3: 0.565, B4: 1.435, D3: 0.459, D4: 1.541, D2: 3.931, C4: 0.9896},
}

// Constants returns the tabulated constant row for subgroup size n.
//
// Errors: ErrUnsupportedSubgroupSize for n outside [MinSubgroupSize, MaxSubgroupSize].
func Constants(n int) (ChartConstants, error) {
	row, ok := constantTable[n]
	if !ok {
		return ChartConstants{}, ErrUnsupportedSubgroupSize
	}
	return row, nil
}
