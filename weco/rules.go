// Package weco - the eight rule checks, one scan per rule.
package weco

import (
	"fmt"
	"math"

	"github.com/machshop/spc/controlchart"
)

// Run-length and window thresholds, fixed at the textbook values; sensitivity
// scales zone boundaries only.
const (
	runOneSideLength     = 9
	trendLength          = 6
	alternatingLength    = 14
	zoneAWindow          = 3
	zoneAMinBeyond       = 2
	zoneBWindow          = 5
	zoneBMinBeyond       = 4
	stratificationLength = 15
	mixtureLength        = 8
)

// checkBeyondLimits flags every point outside the control limits (rule 1).
// When per-point pairs are present and match the series length, each point is
// tested against its own pair; otherwise the scalar pair applies to all.
func checkBeyondLimits(series []float64, limits controlchart.Limits) []Violation {
	perPoint := len(limits.PerPoint) == len(series)

	var out []Violation
	for i, v := range series {
		upper, lower := limits.Upper, limits.Lower
		if perPoint {
			upper, lower = limits.PerPoint[i].Upper, limits.PerPoint[i].Lower
		}
		if v > upper || v < lower {
			out = append(out, Violation{
				Rule:        RuleBeyondLimits,
				Severity:    RuleBeyondLimits.Severity(),
				Points:      []int{i},
				Description: fmt.Sprintf("point %d outside the 3-sigma control limits", i),
			})
		}
	}
	return out
}

// checkRunOneSide flags maximal runs of >= 9 points strictly on one side of
// the center line (rule 2). A point exactly on the center breaks the run.
func checkRunOneSide(series []float64, center float64) []Violation {
	var out []Violation
	emit := func(start, end int, side string) {
		out = append(out, Violation{
			Rule:        RuleRunOneSide,
			Severity:    RuleRunOneSide.Severity(),
			Points:      indexRange(start, end),
			Description: fmt.Sprintf("%d consecutive points %s the center line", end-start+1, side),
		})
	}
	for _, side := range []struct {
		name string
		hit  func(float64) bool
	}{
		{"above", func(v float64) bool { return v > center }},
		{"below", func(v float64) bool { return v < center }},
	} {
		forEachRun(series, side.hit, runOneSideLength, func(start, end int) {
			emit(start, end, side.name)
		})
	}
	return out
}

// checkTrend flags maximal strictly monotone runs of >= 6 points (rule 3).
// Equal consecutive values break the run.
func checkTrend(series []float64) []Violation {
	var out []Violation
	emit := func(start, end int, dir string) {
		if end-start+1 < trendLength {
			return
		}
		out = append(out, Violation{
			Rule:        RuleTrend,
			Severity:    RuleTrend.Severity(),
			Points:      indexRange(start, end),
			Description: fmt.Sprintf("%d consecutive points steadily %s", end-start+1, dir),
		})
	}

	// Scan step signs; a run of k same-sign steps spans k+1 points.
	start, dir := 0, 0
	for i := 1; i < len(series); i++ {
		d := stepSign(series[i-1], series[i])
		if d == dir && d != 0 {
			continue
		}
		if dir != 0 {
			emit(start, i-1, trendName(dir))
		}
		start, dir = i-1, d
	}
	if dir != 0 {
		emit(start, len(series)-1, trendName(dir))
	}
	return out
}

// checkAlternating flags maximal runs of >= 14 points whose successive steps
// strictly alternate in direction (rule 4). A tie breaks the run.
func checkAlternating(series []float64) []Violation {
	var out []Violation
	emit := func(start, end int) {
		if end-start+1 < alternatingLength {
			return
		}
		out = append(out, Violation{
			Rule:        RuleAlternating,
			Severity:    RuleAlternating.Severity(),
			Points:      indexRange(start, end),
			Description: fmt.Sprintf("%d consecutive points alternating up and down", end-start+1),
		})
	}

	start, prev := 0, 0
	for i := 1; i < len(series); i++ {
		d := stepSign(series[i-1], series[i])
		if d != 0 && prev != 0 && d == -prev {
			prev = d
			continue
		}
		if prev != 0 {
			emit(start, i-1)
		}
		start, prev = i-1, d
	}
	if prev != 0 {
		emit(start, len(series)-1)
	}
	return out
}

// zonePattern parameterizes the two sliding-window rules.
type zonePattern struct {
	rule      Rule
	window    int
	minBeyond int
	boundary  func(zones) float64
	zoneName  string
}

var (
	zoneAPattern = zonePattern{RuleTwoOfThreeZoneA, zoneAWindow, zoneAMinBeyond, func(z zones) float64 { return z.zoneA }, "zone A"}
	zoneBPattern = zonePattern{RuleFourOfFiveZoneB, zoneBWindow, zoneBMinBeyond, func(z zones) float64 { return z.zoneB }, "zone B"}
)

// checkZoneWindow slides a window over the series and flags every position
// where at least minBeyond points sit beyond the zone boundary on the same
// side (rules 5 and 6). Points lists the qualifying indices in the window.
func checkZoneWindow(series []float64, z zones, p zonePattern) []Violation {
	if len(series) < p.window {
		return nil
	}
	boundary := p.boundary(z)

	var out []Violation
	for start := 0; start+p.window <= len(series); start++ {
		var above, below []int
		for i := start; i < start+p.window; i++ {
			switch {
			case series[i] >= z.center+boundary:
				above = append(above, i)
			case series[i] <= z.center-boundary:
				below = append(below, i)
			}
		}
		for _, side := range []struct {
			name   string
			points []int
		}{{"above", above}, {"below", below}} {
			if len(side.points) >= p.minBeyond {
				out = append(out, Violation{
					Rule:     p.rule,
					Severity: p.rule.Severity(),
					Points:   side.points,
					Description: fmt.Sprintf("%d of %d consecutive points in %s or beyond, %s center",
						len(side.points), p.window, p.zoneName, side.name),
				})
			}
		}
	}
	return out
}

// checkStratification flags maximal runs of >= 15 points hugging the center
// line inside Zone C (rule 7).
func checkStratification(series []float64, z zones) []Violation {
	var out []Violation
	forEachRun(series, func(v float64) bool {
		return math.Abs(v-z.center) <= z.zoneC
	}, stratificationLength, func(start, end int) {
		out = append(out, Violation{
			Rule:        RuleStratification,
			Severity:    RuleStratification.Severity(),
			Points:      indexRange(start, end),
			Description: fmt.Sprintf("%d consecutive points within zone C (stratification)", end-start+1),
		})
	})
	return out
}

// checkMixture flags maximal runs of >= 8 points that all avoid Zone C on
// either side (rule 8).
func checkMixture(series []float64, z zones) []Violation {
	var out []Violation
	forEachRun(series, func(v float64) bool {
		return math.Abs(v-z.center) > z.mixture
	}, mixtureLength, func(start, end int) {
		out = append(out, Violation{
			Rule:        RuleMixture,
			Severity:    RuleMixture.Severity(),
			Points:      indexRange(start, end),
			Description: fmt.Sprintf("%d consecutive points outside zone C (mixture)", end-start+1),
		})
	})
	return out
}

// forEachRun invokes emit for every maximal run of consecutive points
// satisfying hit whose length is at least minLen.
func forEachRun(series []float64, hit func(float64) bool, minLen int, emit func(start, end int)) {
	start := -1
	for i, v := range series {
		if hit(v) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minLen {
			emit(start, i-1)
		}
		start = -1
	}
	if start >= 0 && len(series)-start >= minLen {
		emit(start, len(series)-1)
	}
}

// stepSign returns +1 for a strict rise, −1 for a strict fall, 0 for a tie.
func stepSign(prev, cur float64) int {
	switch {
	case cur > prev:
		return 1
	case cur < prev:
		return -1
	default:
		return 0
	}
}

func trendName(dir int) string {
	if dir > 0 {
		return "increasing"
	}
	return "decreasing"
}

func indexRange(start, end int) []int {
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
