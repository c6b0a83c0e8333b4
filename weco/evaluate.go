// Package weco - rule engine entry point and zone geometry.
package weco

import (
	"sort"

	"github.com/machshop/spc/controlchart"
)

// Evaluate scans series against limits with every rule present in rules and
// returns the findings ordered by first contributing point index, then rule id.
//
// Contracts:
//   - series is the plotted chart statistic in original time order; the limit
//     set must belong to the same window (controlchart.Series pairs with
//     controlchart.Calculate).
//   - An empty series, an empty rule set, or a series shorter than a rule's
//     run length yields no findings for that rule - never an error.
//   - When limits carry per-point pairs for a variable-n P chart and their
//     count matches len(series), rule 1 tests each point against its own pair.
//   - Degenerate limits (UCL == CL, σ = 0) disable the zone rules (5-8);
//     rules 1-4 do not depend on σ and still run.
//
// Complexity: O(n) per run rule, O(n·w) for the window rules (w ≤ 5).
func Evaluate(series []float64, limits controlchart.Limits, rules RuleSet, sensitivity Sensitivity) []Violation {
	if len(series) == 0 || rules == 0 {
		return nil
	}

	var out []Violation
	if rules.Has(RuleBeyondLimits) {
		out = append(out, checkBeyondLimits(series, limits)...)
	}
	if rules.Has(RuleRunOneSide) {
		out = append(out, checkRunOneSide(series, limits.Center)...)
	}
	if rules.Has(RuleTrend) {
		out = append(out, checkTrend(series)...)
	}
	if rules.Has(RuleAlternating) {
		out = append(out, checkAlternating(series)...)
	}

	if z, ok := newZones(limits, sensitivity); ok {
		if rules.Has(RuleTwoOfThreeZoneA) {
			out = append(out, checkZoneWindow(series, z, zoneAPattern)...)
		}
		if rules.Has(RuleFourOfFiveZoneB) {
			out = append(out, checkZoneWindow(series, z, zoneBPattern)...)
		}
		if rules.Has(RuleStratification) {
			out = append(out, checkStratification(series, z)...)
		}
		if rules.Has(RuleMixture) {
			out = append(out, checkMixture(series, z)...)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points[0] != out[j].Points[0] {
			return out[i].Points[0] < out[j].Points[0]
		}
		return out[i].Rule < out[j].Rule
	})
	return out
}

// zones holds the sensitivity-scaled boundaries the pattern rules test
// against, all expressed as absolute distance from the center line.
type zones struct {
	center float64
	// zoneA and zoneB are the 2σ and 1σ boundaries scaled by the sensitivity
	// multiplier; a point beyond them is "in Zone A (B) or beyond".
	zoneA float64
	zoneB float64
	// zoneC is the inner stratification boundary, scaled by the inverse
	// multiplier so that Strict widens the band it tests (see package doc).
	zoneC float64
	// mixture is the "outside Zone C" boundary for rule 8, scaled directly.
	mixture float64
}

// newZones derives the boundaries from the limit set. ok is false when the
// geometry is degenerate (UCL not above CL), which disables the zone rules.
func newZones(limits controlchart.Limits, sensitivity Sensitivity) (zones, bool) {
	sigma := (limits.Upper - limits.Center) / 3
	if sigma <= 0 {
		return zones{}, false
	}
	m := sensitivity.zoneMultiplier()
	return zones{
		center:  limits.Center,
		zoneA:   2 * sigma * m,
		zoneB:   sigma * m,
		zoneC:   sigma / m,
		mixture: sigma * m,
	}, true
}
