package weco

import "errors"

// ErrUnknownSensitivity is returned by ParseSensitivity for an unrecognized
// level name.
var ErrUnknownSensitivity = errors.New("weco: unknown sensitivity level")

// Rule identifies one of the eight Western Electric rules by its standard
// number.
type Rule int

const (
	// RuleBeyondLimits (1): a single point outside the 3σ control limits.
	RuleBeyondLimits Rule = 1
	// RuleRunOneSide (2): nine or more consecutive points strictly on one
	// side of the center line.
	RuleRunOneSide Rule = 2
	// RuleTrend (3): six or more consecutive points monotonically increasing
	// or decreasing; ties break the run.
	RuleTrend Rule = 3
	// RuleAlternating (4): fourteen or more consecutive points alternating
	// up and down.
	RuleAlternating Rule = 4
	// RuleTwoOfThreeZoneA (5): two of any three consecutive points in Zone A
	// or beyond, on the same side.
	RuleTwoOfThreeZoneA Rule = 5
	// RuleFourOfFiveZoneB (6): four of any five consecutive points in Zone B
	// or beyond, on the same side.
	RuleFourOfFiveZoneB Rule = 6
	// RuleStratification (7): fifteen or more consecutive points within
	// Zone C - unusually low variation.
	RuleStratification Rule = 7
	// RuleMixture (8): eight or more consecutive points outside Zone C on
	// either side.
	RuleMixture Rule = 8
)

// Severity of a rule violation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Severity returns the fixed severity class of the rule: rule 1 is Critical,
// rules 6 and 7 are Info, the rest are Warning.
func (r Rule) Severity() Severity {
	switch r {
	case RuleBeyondLimits:
		return SeverityCritical
	case RuleFourOfFiveZoneB, RuleStratification:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// RuleSet is a bitset over the eight rules.
type RuleSet uint16

// NewRuleSet builds a set from the given rules; ids outside 1..8 are ignored.
func NewRuleSet(rules ...Rule) RuleSet {
	var s RuleSet
	for _, r := range rules {
		if r >= RuleBeyondLimits && r <= RuleMixture {
			s |= 1 << uint(r)
		}
	}
	return s
}

// AllRules returns the set containing every rule.
func AllRules() RuleSet {
	return NewRuleSet(
		RuleBeyondLimits, RuleRunOneSide, RuleTrend, RuleAlternating,
		RuleTwoOfThreeZoneA, RuleFourOfFiveZoneB, RuleStratification, RuleMixture,
	)
}

// Has reports whether r is in the set.
func (s RuleSet) Has(r Rule) bool {
	return s&(1<<uint(r)) != 0
}

// Rules returns the members in ascending rule order.
func (s RuleSet) Rules() []Rule {
	out := make([]Rule, 0, 8)
	for r := RuleBeyondLimits; r <= RuleMixture; r++ {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sensitivity scales the zone boundaries used by the pattern rules (5-8).
// The zero value is SensitivityNormal.
type Sensitivity int

const (
	// SensitivityNormal uses the textbook 1σ/2σ zone boundaries.
	SensitivityNormal Sensitivity = iota
	// SensitivityStrict shrinks the boundaries by ×0.9 for earlier alarms.
	SensitivityStrict
	// SensitivityRelaxed widens the boundaries by ×1.15 for fewer false alarms.
	SensitivityRelaxed
)

// String returns the lowercase level name, also accepted by ParseSensitivity.
func (s Sensitivity) String() string {
	switch s {
	case SensitivityStrict:
		return "strict"
	case SensitivityRelaxed:
		return "relaxed"
	case SensitivityNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// ParseSensitivity maps "strict", "normal" or "relaxed" to its level.
//
// Errors: ErrUnknownSensitivity for any other string.
func ParseSensitivity(s string) (Sensitivity, error) {
	switch s {
	case "strict":
		return SensitivityStrict, nil
	case "normal":
		return SensitivityNormal, nil
	case "relaxed":
		return SensitivityRelaxed, nil
	default:
		return 0, ErrUnknownSensitivity
	}
}

// zoneMultiplier returns the boundary scale for the level. Unrecognized
// numeric values fall back to the textbook boundaries.
func (s Sensitivity) zoneMultiplier() float64 {
	switch s {
	case SensitivityStrict:
		return 0.9
	case SensitivityRelaxed:
		return 1.15
	default:
		return 1.0
	}
}

// Violation is one immutable finding. Points lists every index that
// contributed to the pattern, in ascending order - for a run rule that is the
// whole run, not just the triggering point.
type Violation struct {
	Rule        Rule
	Severity    Severity
	Points      []int
	Description string
}
