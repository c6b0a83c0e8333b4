package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/machshop/spc"
	"github.com/machshop/spc/controlchart"
	"github.com/machshop/spc/weco"
)

var (
	// ErrMissingChart indicates the document has no chart field.
	ErrMissingChart = errors.New("config: chart is required")
	// ErrUnknownRule indicates a rule id outside 1..8.
	ErrUnknownRule = errors.New("config: rule ids must be between 1 and 8")
	// ErrUnknownPChartMode indicates an unrecognized p_chart_limits value.
	ErrUnknownPChartMode = errors.New("config: p_chart_limits must be per_point or average_n")
)

// Parameter is one monitored characteristic's decoded evaluation settings,
// ready to hand to the facade.
type Parameter struct {
	Chart   controlchart.ChartType
	Options spc.Options
}

// document mirrors the YAML shape before validation.
type document struct {
	Chart        string   `yaml:"chart"`
	Sensitivity  string   `yaml:"sensitivity"`
	Rules        []int    `yaml:"rules"`
	USL          *float64 `yaml:"usl"`
	LSL          *float64 `yaml:"lsl"`
	Target       *float64 `yaml:"target"`
	PChartLimits string   `yaml:"p_chart_limits"`
}

// Parse decodes and validates one evaluation-config document.
//
// Errors: ErrMissingChart, ErrUnknownRule, ErrUnknownPChartMode,
// controlchart.ErrUnknownChartType, weco.ErrUnknownSensitivity, and yaml
// decode errors for malformed or unknown fields.
func Parse(data []byte) (Parameter, error) {
	return Load(bytes.NewReader(data))
}

// Load is Parse over a reader.
func Load(r io.Reader) (Parameter, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return Parameter{}, fmt.Errorf("config: decode: %w", err)
	}
	return doc.parameter()
}

func (d document) parameter() (Parameter, error) {
	if d.Chart == "" {
		return Parameter{}, ErrMissingChart
	}
	chart, err := controlchart.ParseChartType(d.Chart)
	if err != nil {
		return Parameter{}, err
	}

	opts := spc.DefaultOptions()
	opts.USL, opts.LSL, opts.Target = d.USL, d.LSL, d.Target

	if d.Sensitivity != "" {
		if opts.Sensitivity, err = weco.ParseSensitivity(d.Sensitivity); err != nil {
			return Parameter{}, err
		}
	}

	if d.Rules != nil {
		rules := make([]weco.Rule, 0, len(d.Rules))
		for _, id := range d.Rules {
			if id < int(weco.RuleBeyondLimits) || id > int(weco.RuleMixture) {
				return Parameter{}, ErrUnknownRule
			}
			rules = append(rules, weco.Rule(id))
		}
		opts.Rules = weco.NewRuleSet(rules...)
	}

	switch d.PChartLimits {
	case "", "per_point":
		opts.PChart = controlchart.PChartPerPoint
	case "average_n":
		opts.PChart = controlchart.PChartAverageN
	default:
		return Parameter{}, ErrUnknownPChartMode
	}

	return Parameter{Chart: chart, Options: opts}, nil
}
