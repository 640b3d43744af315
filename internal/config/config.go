// Package config loads run files: YAML documents that overlay the default
// city coefficients and describe the scenario and policy for one simulation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/wedgesim/internal/city"
	"github.com/talgya/wedgesim/internal/scenario"
	"github.com/talgya/wedgesim/internal/surge"
)

// RunFile is the parsed form of a YAML run file.
type RunFile struct {
	City city.Config `yaml:"city"`

	Run struct {
		Horizon      int     `yaml:"horizon"`
		DiscountRate float64 `yaml:"discount_rate"`
	} `yaml:"run"`

	Surge struct {
		// EAD mode: annual Gumbel distribution.
		Gumbel *struct {
			Loc   float64 `yaml:"loc"`
			Scale float64 `yaml:"scale"`
		} `yaml:"gumbel"`
		// EAD mode: degenerate single-height distribution.
		Fixed *float64 `yaml:"fixed"`
		// Event mode: synthetic realized sequence.
		Sequence *struct {
			Seed         int64   `yaml:"seed"`
			Loc          float64 `yaml:"loc"`
			Scale        float64 `yaml:"scale"`
			ModAmplitude float64 `yaml:"mod_amplitude"`
			ModPeriod    float64 `yaml:"mod_period"`
		} `yaml:"sequence"`
	} `yaml:"surge"`

	Policy struct {
		Static *Levers `yaml:"static"`
		Step   *struct {
			Before  Levers `yaml:"before"`
			After   Levers `yaml:"after"`
			AtEpoch int    `yaml:"at_epoch"`
		} `yaml:"step"`
	} `yaml:"policy"`
}

// Levers is the YAML form of a defense vector.
type Levers struct {
	W float64 `yaml:"w"`
	R float64 `yaml:"r"`
	P float64 `yaml:"p"`
	D float64 `yaml:"d"`
	B float64 `yaml:"b"`
}

// Vector converts to the engine's defense vector type.
func (l Levers) Vector() city.DefenseVector {
	return city.DefenseVector{W: l.W, R: l.R, P: l.P, D: l.D, B: l.B}
}

// Load reads a run file, overlaying its city section on the defaults.
func Load(path string) (*RunFile, error) {
	rf := &RunFile{City: city.DefaultConfig()}
	rf.Run.Horizon = 50
	rf.Run.DiscountRate = 0.03

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run file: %w", err)
	}
	if err := yaml.Unmarshal(data, rf); err != nil {
		return nil, fmt.Errorf("parse run file %s: %w", path, err)
	}
	if err := rf.City.Validate(); err != nil {
		return nil, err
	}
	return rf, nil
}

// Scenario assembles the scenario described by the run file.
func (rf *RunFile) Scenario() (scenario.Scenario, error) {
	sc := scenario.Scenario{
		Config:       rf.City,
		Horizon:      rf.Run.Horizon,
		DiscountRate: rf.Run.DiscountRate,
	}

	switch {
	case rf.Surge.Sequence != nil:
		s := rf.Surge.Sequence
		sc.Realized = surge.GenerateSequence(surge.SequenceConfig{
			Years:        rf.Run.Horizon,
			Seed:         s.Seed,
			Annual:       surge.Gumbel{Loc: s.Loc, Scale: s.Scale},
			ModAmplitude: s.ModAmplitude,
			ModPeriod:    s.ModPeriod,
		})
	case rf.Surge.Gumbel != nil:
		sc.Annual = surge.Gumbel{Loc: rf.Surge.Gumbel.Loc, Scale: rf.Surge.Gumbel.Scale}
	case rf.Surge.Fixed != nil:
		sc.Annual = surge.PointMass{Height: *rf.Surge.Fixed}
	default:
		return sc, fmt.Errorf("run file: surge section must set gumbel, fixed, or sequence")
	}

	return sc, sc.Validate()
}

// BuildPolicy assembles the policy described by the run file.
func (rf *RunFile) BuildPolicy() (scenario.Policy, error) {
	switch {
	case rf.Policy.Static != nil:
		return scenario.Static{Vector: rf.Policy.Static.Vector()}, nil
	case rf.Policy.Step != nil:
		s := rf.Policy.Step
		return scenario.Step{
			Before:  s.Before.Vector(),
			After:   s.After.Vector(),
			AtEpoch: s.AtEpoch,
		}, nil
	default:
		return nil, fmt.Errorf("run file: policy section must set static or step")
	}
}
