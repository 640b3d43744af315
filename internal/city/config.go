// Package city models a coastal settlement on a sloped cross-section (the
// "wedge") rising from sea level to its maximum elevation, together with the
// five-lever defense vector and the elevation-band partition the levers induce.
package city

import "fmt"

// Config holds the physical and economic coefficients of one city.
// Immutable for the duration of a run; validate with Validate before use.
type Config struct {
	// Geometry.
	TotalValue   float64 `yaml:"total_value"`   // Initial value of all infrastructure ($)
	MaxElevation float64 `yaml:"max_elevation"` // Elevation change from sea level to city top (m)
	CityWidth    float64 `yaml:"city_width"`    // Shoreline width of the wedge (m)
	CityLength   float64 `yaml:"city_length"`   // Inland run of the wedge (m)

	// Withdrawal (relocation).
	WithdrawalLossFraction float64 `yaml:"withdrawal_loss_fraction"` // Value lost per unit withdrawn, as fraction of total
	WithdrawalCostFactor   float64 `yaml:"withdrawal_cost_factor"`   // Scaling on the relocation cost term

	// Zone valuation.
	ProtectedValueRatio   float64 `yaml:"protected_value_ratio"`   // Barrier-protected value capitalizes safety (> 1 typical)
	UnprotectedValueRatio float64 `yaml:"unprotected_value_ratio"` // Unprotected value discounts residual risk (< 1 typical)

	// Buildings.
	BuildingHeight float64 `yaml:"building_height"` // Representative building height (m)
	BasementDepth  float64 `yaml:"basement_depth"`  // Representative basement depth (m)

	// Flood damage.
	DamageFraction      float64 `yaml:"damage_fraction"`       // Fraction of flooded value lost
	FailedBarrierFactor float64 `yaml:"failed_barrier_factor"` // Damage multiplier behind a breached barrier (> 1)
	IntactBarrierFactor float64 `yaml:"intact_barrier_factor"` // Damage multiplier behind an intact barrier

	// Barrier failure.
	FailureOnsetFraction float64 `yaml:"failure_onset_fraction"` // Fraction of crest height where the ramp begins (< 1)
	FailureFloorProb     float64 `yaml:"failure_floor_prob"`     // Failure probability floor below the onset

	// Catastrophic threshold.
	ThresholdValue    float64 `yaml:"threshold_value"`    // Damage level beyond which the penalty applies ($)
	ThresholdFraction float64 `yaml:"threshold_fraction"` // Fraction of the excess fed to the penalty
	ThresholdExponent float64 `yaml:"threshold_exponent"` // Penalty exponent (near-linear in the literature)

	// Effective surge.
	SeaBarrierHeight float64 `yaml:"sea_barrier_height"` // Existing seawall height (m)
	RunUpFactor      float64 `yaml:"run_up_factor"`      // Wave run-up amplification on raw surge

	// Barrier construction.
	BarrierSideSlope     float64 `yaml:"barrier_side_slope"`     // Side slope of the barrier faces
	BarrierTopWidth      float64 `yaml:"barrier_top_width"`      // Width of the barrier crest (m)
	BarrierStartupHeight float64 `yaml:"barrier_startup_height"` // Equivalent height of fixed mobilization cost (m)
	BarrierUnitCost      float64 `yaml:"barrier_unit_cost"`      // Cost per cubic meter of barrier ($/m^3)

	// Flood-proofing (resistance).
	ResistanceAdjustment   float64 `yaml:"resistance_adjustment"`    // Overall scaling on proofing cost
	ResistanceLinearFactor float64 `yaml:"resistance_linear_factor"` // Linear-in-P cost coefficient
	ResistanceExpFactor    float64 `yaml:"resistance_exp_factor"`    // Coefficient on the steep high-coverage term
	ResistanceExpThreshold float64 `yaml:"resistance_exp_threshold"` // Coverage fraction where the steep term kicks in
}

// DefaultConfig returns the reference parameterization: a 17 m wedge holding
// $1.5T of value, calibrated against the historical Manhattan cross-section.
func DefaultConfig() Config {
	return Config{
		TotalValue:   1.5e12,
		MaxElevation: 17,
		CityWidth:    43000,
		CityLength:   2000,

		WithdrawalLossFraction: 0.01,
		WithdrawalCostFactor:   1.0,

		ProtectedValueRatio:   1.1,
		UnprotectedValueRatio: 0.95,

		BuildingHeight: 30,
		BasementDepth:  3.0,

		DamageFraction:      0.39,
		FailedBarrierFactor: 1.5,
		IntactBarrierFactor: 0.03,

		FailureOnsetFraction: 0.95,
		FailureFloorProb:     0.05,

		ThresholdValue:    1.5e12 / 375,
		ThresholdFraction: 1.0,
		ThresholdExponent: 1.01,

		SeaBarrierHeight: 1.75,
		RunUpFactor:      1.1,

		BarrierSideSlope:     0.5,
		BarrierTopWidth:      3,
		BarrierStartupHeight: 2,
		BarrierUnitCost:      10,

		ResistanceAdjustment:   1.25,
		ResistanceLinearFactor: 0.35,
		ResistanceExpFactor:    0.115,
		ResistanceExpThreshold: 0.4,
	}
}

// Slope returns the ground slope of the wedge (width over length).
func (c Config) Slope() float64 {
	return c.CityWidth / c.CityLength
}

// Validate checks every coefficient against its physical range. Invalid
// parameters are rejected here, never clamped downstream.
func (c Config) Validate() error {
	positives := []struct {
		name string
		v    float64
	}{
		{"total_value", c.TotalValue},
		{"max_elevation", c.MaxElevation},
		{"city_width", c.CityWidth},
		{"city_length", c.CityLength},
		{"building_height", c.BuildingHeight},
		{"threshold_value", c.ThresholdValue},
		{"barrier_side_slope", c.BarrierSideSlope},
		{"run_up_factor", c.RunUpFactor},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %g", p.name, p.v)
		}
	}

	nonNegatives := []struct {
		name string
		v    float64
	}{
		{"withdrawal_cost_factor", c.WithdrawalCostFactor},
		{"protected_value_ratio", c.ProtectedValueRatio},
		{"unprotected_value_ratio", c.UnprotectedValueRatio},
		{"basement_depth", c.BasementDepth},
		{"failed_barrier_factor", c.FailedBarrierFactor},
		{"intact_barrier_factor", c.IntactBarrierFactor},
		{"threshold_fraction", c.ThresholdFraction},
		{"threshold_exponent", c.ThresholdExponent},
		{"sea_barrier_height", c.SeaBarrierHeight},
		{"barrier_top_width", c.BarrierTopWidth},
		{"barrier_startup_height", c.BarrierStartupHeight},
		{"barrier_unit_cost", c.BarrierUnitCost},
		{"resistance_adjustment", c.ResistanceAdjustment},
		{"resistance_linear_factor", c.ResistanceLinearFactor},
		{"resistance_exp_factor", c.ResistanceExpFactor},
	}
	for _, p := range nonNegatives {
		if p.v < 0 {
			return fmt.Errorf("config: %s must be non-negative, got %g", p.name, p.v)
		}
	}

	fractions := []struct {
		name string
		v    float64
	}{
		{"withdrawal_loss_fraction", c.WithdrawalLossFraction},
		{"damage_fraction", c.DamageFraction},
		{"failure_floor_prob", c.FailureFloorProb},
		{"resistance_exp_threshold", c.ResistanceExpThreshold},
	}
	for _, p := range fractions {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("config: %s must be in [0,1], got %g", p.name, p.v)
		}
	}

	// A ramp denominator of zero would make the failure model undefined.
	if c.FailureOnsetFraction < 0 || c.FailureOnsetFraction >= 1 {
		return fmt.Errorf("config: failure_onset_fraction must be in [0,1), got %g", c.FailureOnsetFraction)
	}
	return nil
}
