// Package scenario defines what a simulation run is exposed to: the city
// configuration, the planning horizon and discount rate, and the surge
// forcing — either a realized per-year surge record or an annual probability
// distribution for expected-annual-damage evaluation.
package scenario

import (
	"fmt"

	"github.com/talgya/wedgesim/internal/city"
	"github.com/talgya/wedgesim/internal/surge"
)

// Scenario is one fully specified simulation input. Exactly one of Realized
// and Annual must be set; Realized selects event mode, Annual selects EAD
// mode.
type Scenario struct {
	Config       city.Config
	Horizon      int     // Number of yearly epochs
	DiscountRate float64 // Annual discount rate on investment and damage

	Realized []float64          // Raw surge per epoch (event mode)
	Annual   surge.Distribution // Annual surge distribution (EAD mode)
}

// EventMode reports whether the scenario supplies realized surges.
func (s Scenario) EventMode() bool {
	return s.Realized != nil
}

// Validate checks the scenario is runnable: a valid config, a positive
// horizon, and surge forcing in exactly one mode covering every epoch.
func (s Scenario) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if s.Horizon <= 0 {
		return fmt.Errorf("scenario: horizon must be positive, got %d", s.Horizon)
	}
	if s.DiscountRate < 0 {
		return fmt.Errorf("scenario: discount rate must be non-negative, got %g", s.DiscountRate)
	}
	if s.EventMode() == (s.Annual != nil) {
		return fmt.Errorf("scenario: exactly one of realized surges or annual distribution must be set")
	}
	if s.EventMode() && len(s.Realized) < s.Horizon {
		return fmt.Errorf("scenario: %d realized surges for %d epochs", len(s.Realized), s.Horizon)
	}
	return nil
}
