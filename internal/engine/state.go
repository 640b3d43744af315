// Package engine runs the multi-year risk-cost simulation: each epoch it
// queries the policy, merges the target irreversibly into the state, charges
// the marginal investment, evaluates damage in the scenario's mode, and
// discounts both into the running totals.
package engine

import "github.com/talgya/wedgesim/internal/city"

// State is the mutable simulation state for one run: the accumulated defense
// vector and the epoch index. Owned exclusively by a single run; concurrent
// evaluations must each hold their own State.
type State struct {
	Vector city.DefenseVector
	Epoch  int
}

// EpochRecord is one row of a run trace.
type EpochRecord struct {
	Epoch      int
	Investment float64 // Discounted investment charged this epoch
	Damage     float64 // Discounted damage this epoch
	Vector     city.DefenseVector
}

// Result accumulates a completed run. When Infeasible is set, Investment and
// Damage are +Inf sentinels so an outer optimizer can reject the candidate
// without error handling in its hot loop.
type Result struct {
	Investment float64
	Damage     float64
	Infeasible bool
	Trace      []EpochRecord // Populated by RunTraced only
}

// Total returns combined discounted investment plus damage, the usual scalar
// objective for a policy search.
func (r Result) Total() float64 {
	return r.Investment + r.Damage
}
