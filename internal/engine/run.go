package engine

import (
	"math"
	"math/rand"

	"github.com/talgya/wedgesim/internal/city"
	"github.com/talgya/wedgesim/internal/cost"
	"github.com/talgya/wedgesim/internal/damage"
	"github.com/talgya/wedgesim/internal/scenario"
)

// Run executes the full horizon and returns accumulated discounted totals.
// rng feeds the Bernoulli barrier-failure draws in event mode and is never
// touched in EAD mode; passing the same seeded source with the same scenario
// and policy reproduces results exactly.
func Run(sc scenario.Scenario, pol scenario.Policy, rng *rand.Rand) Result {
	return run(sc, pol, rng, false)
}

// RunTraced is Run with a per-epoch trace attached to the result.
func RunTraced(sc scenario.Scenario, pol scenario.Policy, rng *rand.Rand) Result {
	return run(sc, pol, rng, true)
}

func run(sc scenario.Scenario, pol scenario.Policy, rng *rand.Rand, trace bool) Result {
	cfg := sc.Config
	st := State{}
	res := Result{}
	if trace {
		res.Trace = make([]EpochRecord, 0, sc.Horizon)
	}

	for epoch := 0; epoch < sc.Horizon; epoch++ {
		target := pol.Target(st.Vector, sc, epoch)
		merged := st.Vector.Merge(target)

		// Infeasible targets short-circuit the whole run with the sentinel;
		// the optimizer filters on +Inf, no error path in the hot loop.
		if !merged.Feasible(cfg) {
			res.Investment = math.Inf(1)
			res.Damage = math.Inf(1)
			res.Infeasible = true
			return res
		}

		// Marginal costing: charge only the positive delta over what is
		// already built. Re-applying an unchanged vector charges nothing.
		invest := cost.Investment(cfg, merged) - cost.Investment(cfg, st.Vector)
		if invest < 0 {
			invest = 0
		}

		zones := city.Partition(cfg, merged)

		var dmg float64
		if sc.EventMode() {
			dmg = damage.Realized(cfg, merged, zones, sc.Realized[epoch], rng)
		} else {
			dmg = damage.ExpectedAnnual(cfg, merged, zones, sc.Annual)
		}

		disc := math.Pow(1+sc.DiscountRate, -float64(epoch))
		res.Investment += invest * disc
		res.Damage += dmg * disc

		if trace {
			res.Trace = append(res.Trace, EpochRecord{
				Epoch:      epoch,
				Investment: invest * disc,
				Damage:     dmg * disc,
				Vector:     merged,
			})
		}

		st.Vector = merged
		st.Epoch = epoch + 1
	}
	return res
}
